package domain

import "time"

const (
	// DefaultAPIBaseURL is the Port API endpoint used when
	// PORT_API_URL is not set.
	DefaultAPIBaseURL = "https://api.getport.io"

	// TokenLifetime is how long a fetched access token is trusted.
	// Port tokens are valid for an hour; the 50 minute window keeps a
	// token from expiring mid-request.
	TokenLifetime = 50 * time.Minute

	DefaultEntityLimit = 50
	MaxEntityLimit     = 500

	DefaultLogLevel = "info"

	DefaultHTTPTimeout = 30 * time.Second
)
