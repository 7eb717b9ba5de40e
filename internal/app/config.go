package app

import (
	"github.com/spf13/viper"

	"portmcp/internal/domain"
)

// Config is the environment-driven process configuration. Missing
// credentials are not an error here: the first authenticated call
// reports them, per the adapter's lazy-failure contract.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	LogLevel     string
	MetricsAddr  string
}

// LoadConfig reads configuration from the environment.
func LoadConfig() Config {
	v := newEnvViper()
	return Config{
		ClientID:     v.GetString("clientId"),
		ClientSecret: v.GetString("clientSecret"),
		BaseURL:      v.GetString("apiUrl"),
		LogLevel:     v.GetString("logLevel"),
		MetricsAddr:  v.GetString("metricsAddr"),
	}
}

func newEnvViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("apiUrl", domain.DefaultAPIBaseURL)
	v.SetDefault("logLevel", domain.DefaultLogLevel)
	_ = v.BindEnv("clientId", "PORT_CLIENT_ID")
	_ = v.BindEnv("clientSecret", "PORT_CLIENT_SECRET")
	_ = v.BindEnv("apiUrl", "PORT_API_URL")
	_ = v.BindEnv("logLevel", "PORT_LOG_LEVEL")
	_ = v.BindEnv("metricsAddr", "PORT_METRICS_ADDR")
	return v
}
