package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorRendering(t *testing.T) {
	err := E(CodeUpstream, "port.GET /entities", "upstream status 500: boom", nil)
	require.Equal(t, "port.GET /entities: upstream status 500: boom", err.Error())

	cause := errors.New("connection refused")
	err = E(CodeTransport, "port.GET /entities", "", cause)
	require.Contains(t, err.Error(), "connection refused")
	require.ErrorIs(t, err, cause)
}

func TestWrapPreservesExistingTag(t *testing.T) {
	inner := E(CodeConfiguration, "port.token", "missing credentials", nil)
	wrapped := Wrap(CodeInternal, "outer", fmt.Errorf("calling: %w", inner))

	code, ok := CodeFrom(wrapped)
	require.True(t, ok)
	require.Equal(t, CodeConfiguration, code)
}

func TestCodeFrom(t *testing.T) {
	_, ok := CodeFrom(nil)
	require.False(t, ok)

	_, ok = CodeFrom(errors.New("plain"))
	require.False(t, ok)

	code, ok := CodeFrom(E(CodeUnauthenticated, "", "", nil))
	require.True(t, ok)
	require.Equal(t, CodeUnauthenticated, code)
}
