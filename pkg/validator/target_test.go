package validator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateHost(t *testing.T) {
	for _, host := range []string{"127.0.0.1", "10.0.0.5", "::1", "www.example.com", "dc01"} {
		require.True(t, ValidateHost(host), host)
	}
	for _, host := range []string{"", "evil host", "http://x", "user@host", "10.0.0.1:80"} {
		require.False(t, ValidateHost(host), host)
	}
}

func TestValidatePort(t *testing.T) {
	require.True(t, ValidatePort(0))
	require.True(t, ValidatePort(65535))
	require.False(t, ValidatePort(-1))
	require.False(t, ValidatePort(70000))
}

func TestValidateAddress(t *testing.T) {
	require.True(t, ValidateAddress("localhost:6379"))
	require.True(t, ValidateAddress(":6379"))
	require.False(t, ValidateAddress("localhost"))
}
