package config

import (
	"os"
	"testing"
	"time"

	"github.com/AlexZinkM/elrond-wallet/elrond"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears keys for the duration of the test
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestInitDefaults(t *testing.T) {
	unsetenv(t, "PORT", "PAY_COOLDOWN_MINUTES", "ELROND_GATEWAY_URL", "ELROND_NETWORK", "COINGECKO_URL", "LOG_ENV")
	t.Setenv("ELROND_FILE_PATH", "/tmp/wallet.ewt")

	require.NoError(t, Init())

	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, 4*time.Minute, GetPayCooldown())
	assert.Equal(t, "/tmp/wallet.ewt", GetElrondFilePath())
	assert.Equal(t, "https://gateway.multiversx.com", GetElrondGatewayURL())
	assert.Equal(t, elrond.MainNet, GetElrondNetwork())
	assert.Equal(t, "development", GetLogEnv())
}

func TestInitOverrides(t *testing.T) {
	t.Setenv("ELROND_FILE_PATH", "w.ewt")
	t.Setenv("ELROND_NETWORK", "devnet")
	t.Setenv("ELROND_GATEWAY_URL", "https://devnet-gateway.multiversx.com")
	t.Setenv("PAY_COOLDOWN_MINUTES", "0")

	require.NoError(t, Init())

	assert.Equal(t, "D", GetElrondNetwork().ChainID())
	assert.Equal(t, "https://devnet-gateway.multiversx.com", GetElrondGatewayURL())
	assert.Equal(t, time.Duration(0), GetPayCooldown())
}

func TestInitErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing file path", map[string]string{"ELROND_FILE_PATH": ""}},
		{"unknown network", map[string]string{"ELROND_FILE_PATH": "w.ewt", "ELROND_NETWORK": "moonnet"}},
		{"negative cooldown", map[string]string{"ELROND_FILE_PATH": "w.ewt", "PAY_COOLDOWN_MINUTES": "-1"}},
		{"cooldown not a number", map[string]string{"ELROND_FILE_PATH": "w.ewt", "PAY_COOLDOWN_MINUTES": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Error(t, Init())
		})
	}
}

func TestPasswordCopies(t *testing.T) {
	passwordBytes = nil
	_, err := GetElrondPasswordBytes()
	assert.Error(t, err)

	SetPassword([]byte("secret"))

	got, err := GetElrondPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), got)

	clear(got)
	again, err := GetElrondPasswordBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), again)
}
