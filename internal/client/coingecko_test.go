package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEGLDtoUSDrate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "elrond-erd-2", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		_, _ = io.WriteString(w, `{"elrond-erd-2":{"usd":31.47}}`)
	}))
	defer srv.Close()

	rate, err := NewCoinGeckoClient(srv.URL).GetEGLDtoUSDrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "31.47", rate.String())
}

func TestGetEGLDtoUSDrateFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"rate limited", http.StatusTooManyRequests, `{}`},
		{"missing coin", http.StatusOK, `{}`},
		{"missing usd", http.StatusOK, `{"elrond-erd-2":{}}`},
		{"garbage", http.StatusOK, `[`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewCoinGeckoClient(srv.URL).GetEGLDtoUSDrate(context.Background())
			assert.Error(t, err)
		})
	}
}
