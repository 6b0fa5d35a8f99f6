package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientPlainHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	t.Run("refused by default", func(t *testing.T) {
		_, err := NewHTTPClient(time.Second, false).Get(server.URL)
		assert.ErrorIs(t, err, ErrInsecureTransport)
	})

	t.Run("allowed when insecure", func(t *testing.T) {
		resp, err := NewHTTPClient(time.Second, true).Get(server.URL)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}
