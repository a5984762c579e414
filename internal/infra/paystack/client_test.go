//go:build unit

package paystack_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shalean-booking-api/internal/infra/paystack"
	"shalean-booking-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *paystack.Client {
	return paystack.NewClient(config.PaymentConfig{
		PaystackSecretKey: "sk_test_xxx",
		PaystackBaseURL:   serverURL,
		Currency:          "NGN",
		Timeout:           5 * time.Second,
	})
}

func TestVerifyTransaction(t *testing.T) {
	t.Run("successful charge", func(t *testing.T) {
		var gotPath, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {
					"id": 4099260516,
					"status": "success",
					"reference": "SB-ABCDEF1234-1757920000",
					"amount": 6300000,
					"currency": "NGN",
					"channel": "card",
					"gateway_response": "Successful"
				}
			}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		tx, err := client.VerifyTransaction(context.Background(), "SB-ABCDEF1234-1757920000")

		require.NoError(t, err)
		assert.Equal(t, "/transaction/verify/SB-ABCDEF1234-1757920000", gotPath)
		assert.Equal(t, "Bearer sk_test_xxx", gotAuth)
		assert.True(t, tx.Succeeded())
		assert.Equal(t, int64(6300000), tx.Amount)
		assert.Equal(t, "NGN", tx.Currency)
	})

	t.Run("failed charge is data, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": true,
				"message": "Verification successful",
				"data": {
					"status": "failed",
					"reference": "SB-ABCDEF1234-1757920000",
					"amount": 6300000,
					"currency": "NGN",
					"gateway_response": "Declined"
				}
			}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		tx, err := client.VerifyTransaction(context.Background(), "SB-ABCDEF1234-1757920000")

		require.NoError(t, err)
		assert.False(t, tx.Succeeded())
		assert.Equal(t, "Declined", tx.GatewayResponse)
	})

	t.Run("unknown reference", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status": false, "message": "Transaction reference not found"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.VerifyTransaction(context.Background(), "SB-BOGUS00000-0")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("rejected envelope", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status": false, "message": "Invalid key"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.VerifyTransaction(context.Background(), "SB-ABCDEF1234-1757920000")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid key")
	})

	t.Run("escapes the reference in the path", func(t *testing.T) {
		var gotRawPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRawPath = r.URL.EscapedPath()
			_, _ = w.Write([]byte(`{"status": true, "data": {"status": "success"}}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)

		_, err := client.VerifyTransaction(context.Background(), "ref/with spaces")

		require.NoError(t, err)
		assert.Equal(t, "/transaction/verify/ref%2Fwith%20spaces", gotRawPath)
	})
}
