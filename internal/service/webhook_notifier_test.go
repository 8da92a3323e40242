package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lnbits/satspay/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookCaller_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the public charge payload", func(t *testing.T) {
		var gotMethod, gotContentType string
		var gotBody domain.PublicCharge
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotContentType = r.Header.Get("Content-Type")
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Write([]byte("ok"))
		}))
		defer server.Close()

		charge := testCharge()
		charge.Webhook = &server.URL
		charge.Paid = true
		charge.Balance = 1000
		link := "https://merchant.example/thanks"
		charge.CompleteLink = &link

		caller := NewWebhookCaller(server.Client(), 0, zerolog.Nop())
		result := caller.Notify(ctx, charge, domain.WebhookMethodPost)

		assert.True(t, result.Success)
		assert.Equal(t, "ok", result.Response)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, charge.ID, gotBody.ID)
		assert.True(t, gotBody.Paid)
		require.NotNil(t, gotBody.CompleteLink)
		assert.Equal(t, link, *gotBody.CompleteLink)
	})

	t.Run("GET delivery still carries the body", func(t *testing.T) {
		var gotMethod string
		var bodyLen int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			body, _ := io.ReadAll(r.Body)
			bodyLen = len(body)
		}))
		defer server.Close()

		charge := testCharge()
		charge.Webhook = &server.URL

		caller := NewWebhookCaller(server.Client(), 0, zerolog.Nop())
		result := caller.Notify(ctx, charge, domain.WebhookMethodGet)

		assert.True(t, result.Success)
		assert.Equal(t, http.MethodGet, gotMethod)
		assert.Greater(t, bodyLen, 0)
	})

	t.Run("non-2xx is recorded as failure, not raised", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "try later", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		charge := testCharge()
		charge.Webhook = &server.URL

		caller := NewWebhookCaller(server.Client(), 0, zerolog.Nop())
		result := caller.Notify(ctx, charge, domain.WebhookMethodPost)

		assert.False(t, result.Success)
		assert.Contains(t, result.Message, "503")
		assert.Contains(t, result.Response, "try later")
	})

	t.Run("timeout is recorded as failure", func(t *testing.T) {
		started := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			close(started)
			<-r.Context().Done()
		}))
		defer server.Close()

		charge := testCharge()
		charge.Webhook = &server.URL

		caller := NewWebhookCaller(server.Client(), 50*time.Millisecond, zerolog.Nop())
		result := caller.Notify(ctx, charge, domain.WebhookMethodPost)

		<-started
		assert.False(t, result.Success)
		assert.NotEmpty(t, result.Message)
	})

	t.Run("missing webhook URL is a failure result", func(t *testing.T) {
		charge := testCharge()
		charge.Webhook = nil

		caller := NewWebhookCaller(http.DefaultClient, 0, zerolog.Nop())
		result := caller.Notify(ctx, charge, domain.WebhookMethodPost)

		assert.False(t, result.Success)
		assert.Equal(t, "no webhook configured", result.Message)
	})

	t.Run("bounds the recorded response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write(make([]byte, maxWebhookResponse*2))
		}))
		defer server.Close()

		charge := testCharge()
		charge.Webhook = &server.URL

		caller := NewWebhookCaller(server.Client(), 0, zerolog.Nop())
		result := caller.Notify(ctx, charge, domain.WebhookMethodPost)

		assert.True(t, result.Success)
		assert.Len(t, result.Response, maxWebhookResponse)
	})
}
