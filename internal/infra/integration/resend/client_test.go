package resend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		baseURL: srv.URL,
		apiKey:  "re_test_key",
		from:    "NovaClaw <onboarding@resend.dev>",
		http:    &http.Client{Timeout: time.Second},
	}
}

func TestSendEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))

		var payload sendEmailRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, []string{"ops@novaclaw.io"}, payload.To)
		assert.Equal(t, "NovaClaw <onboarding@resend.dev>", payload.From)

		json.NewEncoder(w).Encode(sendEmailResponse{ID: "email-123"})
	}))
	defer srv.Close()

	id, err := testClient(srv).SendEmail(SendEmailInput{
		To:      []string{"ops@novaclaw.io"},
		Subject: "🚀 Nieuwe Lead: Ann - Particulier",
		Text:    "Nieuwe lead via NovaClaw website!",
	})

	assert.NoError(t, err)
	assert.Equal(t, "email-123", id)
}

func TestSendEmailNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).SendEmail(SendEmailInput{To: []string{"ops@novaclaw.io"}})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}
