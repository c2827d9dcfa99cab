package turnstile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testVerifier(secret, endpoint string, timeout time.Duration) *Verifier {
	return &Verifier{
		secret:   secret,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

func TestVerifyAcceptsValidToken(t *testing.T) {
	var gotSecret, gotResponse string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotSecret = r.PostFormValue("secret")
		gotResponse = r.PostFormValue("response")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "hostname": "viangsolution.com"}`))
	}))
	defer srv.Close()

	v := testVerifier("test-secret", srv.URL, time.Second)
	assert.True(t, v.Verify(context.Background(), "token-123"))
	assert.Equal(t, "test-secret", gotSecret)
	assert.Equal(t, "token-123", gotResponse)
}

func TestVerifyRejectsWhenUpstreamSaysNo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer srv.Close()

	v := testVerifier("test-secret", srv.URL, time.Second)
	assert.False(t, v.Verify(context.Background(), "forged-token"))
}

func TestVerifyRejectsEmptyToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	v := testVerifier("test-secret", srv.URL, time.Second)
	assert.False(t, v.Verify(context.Background(), ""))
	assert.False(t, called, "empty tokens must be rejected without an upstream call")
}

func TestVerifyRejectsOnMalformedReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	v := testVerifier("test-secret", srv.URL, time.Second)
	assert.False(t, v.Verify(context.Background(), "token-123"))
}

func TestVerifyRejectsOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer srv.Close()

	v := testVerifier("test-secret", srv.URL, 20*time.Millisecond)
	assert.False(t, v.Verify(context.Background(), "token-123"))
}

func TestVerifyRejectsOnUnreachableUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	v := testVerifier("test-secret", srv.URL, time.Second)
	assert.False(t, v.Verify(context.Background(), "token-123"))
}

func TestDisabledVerifierAllowsEverything(t *testing.T) {
	v := New("")
	assert.False(t, v.Enabled())
	assert.True(t, v.Verify(context.Background(), ""))
	assert.True(t, v.Verify(context.Background(), "anything"))
}
