package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/session"
)

func newSession(t *testing.T, token string) *session.Session {
	t.Helper()
	sess, err := session.New(session.NewMemStore(token))
	if err != nil {
		t.Fatalf("session.New() failed, %v", err)
	}
	return sess
}

func TestClient_RequestHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", newSession(t, "abc")) // trailing slash is trimmed
	if err := c.get(context.Background(), "/question", true, nil); err != nil {
		t.Fatalf("get() error = %v", err)
	}

	if gotAuth != "Bearer abc" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer abc")
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q", gotAccept)
	}
	if gotReqID == "" {
		t.Error("X-Request-ID not set")
	}
}

func TestClient_UnauthedRequestHasNoBearer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, newSession(t, "abc"))
	if err := c.get(context.Background(), "/login", false, nil); err != nil {
		t.Fatalf("get() error = %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty", gotAuth)
	}
}

func TestClient_UnauthorizedClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
	}))
	defer srv.Close()

	sess := newSession(t, "stale")
	c := NewClient(srv.URL, sess)

	err := c.get(context.Background(), "/question", true, nil)
	apiErr, ok := errors.Cause(err).(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Unauthenticated." {
		t.Errorf("APIError = %+v", apiErr)
	}
	// a 401 is an implicit logout
	if sess.Authenticated() {
		t.Error("token survives a 401")
	}
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
	}{
		{name: "json message field", contentType: "application/json", body: `{"message":"key is invalid"}`, want: "key is invalid"},
		{name: "json without message field", contentType: "application/json; charset=utf-8", body: `{"error":"nope"}`, want: `{"error":"nope"}`},
		{name: "html error page", contentType: "text/html", body: "  <h1>504 Gateway Time-out</h1>\n", want: "<h1>504 Gateway Time-out</h1>"},
		{name: "empty body", contentType: "", body: "", want: "unknown error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractMessage(tt.contentType, []byte(tt.body)); got != tt.want {
				t.Errorf("extractMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Status: 422, Message: "key is invalid"}
	if err.Error() != "key is invalid" {
		t.Errorf("Error() = %q", err.Error())
	}
}
