package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/kodelab/panel/backend/rest"
	"github.com/kodelab/panel/core/question"
	"github.com/kodelab/panel/core/session"
)

type countingFetcher struct {
	calls int
}

func (f *countingFetcher) Refresh(context.Context) error {
	f.calls++
	return nil
}

func setup() (*Controller, map[Tab]*countingFetcher) {
	fetchers := map[Tab]*countingFetcher{
		TabQuestions:   {},
		TabSubmissions: {},
		TabRules:       {},
		TabFeedback:    {},
	}
	c := NewController(fetchers[TabQuestions], fetchers[TabSubmissions], fetchers[TabRules], fetchers[TabFeedback])
	return c, fetchers
}

func assertCalls(t *testing.T, fetchers map[Tab]*countingFetcher, want map[Tab]int) {
	t.Helper()
	for tab, f := range fetchers {
		if f.calls != want[tab] {
			t.Errorf("%s fetched %d times, want %d", tab, f.calls, want[tab])
		}
	}
}

func TestController_Select(t *testing.T) {
	c, fetchers := setup()
	ctx := context.Background()

	// starts at questions, before any event nothing is fetched
	if c.Active() != TabQuestions {
		t.Errorf("Active() = %q, want %q", c.Active(), TabQuestions)
	}
	assertCalls(t, fetchers, map[Tab]int{})

	if err := c.Select(ctx, TabSubmissions); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if c.Active() != TabSubmissions {
		t.Errorf("Active() = %q, want %q", c.Active(), TabSubmissions)
	}
	// exactly one fetch, for the selected tab only
	assertCalls(t, fetchers, map[Tab]int{TabSubmissions: 1})

	// re-selecting the active tab re-fetches
	if err := c.Select(ctx, TabSubmissions); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	assertCalls(t, fetchers, map[Tab]int{TabSubmissions: 2})
}

func TestController_SelectUnknownTab(t *testing.T) {
	c, fetchers := setup()

	err := c.Select(context.Background(), Tab("users"))
	if errors.Cause(err) != ErrUnknownTab {
		t.Errorf("Select() error = %v, want %v", err, ErrUnknownTab)
	}
	// the active tab does not move and nothing is fetched
	if c.Active() != TabQuestions {
		t.Errorf("Active() = %q, want %q", c.Active(), TabQuestions)
	}
	assertCalls(t, fetchers, map[Tab]int{})
}

func TestController_TokenChanged(t *testing.T) {
	c, fetchers := setup()
	ctx := context.Background()

	// a token change (login) fetches the active tab
	if err := c.TokenChanged(ctx); err != nil {
		t.Fatalf("TokenChanged() error = %v", err)
	}
	assertCalls(t, fetchers, map[Tab]int{TabQuestions: 1})

	if err := c.Select(ctx, TabRules); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if err := c.TokenChanged(ctx); err != nil {
		t.Fatalf("TokenChanged() error = %v", err)
	}
	assertCalls(t, fetchers, map[Tab]int{TabQuestions: 1, TabRules: 2})
}

// The API rejecting a stale token clears the session, which fires the
// change listener, which re-enters the controller on the same goroutine.
// Select must still return.
func TestController_SelectWithRevokedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Unauthenticated."}`))
	}))
	defer srv.Close()

	sess, err := session.New(session.NewMemStore("stale"))
	if err != nil {
		t.Fatalf("session.New() failed, %v", err)
	}
	questionSvc := question.NewService(sess, rest.NewQuestionRepository(rest.NewClient(srv.URL, sess)))
	c := NewController(questionSvc, questionSvc, questionSvc, questionSvc)
	sess.OnChange(func() { _ = c.TokenChanged(context.Background()) })

	done := make(chan error, 1)
	go func() { done <- c.Select(context.Background(), TabQuestions) }()

	select {
	case err := <-done:
		apiErr, ok := errors.Cause(err).(*rest.APIError)
		if !ok || apiErr.Status != http.StatusUnauthorized {
			t.Errorf("Select() error = %v, want a 401 *rest.APIError", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Select() did not return after the API revoked the token")
	}
	if sess.Authenticated() {
		t.Error("token survives the 401")
	}
}

func TestTab_Valid(t *testing.T) {
	for _, tab := range []Tab{TabQuestions, TabSubmissions, TabRules, TabFeedback} {
		if !tab.Valid() {
			t.Errorf("%q.Valid() = false", tab)
		}
	}
	if Tab("users").Valid() {
		t.Error(`Tab("users").Valid() = true`)
	}
}
