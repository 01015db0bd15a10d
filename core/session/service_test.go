package session

import (
	"context"
	"testing"

	"github.com/pkg/errors"

	"github.com/kodelab/panel/core"
)

var errBadCreds = errors.New("nim or pin is incorrect")

// fakeAuthRepo counts calls so tests can assert which operations reached
// the network.
type fakeAuthRepo struct {
	logins, logouts int
	failLogin       bool
}

var _ Repository = (*fakeAuthRepo)(nil)

func (r *fakeAuthRepo) Login(_ context.Context, creds Credentials) (string, error) {
	r.logins++
	if r.failLogin {
		return "", errBadCreds
	}
	return "tok-" + creds.Nim, nil
}

func (r *fakeAuthRepo) Register(_ context.Context, reg Registration) (string, error) {
	return "tok-" + reg.Nim, nil
}

func (r *fakeAuthRepo) Logout(context.Context) error {
	r.logouts++
	return nil
}

func (r *fakeAuthRepo) CurrentUser(context.Context) (Account, error) {
	return Account{ID: 1, Name: "Awe", Nim: "2023114200"}, nil
}

func TestService_Login(t *testing.T) {
	sess, _ := New(NewMemStore(""))
	repo := &fakeAuthRepo{}
	svc := NewService(sess, repo)
	ctx := context.Background()

	repo.failLogin = true
	if err := svc.Login(ctx, Credentials{Nim: "2023114200", Pin: "0000"}); err != errBadCreds {
		t.Errorf("Login() error = %v, want %v", err, errBadCreds)
	}
	if sess.Authenticated() {
		t.Error("failed login must not authenticate")
	}

	repo.failLogin = false
	if err := svc.Login(ctx, Credentials{Nim: "2023114200", Pin: "1234"}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if sess.Token() != "tok-2023114200" {
		t.Errorf("Token() = %q, want %q", sess.Token(), "tok-2023114200")
	}
}

func TestService_Register(t *testing.T) {
	sess, _ := New(NewMemStore(""))
	svc := NewService(sess, &fakeAuthRepo{})

	reg := Registration{Name: "Awe", Kelompok: "A1", Nim: "2023114200", Role: "admin", Pin: "1234"}
	if err := svc.Register(context.Background(), reg); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	// registration logs in directly
	if !sess.Authenticated() {
		t.Error("Authenticated() = false after Register()")
	}
}

func TestService_Logout(t *testing.T) {
	sess, _ := New(NewMemStore("abc"))
	repo := &fakeAuthRepo{}
	svc := NewService(sess, repo)
	ctx := context.Background()

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if sess.Authenticated() {
		t.Error("token survives logout")
	}
	if repo.logouts != 1 {
		t.Errorf("repo.Logout called %d times, want 1", repo.logouts)
	}

	// logging out while logged out stays local
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if repo.logouts != 1 {
		t.Errorf("repo.Logout called %d times, want 1", repo.logouts)
	}
}

func TestService_Current(t *testing.T) {
	sess, _ := New(NewMemStore(""))
	svc := NewService(sess, &fakeAuthRepo{})
	ctx := context.Background()

	if _, err := svc.Current(ctx); errors.Cause(err) != core.ErrNotAuthenticated {
		t.Errorf("Current() error = %v, want %v", err, core.ErrNotAuthenticated)
	}

	_ = sess.SetToken("abc")
	acct, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}
	if acct.Nim != "2023114200" {
		t.Errorf("Current().Nim = %q, want %q", acct.Nim, "2023114200")
	}
}
