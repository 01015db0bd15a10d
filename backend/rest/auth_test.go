package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kodelab/panel/core/session"
)

func TestAuthRepository_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			t.Error("login must not send a bearer token")
		}
		form := parseForm(t, r)
		if form["nim"] != "2023114200" || form["pin"] != "1234" {
			t.Errorf("form = %v", form)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-123"}`))
	}))
	defer srv.Close()

	repo := NewAuthRepository(NewClient(srv.URL, newSession(t, "")))
	token, err := repo.Login(context.Background(), session.Credentials{Nim: "2023114200", Pin: "1234"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "tok-123" {
		t.Errorf("Login() = %q, want %q", token, "tok-123")
	}
}

func TestAuthRepository_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/register" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		form := parseForm(t, r)
		for _, key := range []string{"name", "kelompok", "nim", "role", "pin"} {
			if form[key] == "" {
				t.Errorf("form field %q missing", key)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"tok-456"}`))
	}))
	defer srv.Close()

	repo := NewAuthRepository(NewClient(srv.URL, newSession(t, "")))
	reg := session.Registration{Name: "Awe", Kelompok: "A1", Nim: "2023114200", Role: "admin", Pin: "1234"}
	token, err := repo.Register(context.Background(), reg)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token != "tok-456" {
		t.Errorf("Register() = %q, want %q", token, "tok-456")
	}
}

func TestAuthRepository_CurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/user" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":1,"name":"Awe","nim":"2023114200","kelompok":"A1","role":"admin"}}`))
	}))
	defer srv.Close()

	repo := NewAuthRepository(NewClient(srv.URL, newSession(t, "abc")))
	acct, err := repo.CurrentUser(context.Background())
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if acct.ID != 1 || acct.Nim != "2023114200" {
		t.Errorf("CurrentUser() = %+v", acct)
	}
}
