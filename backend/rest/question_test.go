package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kodelab/panel/core/question"
)

func parseForm(t *testing.T, r *http.Request) map[string]string {
	t.Helper()
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm() failed, %v", err)
	}
	out := make(map[string]string, len(r.MultipartForm.Value))
	for key, vals := range r.MultipartForm.Value {
		out[key] = vals[0]
	}
	return out
}

func TestQuestionRepository_QueryAllQuestions(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "enveloped", body: `{"questions":[{"id":1,"title":"FizzBuzz"},{"id":2,"title":"Palindrome"}]}`},
		{name: "bare array", body: `[{"id":1,"title":"FizzBuzz"},{"id":2,"title":"Palindrome"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet || r.URL.Path != "/question" {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			repo := NewQuestionRepository(NewClient(srv.URL, newSession(t, "abc")))
			items, err := repo.QueryAllQuestions(context.Background())
			if err != nil {
				t.Fatalf("QueryAllQuestions() error = %v", err)
			}
			if len(items) != 2 || items[0].Title != "FizzBuzz" {
				t.Errorf("QueryAllQuestions() = %v", items)
			}
		})
	}
}

func TestQuestionRepository_CreateQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/question" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		form := parseForm(t, r)
		if form["title"] != "FizzBuzz" || form["key"] != "1234567890" {
			t.Errorf("form = %v", form)
		}
		// plain create carries no method override
		if _, ok := form["_method"]; ok {
			t.Error("create must not send _method")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"question":{"id":7,"title":"FizzBuzz","key":"1234567890"}}`))
	}))
	defer srv.Close()

	repo := NewQuestionRepository(NewClient(srv.URL, newSession(t, "abc")))
	nq := question.NewQuestion{Title: "FizzBuzz", Description: "d", Question: "<p>q</p>", Key: "1234567890"}
	q, err := repo.CreateQuestion(context.Background(), nq)
	if err != nil {
		t.Fatalf("CreateQuestion() error = %v", err)
	}
	if q.ID != 7 {
		t.Errorf("CreateQuestion().ID = %d, want 7", q.ID)
	}
}

func TestQuestionRepository_UpdateQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/question/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		// updates tunnel PUT through a multipart POST
		if form := parseForm(t, r); form["_method"] != http.MethodPut {
			t.Errorf("_method = %q, want PUT", form["_method"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"question":{"id":7,"title":"FizzBuzz v2"}}`))
	}))
	defer srv.Close()

	repo := NewQuestionRepository(NewClient(srv.URL, newSession(t, "abc")))
	uq := question.UpdateQuestion{Title: "FizzBuzz v2", Description: "d", Question: "<p>q</p>", Key: "1234567890"}
	q, err := repo.UpdateQuestion(context.Background(), 7, uq)
	if err != nil {
		t.Fatalf("UpdateQuestion() error = %v", err)
	}
	if q.Title != "FizzBuzz v2" {
		t.Errorf("UpdateQuestion().Title = %q", q.Title)
	}
}

func TestQuestionRepository_DeleteQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/question/7" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if form := parseForm(t, r); form["_method"] != http.MethodDelete {
			t.Errorf("_method = %q, want DELETE", form["_method"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	}))
	defer srv.Close()

	repo := NewQuestionRepository(NewClient(srv.URL, newSession(t, "abc")))
	if err := repo.DeleteQuestion(context.Background(), 7); err != nil {
		t.Fatalf("DeleteQuestion() error = %v", err)
	}
}
