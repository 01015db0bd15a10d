package question

import (
	"context"
	"errors"
	"sync"

	"github.com/kodelab/panel/core"
	"github.com/kodelab/panel/core/session"
)

var ErrNotFound = errors.New("question not found")

type (
	Repository interface {
		QueryAllQuestions(ctx context.Context) ([]Question, error)
		GetQuestionByID(ctx context.Context, id int) (Question, error)
		CreateQuestion(ctx context.Context, nq NewQuestion) (Question, error)
		UpdateQuestion(ctx context.Context, id int, uq UpdateQuestion) (Question, error)
		DeleteQuestion(ctx context.Context, id int) error
	}

	// Service owns the client-side question collection. The collection is a
	// cache of server state: mutations merge the server's response locally
	// (prepend / replace / remove) instead of re-fetching.
	Service struct {
		sess *session.Session
		repo Repository

		mu    sync.RWMutex
		items []Question
	}
)

func NewService(sess *session.Session, repo Repository) *Service {
	return &Service{sess: sess, repo: repo}
}

// Refresh replaces the collection with the server's. A failed fetch leaves
// the collection empty, not stale.
func (svc *Service) Refresh(ctx context.Context) error {
	if !svc.sess.Authenticated() {
		return core.ErrNotAuthenticated
	}
	items, err := svc.repo.QueryAllQuestions(ctx)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if err != nil {
		svc.items = nil
		return err
	}
	svc.items = items
	return nil
}

// Items returns a snapshot of the current collection.
func (svc *Service) Items() []Question {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]Question{}, svc.items...)
}

func (svc *Service) Get(ctx context.Context, id int) (Question, error) {
	if !svc.sess.Authenticated() {
		return Question{}, core.ErrNotAuthenticated
	}
	return svc.repo.GetQuestionByID(ctx, id)
}

// Create posts the new question and prepends the server-returned record.
func (svc *Service) Create(ctx context.Context, nq NewQuestion) (Question, error) {
	if !svc.sess.Authenticated() {
		return Question{}, core.ErrNotAuthenticated
	}
	q, err := svc.repo.CreateQuestion(ctx, nq)
	if err != nil {
		return Question{}, err
	}

	svc.mu.Lock()
	svc.items = append([]Question{q}, svc.items...)
	svc.mu.Unlock()
	return q, nil
}

// Update replaces the matching element in place; order is preserved.
func (svc *Service) Update(ctx context.Context, id int, uq UpdateQuestion) (Question, error) {
	if !svc.sess.Authenticated() {
		return Question{}, core.ErrNotAuthenticated
	}
	q, err := svc.repo.UpdateQuestion(ctx, id, uq)
	if err != nil {
		return Question{}, err
	}

	svc.mu.Lock()
	for i := range svc.items {
		if svc.items[i].ID == id {
			svc.items[i] = q
			break
		}
	}
	svc.mu.Unlock()
	return q, nil
}

// Delete removes the question by identity. An id that is no longer in the
// local collection fails with ErrNotFound without touching the network, so
// a repeated delete never re-issues the call.
func (svc *Service) Delete(ctx context.Context, id int) error {
	if !svc.sess.Authenticated() {
		return core.ErrNotAuthenticated
	}

	svc.mu.RLock()
	known := svc.contains(id)
	svc.mu.RUnlock()
	if !known {
		return ErrNotFound
	}

	if err := svc.repo.DeleteQuestion(ctx, id); err != nil {
		return err
	}

	svc.mu.Lock()
	for i := range svc.items {
		if svc.items[i].ID == id {
			svc.items = append(svc.items[:i], svc.items[i+1:]...)
			break
		}
	}
	svc.mu.Unlock()
	return nil
}

func (svc *Service) contains(id int) bool {
	for i := range svc.items {
		if svc.items[i].ID == id {
			return true
		}
	}
	return false
}
