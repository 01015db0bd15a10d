package feedback

import (
	"context"
	"sync"

	"github.com/kodelab/panel/core"
	"github.com/kodelab/panel/core/session"
)

type (
	Repository interface {
		QueryAllFeedback(ctx context.Context) ([]Feedback, error)
		CreateFeedback(ctx context.Context, nf NewFeedback) (Feedback, error)
		QueryResponses(ctx context.Context, feedbackID int) ([]Response, error)
	}

	// Service owns the client-side survey collection. Responses are fetched
	// lazily when a detail view opens and are never cached here.
	Service struct {
		sess *session.Session
		repo Repository

		mu    sync.RWMutex
		items []Feedback
	}
)

func NewService(sess *session.Session, repo Repository) *Service {
	return &Service{sess: sess, repo: repo}
}

func (svc *Service) Refresh(ctx context.Context) error {
	if !svc.sess.Authenticated() {
		return core.ErrNotAuthenticated
	}
	items, err := svc.repo.QueryAllFeedback(ctx)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if err != nil {
		svc.items = nil
		return err
	}
	svc.items = items
	return nil
}

func (svc *Service) Items() []Feedback {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]Feedback{}, svc.items...)
}

// Create posts the new survey and prepends the server-returned record.
func (svc *Service) Create(ctx context.Context, nf NewFeedback) (Feedback, error) {
	if !svc.sess.Authenticated() {
		return Feedback{}, core.ErrNotAuthenticated
	}
	fb, err := svc.repo.CreateFeedback(ctx, nf)
	if err != nil {
		return Feedback{}, err
	}

	svc.mu.Lock()
	svc.items = append([]Feedback{fb}, svc.items...)
	svc.mu.Unlock()
	return fb, nil
}

// Responses fetches a survey's responses, independent of the parent
// collection.
func (svc *Service) Responses(ctx context.Context, feedbackID int) ([]Response, error) {
	if !svc.sess.Authenticated() {
		return nil, core.ErrNotAuthenticated
	}
	return svc.repo.QueryResponses(ctx, feedbackID)
}
