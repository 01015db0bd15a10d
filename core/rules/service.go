package rules

import (
	"context"
	"sync"

	"github.com/kodelab/panel/core"
	"github.com/kodelab/panel/core/session"
)

type (
	Repository interface {
		GetRules(ctx context.Context) (Document, error)
		UpdateRules(ctx context.Context, ud UpdateDocument) (Document, error)
	}

	// Service holds the client-side copy of the singleton document.
	Service struct {
		sess *session.Session
		repo Repository

		mu     sync.RWMutex
		doc    Document
		loaded bool
	}
)

func NewService(sess *session.Session, repo Repository) *Service {
	return &Service{sess: sess, repo: repo}
}

func (svc *Service) Refresh(ctx context.Context) error {
	if !svc.sess.Authenticated() {
		return core.ErrNotAuthenticated
	}
	doc, err := svc.repo.GetRules(ctx)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if err != nil {
		svc.doc, svc.loaded = Document{}, false
		return err
	}
	svc.doc, svc.loaded = doc, true
	return nil
}

// Document returns the held copy and whether one has been fetched.
func (svc *Service) Document() (Document, bool) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.doc, svc.loaded
}

// Update replaces the document server-side; the held copy only changes on
// success, so a failed update leaves the displayed content untouched.
func (svc *Service) Update(ctx context.Context, ud UpdateDocument) (Document, error) {
	if !svc.sess.Authenticated() {
		return Document{}, core.ErrNotAuthenticated
	}
	doc, err := svc.repo.UpdateRules(ctx, ud)
	if err != nil {
		return Document{}, err
	}

	svc.mu.Lock()
	svc.doc, svc.loaded = doc, true
	svc.mu.Unlock()
	return doc, nil
}
