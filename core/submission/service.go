package submission

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/kodelab/panel/core"
	"github.com/kodelab/panel/core/session"
)

var ErrNotFound = errors.New("submission not found")

type (
	Repository interface {
		QueryAllSubmissions(ctx context.Context) ([]Submission, error)
		DeleteSubmission(ctx context.Context, id int) error
	}

	// Service owns the client-side submission collection. All list shaping
	// (status filter, search) runs over the already-fetched collection; no
	// filtering parameters are ever sent to the server.
	Service struct {
		sess *session.Session
		repo Repository

		mu    sync.RWMutex
		items []Submission
	}
)

func NewService(sess *session.Session, repo Repository) *Service {
	return &Service{sess: sess, repo: repo}
}

func (svc *Service) Refresh(ctx context.Context) error {
	if !svc.sess.Authenticated() {
		return core.ErrNotAuthenticated
	}
	items, err := svc.repo.QueryAllSubmissions(ctx)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	if err != nil {
		svc.items = nil
		return err
	}
	svc.items = items
	return nil
}

func (svc *Service) Items() []Submission {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return append([]Submission{}, svc.items...)
}

// Filter shapes the local collection by outcome and a case-insensitive
// search over the submitter's name, nim and the question title.
func (svc *Service) Filter(status StatusFilter, search string) []Submission {
	search = core.CleanString(search, true /* lower */)

	svc.mu.RLock()
	defer svc.mu.RUnlock()

	out := make([]Submission, 0, len(svc.items))
	for _, sub := range svc.items {
		switch status {
		case StatusSuccess:
			if !sub.IsSuccess {
				continue
			}
		case StatusFailed:
			if sub.IsSuccess {
				continue
			}
		}
		if search != "" && !matches(sub, search) {
			continue
		}
		out = append(out, sub)
	}
	return out
}

func matches(sub Submission, search string) bool {
	for _, s := range []string{sub.User.Name, sub.User.Nim, sub.Question.Title} {
		if strings.Contains(strings.ToLower(s), search) {
			return true
		}
	}
	return false
}

func (svc *Service) Counts() Counts {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	c := Counts{Total: len(svc.items)}
	for _, sub := range svc.items {
		if sub.IsSuccess {
			c.Success++
		} else {
			c.Failed++
		}
	}
	return c
}

// Delete removes the submission by identity; a repeated delete fails
// locally with ErrNotFound and never re-issues the call.
func (svc *Service) Delete(ctx context.Context, id int) error {
	if !svc.sess.Authenticated() {
		return core.ErrNotAuthenticated
	}

	svc.mu.RLock()
	known := false
	for i := range svc.items {
		if svc.items[i].ID == id {
			known = true
			break
		}
	}
	svc.mu.RUnlock()
	if !known {
		return ErrNotFound
	}

	if err := svc.repo.DeleteSubmission(ctx, id); err != nil {
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
