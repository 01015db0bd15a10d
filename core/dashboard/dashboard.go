// Package dashboard holds the management area's top-level state machine.
// Two events exist: a tab is selected, or the session token changes.
// Either one triggers exactly one fetch, for the tab that ends up active.
package dashboard

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type Tab string

const (
	TabQuestions   Tab = "questions"
	TabSubmissions Tab = "submissions"
	TabRules       Tab = "rules"
	TabFeedback    Tab = "feedback"
)

func (t Tab) Valid() bool {
	switch t {
	case TabQuestions, TabSubmissions, TabRules, TabFeedback:
		return true
	}
	return false
}

var ErrUnknownTab = errors.New("unknown tab")

// Fetcher is the slice of a feature module the controller drives.
type Fetcher interface {
	Refresh(ctx context.Context) error
}

// Controller maps (event, active tab) to a fetch. The active tab is not
// persisted anywhere; a new Controller always starts at questions.
type Controller struct {
	mu       sync.Mutex
	active   Tab
	fetchers map[Tab]Fetcher
}

func NewController(questions, submissions, rules, feedback Fetcher) *Controller {
	return &Controller{
		active: TabQuestions,
		fetchers: map[Tab]Fetcher{
			TabQuestions:   questions,
			TabSubmissions: submissions,
			TabRules:       rules,
			TabFeedback:    feedback,
		},
	}
}

func (c *Controller) Active() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Select activates a tab and fetches that tab's collection, and nothing
// else. Re-selecting the active tab still re-fetches.
//
// The fetch runs outside the lock: a fetch can invalidate the session
// (the API rejecting the token logs us out), and the change listener
// re-enters the controller on the same goroutine.
func (c *Controller) Select(ctx context.Context, tab Tab) error {
	if !tab.Valid() {
		return errors.Wrapf(ErrUnknownTab, "%q", tab)
	}

	c.mu.Lock()
	c.active = tab
	fetch := c.fetchers[tab]
	c.mu.Unlock()

	return fetch.Refresh(ctx)
}

// TokenChanged re-fetches the currently active tab's collection; wire it to
// session change notifications. Like Select, the fetch itself runs
// unlocked.
func (c *Controller) TokenChanged(ctx context.Context) error {
	c.mu.Lock()
	fetch := c.fetchers[c.active]
	c.mu.Unlock()

	return fetch.Refresh(ctx)
}
