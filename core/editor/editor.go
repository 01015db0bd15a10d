// Package editor models the external rich-text widget as a scoped resource.
// The widget owns DOM-like state outside our control: at most one instance
// may be live at a time, and it must be released before a new one is
// acquired against a different record identity, or stale listeners and
// duplicated toolbar state leak.
package editor

import (
	"html"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// ErrBusy is returned by Acquire while a previously acquired editor
// has not been released yet.
var ErrBusy = errors.New("an editor is still mounted; release it first")

// Manager hands out at most one live Editor at a time.
type Manager struct {
	mu   sync.Mutex
	live *Editor
}

func NewManager() *Manager {
	return &Manager{}
}

// Acquire mounts a new editor seeded with initialHTML for the given record.
func (m *Manager) Acquire(recordID int, initialHTML string) (*Editor, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live != nil {
		return nil, ErrBusy
	}
	ed := &Editor{m: m, recordID: recordID, html: initialHTML}
	m.live = ed
	return ed, nil
}

// Live reports whether an editor is currently mounted, and for which record.
func (m *Manager) Live() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live == nil {
		return 0, false
	}
	return m.live.recordID, true
}

// ReleaseLive tears down the currently mounted editor, if any.
func (m *Manager) ReleaseLive() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.live != nil {
		m.live.released = true
		m.live = nil
	}
}

// Editor is a mounted instance. It is exclusively owned by the module that
// acquired it and is not safe for concurrent use.
type Editor struct {
	m        *Manager
	recordID int
	html     string
	released bool
}

func (e *Editor) RecordID() int { return e.recordID }

// SetHTML replaces the editor content; the widget emits sanitized HTML
// on every change, so the stored value is taken as-is.
func (e *Editor) SetHTML(html string) { e.html = html }

func (e *Editor) HTML() string { return e.html }

// Text returns the rendered text of the current content, tags stripped.
// This is what content validation runs against.
func (e *Editor) Text() string { return StripTags(e.html) }

// Release tears the editor down. It is safe to call more than once.
func (e *Editor) Release() {
	e.m.mu.Lock()
	defer e.m.mu.Unlock()

	if e.released {
		return
	}
	e.released = true
	if e.m.live == e {
		e.m.live = nil
	}
}

// StripTags drops markup from an HTML fragment and returns the trimmed,
// unescaped text content. Good enough for blank-content checks; it is not
// a sanitizer (the widget already emits sanitized HTML).
func StripTags(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var inTag bool
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(html.UnescapeString(b.String()))
}
