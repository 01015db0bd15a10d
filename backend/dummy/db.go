// Package dummy is an in-memory stand-in for the remote grading API, used
// by tests that exercise the panel and CLI without a network.
package dummy

import (
	"sync"

	"github.com/kodelab/panel/core/feedback"
	"github.com/kodelab/panel/core/question"
	"github.com/kodelab/panel/core/rules"
	"github.com/kodelab/panel/core/session"
	"github.com/kodelab/panel/core/submission"
)

type (
	DB struct {
		auth       *authTable
		question   *questionTable
		submission *submissionTable
		rules      *rulesTable
		feedback   *feedbackTable
	}

	authTable struct {
		sync.RWMutex
		accounts map[string]account // keyed by nim
	}

	account struct {
		acct session.Account
		pin  string
	}

	questionTable struct {
		sync.RWMutex
		table map[int]*question.Question
		pk    int
	}

	submissionTable struct {
		sync.RWMutex
		table map[int]*submission.Submission
		pk    int
	}

	rulesTable struct {
		sync.RWMutex
		doc rules.Document
	}

	feedbackTable struct {
		sync.RWMutex
		table     map[int]*feedback.Feedback
		responses map[int][]feedback.Response // keyed by feedback id
		pk        int
	}
)

func Open() (*DB, error) {
	db := &DB{
		auth:       &authTable{accounts: make(map[string]account)},
		question:   &questionTable{table: make(map[int]*question.Question)},
		submission: &submissionTable{table: make(map[int]*submission.Submission)},
		rules:      &rulesTable{},
		feedback: &feedbackTable{
			table:     make(map[int]*feedback.Feedback),
			responses: make(map[int][]feedback.Response),
		},
	}
	return db, nil
}
