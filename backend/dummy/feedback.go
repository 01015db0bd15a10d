package dummy

import (
	"context"
	"sort"
	"time"

	"github.com/kodelab/panel/core/feedback"
)

type feedbackRepository struct {
	db *feedbackTable
}

var _ feedback.Repository = (*feedbackRepository)(nil)

func NewFeedbackRepository(db *DB) feedback.Repository {
	return &feedbackRepository{db: db.feedback}
}

// SeedFeedback inserts a survey directly, for test setup.
func (db *DB) SeedFeedback(fb feedback.Feedback) feedback.Feedback {
	db.feedback.Lock()
	defer db.feedback.Unlock()

	if fb.ID == 0 {
		db.feedback.pk++
		fb.ID = db.feedback.pk
	} else if fb.ID > db.feedback.pk {
		db.feedback.pk = fb.ID
	}
	db.feedback.table[fb.ID] = &fb
	return fb
}

// SeedResponse attaches a response to a survey, for test setup.
func (db *DB) SeedResponse(feedbackID int, resp feedback.Response) {
	db.feedback.Lock()
	defer db.feedback.Unlock()
	db.feedback.responses[feedbackID] = append(db.feedback.responses[feedbackID], resp)
}

func (repo *feedbackRepository) QueryAllFeedback(context.Context) ([]feedback.Feedback, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	items := make([]feedback.Feedback, 0, len(repo.db.table))
	for _, fb := range repo.db.table {
		items = append(items, *fb)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (repo *feedbackRepository) CreateFeedback(_ context.Context, nf feedback.NewFeedback) (feedback.Feedback, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	fb := feedback.Feedback{
		ID:        repo.db.pk,
		Title:     nf.Title,
		IsRating:  nf.IsRating,
		CreatedAt: time.Now().UTC(),
	}
	repo.db.table[fb.ID] = &fb
	return fb, nil
}

func (repo *feedbackRepository) QueryResponses(_ context.Context, feedbackID int) ([]feedback.Response, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return append([]feedback.Response{}, repo.db.responses[feedbackID]...), nil
}
