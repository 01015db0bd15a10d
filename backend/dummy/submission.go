package dummy

import (
	"context"
	"sort"

	"github.com/kodelab/panel/core/submission"
)

type submissionRepository struct {
	db *submissionTable
}

var _ submission.Repository = (*submissionRepository)(nil)

func NewSubmissionRepository(db *DB) submission.Repository {
	return &submissionRepository{db: db.submission}
}

// SeedSubmission inserts a record directly, for test setup.
func (db *DB) SeedSubmission(sub submission.Submission) submission.Submission {
	db.submission.Lock()
	defer db.submission.Unlock()

	if sub.ID == 0 {
		db.submission.pk++
		sub.ID = db.submission.pk
	} else if sub.ID > db.submission.pk {
		db.submission.pk = sub.ID
	}
	db.submission.table[sub.ID] = &sub
	return sub
}

func (repo *submissionRepository) QueryAllSubmissions(context.Context) ([]submission.Submission, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	items := make([]submission.Submission, 0, len(repo.db.table))
	for _, sub := range repo.db.table {
		items = append(items, *sub)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (repo *submissionRepository) DeleteSubmission(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return submission.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
