package dummy

import (
	"context"
	"time"

	"github.com/kodelab/panel/core/rules"
)

type rulesRepository struct {
	db *rulesTable
}

var _ rules.Repository = (*rulesRepository)(nil)

func NewRulesRepository(db *DB) rules.Repository {
	return &rulesRepository{db: db.rules}
}

// SeedRules sets the singleton document directly, for test setup.
func (db *DB) SeedRules(doc rules.Document) {
	db.rules.Lock()
	defer db.rules.Unlock()
	db.rules.doc = doc
}

func (repo *rulesRepository) GetRules(context.Context) (rules.Document, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.doc, nil
}

func (repo *rulesRepository) UpdateRules(_ context.Context, ud rules.UpdateDocument) (rules.Document, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	now := time.Now().UTC()
	if repo.db.doc.CreatedAt.IsZero() {
		repo.db.doc.CreatedAt = now
	}
	repo.db.doc.Data = ud.Data
	repo.db.doc.UpdatedAt = now
	return repo.db.doc, nil
}
