package dummy

import (
	"context"
	"sort"
	"time"

	"github.com/kodelab/panel/core/question"
)

type questionRepository struct {
	db *questionTable
}

var _ question.Repository = (*questionRepository)(nil)

func NewQuestionRepository(db *DB) question.Repository {
	return &questionRepository{db: db.question}
}

// SeedQuestion inserts a record directly, for test setup.
func (db *DB) SeedQuestion(q question.Question) question.Question {
	db.question.Lock()
	defer db.question.Unlock()

	if q.ID == 0 {
		db.question.pk++
		q.ID = db.question.pk
	} else if q.ID > db.question.pk {
		db.question.pk = q.ID
	}
	db.question.table[q.ID] = &q
	return q
}

func (repo *questionRepository) QueryAllQuestions(context.Context) ([]question.Question, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	items := make([]question.Question, 0, len(repo.db.table))
	for _, q := range repo.db.table {
		items = append(items, *q)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (repo *questionRepository) GetQuestionByID(_ context.Context, id int) (question.Question, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if q, ok := repo.db.table[id]; ok {
		return *q, nil
	}
	return question.Question{}, question.ErrNotFound
}

func (repo *questionRepository) CreateQuestion(_ context.Context, nq question.NewQuestion) (question.Question, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.pk++
	q := question.Question{
		ID:          repo.db.pk,
		Title:       nq.Title,
		Description: nq.Description,
		Question:    nq.Question,
		Key:         nq.Key,
		CreatedAt:   time.Now().UTC(),
	}
	repo.db.table[q.ID] = &q
	return q, nil
}

func (repo *questionRepository) UpdateQuestion(_ context.Context, id int, uq question.UpdateQuestion) (question.Question, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	q, ok := repo.db.table[id]
	if !ok {
		return question.Question{}, question.ErrNotFound
	}
	q.Title = uq.Title
	q.Description = uq.Description
	q.Question = uq.Question
	q.Key = uq.Key
	return *q, nil
}

func (repo *questionRepository) DeleteQuestion(_ context.Context, id int) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return question.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
