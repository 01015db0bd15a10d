package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kodelab/panel/core/question"
)

type QuestionRepository struct {
	c *Client
}

var _ question.Repository = (*QuestionRepository)(nil)

func NewQuestionRepository(c *Client) *QuestionRepository {
	return &QuestionRepository{c: c}
}

type questionEnvelope struct {
	Question question.Question `json:"question"`
}

// QueryAllQuestions tolerates both the enveloped `{"questions": [...]}`
// shape and a bare array, as the backend has shipped both.
func (repo *QuestionRepository) QueryAllQuestions(ctx context.Context) ([]question.Question, error) {
	var raw json.RawMessage
	if err := repo.c.get(ctx, "/question", true, &raw); err != nil {
		return nil, err
	}

	var env struct {
		Questions []question.Question `json:"questions"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && env.Questions != nil {
		return env.Questions, nil
	}
	var items []question.Question
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *QuestionRepository) GetQuestionByID(ctx context.Context, id int) (question.Question, error) {
	var res questionEnvelope
	err := repo.c.get(ctx, fmt.Sprintf("/question/%d", id), true, &res)
	return res.Question, err
}

func (repo *QuestionRepository) CreateQuestion(ctx context.Context, nq question.NewQuestion) (question.Question, error) {
	var res questionEnvelope
	err := repo.c.postForm(ctx, "/question", map[string]string{
		"title":       nq.Title,
		"description": nq.Description,
		"question":    nq.Question,
		"key":         nq.Key,
	}, "", true, &res)
	return res.Question, err
}

func (repo *QuestionRepository) UpdateQuestion(ctx context.Context, id int, uq question.UpdateQuestion) (question.Question, error) {
	var res questionEnvelope
	err := repo.c.postForm(ctx, fmt.Sprintf("/question/%d", id), map[string]string{
		"title":       uq.Title,
		"description": uq.Description,
		"question":    uq.Question,
		"key":         uq.Key,
	}, http.MethodPut, true, &res)
	return res.Question, err
}

func (repo *QuestionRepository) DeleteQuestion(ctx context.Context, id int) error {
	return repo.c.postForm(ctx, fmt.Sprintf("/question/%d", id), nil, http.MethodDelete, true, nil)
}
