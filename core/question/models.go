package question

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kodelab/panel/core"
)

// Question is a bank entry: rich-text content plus a numeric answer key.
// The id is always server-assigned.
type Question struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Question    string    `json:"question"` // sanitized HTML
	Key         string    `json:"key"`      // exactly 10 numeric digits
	CreatedAt   time.Time `json:"created_at"`
}

// NewQuestion contains information needed to create a new Question.
type NewQuestion struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Question    string `json:"question" validate:"required,htmltext"`
	Key         string `json:"key" validate:"required,answerkey"`
}

func (nq *NewQuestion) Validate(validate *validator.Validate) error {
	nq.Title = core.CleanString(nq.Title)
	nq.Description = core.CleanString(nq.Description)
	nq.Key = core.CleanString(nq.Key)
	return validate.Struct(nq)
}

// UpdateQuestion carries a full replacement; the edit form is pre-filled so
// the same rules as creation apply.
type UpdateQuestion struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Question    string `json:"question" validate:"required,htmltext"`
	Key         string `json:"key" validate:"required,answerkey"`
}

func (uq *UpdateQuestion) Validate(validate *validator.Validate) error {
	uq.Title = core.CleanString(uq.Title)
	uq.Description = core.CleanString(uq.Description)
	uq.Key = core.CleanString(uq.Key)
	return validate.Struct(uq)
}
