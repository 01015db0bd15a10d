package rules

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Document is the singleton rules/SOP page. It is replaced wholesale on
// update and never created or deleted from the panel.
type Document struct {
	Data      string    `json:"data"` // sanitized HTML
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpdateDocument is a full replacement of the rules content.
type UpdateDocument struct {
	Data string `json:"data" validate:"required,htmltext"`
}

func (ud *UpdateDocument) Validate(validate *validator.Validate) error {
	return validate.Struct(ud)
}
