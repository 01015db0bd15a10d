package session

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kodelab/panel/core"
)

// Credentials is the login form.
type Credentials struct {
	Nim string `json:"nim" validate:"required"`
	Pin string `json:"pin" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate) error {
	c.Nim = core.CleanString(c.Nim)
	return validate.Struct(c)
}

// Registration is the account creation form.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Kelompok string `json:"kelompok" validate:"required"`
	Nim      string `json:"nim" validate:"required"`
	Role     string `json:"role" validate:"required"`
	Pin      string `json:"pin" validate:"required"`
}

func (r *Registration) Validate(validate *validator.Validate) error {
	r.Name = core.CleanString(r.Name)
	r.Kelompok = core.CleanString(r.Kelompok)
	r.Nim = core.CleanString(r.Nim)
	r.Role = core.CleanString(r.Role, true /* lower */)
	return validate.Struct(r)
}

// Account is the authenticated user as reported by GET /user.
type Account struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Nim       string    `json:"nim"`
	Kelompok  string    `json:"kelompok"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
