package rest

import (
	"context"

	"github.com/kodelab/panel/core/session"
)

type AuthRepository struct {
	c *Client
}

var _ session.Repository = (*AuthRepository)(nil)

func NewAuthRepository(c *Client) *AuthRepository {
	return &AuthRepository{c: c}
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (repo *AuthRepository) Login(ctx context.Context, creds session.Credentials) (string, error) {
	var res tokenResponse
	err := repo.c.postForm(ctx, "/login", map[string]string{
		"nim": creds.Nim,
		"pin": creds.Pin,
	}, "", false, &res)
	return res.Token, err
}

func (repo *AuthRepository) Register(ctx context.Context, reg session.Registration) (string, error) {
	var res tokenResponse
	err := repo.c.postForm(ctx, "/register", map[string]string{
		"name":     reg.Name,
		"kelompok": reg.Kelompok,
		"nim":      reg.Nim,
		"role":     reg.Role,
		"pin":      reg.Pin,
	}, "", false, &res)
	return res.Token, err
}

func (repo *AuthRepository) Logout(ctx context.Context) error {
	return repo.c.request(ctx, "POST", "/logout", nil, "", true, nil)
}

func (repo *AuthRepository) CurrentUser(ctx context.Context) (session.Account, error) {
	var res struct {
		User session.Account `json:"user"`
	}
	err := repo.c.get(ctx, "/user", true, &res)
	return res.User, err
}
