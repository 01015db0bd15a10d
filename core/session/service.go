package session

import (
	"context"

	"github.com/pkg/errors"

	"github.com/kodelab/panel/core"
)

type (
	// Repository is the auth slice of the remote API.
	Repository interface {
		Login(ctx context.Context, creds Credentials) (token string, err error)
		Register(ctx context.Context, reg Registration) (token string, err error)
		Logout(ctx context.Context) error
		CurrentUser(ctx context.Context) (Account, error)
	}

	// Service drives the auth flow: it exchanges credentials for a token
	// and keeps the Session in sync. Inputs are validated by the caller.
	Service struct {
		sess *Session
		repo Repository
	}
)

func NewService(sess *Session, repo Repository) *Service {
	return &Service{sess: sess, repo: repo}
}

func (svc *Service) Session() *Session {
	return svc.sess
}

func (svc *Service) Login(ctx context.Context, creds Credentials) error {
	token, err := svc.repo.Login(ctx, creds)
	if err != nil {
		return err
	}
	return errors.Wrap(svc.sess.SetToken(token), "storing token")
}

func (svc *Service) Register(ctx context.Context, reg Registration) error {
	token, err := svc.repo.Register(ctx, reg)
	if err != nil {
		return err
	}
	return errors.Wrap(svc.sess.SetToken(token), "storing token")
}

// Logout tells the API goodbye on a best-effort basis; the local token is
// dropped regardless of what the server had to say about it.
func (svc *Service) Logout(ctx context.Context) error {
	if svc.sess.Authenticated() {
		_ = svc.repo.Logout(ctx)
	}
	return svc.sess.Clear()
}

func (svc *Service) Current(ctx context.Context) (Account, error) {
	if !svc.sess.Authenticated() {
		return Account{}, core.ErrNotAuthenticated
	}
	return svc.repo.CurrentUser(ctx)
}
