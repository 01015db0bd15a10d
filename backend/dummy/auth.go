package dummy

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/kodelab/panel/core/session"
)

var (
	ErrBadCredentials = errors.New("nim or pin is incorrect")
	ErrNimExists      = errors.New("an account with this nim already exists")
)

type authRepository struct {
	db *authTable
}

var _ session.Repository = (*authRepository)(nil)

func NewAuthRepository(db *DB) session.Repository {
	return &authRepository{db: db.auth}
}

// SeedAccount registers an account directly, for test setup.
func (db *DB) SeedAccount(acct session.Account, pin string) {
	db.auth.Lock()
	defer db.auth.Unlock()
	db.auth.accounts[acct.Nim] = account{acct: acct, pin: pin}
}

func (repo *authRepository) Login(_ context.Context, creds session.Credentials) (string, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	acct, ok := repo.db.accounts[creds.Nim]
	if !ok || acct.pin != creds.Pin {
		return "", ErrBadCredentials
	}
	return uuid.New().String(), nil
}

func (repo *authRepository) Register(_ context.Context, reg session.Registration) (string, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.accounts[reg.Nim]; ok {
		return "", ErrNimExists
	}
	repo.db.accounts[reg.Nim] = account{
		acct: session.Account{
			ID:       len(repo.db.accounts) + 1,
			Name:     reg.Name,
			Nim:      reg.Nim,
			Kelompok: reg.Kelompok,
			Role:     reg.Role,
		},
		pin: reg.Pin,
	}
	return uuid.New().String(), nil
}

func (repo *authRepository) Logout(context.Context) error {
	return nil
}

func (repo *authRepository) CurrentUser(context.Context) (session.Account, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	// the dummy backend has no per-token identity; return any account
	for _, acct := range repo.db.accounts {
		return acct.acct, nil
	}
	return session.Account{}, errors.New("no account seeded")
}
