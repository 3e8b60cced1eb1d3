package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/cryptox"
	"github.com/dmitrijs2005/weightkeeper/internal/dbx"
	"github.com/dmitrijs2005/weightkeeper/internal/logging"
	"github.com/dmitrijs2005/weightkeeper/internal/models"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/repomanager"
)

// AccountStore registers accounts and checks their credentials.
type AccountStore struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      cryptox.Hasher
	log         logging.Logger
}

func NewAccountStore(db *sql.DB, m repomanager.RepositoryManager, hasher cryptox.Hasher, log logging.Logger) *AccountStore {
	return &AccountStore{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		log:         log.With("store", "accounts"),
	}
}

// Register creates an account with the role derived from roleCode and makes
// it the current session, all in one transaction. It returns the new id.
func (s *AccountStore) Register(ctx context.Context, username, password, phone, roleCode string) (int64, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return 0, err
		}
		s.log.Error(ctx, "password hashing failed", "error", err)
		return 0, common.NewStorageError("register", err)
	}

	account := &models.Account{
		Username:     username,
		PasswordHash: hash,
		Phone:        phone,
		Role:         models.RoleFromCode(roleCode),
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		taken, err := repo.Exists(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return common.ErrUsernameTaken
		}

		if _, err := repo.Create(ctx, account); err != nil {
			return err
		}
		return s.repomanager.Sessions(tx).Replace(ctx, account.ID)
	})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) {
			s.log.Info(ctx, "username already taken", "username", username)
			return 0, common.ErrUsernameTaken
		}
		s.log.Error(ctx, "registration failed", "username", username, "error", err)
		return 0, common.NewStorageError("register", err)
	}

	s.log.Info(ctx, "account registered", "account_id", account.ID, "username", username, "role", account.Role)
	return account.ID, nil
}

// Login checks the credentials and, on success, makes the account the
// current session. Unknown usernames and wrong passwords are reported the
// same way.
func (s *AccountStore) Login(ctx context.Context, username, password string) (int64, error) {
	account, err := s.repomanager.Accounts(s.db).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Info(ctx, "login rejected", "username", username)
			return 0, common.ErrInvalidCredentials
		}
		s.log.Error(ctx, "login lookup failed", "username", username, "error", err)
		return 0, common.NewStorageError("login", err)
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		s.log.Info(ctx, "login rejected", "username", username)
		return 0, common.ErrInvalidCredentials
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Sessions(tx).Replace(ctx, account.ID)
	})
	if err != nil {
		s.log.Error(ctx, "session switch failed", "account_id", account.ID, "error", err)
		return 0, common.NewStorageError("login", err)
	}

	s.log.Info(ctx, "logged in", "account_id", account.ID)
	return account.ID, nil
}

// UpdatePassword replaces the stored hash. It reports false when no account
// has the given id.
func (s *AccountStore) UpdatePassword(ctx context.Context, accountID int64, newPassword string) (bool, error) {
	if accountID <= 0 {
		return false, common.NewValidationError("account id", "must be positive")
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			return false, err
		}
		return false, common.NewStorageError("update password", err)
	}

	n, err := s.repomanager.Accounts(s.db).UpdatePassword(ctx, accountID, hash)
	if err != nil {
		s.log.Error(ctx, "password update failed", "account_id", accountID, "error", err)
		return false, common.NewStorageError("update password", err)
	}
	if n == 0 {
		s.log.Warn(ctx, "password update for unknown account", "account_id", accountID)
		return false, nil
	}

	s.log.Info(ctx, "password updated", "account_id", accountID)
	return true, nil
}

// Lookup returns the account with the given id or common.ErrNotFound.
func (s *AccountStore) Lookup(ctx context.Context, accountID int64) (*models.Account, error) {
	a, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewStorageError("lookup", err)
	}
	return a, nil
}
