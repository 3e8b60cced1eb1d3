package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/dbx"
	"github.com/dmitrijs2005/weightkeeper/internal/logging"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/repomanager"
)

// SessionStore tracks the single current account. The table never holds
// more than one row.
type SessionStore struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewSessionStore(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *SessionStore {
	return &SessionStore{db: db, repomanager: m, log: log.With("store", "sessions")}
}

func (s *SessionStore) SetCurrent(ctx context.Context, accountID int64) error {
	if accountID <= 0 {
		return common.NewValidationError("account id", "must be positive")
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Sessions(tx).Replace(ctx, accountID)
	})
	if err != nil {
		s.log.Error(ctx, "set session failed", "account_id", accountID, "error", err)
		return common.NewStorageError("set session", err)
	}

	s.log.Debug(ctx, "session set", "account_id", accountID)
	return nil
}

// GetCurrent returns the current account id. ok is false when nobody is
// signed in or the session's account was removed.
func (s *SessionStore) GetCurrent(ctx context.Context) (id int64, ok bool, err error) {
	id, ok, err = s.repomanager.Sessions(s.db).Current(ctx)
	if err != nil {
		return 0, false, common.NewStorageError("get session", err)
	}
	return id, ok, nil
}
