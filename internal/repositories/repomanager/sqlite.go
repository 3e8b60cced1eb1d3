// Package repomanager provides a concrete RepositoryManager for SQLite.
package repomanager

import (
	"github.com/dmitrijs2005/weightkeeper/internal/dbx"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/goals"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/sessions"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/weights"
)

type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Goals(db dbx.DBTX) goals.Repository {
	return goals.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Weights(db dbx.DBTX) weights.Repository {
	return weights.NewSQLiteRepository(db)
}
