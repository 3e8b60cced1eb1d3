package repomanager

import (
	"github.com/dmitrijs2005/weightkeeper/internal/dbx"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/accounts"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/goals"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/sessions"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/weights"
)

// RepositoryManager vends repositories bound to a DBTX, so a service can
// use the same repositories on the pool or inside a transaction.
type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Goals(db dbx.DBTX) goals.Repository
	Weights(db dbx.DBTX) weights.Repository
}
