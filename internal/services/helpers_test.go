package services

import (
	"database/sql"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/weightkeeper/internal/cryptox"
	"github.com/dmitrijs2005/weightkeeper/internal/logging"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/repomanager"
	"github.com/dmitrijs2005/weightkeeper/internal/storage/storagetest"
)

type stores struct {
	db       *sql.DB
	accounts *AccountStore
	sessions *SessionStore
	tracking *TrackingStore
}

func newStores(t *testing.T) *stores {
	t.Helper()
	db := storagetest.NewDB(t)
	return storesOn(db)
}

func storesOn(db *sql.DB) *stores {
	m := repomanager.NewSQLiteRepositoryManager()
	log := logging.Discard()
	return &stores{
		db:       db,
		accounts: NewAccountStore(db, m, cryptox.NewBcryptHasher(bcrypt.MinCost), log),
		sessions: NewSessionStore(db, m, log),
		tracking: NewTrackingStore(db, m, log),
	}
}

// failingHasher fails every Hash call with err.
type failingHasher struct{ err error }

func (f failingHasher) Hash(string) (string, error) { return "", f.err }
func (f failingHasher) Verify(string, string) bool  { return false }
