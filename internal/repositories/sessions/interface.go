package sessions

import "context"

type Repository interface {
	// Replace removes every session row and inserts one for accountID.
	// Callers run it inside a transaction.
	Replace(ctx context.Context, accountID int64) error
	// Current returns the account of the session row, false when there is
	// no row or its reference was nulled.
	Current(ctx context.Context) (int64, bool, error)
	Count(ctx context.Context) (int, error)
}
