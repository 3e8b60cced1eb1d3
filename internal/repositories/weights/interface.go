package weights

import (
	"context"

	"github.com/dmitrijs2005/weightkeeper/internal/models"
)

type Repository interface {
	Insert(ctx context.Context, entry *models.WeightEntry) (*models.WeightEntry, error)
	// List returns the account's entries in insertion order.
	List(ctx context.Context, accountID int64) ([]models.WeightEntry, error)
	// Latest returns the entry with the newest date, ties broken by id.
	Latest(ctx context.Context, accountID int64) (*models.WeightEntry, error)
	DeleteMatching(ctx context.Context, accountID int64, weight, goalValue int, day models.Day) (int64, error)
}
