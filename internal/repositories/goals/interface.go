package goals

import (
	"context"

	"github.com/dmitrijs2005/weightkeeper/internal/models"
)

type Repository interface {
	Insert(ctx context.Context, accountID int64, value int) (int64, error)
	// Latest returns the most recently inserted goal, common.ErrNotFound when
	// the account has none.
	Latest(ctx context.Context, accountID int64) (*models.Goal, error)
	SetLatestTargetDate(ctx context.Context, accountID int64, day models.Day) (int64, error)
	History(ctx context.Context, accountID int64) ([]models.Goal, error)
}
