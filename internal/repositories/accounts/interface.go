package accounts

import (
	"context"

	"github.com/dmitrijs2005/weightkeeper/internal/models"
)

type Repository interface {
	Create(ctx context.Context, account *models.Account) (*models.Account, error)
	Exists(ctx context.Context, username string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error)
}
