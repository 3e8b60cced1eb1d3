// Package accounts stores user accounts in the users table.
package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/dbx"
	"github.com/dmitrijs2005/weightkeeper/internal/models"
	"github.com/dmitrijs2005/weightkeeper/internal/storage"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts account and sets its ID. A duplicate username yields
// common.ErrUsernameTaken.
func (r *SQLiteRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password, phone, role) VALUES (?, ?, ?, ?)`,
		account.Username, account.PasswordHash, account.Phone, string(account.Role))
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read account id: %w", err)
	}
	account.ID = id
	return account, nil
}

func (r *SQLiteRepository) Exists(ctx context.Context, username string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE username = ?`, username).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return true, nil
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.get(ctx, `SELECT id, username, password, phone, role FROM users WHERE username = ?`, username)
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return r.get(ctx, `SELECT id, username, password, phone, role FROM users WHERE id = ?`, id)
}

func (r *SQLiteRepository) get(ctx context.Context, query string, arg any) (*models.Account, error) {
	a := &models.Account{}
	var role string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Phone, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	a.Role = models.Role(role)
	return a, nil
}

// UpdatePassword overwrites the stored hash and returns the number of rows
// changed.
func (r *SQLiteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password = ? WHERE id = ?`, passwordHash, id)
	if err != nil {
		return 0, fmt.Errorf("failed to update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to update password: %w", err)
	}
	return n, nil
}
