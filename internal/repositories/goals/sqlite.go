// Package goals stores goal rows. An account may have any number of them;
// the one with the highest id is the current goal.
package goals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/dbx"
	"github.com/dmitrijs2005/weightkeeper/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, accountID int64, value int) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO goal (user_id, goal_value) VALUES (?, ?)`, accountID, value)
	if err != nil {
		return 0, fmt.Errorf("failed to insert goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read goal id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) Latest(ctx context.Context, accountID int64) (*models.Goal, error) {
	g := &models.Goal{}
	var target sql.NullString
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, goal_value, target_date FROM goal
		WHERE user_id = ?
		ORDER BY id DESC LIMIT 1`, accountID).Scan(&g.ID, &g.UserID, &g.Value, &target)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	g.TargetDate = models.Day(target.String)
	return g, nil
}

// SetLatestTargetDate sets target_date on the current goal only and returns
// the number of rows changed, 0 when the account has no goal.
func (r *SQLiteRepository) SetLatestTargetDate(ctx context.Context, accountID int64, day models.Day) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE goal SET target_date = ?
		WHERE id = (SELECT id FROM goal WHERE user_id = ? ORDER BY id DESC LIMIT 1)`,
		string(day), accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to set target date: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to set target date: %w", err)
	}
	return n, nil
}

// History returns every goal of the account, oldest first.
func (r *SQLiteRepository) History(ctx context.Context, accountID int64) ([]models.Goal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, goal_value, target_date FROM goal
		WHERE user_id = ?
		ORDER BY id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	defer rows.Close()

	var out []models.Goal
	for rows.Next() {
		var g models.Goal
		var target sql.NullString
		if err := rows.Scan(&g.ID, &g.UserID, &g.Value, &target); err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		g.TargetDate = models.Day(target.String)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goal rows: %w", err)
	}
	return out, nil
}
