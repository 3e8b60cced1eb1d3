// Package weights stores weight entries in the user_data table.
package weights

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/dbx"
	"github.com/dmitrijs2005/weightkeeper/internal/models"
)

const selectColumns = `SELECT id, user_id, date, weight, goal_value FROM user_data`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, entry *models.WeightEntry) (*models.WeightEntry, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO user_data (user_id, date, weight, goal_value) VALUES (?, ?, ?, ?)`,
		entry.UserID, string(entry.Date), entry.Weight, entry.GoalValue)
	if err != nil {
		return nil, fmt.Errorf("failed to insert weight entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read weight entry id: %w", err)
	}
	entry.ID = id
	return entry, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (models.WeightEntry, error) {
	var e models.WeightEntry
	var date string
	var goal sql.NullInt64
	if err := s.Scan(&e.ID, &e.UserID, &date, &e.Weight, &goal); err != nil {
		return e, err
	}
	e.Date = models.Day(date)
	e.GoalValue = int(goal.Int64)
	return e, nil
}

func (r *SQLiteRepository) List(ctx context.Context, accountID int64) ([]models.WeightEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` WHERE user_id = ? ORDER BY id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weight entries: %w", err)
	}
	defer rows.Close()

	out := make([]models.WeightEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan weight entry row: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate weight entry rows: %w", err)
	}
	return out, nil
}

func (r *SQLiteRepository) Latest(ctx context.Context, accountID int64) (*models.WeightEntry, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE user_id = ? ORDER BY date DESC, id DESC LIMIT 1`, accountID)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest weight entry: %w", err)
	}
	return &e, nil
}

// DeleteMatching removes every entry of the account equal to the given
// weight, goal snapshot and day, returning how many were removed.
func (r *SQLiteRepository) DeleteMatching(ctx context.Context, accountID int64, weight, goalValue int, day models.Day) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_data WHERE user_id = ? AND weight = ? AND goal_value = ? AND date = ?`,
		accountID, weight, goalValue, string(day))
	if err != nil {
		return 0, fmt.Errorf("failed to delete weight entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete weight entries: %w", err)
	}
	return n, nil
}
