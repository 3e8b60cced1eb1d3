package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/dbx"
	"github.com/dmitrijs2005/weightkeeper/internal/logging"
	"github.com/dmitrijs2005/weightkeeper/internal/models"
	"github.com/dmitrijs2005/weightkeeper/internal/repositories/repomanager"
)

// TrackingStore manages goals and weight entries for an account.
type TrackingStore struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	now         func() time.Time
}

func NewTrackingStore(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) *TrackingStore {
	return &TrackingStore{
		db:          db,
		repomanager: m,
		log:         log.With("store", "tracking"),
		now:         time.Now,
	}
}

// SetClock replaces the clock used to date new weight entries.
func (s *TrackingStore) SetClock(now func() time.Time) {
	s.now = now
}

func validateAccount(id int64) error {
	if id <= 0 {
		return common.NewValidationError("account id", "must be positive")
	}
	return nil
}

// SetGoal records a new goal; it becomes the current goal.
func (s *TrackingStore) SetGoal(ctx context.Context, accountID int64, value int) error {
	if err := validateAccount(accountID); err != nil {
		return err
	}
	if value <= 0 {
		return common.NewValidationError("goal", "must be positive")
	}

	id, err := s.repomanager.Goals(s.db).Insert(ctx, accountID, value)
	if err != nil {
		s.log.Error(ctx, "set goal failed", "account_id", accountID, "error", err)
		return common.NewStorageError("set goal", err)
	}

	s.log.Info(ctx, "goal set", "account_id", accountID, "goal_id", id, "goal", value)
	return nil
}

// CurrentGoal returns the value of the newest goal, ok false if there is none.
func (s *TrackingStore) CurrentGoal(ctx context.Context, accountID int64) (int, bool, error) {
	g, err := s.repomanager.Goals(s.db).Latest(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, common.NewStorageError("current goal", err)
	}
	return g.Value, true, nil
}

// GoalHistory returns every goal of the account, oldest first.
func (s *TrackingStore) GoalHistory(ctx context.Context, accountID int64) ([]models.Goal, error) {
	gs, err := s.repomanager.Goals(s.db).History(ctx, accountID)
	if err != nil {
		return nil, common.NewStorageError("goal history", err)
	}
	return gs, nil
}

// SetTargetDate sets the target date of the current goal. It reports false
// when the account has no goal.
func (s *TrackingStore) SetTargetDate(ctx context.Context, accountID int64, day models.Day) (bool, error) {
	if err := validateAccount(accountID); err != nil {
		return false, err
	}
	if _, err := models.ParseDay(string(day)); err != nil {
		return false, err
	}

	n, err := s.repomanager.Goals(s.db).SetLatestTargetDate(ctx, accountID, day)
	if err != nil {
		s.log.Error(ctx, "set target date failed", "account_id", accountID, "error", err)
		return false, common.NewStorageError("set target date", err)
	}
	if n == 0 {
		return false, nil
	}

	s.log.Info(ctx, "target date set", "account_id", accountID, "target_date", day)
	return true, nil
}

// TargetDate returns the target date of the current goal, ok false when
// there is no goal or no date was set.
func (s *TrackingStore) TargetDate(ctx context.Context, accountID int64) (models.Day, bool, error) {
	g, err := s.repomanager.Goals(s.db).Latest(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", false, nil
		}
		return "", false, common.NewStorageError("target date", err)
	}
	if g.TargetDate == "" {
		return "", false, nil
	}
	return g.TargetDate, true, nil
}

// AddWeightEntry records weight for today, stamped with the current goal.
// Without a goal nothing is stored and added is false.
func (s *TrackingStore) AddWeightEntry(ctx context.Context, accountID int64, weight int) (added bool, err error) {
	if err := validateAccount(accountID); err != nil {
		return false, err
	}
	if weight <= 0 {
		return false, common.NewValidationError("weight", "must be positive")
	}

	var entry *models.WeightEntry
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		goal, err := s.repomanager.Goals(tx).Latest(ctx, accountID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil
			}
			return err
		}

		entry, err = s.repomanager.Weights(tx).Insert(ctx, &models.WeightEntry{
			UserID:    accountID,
			Date:      models.DayOf(s.now()),
			Weight:    weight,
			GoalValue: goal.Value,
		})
		return err
	})
	if err != nil {
		s.log.Error(ctx, "add weight entry failed", "account_id", accountID, "error", err)
		return false, common.NewStorageError("add weight entry", err)
	}
	if entry == nil {
		s.log.Info(ctx, "weight entry refused without goal", "account_id", accountID)
		return false, nil
	}

	s.log.Info(ctx, "weight entry added", "account_id", accountID, "entry_id", entry.ID, "weight", weight, "goal", entry.GoalValue)
	return true, nil
}

// ListEntries returns the account's entries in insertion order. Use
// models.SortByDate for chronological order.
func (s *TrackingStore) ListEntries(ctx context.Context, accountID int64) ([]models.WeightEntry, error) {
	entries, err := s.repomanager.Weights(s.db).List(ctx, accountID)
	if err != nil {
		return nil, common.NewStorageError("list entries", err)
	}
	return entries, nil
}

// DeleteEntry removes every entry matching weight, goal snapshot and day
// and returns how many were removed. Zero is not an error.
func (s *TrackingStore) DeleteEntry(ctx context.Context, accountID int64, weight, goalValue int, day models.Day) (int64, error) {
	if _, err := models.ParseDay(string(day)); err != nil {
		return 0, err
	}

	n, err := s.repomanager.Weights(s.db).DeleteMatching(ctx, accountID, weight, goalValue, day)
	if err != nil {
		s.log.Error(ctx, "delete entry failed", "account_id", accountID, "error", err)
		return 0, common.NewStorageError("delete entry", err)
	}

	s.log.Info(ctx, "weight entries deleted", "account_id", accountID, "count", n)
	return n, nil
}

// Progress compares the latest entry with the current goal. It returns nil
// when the account has no entries.
func (s *TrackingStore) Progress(ctx context.Context, accountID int64) (*models.Progress, error) {
	latest, err := s.repomanager.Weights(s.db).Latest(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, common.NewStorageError("progress", err)
	}

	p := &models.Progress{Latest: *latest, Goal: latest.GoalValue}

	goal, err := s.repomanager.Goals(s.db).Latest(ctx, accountID)
	switch {
	case err == nil:
		p.Goal = goal.Value
		p.TargetDate = goal.TargetDate
	case !errors.Is(err, common.ErrNotFound):
		return nil, common.NewStorageError("progress", err)
	}

	p.Remaining = p.Latest.Weight - p.Goal
	return p, nil
}
