package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/weightkeeper/internal/logging"
	"github.com/dmitrijs2005/weightkeeper/internal/models"
)

// AccountService is the part of services.AccountStore the CLI uses.
type AccountService interface {
	Register(ctx context.Context, username, password, phone, roleCode string) (int64, error)
	Login(ctx context.Context, username, password string) (int64, error)
	UpdatePassword(ctx context.Context, accountID int64, newPassword string) (bool, error)
	Lookup(ctx context.Context, accountID int64) (*models.Account, error)
}

type SessionService interface {
	GetCurrent(ctx context.Context) (int64, bool, error)
}

type TrackingService interface {
	SetGoal(ctx context.Context, accountID int64, value int) error
	GoalHistory(ctx context.Context, accountID int64) ([]models.Goal, error)
	SetTargetDate(ctx context.Context, accountID int64, day models.Day) (bool, error)
	TargetDate(ctx context.Context, accountID int64) (models.Day, bool, error)
	AddWeightEntry(ctx context.Context, accountID int64, weight int) (bool, error)
	ListEntries(ctx context.Context, accountID int64) ([]models.WeightEntry, error)
	DeleteEntry(ctx context.Context, accountID int64, weight, goalValue int, day models.Day) (int64, error)
	Progress(ctx context.Context, accountID int64) (*models.Progress, error)
}

type App struct {
	accounts AccountService
	sessions SessionService
	tracking TrackingService
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(accounts AccountService, sessions SessionService, tracking TrackingService, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		accounts: accounts,
		sessions: sessions,
		tracking: tracking,
		log:      log.With("component", "cli"),
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run prints the greeting and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to weightkeeper (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// opLog returns a logger tagged with a fresh operation id.
func (a *App) opLog(cmd string) logging.Logger {
	return a.log.With("op_id", uuid.NewString(), "command", cmd)
}

// current returns the signed-in account id.
func (a *App) current(ctx context.Context) (int64, bool) {
	id, ok, err := a.sessions.GetCurrent(ctx)
	if err != nil {
		a.log.Error(ctx, "reading session failed", "error", err)
		return 0, false
	}
	return id, ok
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	_, ok := a.current(ctx)
	return ok
}

func (a *App) status(ctx context.Context) string {
	id, ok := a.current(ctx)
	if !ok {
		return ""
	}
	acc, err := a.accounts.Lookup(ctx, id)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("(%s)", acc.Username)
}
