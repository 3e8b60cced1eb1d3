package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/logging"
)

var errNotLoggedIn = errors.New("not logged in")

// report prints a user-facing message for err and logs storage faults.
// It returns err unchanged.
func (a *App) report(ctx context.Context, log logging.Logger, err error) error {
	switch common.KindOf(err) {
	case common.KindNone:
	case common.KindValidation:
		fmt.Fprintln(a.out, "Invalid input:", err)
	case common.KindUsernameTaken:
		fmt.Fprintln(a.out, "That username is already taken.")
	case common.KindInvalidCredentials:
		fmt.Fprintln(a.out, "Invalid username or password.")
	case common.KindNotFound:
		fmt.Fprintln(a.out, "Not found.")
	case common.KindStorage:
		log.Error(ctx, "command failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong, see the log for details.")
	}
	return err
}

// requireLogin returns the current account id or tells the user to sign in.
func (a *App) requireLogin(ctx context.Context) (int64, error) {
	id, ok := a.current(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Please register or login first.")
		return 0, errNotLoggedIn
	}
	return id, nil
}
