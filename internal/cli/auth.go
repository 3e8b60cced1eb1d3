package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	log := a.opLog("register")

	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	phone, err := GetSimpleText(a.reader, "Enter phone number", a.out)
	if err != nil {
		return err
	}
	code, err := GetSimpleText(a.reader, "Enter role code (empty for none)", a.out)
	if err != nil {
		return err
	}

	id, err := a.accounts.Register(ctx, username, string(password), phone, code)
	if err != nil {
		return a.report(ctx, log, err)
	}

	log.Debug(ctx, "registered", "account_id", id)
	fmt.Fprintf(a.out, "Welcome, %s!\n", username)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	log := a.opLog("login")

	username, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.accounts.Login(ctx, username, string(password))
	if err != nil {
		return a.report(ctx, log, err)
	}

	log.Debug(ctx, "logged in", "account_id", id)
	fmt.Fprintf(a.out, "Hello again, %s!\n", username)
	return nil
}

func (a *App) Passwd(ctx context.Context) error {
	log := a.opLog("passwd")

	id, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.reader, "Enter new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.accounts.UpdatePassword(ctx, id, string(password))
	if err != nil {
		return a.report(ctx, log, err)
	}
	if !ok {
		return a.report(ctx, log, common.ErrNotFound)
	}

	fmt.Fprintln(a.out, "Password updated.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	log := a.opLog("whoami")

	id, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}

	acc, err := a.accounts.Lookup(ctx, id)
	if err != nil {
		return a.report(ctx, log, err)
	}
	fmt.Fprintf(a.out, "%s (%s)\n", acc.Username, acc.Role)

	p, err := a.tracking.Progress(ctx, id)
	if err != nil {
		return a.report(ctx, log, err)
	}
	if p == nil {
		fmt.Fprintln(a.out, "No weight entries yet.")
		return nil
	}

	fmt.Fprintf(a.out, "Latest: %d on %s, goal %d", p.Latest.Weight, p.Latest.Date, p.Goal)
	if p.TargetDate != "" {
		fmt.Fprintf(a.out, " by %s", p.TargetDate)
	}
	switch {
	case p.Remaining > 0:
		fmt.Fprintf(a.out, ", %d to go\n", p.Remaining)
	case p.Remaining < 0:
		fmt.Fprintf(a.out, ", %d below goal\n", -p.Remaining)
	default:
		fmt.Fprintln(a.out, ", goal reached")
	}
	return nil
}
