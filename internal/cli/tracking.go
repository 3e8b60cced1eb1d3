package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/weightkeeper/internal/common"
	"github.com/dmitrijs2005/weightkeeper/internal/models"
)

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, common.NewValidationError(field, fmt.Sprintf("%q is not a whole number", s))
	}
	return n, nil
}

func (a *App) usage(text string) error {
	fmt.Fprintln(a.out, "Usage:", text)
	return common.NewValidationError("arguments", text)
}

func (a *App) Goal(ctx context.Context, args []string) error {
	log := a.opLog("goal")

	id, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return a.usage("goal <n>")
	}
	value, err := parseInt("goal", args[0])
	if err != nil {
		return a.report(ctx, log, err)
	}

	if err := a.tracking.SetGoal(ctx, id, value); err != nil {
		return a.report(ctx, log, err)
	}
	fmt.Fprintf(a.out, "Goal set to %d.\n", value)
	return nil
}

func (a *App) Goals(ctx context.Context) error {
	log := a.opLog("goals")

	id, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	goals, err := a.tracking.GoalHistory(ctx, id)
	if err != nil {
		return a.report(ctx, log, err)
	}
	if len(goals) == 0 {
		fmt.Fprintln(a.out, "No goals yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GOAL\tTARGET")
	for _, g := range goals {
		target := string(g.TargetDate)
		if target == "" {
			target = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\n", g.Value, target)
	}
	return tw.Flush()
}

func (a *App) Target(ctx context.Context, args []string) error {
	log := a.opLog("target")

	id, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return a.usage("target <YYYY-MM-DD>")
	}

	ok, err := a.tracking.SetTargetDate(ctx, id, models.Day(args[0]))
	if err != nil {
		return a.report(ctx, log, err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Set a goal first.")
		return nil
	}
	fmt.Fprintf(a.out, "Target date set to %s.\n", args[0])
	return nil
}

func (a *App) Add(ctx context.Context, args []string) error {
	log := a.opLog("add")

	id, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return a.usage("add <n>")
	}
	weight, err := parseInt("weight", args[0])
	if err != nil {
		return a.report(ctx, log, err)
	}

	added, err := a.tracking.AddWeightEntry(ctx, id, weight)
	if err != nil {
		return a.report(ctx, log, err)
	}
	if !added {
		fmt.Fprintln(a.out, "Set a goal first.")
		return nil
	}
	fmt.Fprintf(a.out, "Recorded %d.\n", weight)
	return nil
}

func (a *App) List(ctx context.Context, args []string) error {
	log := a.opLog("list")

	id, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	entries, err := a.tracking.ListEntries(ctx, id)
	if err != nil {
		return a.report(ctx, log, err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No entries yet.")
		return nil
	}
	if len(args) > 0 && args[0] == "date" {
		models.SortByDate(entries)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tWEIGHT\tGOAL")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%d\n", e.Date, e.Weight, e.GoalValue)
	}
	return tw.Flush()
}

func (a *App) Delete(ctx context.Context, args []string) error {
	log := a.opLog("delete")

	id, err := a.requireLogin(ctx)
	if err != nil {
		return err
	}
	if len(args) != 3 {
		return a.usage("delete <weight> <goal> <YYYY-MM-DD>")
	}
	weight, err := parseInt("weight", args[0])
	if err != nil {
		return a.report(ctx, log, err)
	}
	goal, err := parseInt("goal", args[1])
	if err != nil {
		return a.report(ctx, log, err)
	}

	n, err := a.tracking.DeleteEntry(ctx, id, weight, goal, models.Day(args[2]))
	if err != nil {
		return a.report(ctx, log, err)
	}
	fmt.Fprintf(a.out, "Deleted %d entries.\n", n)
	return nil
}
