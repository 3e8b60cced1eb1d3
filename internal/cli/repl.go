package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App implements
// it; tests provide a stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Goal(ctx context.Context, args []string) error
	Goals(ctx context.Context) error
	Target(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Passwd(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a
// until EOF, "exit" or "quit". Handler errors have already been reported to
// the user and are not acted upon here.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "wk%s> ", statusFn(ctx))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(w, "Available commands: whoami, goal <n>, goals, target <YYYY-MM-DD>, add <n>, list [date], delete <weight> <goal> <YYYY-MM-DD>, passwd, register, login, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, exit")
			}
		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "goal":
			_ = a.Goal(ctx, args)
		case "goals":
			_ = a.Goals(ctx)
		case "target":
			_ = a.Target(ctx, args)
		case "add":
			_ = a.Add(ctx, args)
		case "l", "list":
			_ = a.List(ctx, args)
		case "delete":
			_ = a.Delete(ctx, args)
		case "passwd":
			_ = a.Passwd(ctx)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
