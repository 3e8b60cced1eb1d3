package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  map[string][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return nil
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error  { return f.record("register", nil) }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) WhoAmI(context.Context) error                  { return f.record("whoami", nil) }
func (f *fakeExec) Goal(_ context.Context, args []string) error   { return f.record("goal", args) }
func (f *fakeExec) Goals(context.Context) error                   { return f.record("goals", nil) }
func (f *fakeExec) Target(_ context.Context, args []string) error { return f.record("target", args) }
func (f *fakeExec) Add(_ context.Context, args []string) error    { return f.record("add", args) }
func (f *fakeExec) List(_ context.Context, args []string) error   { return f.record("list", args) }
func (f *fakeExec) Delete(_ context.Context, args []string) error { return f.record("delete", args) }
func (f *fakeExec) Passwd(context.Context) error                  { return f.record("passwd", nil) }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"",
		"goal 150",
		"target 2024-09-01",
		"add 160",
		"l date",
		"delete 160 150 2024-03-01",
		"whoami",
		"goals",
		"passwd",
		"register",
		"foobar",
		"exit",
		"add 1",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func(context.Context) string { return "(st)" }, rdr(input), &out)

	assert.Equal(t, []string{
		"login", "goal", "target", "add", "list", "delete", "whoami", "goals", "passwd", "register",
	}, exec.calls, "commands after exit are not read")
	assert.Equal(t, []string{"150"}, exec.args["goal"])
	assert.Equal(t, []string{"date"}, exec.args["list"])
	assert.Equal(t, []string{"160", "150", "2024-03-01"}, exec.args["delete"])

	s := out.String()
	assert.Contains(t, s, "wk(st)> ")
	assert.Contains(t, s, "Available commands: register, login, exit")
	assert.Contains(t, s, "Available commands: whoami")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func(context.Context) string { return "" }, rdr("add 5"), &out)

	assert.Equal(t, []string{"add"}, exec.calls, "a last line without newline still runs")
	assert.NotContains(t, out.String(), "Bye!")
}
