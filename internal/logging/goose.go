package logging

import (
	"context"
	"fmt"
	"strings"
)

// GooseLogger adapts Logger to the goose.Logger interface so migration
// output goes through the application log instead of stdout.
type GooseLogger struct {
	l Logger
}

func Goose(l Logger) *GooseLogger {
	return &GooseLogger{l: l.With("component", "migrations")}
}

func (g *GooseLogger) Printf(format string, v ...any) {
	g.l.Debug(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf is only reached on goose's own invariant failures; it is logged at
// error level and turned into a panic so the caller's recover sees it.
func (g *GooseLogger) Fatalf(format string, v ...any) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.l.Error(context.Background(), msg)
	panic(msg)
}
