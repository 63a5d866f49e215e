package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/tng/internal/logging"
)

// createLogger configures the application logger. In debug mode it
// writes to stderr so it stays out of the trace output on stdout.
func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// isTerminal reports whether stdout is an interactive terminal that can
// take colored output.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && termenv.ColorProfile() != termenv.Ascii
}

// handleInterrupt maps a user-driven cancellation to a clean exit.
func handleInterrupt(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		fmt.Println("\ninterrupted")
		return nil
	}
	return err
}
