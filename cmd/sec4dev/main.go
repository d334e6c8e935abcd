package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	sec4dev "github.com/sec4dev/sec4dev-go"
	"github.com/sec4dev/sec4dev-go/internal/cli"
)

// Exit codes.
const (
	ExitOK         = 0
	ExitGeneral    = 1
	ExitSetup      = 3
	ExitValidation = 4
	ExitRateLimit  = 5
	ExitInterrupt  = 130
)

func main() {
	// Load .env file if present (ignore error if missing).
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCmd(cli.DefaultEnv())
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps errors to process exit codes.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupt
	case errors.Is(err, cli.ErrAPIKeyMissing),
		errors.Is(err, sec4dev.ErrAuthentication),
		errors.Is(err, sec4dev.ErrPaymentRequired),
		errors.Is(err, sec4dev.ErrForbidden):
		return ExitSetup
	case errors.Is(err, sec4dev.ErrValidation), errors.Is(err, cli.ErrUnknownSignal):
		return ExitValidation
	case errors.Is(err, sec4dev.ErrRateLimited):
		return ExitRateLimit
	default:
		return ExitGeneral
	}
}
