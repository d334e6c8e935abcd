package cli

import (
	"io"
	"os"
)

// Environment variables read by the CLI.
const (
	EnvAPIKey  = "SEC4DEV_API_KEY"
	EnvBaseURL = "SEC4DEV_BASE_URL"
)

// Env holds injectable dependencies for CLI commands.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultEnv returns an Env bound to the process streams and environment.
func DefaultEnv() *Env {
	return &Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}
