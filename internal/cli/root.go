package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	sec4dev "github.com/sec4dev/sec4dev-go"
)

// flags holds the persistent flag values shared by all commands.
type flags struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	rps        float64
	verbose    bool
}

// NewRootCmd builds the sec4dev command tree bound to env.
func NewRootCmd(env *Env) *cobra.Command {
	f := &flags{}

	root := &cobra.Command{
		Use:           "sec4dev",
		Short:         "Query the Sec4Dev security checks API",
		Long:          `sec4dev checks whether email addresses use disposable domains and classifies IP addresses by reputation.`,
		Version:       sec4dev.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if f.verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(env.Stderr, level)))
		},
	}
	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&f.apiKey, "api-key", "", "API key (default $"+EnvAPIKey+")")
	pf.StringVar(&f.baseURL, "base-url", "", "API base URL (default $"+EnvBaseURL+" or the public endpoint)")
	pf.DurationVar(&f.timeout, "timeout", 30*time.Second, "timeout for each attempt")
	pf.IntVar(&f.retries, "retries", 3, "retries after the first attempt")
	pf.DurationVar(&f.retryDelay, "retry-delay", time.Second, "base delay for exponential backoff")
	pf.Float64Var(&f.rps, "rps", 0, "client-side request rate limit per second (0 disables)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(emailCommand(env, f))
	root.AddCommand(ipCommand(env, f))
	root.AddCommand(versionCommand(env))

	return root
}

// newClient builds a client from flags, falling back to the environment.
func newClient(ctx context.Context, env *Env, f *flags) (*sec4dev.Client, error) {
	apiKey := strings.TrimSpace(f.apiKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(env.Getenv(EnvAPIKey))
	}
	if apiKey == "" {
		return nil, ErrAPIKeyMissing
	}

	logger := loggerFromContext(ctx)
	opts := []sec4dev.Option{
		sec4dev.WithTimeout(f.timeout),
		sec4dev.WithRetries(f.retries),
		sec4dev.WithRetryDelay(f.retryDelay),
		sec4dev.WithLogger(logger),
	}

	baseURL := f.baseURL
	if baseURL == "" {
		baseURL = env.Getenv(EnvBaseURL)
	}
	if baseURL != "" {
		opts = append(opts, sec4dev.WithBaseURL(baseURL))
	}
	if f.rps > 0 {
		opts = append(opts, sec4dev.WithRateLimit(f.rps, 1))
	}

	return sec4dev.New(apiKey, opts...)
}

// logQuota reports the remaining quota after a command finishes.
func logQuota(ctx context.Context, client *sec4dev.Client) {
	rl := client.RateLimit()
	s := client.Stats()
	loggerFromContext(ctx).Debug("quota",
		"limit", rl.Limit,
		"remaining", rl.Remaining,
		"reset", rl.ResetSeconds,
		"attempts", s.Attempts,
		"retries", s.Retries,
	)
}

func versionCommand(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(env.Stdout, "sec4dev %s\nuser-agent: %s\n", sec4dev.Version, sec4dev.UserAgent)
			return err
		},
	}
}
