package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	sec4dev "github.com/sec4dev/sec4dev-go"
)

func emailCommand(env *Env, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "email",
		Short: "Check email addresses for disposable domains",
	}

	cmd.AddCommand(emailCheckCommand(env, f))
	cmd.AddCommand(emailDisposableCommand(env, f))

	return cmd
}

// emailCheckCommand prints a JSON result per address. Addresses are checked
// in order and the first failure stops the run.
func emailCheckCommand(env *Env, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <email>...",
		Short: "Print the full check result for each address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := newClient(ctx, env, f)
			if err != nil {
				return err
			}
			defer logQuota(ctx, client)

			results := make([]*sec4dev.EmailCheckResult, 0, len(args))
			for _, email := range args {
				result, err := client.Email().Check(ctx, email)
				if err != nil {
					return fmt.Errorf("check %s: %w", email, err)
				}
				loggerFromContext(ctx).Debug("checked email", "email", result.Email, "disposable", result.IsDisposable)
				results = append(results, result)
			}

			if len(results) == 1 {
				return writeJSON(env.Stdout, results[0])
			}
			return writeJSON(env.Stdout, results)
		},
	}
}

func emailDisposableCommand(env *Env, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "disposable <email>",
		Short: "Print true if the address uses a disposable domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := newClient(ctx, env, f)
			if err != nil {
				return err
			}
			defer logQuota(ctx, client)

			disposable, err := client.Email().IsDisposable(ctx, args[0])
			if err != nil {
				return fmt.Errorf("check %s: %w", args[0], err)
			}
			_, err = fmt.Fprintln(env.Stdout, disposable)
			return err
		},
	}
}
