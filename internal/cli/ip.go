package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	sec4dev "github.com/sec4dev/sec4dev-go"
)

// signalChecks maps signal names accepted by "ip is" to client helpers.
var signalChecks = map[string]func(*sec4dev.IPService, context.Context, string) (bool, error){
	"hosting":     (*sec4dev.IPService).IsHosting,
	"vpn":         (*sec4dev.IPService).IsVPN,
	"tor":         (*sec4dev.IPService).IsTor,
	"residential": (*sec4dev.IPService).IsResidential,
	"mobile":      (*sec4dev.IPService).IsMobile,
	"proxy":       (*sec4dev.IPService).IsProxy,
}

func signalNames() []string {
	names := make([]string, 0, len(signalChecks))
	for name := range signalChecks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func ipCommand(env *Env, f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ip",
		Short: "Check IP address reputation",
	}

	cmd.AddCommand(ipCheckCommand(env, f))
	cmd.AddCommand(ipIsCommand(env, f))

	return cmd
}

func ipCheckCommand(env *Env, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <ip>...",
		Short: "Print the full reputation result for each address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := newClient(ctx, env, f)
			if err != nil {
				return err
			}
			defer logQuota(ctx, client)

			results := make([]*sec4dev.IPCheckResult, 0, len(args))
			for _, ip := range args {
				result, err := client.IP().Check(ctx, ip)
				if err != nil {
					return fmt.Errorf("check %s: %w", ip, err)
				}
				loggerFromContext(ctx).Debug("checked ip",
					"ip", result.IP,
					"classification", result.Classification,
					"confidence", result.Confidence,
				)
				results = append(results, result)
			}

			if len(results) == 1 {
				return writeJSON(env.Stdout, results[0])
			}
			return writeJSON(env.Stdout, results)
		},
	}
}

func ipIsCommand(env *Env, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:       "is <signal> <ip>",
		Short:     "Print true if the address carries the signal",
		Long:      "Print true if the address carries the signal. Signals: " + strings.Join(signalNames(), ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: signalNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, ok := signalChecks[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("%w %q (want one of %s)", ErrUnknownSignal, args[0], strings.Join(signalNames(), ", "))
			}

			ctx := cmd.Context()
			client, err := newClient(ctx, env, f)
			if err != nil {
				return err
			}
			defer logQuota(ctx, client)

			got, err := check(client.IP(), ctx, args[1])
			if err != nil {
				return fmt.Errorf("check %s: %w", args[1], err)
			}
			_, err = fmt.Fprintln(env.Stdout, got)
			return err
		},
	}
}
