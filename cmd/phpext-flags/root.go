package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	phpext "github.com/contriboss/php-extension-go"
)

const envPrefix = "PHPEXT"

// newRootCmd builds the command tree. Flags can also be set through
// PHPEXT_* environment variables (e.g. PHPEXT_SNAPSHOT, PHPEXT_FROM_ENV).
func newRootCmd(out io.Writer, logger *log.Logger) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "phpext-flags",
		Short:         "Discover compiler flags for native PHP extensions",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `phpext-flags reports the include paths and preprocessor defines needed
to compile a native extension against the installed PHP runtime.

Values come from php-config (PHP_CONFIG or PATH) unless a snapshot is
given with --snapshot, or --from-env is set and PHP_INCLUDES/PHP_DEFINES
are present.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if v.GetBool("verbose") {
				logger.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("snapshot", "", "TOML snapshot file with includes/defines")
	flags.Bool("from-env", false, "read includes/defines from the environment when set")
	flags.String("env-prefix", phpext.DefaultEnvPrefix, "environment variable prefix for --from-env")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	_ = v.BindPFlags(flags)

	provider := func() (*phpext.UnixProvider, error) {
		info, err := phpext.ResolveInfo(phpext.ResolveOptions{
			SnapshotFile: v.GetString("snapshot"),
			FromEnv:      v.GetBool("from-env"),
			EnvPrefix:    v.GetString("env-prefix"),
		})
		if err != nil {
			return nil, err
		}
		logger.Debug("resolved php configuration source", "source", info.Source())
		return phpext.FromInfo(info), nil
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "includes",
			Short: "Print include paths, one per line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				p, err := provider()
				if err != nil {
					return err
				}
				includes, err := p.Includes(cmd.Context())
				if err != nil {
					return err
				}
				logger.Debug("discovered include paths", "count", len(includes))
				for _, include := range includes {
					fmt.Fprintln(out, include)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "defines",
			Short: "Print defines as NAME=VALUE, one per line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				p, err := provider()
				if err != nil {
					return err
				}
				defines, err := p.Defines(cmd.Context())
				if err != nil {
					return err
				}
				logger.Debug("discovered defines", "count", len(defines))
				for _, define := range defines {
					fmt.Fprintf(out, "%s=%s\n", define.Name, define.Value)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "cflags",
			Short: "Print -I and -D compiler flags on one line",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				p, err := provider()
				if err != nil {
					return err
				}
				cflags, err := collectFlags(cmd.Context(), p)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, strings.Join(cflags, " "))
				return nil
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Verify php-config and a C compiler are available",
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				p, err := provider()
				if err != nil {
					return err
				}
				if err := p.CheckTools(); err != nil {
					return err
				}
				fmt.Fprintln(out, "ok")
				return nil
			},
		},
	)

	return rootCmd
}

func collectFlags(ctx context.Context, p phpext.Provider) ([]string, error) {
	includes, err := p.Includes(ctx)
	if err != nil {
		return nil, fmt.Errorf("includes: %w", err)
	}
	defines, err := p.Defines(ctx)
	if err != nil {
		return nil, fmt.Errorf("defines: %w", err)
	}
	return phpext.CompilerFlags(includes, defines), nil
}
