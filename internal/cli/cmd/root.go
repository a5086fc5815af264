// Package cmd provides Cobra CLI commands for spacesync.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/spacesync/internal/cli"
	"github.com/bnema/spacesync/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "spacesync",
		Short: "Keep browser windows and named spaces in sync",
		Long: `spacesync mirrors browser windows as persistent "spaces".

Every window is bound to a space that keeps its name and tab URLs. Closing
a window archives its space; restoring it reopens a window and rebinds the
same identity, name included. A local HTTP/WebSocket bridge lets a browser
extension feed window events in and observe every change.

Run 'spacesync serve' to start the daemon, or use the subcommands to
inspect and edit spaces from a terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "init", "schema", "path":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/spacesync/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
