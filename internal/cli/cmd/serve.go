package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the spacesync daemon",
	Long: `Run the daemon in the foreground.

The daemon loads persisted spaces, listens for window events on the bridge
(see server.addr), reconciles windows and spaces every sync.interval_seconds,
and reloads the log level when the config file changes. Only one daemon may
run per user. Stop it with SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Serve(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

