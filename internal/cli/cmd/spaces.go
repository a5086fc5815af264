package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/spacesync/internal/application/state"
	"github.com/bnema/spacesync/internal/cli"
	"github.com/bnema/spacesync/internal/cli/styles"
	"github.com/bnema/spacesync/internal/domain/entity"
	"github.com/bnema/spacesync/internal/infrastructure/bridge"
)

var (
	spacesClosed  bool
	spacesAll     bool
	spacesJSON    bool
	renameVersion int64
	restoreType   string
)

var spacesCmd = &cobra.Command{
	Use:     "spaces",
	Aliases: []string{"space", "sp"},
	Short:   "Inspect and edit spaces",
}

var spacesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List spaces",
	Long:  `List active spaces, or archived ones with --closed. Names marked * were derived from the first tab.`,
	Args:  cobra.NoArgs,
	RunE:  runSpacesList,
}

var spacesRenameCmd = &cobra.Command{
	Use:   "rename <space-id> <name>",
	Short: "Give a space a name",
	Long: `Rename a space. Goes through the running daemon when there is one, so
every observer sees the change; otherwise edits the database directly.

Use --expect-version to fail instead of overwriting a concurrent edit.`,
	Args: cobra.ExactArgs(2),
	RunE: runSpacesRename,
}

var spacesDeleteCmd = &cobra.Command{
	Use:   "delete <closed-space-id>",
	Short: "Delete an archived space",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpacesDelete,
}

var spacesRestoreCmd = &cobra.Command{
	Use:   "restore <closed-space-id>",
	Short: "Reopen an archived space in a new window (daemon required)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpacesRestore,
}

func init() {
	rootCmd.AddCommand(spacesCmd)
	spacesCmd.AddCommand(spacesListCmd, spacesRenameCmd, spacesDeleteCmd, spacesRestoreCmd)

	spacesListCmd.Flags().BoolVar(&spacesClosed, "closed", false, "list archived spaces")
	spacesListCmd.Flags().BoolVarP(&spacesAll, "all", "a", false, "list active and archived spaces")
	spacesListCmd.Flags().BoolVar(&spacesJSON, "json", false, "print JSON instead of a table")
	spacesRenameCmd.Flags().Int64Var(&renameVersion, "expect-version", 0, "reject the rename unless the space is at this version")
	spacesRestoreCmd.Flags().StringVar(&restoreType, "type", "", "window type to open (default restore.default_window_type)")
}

func runSpacesList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	spaces, err := loadListing(ctx, app, spacesClosed, spacesAll)
	if err != nil {
		return err
	}

	if spacesJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(spaces)
	}
	fmt.Println(styles.NewSpacesRenderer(app.Theme).Render(spaces))
	return nil
}

// loadListing reads straight from the database; the daemon persists before
// it notifies, so the file is never behind what observers saw.
func loadListing(ctx context.Context, app *cli.App, closed, all bool) ([]entity.Space, error) {
	var out []entity.Space
	if !closed || all {
		active, err := app.Spaces.LoadSpaces(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range active {
			out = append(out, s)
		}
	}
	if closed || all {
		archived, err := app.Spaces.LoadClosedSpaces(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range archived {
			out = append(out, s)
		}
	}
	entity.SortSpaces(out)
	if out == nil {
		out = []entity.Space{}
	}
	return out, nil
}

func runSpacesRename(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	id, name := entity.SpaceID(args[0]), args[1]

	space, err := withDaemonOrOffline(ctx, app,
		func(c *bridge.Client) (entity.Space, error) {
			return c.RenameSpace(ctx, id, name, renameVersion)
		},
		func(m *state.Manager) (entity.Space, error) {
			return m.RenameSpace(ctx, state.RenameInput{SpaceID: id, Name: name, ExpectedVersion: renameVersion})
		},
	)
	r := styles.NewMessageRenderer(app.Theme)
	if err != nil {
		var conflict *entity.VersionConflictError
		if errors.As(err, &conflict) {
			return fmt.Errorf("space changed concurrently (now at version %d), re-read and retry: %w", conflict.Current, err)
		}
		return err
	}
	fmt.Println(r.Success(fmt.Sprintf("renamed %s to %q (version %d)", space.ID, space.Name, space.Version)))
	return nil
}

func runSpacesDelete(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	id := entity.SpaceID(args[0])

	_, err := withDaemonOrOffline(ctx, app,
		func(c *bridge.Client) (entity.Space, error) {
			return entity.Space{}, c.DeleteSpace(ctx, id)
		},
		func(m *state.Manager) (entity.Space, error) {
			return entity.Space{}, m.DeleteSpace(ctx, id)
		},
	)
	if err != nil {
		return err
	}
	fmt.Println(styles.NewMessageRenderer(app.Theme).Success(fmt.Sprintf("deleted %s", id)))
	return nil
}

func runSpacesRestore(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	client, lock, err := app.Connect()
	if err != nil {
		return err
	}
	if lock != nil {
		_ = lock.Release()
		return fmt.Errorf("restore needs a running daemon to open the window")
	}

	snap, err := client.RestoreSpace(ctx, entity.SpaceID(args[0]), entity.WindowType(restoreType))
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("restore of %q is %s", snap.OriginalName, snap.Status)
	if snap.WindowID != nil {
		msg += fmt.Sprintf(" (window %d)", *snap.WindowID)
	}
	fmt.Println(styles.NewMessageRenderer(app.Theme).Success(msg))
	return nil
}

// withDaemonOrOffline runs viaDaemon against a running daemon, or offline
// against the database while holding the instance lock.
func withDaemonOrOffline(
	ctx context.Context,
	app *cli.App,
	viaDaemon func(*bridge.Client) (entity.Space, error),
	offline func(*state.Manager) (entity.Space, error),
) (entity.Space, error) {
	client, lock, err := app.Connect()
	if err != nil {
		return entity.Space{}, err
	}
	if client != nil {
		return viaDaemon(client)
	}
	defer func() { _ = lock.Release() }()

	m, cleanup, err := app.OfflineManager(ctx)
	if err != nil {
		return entity.Space{}, err
	}
	defer cleanup()
	return offline(m)
}
