package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/spacesync/internal/cli/styles"
	"github.com/bnema/spacesync/internal/domain/entity"
)

var importYes bool

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write all persisted spaces to a backup file",
	Long:  `Export active and archived spaces with their tabs as JSON. Use "-" for stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all persisted spaces with a backup file",
	Long: `Import a file produced by "spacesync export". Everything currently stored
is replaced. The daemon must be stopped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "do not ask for confirmation")
}

func runExport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := app.Spaces.Export(app.Ctx())
	if err != nil {
		return err
	}
	if args[0] == "-" {
		_, err = os.Stdout.Write(append(data, '\n'))
		return err
	}
	if err := os.WriteFile(args[0], data, 0o600); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	fmt.Fprintln(os.Stderr, styles.NewMessageRenderer(app.Theme).Success("exported to "+args[0]))
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	var parsed entity.Backup
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("%s is not a spacesync backup: %w", args[0], err)
	}

	client, lock, err := app.Connect()
	if err != nil {
		return err
	}
	if client != nil {
		return fmt.Errorf("the daemon is running, stop it before importing")
	}
	defer func() { _ = lock.Release() }()

	if !importYes && !confirm(fmt.Sprintf("Replace stored state with %d spaces from %s?", parsed.SpaceCount(), args[0])) {
		return nil
	}
	if err := app.Spaces.Import(ctx, data); err != nil {
		return err
	}
	fmt.Println(styles.NewMessageRenderer(app.Theme).Success(fmt.Sprintf("imported %d spaces", parsed.SpaceCount())))
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}
