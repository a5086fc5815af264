package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/spacesync/internal/cli/styles"
	"github.com/bnema/spacesync/internal/infrastructure/config"
)

var (
	configInitForce   bool
	configSchemaWrite bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with every default spelled out",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema for config.toml. With --write it is saved next to the
config so editors with taplo or Even Better TOML can validate it.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where spacesync keeps its files",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configSchemaCmd, configPathCmd)
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write the schema file instead of printing it")
}

func configTarget() (string, error) {
	if rootOpts.ConfigFile != "" {
		return rootOpts.ConfigFile, nil
	}
	return config.GetConfigFile()
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path, err := configTarget()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if db, err := config.GetDatabaseFile(); err == nil {
		cfg.Database.Path = db
	}
	if err := config.WriteConfigOrdered(cfg, path); err != nil {
		return err
	}
	fmt.Println(styles.NewMessageRenderer(styles.NewTheme()).Success("wrote " + path))
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	if !configSchemaWrite {
		fmt.Println(string(schema))
		return nil
	}

	path, err := config.GetSchemaFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return err
	}
	if err := os.WriteFile(path, schema, 0o644); err != nil {
		return fmt.Errorf("write schema: %w", err)
	}
	fmt.Println(styles.NewMessageRenderer(styles.NewTheme()).Success("wrote " + path))
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	cfgPath, err := configTarget()
	if err != nil {
		return err
	}
	dbPath, err := config.GetDatabaseFile()
	if err != nil {
		return err
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		return err
	}
	lockPath, err := config.GetLockFile()
	if err != nil {
		return err
	}

	r := styles.NewMessageRenderer(styles.NewTheme())
	fmt.Println(r.Path(styles.IconConfig, "config  ", cfgPath))
	fmt.Println(r.Path(styles.IconDatabase, "database", dbPath))
	fmt.Println(r.Path(styles.IconInfo, "logs    ", logDir))
	fmt.Println(r.Path(styles.IconInfo, "lock    ", lockPath))
	return nil
}
