// Package cmd implements the todo command-line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo/internal/config"
	"github.com/todo-cli/todo/internal/todo"
)

// Version is the CLI version reported by --version.
const Version = "0.1.0"

// Persistent root flags
var (
	cfgFile     string
	storageFile string
)

// GetConfigFile returns the config file path from the flag.
func GetConfigFile() string {
	return cfgFile
}

// NewRootCmd creates the root command for the todo CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A personal task-tracking CLI",
		Long: `todo tracks short text tasks in a flat JSON file on local disk.

Examples:
  todo add "Learn Go" "Study idiomatic error handling"
  todo list
  todo complete 1
  todo delete 1`,
		Version:      Version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./todo.yaml, then ~/.config/todo/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storageFile, "storage-file", "", "path to the todo storage file (default: todos.json)")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newUncompleteCmd())
	rootCmd.AddCommand(newDeleteCmd())
	rootCmd.AddCommand(newClearCompletedCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

// loadSettings resolves the effective configuration and storage file path,
// giving the --storage-file flag precedence over the config file.
func loadSettings() (*config.Config, string, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigWithFile(workDir, GetConfigFile())
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.Storage.File
	if storageFile != "" {
		path = storageFile
	}

	return cfg, path, nil
}

// openManager constructs a Manager bound to the configured storage file.
// The initial load happens here; a malformed storage file fails the command.
func openManager() (*todo.Manager, error) {
	_, path, err := loadSettings()
	if err != nil {
		return nil, err
	}

	manager, err := todo.NewManager(todo.NewFileStore(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open todo storage: %w", err)
	}

	return manager, nil
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
