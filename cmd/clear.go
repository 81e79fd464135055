package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo/cmd/internal"
	"github.com/todo-cli/todo/internal/todo"
)

func newClearCompletedCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete all completed todos",
		Long: `Delete every completed todo permanently. Asks for confirmation unless
--yes is given.

Example:
  todo clear-completed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			completed := manager.GetTodos(todo.FilterCompleted)
			if len(completed) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No completed todos to clear")
				return nil
			}

			if !yes {
				if !internal.IsInteractive(os.Stdin.Fd()) {
					return fmt.Errorf("refusing to clear without confirmation; pass --yes")
				}
				prompt := fmt.Sprintf("Clear %d completed todo(s)?", len(completed))
				if !internal.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), prompt) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Clear operation cancelled.")
					return nil
				}
			}

			count, err := manager.ClearCompleted()
			if err != nil {
				return fmt.Errorf("failed to clear completed todos: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ Cleared %d completed todo(s)\n", count)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
