package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a todo as completed",
		Long: `Mark a todo as completed.

Example:
  todo complete 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid todo id %q: must be a number", args[0])
			}

			manager, err := openManager()
			if err != nil {
				return err
			}

			ok, err := manager.CompleteTodo(id)
			if err != nil {
				return fmt.Errorf("failed to complete todo: %w", err)
			}

			if !ok {
				// The manager signals only a boolean; look the todo up to
				// tell a missing id from an already completed one.
				if manager.GetTodoByID(id) == nil {
					return fmt.Errorf("todo #%d not found", id)
				}
				return fmt.Errorf("todo #%d is already completed", id)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Completed todo #%d\n", id)
			return nil
		},
	}
}
