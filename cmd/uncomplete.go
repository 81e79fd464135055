package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newUncompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncomplete <id>",
		Short: "Mark a completed todo as pending",
		Long: `Mark a completed todo as pending again.

Example:
  todo uncomplete 1`,
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

			ok, err := manager.UncompleteTodo(id)
			if err != nil {
				return fmt.Errorf("failed to update todo: %w", err)
			}

			if !ok {
				if manager.GetTodoByID(id) == nil {
					return fmt.Errorf("todo #%d not found", id)
				}
				return fmt.Errorf("todo #%d is already pending", id)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "○ Marked todo #%d as pending\n", id)
			return nil
		},
	}
}
