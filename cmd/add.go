package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <title> [description]",
		Short: "Add a new todo",
		Long: `Add a new todo with a title and an optional description.

Examples:
  todo add "Buy groceries"
  todo add "Finish project" "Complete the final report and review"`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			description := ""
			if len(args) == 2 {
				description = args[1]
			}

			manager, err := openManager()
			if err != nil {
				return err
			}

			t, err := manager.AddTodo(title, description)
			if err != nil {
				return fmt.Errorf("failed to add todo: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ Added todo #%d: %s\n", t.ID, t.Title)
			if t.Description != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  Description: %s\n", t.Description)
			}

			return nil
		},
	}
}
