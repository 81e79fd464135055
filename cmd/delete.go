package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo/cmd/internal"
)

func newDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a todo",
		Long: `Delete a todo permanently. Asks for confirmation unless --yes is given.

Example:
  todo delete 1`,
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

			t := manager.GetTodoByID(id)
			if t == nil {
				return fmt.Errorf("todo #%d not found", id)
			}

			if !yes {
				if !internal.IsInteractive(os.Stdin.Fd()) {
					return fmt.Errorf("refusing to delete without confirmation; pass --yes")
				}
				prompt := fmt.Sprintf("Delete todo #%d (%s)?", t.ID, t.Title)
				if !internal.Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), prompt) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
					return nil
				}
			}

			ok, err := manager.DeleteTodo(id)
			if err != nil {
				return fmt.Errorf("failed to delete todo: %w", err)
			}
			if !ok {
				return fmt.Errorf("todo #%d not found", id)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ Deleted todo #%d: %s\n", id, t.Title)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}
