package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo/cmd/internal"
	"github.com/todo-cli/todo/internal/todo"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show todo statistics",
		Long: `Display summary statistics about your todos.

Example:
  todo stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := openManager()
			if err != nil {
				return err
			}

			all := manager.GetTodos(todo.FilterAll)
			completed := manager.GetTodos(todo.FilterCompleted)
			pending := manager.GetTodos(todo.FilterPending)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "Todo Statistics")
			_, _ = fmt.Fprintf(out, "Total todos: %d\n", len(all))
			_, _ = fmt.Fprintf(out, "Completed: %d\n", len(completed))
			_, _ = fmt.Fprintf(out, "Pending: %d\n", len(pending))

			if len(all) > 0 {
				rate := float64(len(completed)) / float64(len(all)) * 100
				bar := internal.ProgressBar(int(rate), 20)
				_, _ = fmt.Fprintf(out, "Completion rate: %s %.1f%%\n", bar, rate)
			}

			return nil
		},
	}
}
