package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo/cmd/internal"
	"github.com/todo-cli/todo/internal/todo"
)

func newListCmd() *cobra.Command {
	var (
		completed string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Long: `List todos, optionally filtered by completion status.

Examples:
  todo list                     (show all)
  todo list --completed true    (show only completed)
  todo list --completed false   (show only pending)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := todo.FilterAll
			switch completed {
			case "":
			case "true":
				filter = todo.FilterCompleted
			case "false":
				filter = todo.FilterPending
			default:
				return fmt.Errorf("invalid --completed value %q: must be true or false", completed)
			}

			cfg, _, err := loadSettings()
			if err != nil {
				return err
			}

			outputFormat := cfg.Output.Format
			if cmd.Flags().Changed("format") {
				outputFormat = format
			}
			if outputFormat != "table" && outputFormat != "simple" {
				return fmt.Errorf("invalid --format value %q: must be table or simple", outputFormat)
			}

			manager, err := openManager()
			if err != nil {
				return err
			}

			todos := manager.GetTodos(filter)
			if len(todos) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No todos found.")
				return nil
			}

			if outputFormat == "table" {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), internal.FormatTable(todos))
			} else {
				_, _ = fmt.Fprint(cmd.OutOrStdout(), internal.FormatSimple(todos))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&completed, "completed", "", "filter by completion status (true or false)")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table or simple)")

	return cmd
}
