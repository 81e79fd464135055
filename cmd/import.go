package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/todo-cli/todo/internal/todo"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import todos from a YAML file",
		Long: `Import todos from a YAML file into the collection.

The YAML file should contain a 'todos' array. Each imported todo gets a
fresh id. Entries with a blank title are skipped and reported.

Example YAML format:
  todos:
    - title: Buy milk
    - title: Write report
      description: Quarterly numbers
      completed: true
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yamlPath := args[0]

			if _, err := os.Stat(yamlPath); err != nil {
				return fmt.Errorf("file not found: %s", yamlPath)
			}

			manager, err := openManager()
			if err != nil {
				return err
			}

			result, err := todo.ImportFromYAML(manager, yamlPath)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully imported %d todo(s)\n", result.Imported)

			if len(result.Errors) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%d error(s) occurred during import:\n", len(result.Errors))
				for _, impErr := range result.Errors {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  - Entry %d: %s\n", impErr.Index, impErr.Reason)
				}
			}

			return nil
		},
	}
}
