package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/exchange"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "export <todo|order>",
		Short: "Export a list as JSON or YAML",
		Long: `Write a whole list to stdout or a file.

JSON output has the same shape as the stored value.

Examples:
  locrec export order --format yaml
  locrec export todo -o todos.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := exchange.ParseFormat(opts.Format)
			if err != nil {
				return err
			}
			key, err := listKey(args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.Output != "" {
				f, err := os.Create(opts.Output) //nolint:gosec // Path chosen by the user
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			if err := exportList(cmd, c, key, w, format); err != nil {
				return err
			}
			if opts.Output != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %s to %s\n", key, opts.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Output format: json or yaml")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

func exportList(cmd *cobra.Command, c *app.Container, key string, w io.Writer, format exchange.Format) error {
	if key == domain.OrderListKey {
		orders, err := c.Orders(cmd.Context())
		if err != nil {
			return err
		}
		return exchange.Export(w, orders.Records(), format)
	}
	todos, err := c.Todos(cmd.Context())
	if err != nil {
		return err
	}
	return exchange.Export(w, todos.Records(), format)
}
