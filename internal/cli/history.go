package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/usecase"
)

// revisionIDLen is the number of revision id characters shown.
const revisionIDLen = 12

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history <todo|order>",
		Short: "Show earlier values of a list",
		Long: `Show the recorded revisions of a list, newest first.

Only the git storage backend keeps history.
Output columns: REVISION, WHEN, RECORDS, BYTES.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := listKey(args[0])
			if err != nil {
				return err
			}

			out, err := c.ShowHistoryUseCase().Execute(cmd.Context(), usecase.ShowHistoryInput{
				Key:   key,
				Limit: limit,
			})
			if err != nil {
				return err
			}

			printHistory(cmd.OutOrStdout(), out.Entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum revisions to show (0 = all)")

	return cmd
}

// printHistory prints revisions in tab-aligned columns.
func printHistory(w io.Writer, entries []usecase.HistoryEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "REVISION\tWHEN\tRECORDS\tBYTES")
	for _, e := range entries {
		id := e.ID
		if len(id) > revisionIDLen {
			id = id[:revisionIDLen]
		}
		records := "?"
		if e.Records >= 0 {
			records = fmt.Sprintf("%d", e.Records)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n",
			id,
			e.When.Format("2006-01-02 15:04:05"),
			records,
			e.Size,
		)
	}
}
