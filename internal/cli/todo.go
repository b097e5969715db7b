package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/form"
)

// errNoChanges is returned by edit commands called without any field flag.
var errNoChanges = errors.New("nothing to update: pass at least one field flag")

// shortIDLen is the number of id characters shown in lists.
const shortIDLen = 8

// newTodoCommand creates the todo command group.
func newTodoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the to-do list",
		Long:  `Create, edit, list and delete to-dos.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newTodoListCommand(c))
	cmd.AddCommand(newTodoAddCommand(c))
	cmd.AddCommand(newTodoEditCommand(c))
	cmd.AddCommand(newTodoRmCommand(c))

	return cmd
}

// newTodoListCommand creates the todo list subcommand.
func newTodoListCommand(c *app.Container) *cobra.Command {
	var fullID bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List to-dos",
		Long: `Display the to-do list, newest first.

Output columns: ID, DUE, TASK, DESCRIPTION.
IDs are shortened; any unique prefix is accepted by edit and rm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			todos, err := c.Todos(cmd.Context())
			if err != nil {
				return err
			}
			printTodoList(cmd.OutOrStdout(), todos.Records(), fullID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&fullID, "full-id", false, "Show complete ids")

	return cmd
}

// printTodoList prints to-dos in tab-aligned columns.
func printTodoList(w io.Writer, todos []domain.Todo, fullID bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tDUE\tTASK\tDESCRIPTION")
	for _, t := range todos {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			displayID(t.ID, fullID),
			t.DueDate,
			t.Task,
			oneLine(t.Description),
		)
	}
}

// newTodoAddCommand creates the todo add subcommand.
func newTodoAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Task        string
		Description string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a to-do",
		Long: `Create a to-do at the top of the list. All fields are required.

Examples:
  locrec todo add --task "Gọi khách hàng" --description "Xác nhận đơn" --due 2024-06-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := form.Values{}
			values.Set(form.FieldTask, opts.Task)
			values.Set(form.FieldDescription, opts.Description)
			values.Set(form.FieldDueDate, opts.Due)

			in, err := c.Validator.TodoInput(values)
			if err != nil {
				return err
			}

			todos, err := c.Todos(cmd.Context())
			if err != nil {
				return err
			}
			todos.OpenCreate()
			todo, err := todos.Submit(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created todo %s\n", todo.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Task, "task", "", "Task name")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")

	return cmd
}

// newTodoEditCommand creates the todo edit subcommand.
func newTodoEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Task        string
		Description string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a to-do",
		Long: `Edit the fields of an existing to-do. Fields without a flag keep their value.

Examples:
  locrec todo edit 1a2b3c4d --due 2024-06-15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("task") && !flags.Changed("description") && !flags.Changed("due") {
				return errNoChanges
			}

			todos, err := c.Todos(cmd.Context())
			if err != nil {
				return err
			}
			todo, err := todos.Resolve(args[0])
			if err != nil {
				return err
			}

			values := form.TodoValues(todo)
			if flags.Changed("task") {
				values.Set(form.FieldTask, opts.Task)
			}
			if flags.Changed("description") {
				values.Set(form.FieldDescription, opts.Description)
			}
			if flags.Changed("due") {
				values.Set(form.FieldDueDate, opts.Due)
			}

			in, err := c.Validator.TodoInput(values)
			if err != nil {
				return err
			}
			if err := todos.OpenEdit(todo.ID); err != nil {
				return err
			}
			if _, err := todos.Submit(cmd.Context(), in); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated todo %s\n", todo.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Task, "task", "", "New task name")
	cmd.Flags().StringVar(&opts.Description, "description", "", "New description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")

	return cmd
}

// newTodoRmCommand creates the todo rm subcommand.
func newTodoRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a to-do",
		Long:    `Delete a to-do. There is no confirmation.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todos, err := c.Todos(cmd.Context())
			if err != nil {
				return err
			}
			todo, err := todos.Resolve(args[0])
			if err != nil {
				return err
			}
			if err := todos.Delete(cmd.Context(), todo.ID); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted todo %s\n", todo.ID)
			return nil
		},
	}

	return cmd
}

// displayID shortens id unless full is set.
func displayID(id string, full bool) string {
	if full || len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// oneLine collapses line breaks so a value fits one table row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
