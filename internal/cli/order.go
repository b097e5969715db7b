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
	"github.com/runoshun/locrec/internal/manager"
	"github.com/runoshun/locrec/internal/tui"
)

// newOrderCommand creates the order command group.
func newOrderCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Manage the order list",
		Long:  `Create, edit, list and cancel orders.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newOrderListCommand(c))
	cmd.AddCommand(newOrderAddCommand(c))
	cmd.AddCommand(newOrderEditCommand(c))
	cmd.AddCommand(newOrderCancelCommand(c))

	return cmd
}

// newOrderListCommand creates the order list subcommand.
func newOrderListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Search string
		Status string
		Sort   string
		FullID bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List orders",
		Long: `Display the order list, newest first.

Output columns: ID, CUSTOMER, ORDER DATE, TOTAL, STATUS, PRODUCTS.

--search matches the order id (case-sensitive) or the customer name
(case-insensitive). --status accepts a stored value such as "Chờ xác nhận"
or one of pending, shipping, completed, cancelled. --sort orders by order date.

Examples:
  locrec order list --status pending
  locrec order list --search "văn a" --sort desc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := manager.Filter{Search: opts.Search}
			if opts.Status != "" && opts.Status != "all" {
				status, err := domain.ParseOrderStatus(opts.Status)
				if err != nil {
					return err
				}
				filter.Status = &status
			}
			dir, ok := manager.ParseSortDirection(opts.Sort)
			if !ok {
				return fmt.Errorf("invalid --sort %q (expected asc, desc or none)", opts.Sort)
			}

			orders, err := c.Orders(cmd.Context())
			if err != nil {
				return err
			}
			orders.SetFilter(filter)
			orders.SetSort(dir)

			printOrderList(cmd.OutOrStdout(), orders.Visible(), opts.FullID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "Match order id or customer")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Only orders with this status (all = no filter)")
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "Sort by order date: asc, desc or none")
	cmd.Flags().BoolVar(&opts.FullID, "full-id", false, "Show complete ids")

	return cmd
}

// printOrderList prints orders in tab-aligned columns.
func printOrderList(w io.Writer, orders []domain.Order, fullID bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tCUSTOMER\tORDER DATE\tTOTAL\tSTATUS\tPRODUCTS")
	for _, o := range orders {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			displayID(o.ID, fullID),
			o.Customer,
			o.OrderDate,
			form.FormatAmount(o.TotalAmount),
			o.Status,
			strings.Join(o.ProductNames(), ", "),
		)
	}
}

// newOrderAddCommand creates the order add subcommand.
func newOrderAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Customer string
		Date     string
		Status   string
		Products []string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an order",
		Long: `Create an order at the top of the list.

Products are picked from the catalog (Sản phẩm 1, Sản phẩm 2, Sản phẩm 3);
the total is computed from their prices.

Examples:
  locrec order add --customer "Nguyễn Văn A" --date 2024-05-02 \
    --product "Sản phẩm 1" --product "Sản phẩm 3"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values := form.Values{}
			values.Set(form.FieldCustomer, opts.Customer)
			values.Set(form.FieldOrderDate, opts.Date)
			values.Set(form.FieldStatus, opts.Status)
			values[form.FieldProducts] = opts.Products

			in, err := c.Validator.OrderInput(values)
			if err != nil {
				return err
			}

			orders, err := c.Orders(cmd.Context())
			if err != nil {
				return err
			}
			orders.OpenCreate()
			order, err := orders.Submit(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created order %s (total %s)\n", order.ID, form.FormatAmount(order.TotalAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Customer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Order date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Status, "status", string(domain.StatusPending), "Order status")
	cmd.Flags().StringArrayVar(&opts.Products, "product", nil, "Catalog product (can specify multiple)")

	return cmd
}

// newOrderEditCommand creates the order edit subcommand.
func newOrderEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Customer string
		Date     string
		Status   string
		Products []string
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an order",
		Long: `Edit the fields of an existing order. Fields without a flag keep their value.
--product replaces the whole selection.

Examples:
  locrec order edit 1a2b3c4d --status shipping
  locrec order edit 1a2b3c4d --product "Sản phẩm 2"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("customer") && !flags.Changed("date") && !flags.Changed("status") && !flags.Changed("product") {
				return errNoChanges
			}

			orders, err := c.Orders(cmd.Context())
			if err != nil {
				return err
			}
			order, err := orders.Resolve(args[0])
			if err != nil {
				return err
			}

			values := form.OrderValues(order)
			if flags.Changed("customer") {
				values.Set(form.FieldCustomer, opts.Customer)
			}
			if flags.Changed("date") {
				values.Set(form.FieldOrderDate, opts.Date)
			}
			if flags.Changed("status") {
				values.Set(form.FieldStatus, opts.Status)
			}
			if flags.Changed("product") {
				values[form.FieldProducts] = opts.Products
			}

			in, err := c.Validator.OrderInput(values)
			if err != nil {
				return err
			}
			if err := orders.OpenEdit(order.ID); err != nil {
				return err
			}
			updated, err := orders.Submit(cmd.Context(), in)
			if err != nil {
				orders.Close()
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated order %s (total %s)\n", updated.ID, form.FormatAmount(updated.TotalAmount))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Customer, "customer", "", "New customer name")
	cmd.Flags().StringVar(&opts.Date, "date", "", "New order date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.Status, "status", "", "New status")
	cmd.Flags().StringArrayVar(&opts.Products, "product", nil, "Catalog product (replaces the selection; can specify multiple)")

	return cmd
}

// newOrderCancelCommand creates the order cancel subcommand.
func newOrderCancelCommand(c *app.Container) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel a pending order",
		Long: `Cancel an order. Only orders in status "Chờ xác nhận" can be cancelled;
cancelling removes the order from the list.

Asks for confirmation unless --yes is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := c.Orders(cmd.Context())
			if err != nil {
				return err
			}
			order, err := orders.Resolve(args[0])
			if err != nil {
				return err
			}

			if err := orders.CheckCancel(order.ID); err != nil {
				if errors.Is(err, domain.ErrNotCancellable) {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", tui.CancelNoticeTitle, tui.CancelNoticeContent)
				}
				return err
			}

			if !yes {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s [y/N] ", tui.CancelConfirmTitle, tui.CancelConfirmContent(order.ID))
				var response string
				if _, scanErr := fmt.Fscanln(cmd.InOrStdin(), &response); scanErr != nil {
					// If scan fails (e.g. EOF), assume no
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "\n"+tui.CancelConfirmBack+".")
					return nil
				}
				if strings.ToLower(response) != "y" {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), tui.CancelConfirmBack+".")
					return nil
				}
			}

			if err := orders.Cancel(cmd.Context(), order.ID); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cancelled order %s\n", order.ID)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
