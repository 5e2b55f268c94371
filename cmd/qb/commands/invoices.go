package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// NewInvoicesCommand creates the invoices command group
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice"},
		Short:   "Manage invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesPDFCommand())
	cmd.AddCommand(newInvoicesSendCommand())
	cmd.AddCommand(newInvoicesVoidCommand())
	cmd.AddCommand(newInvoicesDeleteCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		limit    int
		customer string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			criteria := []qb.Criterion{}
			if customer != "" {
				criteria = append(criteria, qb.Criterion{Field: "CustomerRef", Value: customer})
			}

			criteria = append(criteria, qb.Criterion{Field: "limit", Value: limit})

			invoices, err := client.Invoices().Query(cmd.Context(), criteria)
			if err != nil {
				return err
			}

			return renderOutput(invoices, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Id", "Doc Number", "Customer", "Total", "Balance")

				for _, invoice := range invoices {
					customerName := ""
					if invoice.CustomerRef != nil {
						customerName = invoice.CustomerRef.Name
					}

					_ = table.Append(invoice.ID, invoice.DocNumber, customerName,
						fmt.Sprintf("%.2f", invoice.TotalAmt),
						fmt.Sprintf("%.2f", invoice.Balance))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum invoices to list")
	cmd.Flags().StringVar(&customer, "customer", "", "filter by customer id")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderOutput(invoice, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Id", invoice.ID)
				_ = table.Append("Doc Number", invoice.DocNumber)

				if invoice.CustomerRef != nil {
					_ = table.Append("Customer", invoice.CustomerRef.Name)
				}

				if invoice.TxnDate != nil {
					_ = table.Append("Date", invoice.TxnDate.Format("2006-01-02"))
				}

				if invoice.DueDate != nil {
					_ = table.Append("Due", invoice.DueDate.Format("2006-01-02"))
				}

				_ = table.Append("Total", fmt.Sprintf("%.2f", invoice.TotalAmt))
				_ = table.Append("Balance", fmt.Sprintf("%.2f", invoice.Balance))
				_ = table.Append("Sync Token", invoice.SyncToken)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newInvoicesPDFCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "pdf <id>",
		Short: "Download an invoice as PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			pdf, err := client.Invoices().PDF(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = fmt.Sprintf("invoice-%s.pdf", args[0])
			}

			if err := os.WriteFile(outPath, pdf, 0o600); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}

			fmt.Printf("Wrote %s (%d bytes)\n", outPath, len(pdf))

			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output file (default invoice-<id>.pdf)")

	return cmd
}

func newInvoicesSendCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "send <id>",
		Short: "Email an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Send(cmd.Context(), args[0], email)
			if err != nil {
				return err
			}

			fmt.Printf("Sent invoice %s (status %s)\n", invoice.ID, invoice.EmailStatus)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "recipient (default the invoice billing email)")

	return cmd
}

func newInvoicesVoidCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "void <id>",
		Short: "Void an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			voided, err := client.Invoices().Void(cmd.Context(), invoice)
			if err != nil {
				return err
			}

			fmt.Printf("Voided invoice %s\n", voided.ID)

			return nil
		},
	}
}

func newInvoicesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			deleted, err := client.Invoices().DeleteByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted invoice %s\n", deleted.ID)

			return nil
		},
	}
}
