package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// NewCustomersCommand creates the customers command group
func NewCustomersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "customers",
		Aliases: []string{"customer"},
		Short:   "Manage customers",
	}

	cmd.AddCommand(newCustomersListCommand())
	cmd.AddCommand(newCustomersGetCommand())
	cmd.AddCommand(newCustomersCreateCommand())
	cmd.AddCommand(newCustomersDeleteCommand())

	return cmd
}

func newCustomersListCommand() *cobra.Command {
	var (
		limit      int
		activeOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			criteria := []qb.Criterion{}
			if activeOnly {
				criteria = append(criteria, qb.Criterion{Field: "Active", Value: true})
			}

			criteria = append(criteria, qb.Criterion{Field: "limit", Value: limit})

			customers, err := client.Customers().Query(cmd.Context(), criteria)
			if err != nil {
				return err
			}

			return renderOutput(customers, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Id", "Display Name", "Email", "Balance")

				for _, customer := range customers {
					email := ""
					if customer.PrimaryEmailAddr != nil {
						email = customer.PrimaryEmailAddr.Address
					}

					_ = table.Append(customer.ID, customer.DisplayName, email,
						fmt.Sprintf("%.2f", customer.Balance))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "maximum customers to list")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "only active customers")

	return cmd
}

func newCustomersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			customer, err := client.Customers().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return renderOutput(customer, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Id", customer.ID)
				_ = table.Append("Display Name", customer.DisplayName)
				_ = table.Append("Company", customer.CompanyName)
				_ = table.Append("Balance", fmt.Sprintf("%.2f", customer.Balance))
				_ = table.Append("Sync Token", customer.SyncToken)

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newCustomersCreateCommand() *cobra.Command {
	var (
		name    string
		company string
		email   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return ErrNameRequired
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			customer := &qb.Customer{
				DisplayName: name,
				CompanyName: company,
			}

			if email != "" {
				customer.PrimaryEmailAddr = &qb.EmailAddress{Address: email}
			}

			created, err := client.Customers().Create(cmd.Context(), customer)
			if err != nil {
				return err
			}

			fmt.Printf("Created customer %s (id %s)\n", created.DisplayName, created.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	cmd.Flags().StringVar(&email, "email", "", "primary email address")

	return cmd
}

func newCustomersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			deleted, err := client.Customers().DeleteByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Deleted customer %s\n", deleted.ID)

			return nil
		},
	}
}
