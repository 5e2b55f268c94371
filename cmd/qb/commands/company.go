package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCompanyCommand creates the company command group
func NewCompanyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "company",
		Short: "Inspect the connected company",
	}

	cmd.AddCommand(newCompanyInfoCommand())
	cmd.AddCommand(newCompanyPreferencesCommand())

	return cmd
}

func newCompanyInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the company profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			info, err := client.GetCompanyInfo(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(info, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Company Name", info.CompanyName)
				_ = table.Append("Legal Name", info.LegalName)
				_ = table.Append("Country", info.Country)
				_ = table.Append("Fiscal Year Start", info.FiscalYearStartMonth)

				if info.CompanyStartDate != nil {
					_ = table.Append("Company Start", info.CompanyStartDate.Format("2006-01-02"))
				}

				if info.Email != nil {
					_ = table.Append("Email", info.Email.Address)
				}

				if info.PrimaryPhone != nil {
					_ = table.Append("Phone", info.PrimaryPhone.FreeFormNumber)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}

func newCompanyPreferencesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preferences",
		Short: "Show company preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			prefs, err := client.GetPreferences(cmd.Context())
			if err != nil {
				return err
			}

			return renderOutput(prefs, func() error {
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Section", "Settings")

				sections := map[string]map[string]interface{}{
					"Accounting":    prefs.AccountingInfoPrefs,
					"Sales Forms":   prefs.SalesFormsPrefs,
					"Time Tracking": prefs.TimeTrackingPrefs,
					"Tax":           prefs.TaxPrefs,
					"Currency":      prefs.CurrencyPrefs,
				}

				names := make([]string, 0, len(sections))
				for name := range sections {
					names = append(names, name)
				}

				sort.Strings(names)

				for _, name := range names {
					_ = table.Append(name, fmt.Sprintf("%d settings", len(sections[name])))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				return nil
			})
		},
	}
}
