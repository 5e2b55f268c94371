package commands

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// NewReportCommand creates the report command
func NewReportCommand() *cobra.Command {
	var (
		startDate string
		endDate   string
		basis     string
	)

	cmd := &cobra.Command{
		Use:   "report <name>",
		Short: "Run a financial report",
		Long: `Run a named financial report, for example:

  qb report ProfitAndLoss --start-date 2026-01-01 --end-date 2026-03-31
  qb report BalanceSheet --basis Cash`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return ErrReportNameRequired
			}

			client, err := newClient()
			if err != nil {
				return err
			}

			params := url.Values{}
			if startDate != "" {
				params.Set("start_date", startDate)
			}

			if endDate != "" {
				params.Set("end_date", endDate)
			}

			if basis != "" {
				params.Set("accounting_method", basis)
			}

			report, err := client.Reports().Run(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			return renderOutput(report, func() error {
				return renderReportTable(report)
			})
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "report period start (yyyy-mm-dd)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "report period end (yyyy-mm-dd)")
	cmd.Flags().StringVar(&basis, "basis", "", "accounting method (Accrual or Cash)")

	return cmd
}

func renderReportTable(report *qb.Report) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := make([]string, 0, len(report.Columns.Column))
	for _, column := range report.Columns.Column {
		headers = append(headers, column.ColTitle)
	}

	if len(headers) > 0 {
		table.Header(toAnySlice(headers)...)
	}

	appendReportRows(table, report.Rows.Row, 0)

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if report.Header.ReportName != "" {
		fmt.Printf("%s (%s basis)\n", report.Header.ReportName, report.Header.ReportBasis)
	}

	return nil
}

// appendReportRows walks the row tree, indenting nested sections.
func appendReportRows(table *tablewriter.Table, rows []qb.ReportRow, depth int) {
	indent := strings.Repeat("  ", depth)

	for _, row := range rows {
		if row.Header != nil {
			appendCells(table, row.Header.ColData, indent)
		}

		appendCells(table, row.ColData, indent)

		if row.Rows != nil {
			appendReportRows(table, row.Rows.Row, depth+1)
		}

		if row.Summary != nil {
			appendCells(table, row.Summary.ColData, indent)
		}
	}
}

func appendCells(table *tablewriter.Table, cells []qb.ReportCell, indent string) {
	if len(cells) == 0 {
		return
	}

	values := make([]string, 0, len(cells))
	for i, cell := range cells {
		value := cell.Value
		if i == 0 {
			value = indent + value
		}

		values = append(values, value)
	}

	_ = table.Append(toAnySlice(values)...)
}

func toAnySlice(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}
