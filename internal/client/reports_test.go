package client

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

func TestReportsRun(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, companyPath("/reports/ProfitAndLoss"), r.URL.Path)
		assert.Equal(t, "2026-01-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2026-03-31", r.URL.Query().Get("end_date"))
		assert.Equal(t, "65", r.URL.Query().Get("minorversion"))

		_, _ = w.Write([]byte(`{
			"Header":{"ReportName":"ProfitAndLoss","ReportBasis":"Accrual"},
			"Columns":{"Column":[{"ColTitle":"","ColType":"Account"},{"ColTitle":"Total","ColType":"Money"}]},
			"Rows":{"Row":[{"ColData":[{"value":"Income"},{"value":"1200.00"}]}]}
		}`))
	}))

	params := url.Values{}
	params.Set("start_date", "2026-01-01")
	params.Set("end_date", "2026-03-31")

	report, err := client.Reports().ProfitAndLoss(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "ProfitAndLoss", report.Header.ReportName)
	require.Len(t, report.Rows.Row, 1)
	assert.Equal(t, "1200.00", report.Rows.Row[0].ColData[1].Value)
}

func TestReportsNamedHelpers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		run  func(ctx context.Context, c qb.ReportsClient) error
	}{
		{
			name: "BalanceSheet",
			run: func(ctx context.Context, c qb.ReportsClient) error {
				_, err := c.BalanceSheet(ctx, nil)

				return err
			},
		},
		{
			name: "CashFlow",
			run: func(ctx context.Context, c qb.ReportsClient) error {
				_, err := c.CashFlow(ctx, nil)

				return err
			},
		},
		{
			name: "AgedReceivables",
			run: func(ctx context.Context, c qb.ReportsClient) error {
				_, err := c.AgedReceivables(ctx, nil)

				return err
			},
		},
		{
			name: "VendorBalance",
			run: func(ctx context.Context, c qb.ReportsClient) error {
				_, err := c.VendorBalance(ctx, nil)

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, companyPath("/reports/"+tt.name), r.URL.Path)

				_, _ = w.Write([]byte(`{"Header":{"ReportName":"` + tt.name + `"}}`))
			}))

			require.NoError(t, tt.run(context.Background(), client.Reports()))
		})
	}
}
