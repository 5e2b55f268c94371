package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// reportsClient implements qb.ReportsClient.
type reportsClient struct {
	client *Client
}

// Run executes a named report with the given parameters.
func (r *reportsClient) Run(ctx context.Context, name string, params url.Values) (*qb.Report, error) {
	resp, err := r.client.hc.Get(ctx, "/reports/"+name, r.client.baseQuery(params))
	if err != nil {
		return nil, fmt.Errorf("running %s report: %w", name, err)
	}

	var report qb.Report
	if err := json.Unmarshal(resp.Body, &report); err != nil {
		return nil, fmt.Errorf("parsing %s report: %w", name, err)
	}

	return &report, nil
}

// ProfitAndLoss runs the ProfitAndLoss report.
func (r *reportsClient) ProfitAndLoss(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportProfitAndLoss, params)
}

// BalanceSheet runs the BalanceSheet report.
func (r *reportsClient) BalanceSheet(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportBalanceSheet, params)
}

// CashFlow runs the CashFlow report.
func (r *reportsClient) CashFlow(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportCashFlow, params)
}

// TrialBalance runs the TrialBalance report.
func (r *reportsClient) TrialBalance(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportTrialBalance, params)
}

// GeneralLedger runs the GeneralLedger report.
func (r *reportsClient) GeneralLedger(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportGeneralLedger, params)
}

// CustomerBalance runs the CustomerBalance report.
func (r *reportsClient) CustomerBalance(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportCustomerBalance, params)
}

// AgedReceivables runs the AgedReceivables report.
func (r *reportsClient) AgedReceivables(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportAgedReceivables, params)
}

// AgedPayables runs the AgedPayables report.
func (r *reportsClient) AgedPayables(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportAgedPayables, params)
}

// VendorBalance runs the VendorBalance report.
func (r *reportsClient) VendorBalance(ctx context.Context, params url.Values) (*qb.Report, error) {
	return r.Run(ctx, qb.ReportVendorBalance, params)
}
