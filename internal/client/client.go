// Package client implements the qb.Client interface over the accounting
// and payments HTTP APIs.
package client

import (
	"context"
	"strconv"
	"time"

	"github.com/fivetwenty-io/quickbooks-client/internal/auth"
	"github.com/fivetwenty-io/quickbooks-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/quickbooks-client/internal/http"
	"github.com/fivetwenty-io/quickbooks-client/pkg/qb"
)

// Client implements the qb.Client interface.
type Client struct {
	hc           *internalhttp.Client
	paymentsHC   *internalhttp.Client
	config       *qb.Config
	realmID      string
	minorVersion string
	revoker      tokenRevoker

	customers      *entityClient[qb.Customer]
	invoices       *invoicesClient
	estimates      *pdfEntityClient[qb.Estimate]
	payments       *entityClient[qb.Payment]
	creditMemos    *entityClient[qb.CreditMemo]
	salesReceipts  *pdfEntityClient[qb.SalesReceipt]
	vendors        *entityClient[qb.Vendor]
	bills          *entityClient[qb.Bill]
	billPayments   *entityClient[qb.BillPayment]
	purchases      *entityClient[qb.Purchase]
	purchaseOrders *entityClient[qb.PurchaseOrder]
	accounts       *entityClient[qb.Account]
	items          *entityClient[qb.Item]
	journalEntries *entityClient[qb.JournalEntry]
	timeActivities *entityClient[qb.TimeActivity]

	query   *queryClient
	reports *reportsClient
	cdc     *cdcClient
	batch   *batchClient
	charges *chargesClient
}

// New creates a client from config. The accounting transport is rooted
// at the company path; the payments transport shares credentials but
// talks to the Payments API host.
func New(config *qb.Config) (*Client, error) {
	if config == nil {
		return nil, qb.ErrConfigRequired
	}

	if config.RealmID == "" {
		return nil, qb.ErrRealmIDRequired
	}

	tokenManager, httpOpts := buildAuth(config)
	httpOpts = append(httpOpts, buildTransportOptions(config)...)

	apiEndpoint := config.APIEndpoint
	if apiEndpoint == "" {
		apiEndpoint = constants.ProductionAPIEndpoint
		if config.Sandbox {
			apiEndpoint = constants.SandboxAPIEndpoint
		}
	}

	paymentsEndpoint := config.PaymentsEndpoint
	if paymentsEndpoint == "" {
		paymentsEndpoint = constants.ProductionPaymentsEndpoint
		if config.Sandbox {
			paymentsEndpoint = constants.SandboxPaymentsEndpoint
		}
	}

	minorVersion := strconv.Itoa(constants.DefaultMinorVersion)
	if config.MinorVersion > 0 {
		minorVersion = strconv.Itoa(config.MinorVersion)
	}

	client := &Client{
		hc: internalhttp.NewClient(
			apiEndpoint+constants.AccountingBasePath+config.RealmID,
			tokenManager, httpOpts...),
		paymentsHC: internalhttp.NewClient(
			paymentsEndpoint+constants.PaymentsBasePath,
			tokenManager, httpOpts...),
		config:       config,
		realmID:      config.RealmID,
		minorVersion: minorVersion,
	}

	if revoker, ok := tokenManager.(tokenRevoker); ok {
		client.revoker = revoker
	}

	client.initializeEntityClients()

	return client, nil
}

// buildAuth resolves the credential precedence: OAuth 1.0a signing, then
// the OAuth2 refresh grant, then a static bearer token, then nothing.
func buildAuth(config *qb.Config) (auth.TokenManager, []internalhttp.Option) {
	if config.ConsumerKey != "" && config.ConsumerSecret != "" &&
		config.AccessToken != "" && config.AccessSecret != "" {
		signer := auth.NewOAuth1Client(config.ConsumerKey, config.ConsumerSecret,
			config.AccessToken, config.AccessSecret)

		return nil, []internalhttp.Option{internalhttp.WithHTTPClient(signer)}
	}

	if config.ClientID != "" && config.ClientSecret != "" && config.RefreshToken != "" {
		oauthConfig := &auth.OAuth2Config{
			TokenURL:     config.TokenURL,
			RevokeURL:    config.RevokeURL,
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RefreshToken: config.RefreshToken,
			AccessToken:  config.AccessToken,
		}

		if config.TokenPersister != nil {
			return auth.NewPersistingTokenManager(oauthConfig, config.TokenPersister), nil
		}

		return auth.NewOAuth2TokenManager(oauthConfig), nil
	}

	if config.AccessToken != "" {
		return &staticTokenManager{token: config.AccessToken}, nil
	}

	return nil, nil
}

func buildTransportOptions(config *qb.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		waitMin := config.RetryWaitMin
		if waitMin <= 0 {
			waitMin = constants.DefaultRetryWaitMin
		}

		waitMax := config.RetryWaitMax
		if waitMax <= 0 {
			waitMax = constants.DefaultRetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	return opts
}

func (c *Client) initializeEntityClients() {
	c.customers = newEntityClient[qb.Customer](c, "Customer")
	c.invoices = &invoicesClient{pdfEntityClient[qb.Invoice]{newEntityClient[qb.Invoice](c, "Invoice")}}
	c.estimates = &pdfEntityClient[qb.Estimate]{newEntityClient[qb.Estimate](c, "Estimate")}
	c.payments = newEntityClient[qb.Payment](c, "Payment")
	c.creditMemos = newEntityClient[qb.CreditMemo](c, "CreditMemo")
	c.salesReceipts = &pdfEntityClient[qb.SalesReceipt]{newEntityClient[qb.SalesReceipt](c, "SalesReceipt")}
	c.vendors = newEntityClient[qb.Vendor](c, "Vendor")
	c.bills = newEntityClient[qb.Bill](c, "Bill")
	c.billPayments = newEntityClient[qb.BillPayment](c, "BillPayment")
	c.purchases = newEntityClient[qb.Purchase](c, "Purchase")
	c.purchaseOrders = newEntityClient[qb.PurchaseOrder](c, "PurchaseOrder")
	c.accounts = newEntityClient[qb.Account](c, "Account")
	c.items = newEntityClient[qb.Item](c, "Item")
	c.journalEntries = newEntityClient[qb.JournalEntry](c, "JournalEntry")
	c.timeActivities = newEntityClient[qb.TimeActivity](c, "TimeActivity")

	c.query = &queryClient{client: c}
	c.reports = &reportsClient{client: c}
	c.cdc = &cdcClient{client: c}
	c.batch = &batchClient{client: c}
	c.charges = &chargesClient{client: c}
}

// Customers returns the Customer entity client.
func (c *Client) Customers() qb.CustomersClient { return c.customers }

// Invoices returns the Invoice entity client.
func (c *Client) Invoices() qb.InvoicesClient { return c.invoices }

// Estimates returns the Estimate entity client.
func (c *Client) Estimates() qb.EstimatesClient { return c.estimates }

// Payments returns the Payment entity client.
func (c *Client) Payments() qb.PaymentsClient { return c.payments }

// CreditMemos returns the CreditMemo entity client.
func (c *Client) CreditMemos() qb.CreditMemosClient { return c.creditMemos }

// SalesReceipts returns the SalesReceipt entity client.
func (c *Client) SalesReceipts() qb.SalesReceiptsClient { return c.salesReceipts }

// Vendors returns the Vendor entity client.
func (c *Client) Vendors() qb.VendorsClient { return c.vendors }

// Bills returns the Bill entity client.
func (c *Client) Bills() qb.BillsClient { return c.bills }

// BillPayments returns the BillPayment entity client.
func (c *Client) BillPayments() qb.BillPaymentsClient { return c.billPayments }

// Purchases returns the Purchase entity client.
func (c *Client) Purchases() qb.PurchasesClient { return c.purchases }

// PurchaseOrders returns the PurchaseOrder entity client.
func (c *Client) PurchaseOrders() qb.PurchaseOrdersClient { return c.purchaseOrders }

// Accounts returns the Account entity client.
func (c *Client) Accounts() qb.AccountsClient { return c.accounts }

// Items returns the Item entity client.
func (c *Client) Items() qb.ItemsClient { return c.items }

// JournalEntries returns the JournalEntry entity client.
func (c *Client) JournalEntries() qb.JournalEntriesClient { return c.journalEntries }

// TimeActivities returns the TimeActivity entity client.
func (c *Client) TimeActivities() qb.TimeActivitiesClient { return c.timeActivities }

// Query returns the raw query client.
func (c *Client) Query() qb.QueryClient { return c.query }

// Reports returns the reports client.
func (c *Client) Reports() qb.ReportsClient { return c.reports }

// ChangeDataCapture returns the CDC client.
func (c *Client) ChangeDataCapture() qb.CDCClient { return c.cdc }

// Batch returns the batch client.
func (c *Client) Batch() qb.BatchClient { return c.batch }

// Charges returns the Payments API charge client.
func (c *Client) Charges() qb.ChargesClient { return c.charges }

// tokenRevoker is satisfied by the OAuth2 token managers; static and
// OAuth 1.0a credentials cannot be revoked through the token endpoint.
type tokenRevoker interface {
	Revoke(ctx context.Context) error
}

// staticTokenManager serves a fixed bearer token.
type staticTokenManager struct {
	token string
}

func (m *staticTokenManager) GetToken(_ context.Context) (string, error) {
	return m.token, nil
}

func (m *staticTokenManager) RefreshToken(_ context.Context) error {
	return qb.ErrStaticTokenCannotRefresh
}

func (m *staticTokenManager) SetToken(token string, _ time.Time) {
	m.token = token
}

// loggerAdapter bridges qb.Logger to the transport's logger interface.
type loggerAdapter struct {
	logger qb.Logger
}

func (a *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, fields)
}

func (a *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, fields)
}

func (a *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, fields)
}

func (a *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, fields)
}
