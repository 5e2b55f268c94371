package qb

import (
	"context"
	"net/url"
	"time"
)

// SalesClients provides access to sales-side transaction entity clients.
type SalesClients interface {
	Customers() CustomersClient
	Invoices() InvoicesClient
	Estimates() EstimatesClient
	Payments() PaymentsClient
	CreditMemos() CreditMemosClient
	SalesReceipts() SalesReceiptsClient
}

// ExpenseClients provides access to purchasing-side entity clients.
type ExpenseClients interface {
	Vendors() VendorsClient
	Bills() BillsClient
	BillPayments() BillPaymentsClient
	Purchases() PurchasesClient
	PurchaseOrders() PurchaseOrdersClient
}

// LedgerClients provides access to list and ledger entity clients.
type LedgerClients interface {
	Accounts() AccountsClient
	Items() ItemsClient
	JournalEntries() JournalEntriesClient
	TimeActivities() TimeActivitiesClient
}

// PlatformClients provides access to the cross-entity API surfaces.
type PlatformClients interface {
	Query() QueryClient
	Reports() ReportsClient
	ChangeDataCapture() CDCClient
	Batch() BatchClient
	Charges() ChargesClient
}

// CompanyClient provides access to company-scoped singletons.
type CompanyClient interface {
	GetCompanyInfo(ctx context.Context) (*CompanyInfo, error)
	GetPreferences(ctx context.Context) (*Preferences, error)

	// RevokeToken disconnects the company by revoking the OAuth2
	// refresh token. Only clients built with OAuth2 credentials
	// support this.
	RevokeToken(ctx context.Context) error
}

type Client interface {
	// Composite interfaces for related entity groups
	SalesClients
	ExpenseClients
	LedgerClients
	PlatformClients
	CompanyClient
}

// EntityCRUD is the operation set shared by every entity client. Delete
// takes a full entity because the API requires the current record (at
// minimum Id and SyncToken) on deletes; DeleteByID fetches it first.
type EntityCRUD[T any] interface {
	Create(ctx context.Context, entity *T) (*T, error)
	Get(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, entity *T) (*T, error)
	Delete(ctx context.Context, entity *T) (*T, error)
	DeleteByID(ctx context.Context, id string) (*T, error)
	Query(ctx context.Context, criteria interface{}) ([]T, error)
	QueryAll(ctx context.Context, criteria interface{}) ([]T, error)
	Count(ctx context.Context, criteria interface{}) (int, error)
}

// PDFClient is implemented by entity clients whose entities can be
// rendered as PDF and emailed by the platform.
type PDFClient[T any] interface {
	PDF(ctx context.Context, id string) ([]byte, error)
	Send(ctx context.Context, id, email string) (*T, error)
}

// CustomersClient manages Customer entities.
type CustomersClient interface {
	EntityCRUD[Customer]
}

// InvoicesClient manages Invoice entities.
type InvoicesClient interface {
	EntityCRUD[Invoice]
	PDFClient[Invoice]
	Void(ctx context.Context, invoice *Invoice) (*Invoice, error)
}

// EstimatesClient manages Estimate entities.
type EstimatesClient interface {
	EntityCRUD[Estimate]
	PDFClient[Estimate]
}

// PaymentsClient manages Payment entities (received payments, not card
// charges; see ChargesClient for the Payments API).
type PaymentsClient interface {
	EntityCRUD[Payment]
}

// CreditMemosClient manages CreditMemo entities.
type CreditMemosClient interface {
	EntityCRUD[CreditMemo]
}

// SalesReceiptsClient manages SalesReceipt entities.
type SalesReceiptsClient interface {
	EntityCRUD[SalesReceipt]
	PDFClient[SalesReceipt]
}

// VendorsClient manages Vendor entities.
type VendorsClient interface {
	EntityCRUD[Vendor]
}

// BillsClient manages Bill entities.
type BillsClient interface {
	EntityCRUD[Bill]
}

// BillPaymentsClient manages BillPayment entities.
type BillPaymentsClient interface {
	EntityCRUD[BillPayment]
}

// PurchasesClient manages Purchase entities.
type PurchasesClient interface {
	EntityCRUD[Purchase]
}

// PurchaseOrdersClient manages PurchaseOrder entities.
type PurchaseOrdersClient interface {
	EntityCRUD[PurchaseOrder]
}

// AccountsClient manages Account entities.
type AccountsClient interface {
	EntityCRUD[Account]
}

// ItemsClient manages Item entities.
type ItemsClient interface {
	EntityCRUD[Item]
}

// JournalEntriesClient manages JournalEntry entities.
type JournalEntriesClient interface {
	EntityCRUD[JournalEntry]
}

// TimeActivitiesClient manages TimeActivity entities.
type TimeActivitiesClient interface {
	EntityCRUD[TimeActivity]
}

// QueryClient executes raw SELECT statements against the query endpoint.
type QueryClient interface {
	// Raw runs a full SELECT statement verbatim and returns the
	// QueryResponse envelope with entity arrays still encoded.
	Raw(ctx context.Context, query string) (*QueryResponse, error)
}

// ReportsClient runs the reporting endpoints.
type ReportsClient interface {
	Run(ctx context.Context, name string, params url.Values) (*Report, error)
	ProfitAndLoss(ctx context.Context, params url.Values) (*Report, error)
	BalanceSheet(ctx context.Context, params url.Values) (*Report, error)
	CashFlow(ctx context.Context, params url.Values) (*Report, error)
	TrialBalance(ctx context.Context, params url.Values) (*Report, error)
	GeneralLedger(ctx context.Context, params url.Values) (*Report, error)
	CustomerBalance(ctx context.Context, params url.Values) (*Report, error)
	AgedReceivables(ctx context.Context, params url.Values) (*Report, error)
	AgedPayables(ctx context.Context, params url.Values) (*Report, error)
	VendorBalance(ctx context.Context, params url.Values) (*Report, error)
}

// CDCClient reads the change data capture endpoint.
type CDCClient interface {
	// Changes returns everything mutated since the given timestamp for
	// the named entity types.
	Changes(ctx context.Context, entities []string, since time.Time) (*ChangeSet, error)
}

// BatchClient executes batched operations in a single round trip per
// chunk of thirty items.
type BatchClient interface {
	Execute(ctx context.Context, items []BatchItemRequest) ([]BatchItemResponse, error)
}

// ChargesClient talks to the separate Payments API for card charges.
type ChargesClient interface {
	Charge(ctx context.Context, charge *ChargeRequest) (*Charge, error)
	GetCharge(ctx context.Context, id string) (*Charge, error)
	Capture(ctx context.Context, id string, capture *CaptureRequest) (*Charge, error)
	Refund(ctx context.Context, id string, refund *RefundRequest) (*ChargeRefund, error)
	GetRefund(ctx context.Context, chargeID, refundID string) (*ChargeRefund, error)
}

// TokenPersister stores rotated OAuth2 token pairs. The platform
// invalidates the old refresh token on every refresh, so a process that
// wants to survive restarts must persist the rotated pair somewhere
// durable (the CLI writes it back to its config file).
type TokenPersister interface {
	UpdateTokens(accessToken string, expiresAt time.Time, refreshToken string) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a qb.Client.
//
// # Authentication precedence
//
//  1. ConsumerKey/ConsumerSecret + AccessToken/AccessSecret: requests are
//     signed with OAuth 1.0a.
//  2. ClientID/ClientSecret + RefreshToken: bearer tokens are obtained and
//     renewed via the OAuth2 refresh_token grant against the Intuit token
//     endpoint. An AccessToken, if also present, seeds the manager.
//  3. AccessToken alone: used directly as a static Bearer token.
//  4. No credentials: requests are sent unauthenticated (only useful
//     against a stub server).
//
// # Endpoints
//
// Sandbox selects the sandbox accounting and payments hosts. APIEndpoint
// and PaymentsEndpoint override either host explicitly; overrides win over
// Sandbox.
type Config struct {
	// RealmID is the company id scoping all accounting API calls.
	RealmID string

	// Sandbox routes requests to the sandbox hosts.
	Sandbox bool
	// APIEndpoint overrides the accounting API base URL.
	APIEndpoint string
	// PaymentsEndpoint overrides the Payments API base URL.
	PaymentsEndpoint string
	// TokenURL overrides the OAuth2 token endpoint used for refresh.
	TokenURL string
	// RevokeURL overrides the OAuth2 token revocation endpoint.
	RevokeURL string
	// MinorVersion is appended to every accounting request as the
	// minorversion query parameter. Zero means the API default.
	MinorVersion int

	// OAuth 1.0a credentials.
	ConsumerKey    string
	ConsumerSecret string
	AccessSecret   string

	// OAuth2 / bearer credentials.
	AccessToken  string
	RefreshToken string
	ClientID     string
	ClientSecret string

	// TokenPersister, when set alongside OAuth2 credentials, receives
	// every rotated token pair.
	TokenPersister TokenPersister

	// HTTPTimeout: optional default HTTP timeout where supported. Most
	// client calls should rely on context timeouts.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for transient failures (>=500,
	// 429, and connection errors). If 0, a sensible default is used.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
