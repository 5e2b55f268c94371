package constants

import "time"

// API endpoints.
const (
	// ProductionAPIEndpoint is the accounting API host for live companies.
	ProductionAPIEndpoint = "https://quickbooks.api.intuit.com"

	// SandboxAPIEndpoint is the accounting API host for sandbox companies.
	SandboxAPIEndpoint = "https://sandbox-quickbooks.api.intuit.com"

	// ProductionPaymentsEndpoint is the Payments API host for live companies.
	ProductionPaymentsEndpoint = "https://api.intuit.com"

	// SandboxPaymentsEndpoint is the Payments API host for sandbox companies.
	SandboxPaymentsEndpoint = "https://sandbox.api.intuit.com"

	// TokenEndpoint is the OAuth2 bearer token endpoint.
	TokenEndpoint = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"

	// RevokeEndpoint revokes OAuth2 refresh tokens.
	RevokeEndpoint = "https://developer.api.intuit.com/v2/oauth2/tokens/revoke"
)

// API path prefixes.
const (
	// AccountingBasePath prefixes every company-scoped accounting call;
	// the realm id is appended.
	AccountingBasePath = "/v3/company/"

	// PaymentsBasePath prefixes every Payments API call.
	PaymentsBasePath = "/quickbooks/v4/payments"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 4

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Query and batch limits.
const (
	// QueryPageSize is the page size QueryAll walks with; it is also the
	// server-side maximum for maxresults.
	QueryPageSize = 1000

	// BatchMaxItems is the server-side cap on items per batch request.
	BatchMaxItems = 30

	// BatchConcurrency bounds concurrent chunked batch requests.
	BatchConcurrency = 3
)

// Token management.
const (
	// TokenExpirationBuffer is the slack subtracted from token expiry so
	// a token is refreshed before it actually lapses mid-request.
	TokenExpirationBuffer = 30 * time.Second

	// DefaultMinorVersion is the minorversion query parameter sent when
	// the config leaves it unset.
	DefaultMinorVersion = 65
)

// Content types.
const (
	// ContentTypeJSON is the default content negotiation type.
	ContentTypeJSON = "application/json"

	// ContentTypePDF is requested on PDF-producing paths.
	ContentTypePDF = "application/pdf"
)
