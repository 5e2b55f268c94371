package qb

import "time"

// Charge statuses returned by the Payments API.
const (
	ChargeStatusAuthorized = "AUTHORIZED"
	ChargeStatusCaptured   = "CAPTURED"
	ChargeStatusDeclined   = "DECLINED"
	ChargeStatusSettled    = "SETTLED"
	ChargeStatusRefunded   = "REFUNDED"
)

// Card is the card block on charge requests and responses. Responses
// come back with the number masked.
type Card struct {
	Number   string       `json:"number,omitempty"   yaml:"number,omitempty"`
	ExpMonth string       `json:"expMonth,omitempty" yaml:"exp_month,omitempty"`
	ExpYear  string       `json:"expYear,omitempty"  yaml:"exp_year,omitempty"`
	CVC      string       `json:"cvc,omitempty"      yaml:"cvc,omitempty"`
	Name     string       `json:"name,omitempty"     yaml:"name,omitempty"`
	Address  *CardAddress `json:"address,omitempty" yaml:"address,omitempty"`
}

// CardAddress is the billing address block on a card.
type CardAddress struct {
	StreetAddress string `json:"streetAddress,omitempty" yaml:"street_address,omitempty"`
	City          string `json:"city,omitempty"          yaml:"city,omitempty"`
	Region        string `json:"region,omitempty"        yaml:"region,omitempty"`
	Country       string `json:"country,omitempty"       yaml:"country,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"    yaml:"postal_code,omitempty"`
}

// ChargeRequest creates a charge. Amount is a decimal string, e.g.
// "10.55". Capture false authorizes only; capture later with Capture.
type ChargeRequest struct {
	Amount      string         `json:"amount"                yaml:"amount"`
	Currency    string         `json:"currency"              yaml:"currency"`
	Card        *Card          `json:"card,omitempty"        yaml:"card,omitempty"`
	Token       string         `json:"token,omitempty"       yaml:"token,omitempty"`
	Capture     *bool          `json:"capture,omitempty"     yaml:"capture,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Context     *ChargeContext `json:"context,omitempty" yaml:"context,omitempty"`
}

// ChargeContext carries processing options.
type ChargeContext struct {
	Mobile      *bool  `json:"mobile,omitempty"      yaml:"mobile,omitempty"`
	IsEcommerce *bool  `json:"isEcommerce,omitempty" yaml:"is_ecommerce,omitempty"`
	Tax         string `json:"tax,omitempty"         yaml:"tax,omitempty"`
}

// Charge is a card charge record.
type Charge struct {
	ID          string    `json:"id,omitempty"          yaml:"id,omitempty"`
	Created     time.Time `json:"created,omitempty"     yaml:"created,omitempty"`
	Status      string    `json:"status,omitempty"      yaml:"status,omitempty"`
	Amount      string    `json:"amount,omitempty"      yaml:"amount,omitempty"`
	Currency    string    `json:"currency,omitempty"    yaml:"currency,omitempty"`
	Card        *Card     `json:"card,omitempty"        yaml:"card,omitempty"`
	Capture     *bool     `json:"capture,omitempty"     yaml:"capture,omitempty"`
	AuthCode    string    `json:"authCode,omitempty"    yaml:"auth_code,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	AvsStreet   string    `json:"avsStreet,omitempty"   yaml:"avs_street,omitempty"`
	AvsZip      string    `json:"avsZip,omitempty"      yaml:"avs_zip,omitempty"`
}

// CaptureRequest captures a previously authorized charge.
type CaptureRequest struct {
	Amount      string         `json:"amount"                yaml:"amount"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Context     *ChargeContext `json:"context,omitempty" yaml:"context,omitempty"`
}

// RefundRequest refunds all or part of a settled charge.
type RefundRequest struct {
	Amount      string         `json:"amount"                yaml:"amount"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Context     *ChargeContext `json:"context,omitempty" yaml:"context,omitempty"`
}

// ChargeRefund is a refund record attached to a charge.
type ChargeRefund struct {
	ID          string         `json:"id,omitempty"          yaml:"id,omitempty"`
	Created     time.Time      `json:"created,omitempty"     yaml:"created,omitempty"`
	Status      string         `json:"status,omitempty"      yaml:"status,omitempty"`
	Amount      string         `json:"amount,omitempty"      yaml:"amount,omitempty"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Context     *ChargeContext `json:"context,omitempty" yaml:"context,omitempty"`
}
