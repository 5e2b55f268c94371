package qb

import "time"

// Entity is the base embedded by every accounting entity. The API returns
// Id as a string, SyncToken as the optimistic-concurrency stamp that must
// accompany updates and deletes, and status "Deleted" on delete responses
// and CDC tombstones.
type Entity struct {
	ID        string    `json:"Id,omitempty"        yaml:"id,omitempty"`
	SyncToken string    `json:"SyncToken,omitempty" yaml:"sync_token,omitempty"`
	MetaData  *MetaData `json:"MetaData,omitempty"  yaml:"meta_data,omitempty"`
	Domain    string    `json:"domain,omitempty"    yaml:"domain,omitempty"`
	Sparse    bool      `json:"sparse,omitempty"    yaml:"sparse,omitempty"`
	Status    string    `json:"status,omitempty"    yaml:"status,omitempty"`
}

// EntityRef returns the identifier and sync token. It exists so generic
// code can reach the base fields through any concrete entity type.
func (e *Entity) EntityRef() (id, syncToken string) {
	return e.ID, e.SyncToken
}

// Deleted reports whether this record is a delete response or CDC tombstone.
func (e *Entity) Deleted() bool {
	return e.Status == "Deleted"
}

// MetaData carries the server-assigned audit timestamps.
type MetaData struct {
	CreateTime      time.Time `json:"CreateTime,omitempty"      yaml:"create_time,omitempty"`
	LastUpdatedTime time.Time `json:"LastUpdatedTime,omitempty" yaml:"last_updated_time,omitempty"`
}

// Ref is a reference to another entity by id, with an optional display name.
type Ref struct {
	Value string `json:"value"          yaml:"value"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
}

// NewRef builds a reference to the given entity id.
func NewRef(value string) *Ref {
	return &Ref{Value: value}
}

// EmailAddress represents an email address field.
type EmailAddress struct {
	Address string `json:"Address,omitempty" yaml:"address,omitempty"`
}

// TelephoneNumber represents a phone number field.
type TelephoneNumber struct {
	FreeFormNumber string `json:"FreeFormNumber,omitempty" yaml:"free_form_number,omitempty"`
}

// WebSiteAddress represents a website URI field.
type WebSiteAddress struct {
	URI string `json:"URI,omitempty" yaml:"uri,omitempty"`
}

// PhysicalAddress represents a postal address.
type PhysicalAddress struct {
	ID                     string `json:"Id,omitempty"                     yaml:"id,omitempty"`
	Line1                  string `json:"Line1,omitempty"                  yaml:"line1,omitempty"`
	Line2                  string `json:"Line2,omitempty"                  yaml:"line2,omitempty"`
	Line3                  string `json:"Line3,omitempty"                  yaml:"line3,omitempty"`
	City                   string `json:"City,omitempty"                   yaml:"city,omitempty"`
	Country                string `json:"Country,omitempty"                yaml:"country,omitempty"`
	CountrySubDivisionCode string `json:"CountrySubDivisionCode,omitempty" yaml:"country_sub_division_code,omitempty"`
	PostalCode             string `json:"PostalCode,omitempty"             yaml:"postal_code,omitempty"`
	Lat                    string `json:"Lat,omitempty"                    yaml:"lat,omitempty"`
	Long                   string `json:"Long,omitempty"                   yaml:"long,omitempty"`
}

// Date wraps a calendar date serialized as yyyy-mm-dd, the format
// transaction date fields use.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from a time, truncating to the calendar day.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}

	t, err := time.Parse(`"`+dateLayout+`"`, s)
	if err != nil {
		// Some report fields carry full timestamps in date positions.
		t, err = time.Parse(`"`+time.RFC3339+`"`, s)
		if err != nil {
			return err
		}
	}

	d.Time = t

	return nil
}

// Line is a transaction line. DetailType names which of the detail
// structs is populated.
type Line struct {
	ID                            string                         `json:"Id,omitempty"                            yaml:"id,omitempty"`
	LineNum                       int                            `json:"LineNum,omitempty"                       yaml:"line_num,omitempty"`
	Description                   string                         `json:"Description,omitempty"                   yaml:"description,omitempty"`
	Amount                        float64                        `json:"Amount"                                  yaml:"amount"`
	DetailType                    string                         `json:"DetailType"                              yaml:"detail_type"`
	SalesItemLineDetail           *SalesItemLineDetail           `json:"SalesItemLineDetail,omitempty"           yaml:"sales_item_line_detail,omitempty"`
	ItemBasedExpenseLineDetail    *ItemBasedExpenseLineDetail    `json:"ItemBasedExpenseLineDetail,omitempty"    yaml:"item_based_expense_line_detail,omitempty"`
	AccountBasedExpenseLineDetail *AccountBasedExpenseLineDetail `json:"AccountBasedExpenseLineDetail,omitempty" yaml:"account_based_expense_line_detail,omitempty"`
	JournalEntryLineDetail        *JournalEntryLineDetail        `json:"JournalEntryLineDetail,omitempty"        yaml:"journal_entry_line_detail,omitempty"`
	DiscountLineDetail            *DiscountLineDetail            `json:"DiscountLineDetail,omitempty"            yaml:"discount_line_detail,omitempty"`
	LinkedTxn                     []LinkedTxn                    `json:"LinkedTxn,omitempty"                     yaml:"linked_txn,omitempty"`
}

// Line detail type names.
const (
	SalesItemLineDetailType           = "SalesItemLineDetail"
	ItemBasedExpenseLineDetailType    = "ItemBasedExpenseLineDetail"
	AccountBasedExpenseLineDetailType = "AccountBasedExpenseLineDetail"
	JournalEntryLineDetailType        = "JournalEntryLineDetail"
	DiscountLineDetailType            = "DiscountLineDetail"
)

// SalesItemLineDetail describes an itemized sales line.
type SalesItemLineDetail struct {
	ItemRef     *Ref    `json:"ItemRef,omitempty"   yaml:"item_ref,omitempty"`
	ClassRef    *Ref    `json:"ClassRef,omitempty"  yaml:"class_ref,omitempty"`
	UnitPrice   float64 `json:"UnitPrice,omitempty" yaml:"unit_price,omitempty"`
	Qty         float64 `json:"Qty,omitempty"       yaml:"qty,omitempty"`
	TaxCodeRef  *Ref    `json:"TaxCodeRef,omitempty" yaml:"tax_code_ref,omitempty"`
	ServiceDate *Date   `json:"ServiceDate,omitempty" yaml:"service_date,omitempty"`
}

// ItemBasedExpenseLineDetail describes an itemized purchase line.
type ItemBasedExpenseLineDetail struct {
	ItemRef        *Ref    `json:"ItemRef,omitempty"           yaml:"item_ref,omitempty"`
	CustomerRef    *Ref    `json:"CustomerRef,omitempty"       yaml:"customer_ref,omitempty"`
	UnitPrice      float64 `json:"UnitPrice,omitempty"         yaml:"unit_price,omitempty"`
	Qty            float64 `json:"Qty,omitempty"               yaml:"qty,omitempty"`
	BillableStatus string  `json:"BillableStatus,omitempty"    yaml:"billable_status,omitempty"`
	TaxCodeRef     *Ref    `json:"TaxCodeRef,omitempty"        yaml:"tax_code_ref,omitempty"`
}

// AccountBasedExpenseLineDetail describes an account-coded expense line.
type AccountBasedExpenseLineDetail struct {
	AccountRef     *Ref   `json:"AccountRef,omitempty"     yaml:"account_ref,omitempty"`
	CustomerRef    *Ref   `json:"CustomerRef,omitempty"    yaml:"customer_ref,omitempty"`
	ClassRef       *Ref   `json:"ClassRef,omitempty"       yaml:"class_ref,omitempty"`
	BillableStatus string `json:"BillableStatus,omitempty" yaml:"billable_status,omitempty"`
	TaxCodeRef     *Ref   `json:"TaxCodeRef,omitempty"     yaml:"tax_code_ref,omitempty"`
}

// JournalEntryLineDetail describes a journal posting line.
type JournalEntryLineDetail struct {
	PostingType string              `json:"PostingType,omitempty" yaml:"posting_type,omitempty"`
	AccountRef  *Ref                `json:"AccountRef,omitempty"  yaml:"account_ref,omitempty"`
	ClassRef    *Ref                `json:"ClassRef,omitempty"    yaml:"class_ref,omitempty"`
	Entity      *JournalEntryEntity `json:"Entity,omitempty" yaml:"entity,omitempty"`
}

// JournalEntryEntity names the customer/vendor/employee a journal line
// posts against.
type JournalEntryEntity struct {
	Type      string `json:"Type,omitempty"      yaml:"type,omitempty"`
	EntityRef *Ref   `json:"EntityRef,omitempty" yaml:"entity_ref,omitempty"`
}

// DiscountLineDetail describes a discount applied to a transaction.
type DiscountLineDetail struct {
	PercentBased       bool    `json:"PercentBased,omitempty"    yaml:"percent_based,omitempty"`
	DiscountPercent    float64 `json:"DiscountPercent,omitempty" yaml:"discount_percent,omitempty"`
	DiscountAccountRef *Ref    `json:"DiscountAccountRef,omitempty" yaml:"discount_account_ref,omitempty"`
}

// LinkedTxn links a line or transaction to another transaction.
type LinkedTxn struct {
	TxnID     string `json:"TxnId,omitempty"     yaml:"txn_id,omitempty"`
	TxnType   string `json:"TxnType,omitempty"   yaml:"txn_type,omitempty"`
	TxnLineID string `json:"TxnLineId,omitempty" yaml:"txn_line_id,omitempty"`
}

// TxnTaxDetail carries the computed tax block on transactions.
type TxnTaxDetail struct {
	TxnTaxCodeRef *Ref    `json:"TxnTaxCodeRef,omitempty" yaml:"txn_tax_code_ref,omitempty"`
	TotalTax      float64 `json:"TotalTax,omitempty"      yaml:"total_tax,omitempty"`
	TaxLine       []Line  `json:"TaxLine,omitempty"       yaml:"tax_line,omitempty"`
}

// CustomField is a user-defined field attached to transactions.
type CustomField struct {
	DefinitionID string `json:"DefinitionId,omitempty" yaml:"definition_id,omitempty"`
	Name         string `json:"Name,omitempty"         yaml:"name,omitempty"`
	Type         string `json:"Type,omitempty"         yaml:"type,omitempty"`
	StringValue  string `json:"StringValue,omitempty"  yaml:"string_value,omitempty"`
}
