package qb

// Customer represents a customer or job.
type Customer struct {
	Entity

	DisplayName             string           `json:"DisplayName,omitempty"          yaml:"display_name,omitempty"`
	Title                   string           `json:"Title,omitempty"                yaml:"title,omitempty"`
	GivenName               string           `json:"GivenName,omitempty"            yaml:"given_name,omitempty"`
	MiddleName              string           `json:"MiddleName,omitempty"           yaml:"middle_name,omitempty"`
	FamilyName              string           `json:"FamilyName,omitempty"           yaml:"family_name,omitempty"`
	Suffix                  string           `json:"Suffix,omitempty"               yaml:"suffix,omitempty"`
	CompanyName             string           `json:"CompanyName,omitempty"          yaml:"company_name,omitempty"`
	FullyQualifiedName      string           `json:"FullyQualifiedName,omitempty"   yaml:"fully_qualified_name,omitempty"`
	PrintOnCheckName        string           `json:"PrintOnCheckName,omitempty"     yaml:"print_on_check_name,omitempty"`
	Active                  *bool            `json:"Active,omitempty"               yaml:"active,omitempty"`
	PrimaryEmailAddr        *EmailAddress    `json:"PrimaryEmailAddr,omitempty"     yaml:"primary_email_addr,omitempty"`
	PrimaryPhone            *TelephoneNumber `json:"PrimaryPhone,omitempty"         yaml:"primary_phone,omitempty"`
	Mobile                  *TelephoneNumber `json:"Mobile,omitempty"               yaml:"mobile,omitempty"`
	WebAddr                 *WebSiteAddress  `json:"WebAddr,omitempty"              yaml:"web_addr,omitempty"`
	BillAddr                *PhysicalAddress `json:"BillAddr,omitempty"             yaml:"bill_addr,omitempty"`
	ShipAddr                *PhysicalAddress `json:"ShipAddr,omitempty"             yaml:"ship_addr,omitempty"`
	Notes                   string           `json:"Notes,omitempty"                yaml:"notes,omitempty"`
	Job                     *bool            `json:"Job,omitempty"                  yaml:"job,omitempty"`
	ParentRef               *Ref             `json:"ParentRef,omitempty"            yaml:"parent_ref,omitempty"`
	Taxable                 *bool            `json:"Taxable,omitempty"              yaml:"taxable,omitempty"`
	Balance                 float64          `json:"Balance,omitempty"              yaml:"balance,omitempty"`
	BalanceWithJobs         float64          `json:"BalanceWithJobs,omitempty"      yaml:"balance_with_jobs,omitempty"`
	CurrencyRef             *Ref             `json:"CurrencyRef,omitempty"          yaml:"currency_ref,omitempty"`
	PaymentMethodRef        *Ref             `json:"PaymentMethodRef,omitempty"     yaml:"payment_method_ref,omitempty"`
	DefaultTaxCodeRef       *Ref             `json:"DefaultTaxCodeRef,omitempty"    yaml:"default_tax_code_ref,omitempty"`
	PreferredDeliveryMethod string           `json:"PreferredDeliveryMethod,omitempty" yaml:"preferred_delivery_method,omitempty"`
}

// Invoice represents a sales invoice.
type Invoice struct {
	Entity

	DocNumber                    string           `json:"DocNumber,omitempty"    yaml:"doc_number,omitempty"`
	TxnDate                      *Date            `json:"TxnDate,omitempty"      yaml:"txn_date,omitempty"`
	DueDate                      *Date            `json:"DueDate,omitempty"      yaml:"due_date,omitempty"`
	CustomerRef                  *Ref             `json:"CustomerRef,omitempty"  yaml:"customer_ref,omitempty"`
	CustomerMemo                 *MemoRef         `json:"CustomerMemo,omitempty" yaml:"customer_memo,omitempty"`
	BillAddr                     *PhysicalAddress `json:"BillAddr,omitempty"     yaml:"bill_addr,omitempty"`
	ShipAddr                     *PhysicalAddress `json:"ShipAddr,omitempty"     yaml:"ship_addr,omitempty"`
	BillEmail                    *EmailAddress    `json:"BillEmail,omitempty"    yaml:"bill_email,omitempty"`
	Line                         []Line           `json:"Line,omitempty"         yaml:"line,omitempty"`
	TxnTaxDetail                 *TxnTaxDetail    `json:"TxnTaxDetail,omitempty" yaml:"txn_tax_detail,omitempty"`
	CustomField                  []CustomField    `json:"CustomField,omitempty"  yaml:"custom_field,omitempty"`
	LinkedTxn                    []LinkedTxn      `json:"LinkedTxn,omitempty"    yaml:"linked_txn,omitempty"`
	SalesTermRef                 *Ref             `json:"SalesTermRef,omitempty" yaml:"sales_term_ref,omitempty"`
	ClassRef                     *Ref             `json:"ClassRef,omitempty"     yaml:"class_ref,omitempty"`
	CurrencyRef                  *Ref             `json:"CurrencyRef,omitempty"  yaml:"currency_ref,omitempty"`
	ExchangeRate                 float64          `json:"ExchangeRate,omitempty" yaml:"exchange_rate,omitempty"`
	TotalAmt                     float64          `json:"TotalAmt,omitempty"     yaml:"total_amt,omitempty"`
	Balance                      float64          `json:"Balance,omitempty"      yaml:"balance,omitempty"`
	Deposit                      float64          `json:"Deposit,omitempty"      yaml:"deposit,omitempty"`
	PrivateNote                  string           `json:"PrivateNote,omitempty"  yaml:"private_note,omitempty"`
	EmailStatus                  string           `json:"EmailStatus,omitempty"  yaml:"email_status,omitempty"`
	PrintStatus                  string           `json:"PrintStatus,omitempty"  yaml:"print_status,omitempty"`
	ApplyTaxAfterDiscount        *bool            `json:"ApplyTaxAfterDiscount,omitempty" yaml:"apply_tax_after_discount,omitempty"`
	AllowOnlineCreditCardPayment *bool            `json:"AllowOnlineCreditCardPayment,omitempty" yaml:"allow_online_credit_card_payment,omitempty"`
	AllowOnlineACHPayment        *bool            `json:"AllowOnlineACHPayment,omitempty"        yaml:"allow_online_ach_payment,omitempty"`
}

// MemoRef is a memo field rendered on customer-facing documents.
type MemoRef struct {
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Estimate represents an estimate or quote.
type Estimate struct {
	Entity

	DocNumber      string           `json:"DocNumber,omitempty"    yaml:"doc_number,omitempty"`
	TxnDate        *Date            `json:"TxnDate,omitempty"      yaml:"txn_date,omitempty"`
	ExpirationDate *Date            `json:"ExpirationDate,omitempty" yaml:"expiration_date,omitempty"`
	TxnStatus      string           `json:"TxnStatus,omitempty"    yaml:"txn_status,omitempty"`
	CustomerRef    *Ref             `json:"CustomerRef,omitempty"  yaml:"customer_ref,omitempty"`
	CustomerMemo   *MemoRef         `json:"CustomerMemo,omitempty" yaml:"customer_memo,omitempty"`
	BillAddr       *PhysicalAddress `json:"BillAddr,omitempty"     yaml:"bill_addr,omitempty"`
	ShipAddr       *PhysicalAddress `json:"ShipAddr,omitempty"     yaml:"ship_addr,omitempty"`
	BillEmail      *EmailAddress    `json:"BillEmail,omitempty"    yaml:"bill_email,omitempty"`
	Line           []Line           `json:"Line,omitempty"         yaml:"line,omitempty"`
	TxnTaxDetail   *TxnTaxDetail    `json:"TxnTaxDetail,omitempty" yaml:"txn_tax_detail,omitempty"`
	LinkedTxn      []LinkedTxn      `json:"LinkedTxn,omitempty"    yaml:"linked_txn,omitempty"`
	TotalAmt       float64          `json:"TotalAmt,omitempty"     yaml:"total_amt,omitempty"`
	PrivateNote    string           `json:"PrivateNote,omitempty"  yaml:"private_note,omitempty"`
	EmailStatus    string           `json:"EmailStatus,omitempty"  yaml:"email_status,omitempty"`
	PrintStatus    string           `json:"PrintStatus,omitempty"  yaml:"print_status,omitempty"`
}

// Payment represents a payment received against invoices.
type Payment struct {
	Entity

	TxnDate             *Date   `json:"TxnDate,omitempty"             yaml:"txn_date,omitempty"`
	CustomerRef         *Ref    `json:"CustomerRef,omitempty"         yaml:"customer_ref,omitempty"`
	DepositToAccountRef *Ref    `json:"DepositToAccountRef,omitempty" yaml:"deposit_to_account_ref,omitempty"`
	PaymentMethodRef    *Ref    `json:"PaymentMethodRef,omitempty"    yaml:"payment_method_ref,omitempty"`
	PaymentRefNum       string  `json:"PaymentRefNum,omitempty"       yaml:"payment_ref_num,omitempty"`
	TotalAmt            float64 `json:"TotalAmt,omitempty"            yaml:"total_amt,omitempty"`
	UnappliedAmt        float64 `json:"UnappliedAmt,omitempty"        yaml:"unapplied_amt,omitempty"`
	ProcessPayment      *bool   `json:"ProcessPayment,omitempty"      yaml:"process_payment,omitempty"`
	CurrencyRef         *Ref    `json:"CurrencyRef,omitempty"         yaml:"currency_ref,omitempty"`
	Line                []Line  `json:"Line,omitempty"                yaml:"line,omitempty"`
	PrivateNote         string  `json:"PrivateNote,omitempty"         yaml:"private_note,omitempty"`
}

// CreditMemo represents a credit issued to a customer.
type CreditMemo struct {
	Entity

	DocNumber       string        `json:"DocNumber,omitempty"     yaml:"doc_number,omitempty"`
	TxnDate         *Date         `json:"TxnDate,omitempty"       yaml:"txn_date,omitempty"`
	CustomerRef     *Ref          `json:"CustomerRef,omitempty"   yaml:"customer_ref,omitempty"`
	CustomerMemo    *MemoRef      `json:"CustomerMemo,omitempty"  yaml:"customer_memo,omitempty"`
	BillEmail       *EmailAddress `json:"BillEmail,omitempty"     yaml:"bill_email,omitempty"`
	Line            []Line        `json:"Line,omitempty"          yaml:"line,omitempty"`
	TxnTaxDetail    *TxnTaxDetail `json:"TxnTaxDetail,omitempty"  yaml:"txn_tax_detail,omitempty"`
	TotalAmt        float64       `json:"TotalAmt,omitempty"      yaml:"total_amt,omitempty"`
	RemainingCredit float64       `json:"RemainingCredit,omitempty" yaml:"remaining_credit,omitempty"`
	PrivateNote     string        `json:"PrivateNote,omitempty"   yaml:"private_note,omitempty"`
}

// SalesReceipt represents a paid-at-sale receipt.
type SalesReceipt struct {
	Entity

	DocNumber           string        `json:"DocNumber,omitempty"           yaml:"doc_number,omitempty"`
	TxnDate             *Date         `json:"TxnDate,omitempty"             yaml:"txn_date,omitempty"`
	CustomerRef         *Ref          `json:"CustomerRef,omitempty"         yaml:"customer_ref,omitempty"`
	BillEmail           *EmailAddress `json:"BillEmail,omitempty"           yaml:"bill_email,omitempty"`
	Line                []Line        `json:"Line,omitempty"                yaml:"line,omitempty"`
	TxnTaxDetail        *TxnTaxDetail `json:"TxnTaxDetail,omitempty"        yaml:"txn_tax_detail,omitempty"`
	PaymentMethodRef    *Ref          `json:"PaymentMethodRef,omitempty"    yaml:"payment_method_ref,omitempty"`
	DepositToAccountRef *Ref          `json:"DepositToAccountRef,omitempty" yaml:"deposit_to_account_ref,omitempty"`
	PaymentRefNum       string        `json:"PaymentRefNum,omitempty"       yaml:"payment_ref_num,omitempty"`
	TotalAmt            float64       `json:"TotalAmt,omitempty"            yaml:"total_amt,omitempty"`
	Balance             float64       `json:"Balance,omitempty"             yaml:"balance,omitempty"`
	PrivateNote         string        `json:"PrivateNote,omitempty"         yaml:"private_note,omitempty"`
}

// Vendor represents a supplier.
type Vendor struct {
	Entity

	DisplayName      string           `json:"DisplayName,omitempty"      yaml:"display_name,omitempty"`
	GivenName        string           `json:"GivenName,omitempty"        yaml:"given_name,omitempty"`
	FamilyName       string           `json:"FamilyName,omitempty"       yaml:"family_name,omitempty"`
	CompanyName      string           `json:"CompanyName,omitempty"      yaml:"company_name,omitempty"`
	PrintOnCheckName string           `json:"PrintOnCheckName,omitempty" yaml:"print_on_check_name,omitempty"`
	Active           *bool            `json:"Active,omitempty"           yaml:"active,omitempty"`
	PrimaryEmailAddr *EmailAddress    `json:"PrimaryEmailAddr,omitempty" yaml:"primary_email_addr,omitempty"`
	PrimaryPhone     *TelephoneNumber `json:"PrimaryPhone,omitempty"     yaml:"primary_phone,omitempty"`
	WebAddr          *WebSiteAddress  `json:"WebAddr,omitempty"          yaml:"web_addr,omitempty"`
	BillAddr         *PhysicalAddress `json:"BillAddr,omitempty"         yaml:"bill_addr,omitempty"`
	TaxIdentifier    string           `json:"TaxIdentifier,omitempty"    yaml:"tax_identifier,omitempty"`
	AcctNum          string           `json:"AcctNum,omitempty"          yaml:"acct_num,omitempty"`
	Vendor1099       *bool            `json:"Vendor1099,omitempty"       yaml:"vendor_1099,omitempty"`
	Balance          float64          `json:"Balance,omitempty"          yaml:"balance,omitempty"`
	CurrencyRef      *Ref             `json:"CurrencyRef,omitempty"      yaml:"currency_ref,omitempty"`
	TermRef          *Ref             `json:"TermRef,omitempty"          yaml:"term_ref,omitempty"`
}

// Bill represents a bill from a vendor.
type Bill struct {
	Entity

	DocNumber    string      `json:"DocNumber,omitempty"   yaml:"doc_number,omitempty"`
	TxnDate      *Date       `json:"TxnDate,omitempty"     yaml:"txn_date,omitempty"`
	DueDate      *Date       `json:"DueDate,omitempty"     yaml:"due_date,omitempty"`
	VendorRef    *Ref        `json:"VendorRef,omitempty"   yaml:"vendor_ref,omitempty"`
	APAccountRef *Ref        `json:"APAccountRef,omitempty" yaml:"ap_account_ref,omitempty"`
	SalesTermRef *Ref        `json:"SalesTermRef,omitempty" yaml:"sales_term_ref,omitempty"`
	Line         []Line      `json:"Line,omitempty"        yaml:"line,omitempty"`
	LinkedTxn    []LinkedTxn `json:"LinkedTxn,omitempty"   yaml:"linked_txn,omitempty"`
	TotalAmt     float64     `json:"TotalAmt,omitempty"    yaml:"total_amt,omitempty"`
	Balance      float64     `json:"Balance,omitempty"     yaml:"balance,omitempty"`
	CurrencyRef  *Ref        `json:"CurrencyRef,omitempty" yaml:"currency_ref,omitempty"`
	PrivateNote  string      `json:"PrivateNote,omitempty" yaml:"private_note,omitempty"`
}

// BillPayment represents a payment made against vendor bills.
type BillPayment struct {
	Entity

	TxnDate           *Date                  `json:"TxnDate,omitempty"     yaml:"txn_date,omitempty"`
	VendorRef         *Ref                   `json:"VendorRef,omitempty"   yaml:"vendor_ref,omitempty"`
	PayType           string                 `json:"PayType,omitempty"     yaml:"pay_type,omitempty"`
	CheckPayment      *BillPaymentCheck      `json:"CheckPayment,omitempty" yaml:"check_payment,omitempty"`
	CreditCardPayment *BillPaymentCreditCard `json:"CreditCardPayment,omitempty" yaml:"credit_card_payment,omitempty"`
	TotalAmt          float64                `json:"TotalAmt,omitempty"    yaml:"total_amt,omitempty"`
	Line              []Line                 `json:"Line,omitempty"        yaml:"line,omitempty"`
	DocNumber         string                 `json:"DocNumber,omitempty"   yaml:"doc_number,omitempty"`
	PrivateNote       string                 `json:"PrivateNote,omitempty" yaml:"private_note,omitempty"`
}

// BillPaymentCheck describes a check-funded bill payment.
type BillPaymentCheck struct {
	BankAccountRef *Ref   `json:"BankAccountRef,omitempty" yaml:"bank_account_ref,omitempty"`
	PrintStatus    string `json:"PrintStatus,omitempty"    yaml:"print_status,omitempty"`
}

// BillPaymentCreditCard describes a card-funded bill payment.
type BillPaymentCreditCard struct {
	CCAccountRef *Ref `json:"CCAccountRef,omitempty" yaml:"cc_account_ref,omitempty"`
}

// Purchase represents a cash, check, or card expense.
type Purchase struct {
	Entity

	TxnDate        *Date              `json:"TxnDate,omitempty"     yaml:"txn_date,omitempty"`
	PaymentType    string             `json:"PaymentType,omitempty" yaml:"payment_type,omitempty"`
	AccountRef     *Ref               `json:"AccountRef,omitempty"  yaml:"account_ref,omitempty"`
	EntityRefField *PurchaseEntityRef `json:"EntityRef,omitempty" yaml:"entity_ref,omitempty"`
	Line           []Line             `json:"Line,omitempty"        yaml:"line,omitempty"`
	TotalAmt       float64            `json:"TotalAmt,omitempty"    yaml:"total_amt,omitempty"`
	Credit         *bool              `json:"Credit,omitempty"      yaml:"credit,omitempty"`
	DocNumber      string             `json:"DocNumber,omitempty"   yaml:"doc_number,omitempty"`
	PrivateNote    string             `json:"PrivateNote,omitempty" yaml:"private_note,omitempty"`
}

// PurchaseEntityRef names the payee of a purchase.
type PurchaseEntityRef struct {
	Type string `json:"type,omitempty"  yaml:"type,omitempty"`
	Ref
}

// PurchaseOrder represents a purchase order sent to a vendor.
type PurchaseOrder struct {
	Entity

	DocNumber    string           `json:"DocNumber,omitempty"   yaml:"doc_number,omitempty"`
	TxnDate      *Date            `json:"TxnDate,omitempty"     yaml:"txn_date,omitempty"`
	VendorRef    *Ref             `json:"VendorRef,omitempty"   yaml:"vendor_ref,omitempty"`
	APAccountRef *Ref             `json:"APAccountRef,omitempty" yaml:"ap_account_ref,omitempty"`
	POStatus     string           `json:"POStatus,omitempty"    yaml:"po_status,omitempty"`
	Line         []Line           `json:"Line,omitempty"        yaml:"line,omitempty"`
	LinkedTxn    []LinkedTxn      `json:"LinkedTxn,omitempty"   yaml:"linked_txn,omitempty"`
	TotalAmt     float64          `json:"TotalAmt,omitempty"    yaml:"total_amt,omitempty"`
	ShipAddr     *PhysicalAddress `json:"ShipAddr,omitempty" yaml:"ship_addr,omitempty"`
	PrivateNote  string           `json:"PrivateNote,omitempty" yaml:"private_note,omitempty"`
}

// Account represents a chart-of-accounts entry.
type Account struct {
	Entity

	Name                          string  `json:"Name,omitempty"                    yaml:"name,omitempty"`
	FullyQualifiedName            string  `json:"FullyQualifiedName,omitempty"      yaml:"fully_qualified_name,omitempty"`
	AcctNum                       string  `json:"AcctNum,omitempty"                 yaml:"acct_num,omitempty"`
	Description                   string  `json:"Description,omitempty"             yaml:"description,omitempty"`
	Active                        *bool   `json:"Active,omitempty"                  yaml:"active,omitempty"`
	SubAccount                    *bool   `json:"SubAccount,omitempty"              yaml:"sub_account,omitempty"`
	ParentRef                     *Ref    `json:"ParentRef,omitempty"               yaml:"parent_ref,omitempty"`
	Classification                string  `json:"Classification,omitempty"          yaml:"classification,omitempty"`
	AccountType                   string  `json:"AccountType,omitempty"             yaml:"account_type,omitempty"`
	AccountSubType                string  `json:"AccountSubType,omitempty"          yaml:"account_sub_type,omitempty"`
	CurrentBalance                float64 `json:"CurrentBalance,omitempty"          yaml:"current_balance,omitempty"`
	CurrentBalanceWithSubAccounts float64 `json:"CurrentBalanceWithSubAccounts,omitempty" yaml:"current_balance_with_sub_accounts,omitempty"`
	CurrencyRef                   *Ref    `json:"CurrencyRef,omitempty"             yaml:"currency_ref,omitempty"`
}

// Item represents a product or service.
type Item struct {
	Entity

	Name               string  `json:"Name,omitempty"             yaml:"name,omitempty"`
	FullyQualifiedName string  `json:"FullyQualifiedName,omitempty" yaml:"fully_qualified_name,omitempty"`
	Description        string  `json:"Description,omitempty"      yaml:"description,omitempty"`
	Active             *bool   `json:"Active,omitempty"           yaml:"active,omitempty"`
	Type               string  `json:"Type,omitempty"             yaml:"type,omitempty"`
	Taxable            *bool   `json:"Taxable,omitempty"          yaml:"taxable,omitempty"`
	UnitPrice          float64 `json:"UnitPrice,omitempty"        yaml:"unit_price,omitempty"`
	PurchaseCost       float64 `json:"PurchaseCost,omitempty"     yaml:"purchase_cost,omitempty"`
	IncomeAccountRef   *Ref    `json:"IncomeAccountRef,omitempty" yaml:"income_account_ref,omitempty"`
	ExpenseAccountRef  *Ref    `json:"ExpenseAccountRef,omitempty" yaml:"expense_account_ref,omitempty"`
	AssetAccountRef    *Ref    `json:"AssetAccountRef,omitempty"  yaml:"asset_account_ref,omitempty"`
	TrackQtyOnHand     *bool   `json:"TrackQtyOnHand,omitempty"   yaml:"track_qty_on_hand,omitempty"`
	QtyOnHand          float64 `json:"QtyOnHand,omitempty"        yaml:"qty_on_hand,omitempty"`
	InvStartDate       *Date   `json:"InvStartDate,omitempty"     yaml:"inv_start_date,omitempty"`
}

// JournalEntry represents a general journal entry.
type JournalEntry struct {
	Entity

	DocNumber   string  `json:"DocNumber,omitempty"   yaml:"doc_number,omitempty"`
	TxnDate     *Date   `json:"TxnDate,omitempty"     yaml:"txn_date,omitempty"`
	Adjustment  *bool   `json:"Adjustment,omitempty"  yaml:"adjustment,omitempty"`
	Line        []Line  `json:"Line,omitempty"        yaml:"line,omitempty"`
	TotalAmt    float64 `json:"TotalAmt,omitempty"    yaml:"total_amt,omitempty"`
	PrivateNote string  `json:"PrivateNote,omitempty" yaml:"private_note,omitempty"`
	CurrencyRef *Ref    `json:"CurrencyRef,omitempty" yaml:"currency_ref,omitempty"`
}

// TimeActivity represents a logged block of billable or payroll time.
type TimeActivity struct {
	Entity

	TxnDate        *Date   `json:"TxnDate,omitempty"      yaml:"txn_date,omitempty"`
	NameOf         string  `json:"NameOf,omitempty"       yaml:"name_of,omitempty"`
	EmployeeRef    *Ref    `json:"EmployeeRef,omitempty"  yaml:"employee_ref,omitempty"`
	VendorRef      *Ref    `json:"VendorRef,omitempty"    yaml:"vendor_ref,omitempty"`
	CustomerRef    *Ref    `json:"CustomerRef,omitempty"  yaml:"customer_ref,omitempty"`
	ItemRef        *Ref    `json:"ItemRef,omitempty"      yaml:"item_ref,omitempty"`
	ClassRef       *Ref    `json:"ClassRef,omitempty"     yaml:"class_ref,omitempty"`
	BillableStatus string  `json:"BillableStatus,omitempty" yaml:"billable_status,omitempty"`
	Taxable        *bool   `json:"Taxable,omitempty"      yaml:"taxable,omitempty"`
	HourlyRate     float64 `json:"HourlyRate,omitempty"   yaml:"hourly_rate,omitempty"`
	Hours          int     `json:"Hours,omitempty"        yaml:"hours,omitempty"`
	Minutes        int     `json:"Minutes,omitempty"      yaml:"minutes,omitempty"`
	Description    string  `json:"Description,omitempty"  yaml:"description,omitempty"`
}

// CompanyInfo represents the company profile (read-only here).
type CompanyInfo struct {
	Entity

	CompanyName               string           `json:"CompanyName,omitempty"          yaml:"company_name,omitempty"`
	LegalName                 string           `json:"LegalName,omitempty"            yaml:"legal_name,omitempty"`
	CompanyAddr               *PhysicalAddress `json:"CompanyAddr,omitempty"          yaml:"company_addr,omitempty"`
	CustomerCommunicationAddr *PhysicalAddress `json:"CustomerCommunicationAddr,omitempty" yaml:"customer_communication_addr,omitempty"`
	LegalAddr                 *PhysicalAddress `json:"LegalAddr,omitempty"            yaml:"legal_addr,omitempty"`
	PrimaryPhone              *TelephoneNumber `json:"PrimaryPhone,omitempty"         yaml:"primary_phone,omitempty"`
	Email                     *EmailAddress    `json:"Email,omitempty"                yaml:"email,omitempty"`
	WebAddr                   *WebSiteAddress  `json:"WebAddr,omitempty"              yaml:"web_addr,omitempty"`
	CompanyStartDate          *Date            `json:"CompanyStartDate,omitempty"     yaml:"company_start_date,omitempty"`
	FiscalYearStartMonth      string           `json:"FiscalYearStartMonth,omitempty" yaml:"fiscal_year_start_month,omitempty"`
	Country                   string           `json:"Country,omitempty"              yaml:"country,omitempty"`
	SupportedLanguages        string           `json:"SupportedLanguages,omitempty"   yaml:"supported_languages,omitempty"`
}

// Preferences represents company-level preferences (read-only here).
type Preferences struct {
	Entity

	AccountingInfoPrefs     map[string]interface{} `json:"AccountingInfoPrefs,omitempty" yaml:"accounting_info_prefs,omitempty"`
	ProductAndServicesPrefs map[string]interface{} `json:"ProductAndServicesPrefs,omitempty" yaml:"product_and_services_prefs,omitempty"`
	SalesFormsPrefs         map[string]interface{} `json:"SalesFormsPrefs,omitempty"     yaml:"sales_forms_prefs,omitempty"`
	EmailMessagesPrefs      map[string]interface{} `json:"EmailMessagesPrefs,omitempty"  yaml:"email_messages_prefs,omitempty"`
	VendorAndPurchasesPrefs map[string]interface{} `json:"VendorAndPurchasesPrefs,omitempty" yaml:"vendor_and_purchases_prefs,omitempty"`
	TimeTrackingPrefs       map[string]interface{} `json:"TimeTrackingPrefs,omitempty"   yaml:"time_tracking_prefs,omitempty"`
	TaxPrefs                map[string]interface{} `json:"TaxPrefs,omitempty"            yaml:"tax_prefs,omitempty"`
	CurrencyPrefs           map[string]interface{} `json:"CurrencyPrefs,omitempty"       yaml:"currency_prefs,omitempty"`
	OtherPrefs              map[string]interface{} `json:"OtherPrefs,omitempty"          yaml:"other_prefs,omitempty"`
}
