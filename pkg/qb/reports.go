package qb

// Report names accepted by the reports endpoint.
const (
	ReportProfitAndLoss   = "ProfitAndLoss"
	ReportBalanceSheet    = "BalanceSheet"
	ReportCashFlow        = "CashFlow"
	ReportTrialBalance    = "TrialBalance"
	ReportGeneralLedger   = "GeneralLedger"
	ReportCustomerBalance = "CustomerBalance"
	ReportAgedReceivables = "AgedReceivables"
	ReportAgedPayables    = "AgedPayables"
	ReportVendorBalance   = "VendorBalance"
)

// Report is the tabular report envelope: a header block, column
// definitions, and a tree of rows.
type Report struct {
	Header  ReportHeader  `json:"Header"  yaml:"header"`
	Columns ReportColumns `json:"Columns" yaml:"columns"`
	Rows    ReportRows    `json:"Rows"    yaml:"rows"`
}

// ReportHeader describes what the report covers.
type ReportHeader struct {
	Time               string         `json:"Time,omitempty"          yaml:"time,omitempty"`
	ReportName         string         `json:"ReportName,omitempty"    yaml:"report_name,omitempty"`
	ReportBasis        string         `json:"ReportBasis,omitempty"   yaml:"report_basis,omitempty"`
	StartPeriod        string         `json:"StartPeriod,omitempty"   yaml:"start_period,omitempty"`
	EndPeriod          string         `json:"EndPeriod,omitempty"     yaml:"end_period,omitempty"`
	SummarizeColumnsBy string         `json:"SummarizeColumnsBy,omitempty" yaml:"summarize_columns_by,omitempty"`
	Currency           string         `json:"Currency,omitempty"      yaml:"currency,omitempty"`
	Option             []ReportOption `json:"Option,omitempty"        yaml:"option,omitempty"`
}

// ReportOption is a name/value pair in the report header.
type ReportOption struct {
	Name  string `json:"Name"  yaml:"name"`
	Value string `json:"Value" yaml:"value"`
}

// ReportColumns wraps the column list.
type ReportColumns struct {
	Column []ReportColumn `json:"Column" yaml:"column"`
}

// ReportColumn describes one column.
type ReportColumn struct {
	ColTitle string             `json:"ColTitle"           yaml:"col_title"`
	ColType  string             `json:"ColType"            yaml:"col_type"`
	MetaData []ReportColumnMeta `json:"MetaData,omitempty" yaml:"meta_data,omitempty"`
}

// ReportColumnMeta is a name/value annotation on a column.
type ReportColumnMeta struct {
	Name  string `json:"Name"  yaml:"name"`
	Value string `json:"Value" yaml:"value"`
}

// ReportRows wraps a row list; sections nest through Rows again.
type ReportRows struct {
	Row []ReportRow `json:"Row,omitempty" yaml:"row,omitempty"`
}

// ReportRow is a data row, section, or summary line.
type ReportRow struct {
	Type    string           `json:"type,omitempty"    yaml:"type,omitempty"`
	Group   string           `json:"group,omitempty"   yaml:"group,omitempty"`
	ColData []ReportCell     `json:"ColData,omitempty" yaml:"col_data,omitempty"`
	Header  *ReportRowHeader `json:"Header,omitempty" yaml:"header,omitempty"`
	Rows    *ReportRows      `json:"Rows,omitempty"    yaml:"rows,omitempty"`
	Summary *ReportRowHeader `json:"Summary,omitempty" yaml:"summary,omitempty"`
}

// ReportRowHeader is the leading or trailing line of a section row.
type ReportRowHeader struct {
	ColData []ReportCell `json:"ColData,omitempty" yaml:"col_data,omitempty"`
}

// ReportCell is one cell value with an optional entity id.
type ReportCell struct {
	Value string `json:"value"        yaml:"value"`
	ID    string `json:"id,omitempty" yaml:"id,omitempty"`
}
