package entity

// Stats represents the aggregate counters shown on the overview cards.
type Stats struct {
	TotalInvoicesProcessed int     `json:"totalInvoicesProcessed" yaml:"totalInvoicesProcessed" toml:"totalInvoicesProcessed"`
	TotalSpendYTD          float64 `json:"totalSpendYTD" yaml:"totalSpendYTD" toml:"totalSpendYTD"`
	DocumentsUploaded      int     `json:"documentsUploaded" yaml:"documentsUploaded" toml:"documentsUploaded"`
	AverageInvoiceValue    float64 `json:"averageInvoiceValue" yaml:"averageInvoiceValue" toml:"averageInvoiceValue"`
}

// InvoiceTrend represents the invoice volume and spend for a month.
type InvoiceTrend struct {
	Month string  `json:"month" yaml:"month" toml:"month"`
	Count int     `json:"count" yaml:"count" toml:"count"`
	Spend float64 `json:"spend" yaml:"spend" toml:"spend"`
}

// TopVendor represents a ranked vendor aggregate.
type TopVendor struct {
	VendorName   string  `json:"vendorName" yaml:"vendorName" toml:"vendorName"`
	TotalSpend   float64 `json:"totalSpend" yaml:"totalSpend" toml:"totalSpend"`
	InvoiceCount int     `json:"invoiceCount" yaml:"invoiceCount" toml:"invoiceCount"`
}

// CategorySpend represents the total spend for a category.
type CategorySpend struct {
	Category string  `json:"category" yaml:"category" toml:"category"`
	Total    float64 `json:"total" yaml:"total" toml:"total"`
}

// CashOutflow represents the cash spent in a month.
type CashOutflow struct {
	Month string  `json:"month" yaml:"month" toml:"month"`
	Spend float64 `json:"spend" yaml:"spend" toml:"spend"`
}
