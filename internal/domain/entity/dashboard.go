package entity

import "time"

// Resource identifies one of the endpoints that feed the dashboard.
type Resource string

const (
	ResourceStats         Resource = "stats"
	ResourceInvoiceTrends Resource = "invoice-trends"
	ResourceTopVendors    Resource = "top-vendors"
	ResourceCategorySpend Resource = "category-spend"
	ResourceCashOutflow   Resource = "cash-outflow"
)

var resourcePaths = map[Resource]string{
	ResourceStats:         "/api/stats",
	ResourceInvoiceTrends: "/api/invoice-trends",
	ResourceTopVendors:    "/api/vendors/top10",
	ResourceCategorySpend: "/api/category-spend",
	ResourceCashOutflow:   "/api/cash-outflow",
}

// Resources returns every dashboard resource in display order.
func Resources() []Resource {
	return []Resource{
		ResourceStats,
		ResourceInvoiceTrends,
		ResourceTopVendors,
		ResourceCategorySpend,
		ResourceCashOutflow,
	}
}

// Path returns the HTTP path the resource is served on.
func (r Resource) Path() string {
	return resourcePaths[r]
}

// Failure phases.
const (
	PhaseRequest = "request"
	PhaseDecode  = "decode"
)

// ResourceFailure records why a resource is missing from a snapshot.
type ResourceFailure struct {
	Resource Resource `json:"resource"`
	Phase    string   `json:"phase"`
	Error    string   `json:"error"`
}

// Charts groups the collections rendered by the charts view.
type Charts struct {
	Trends        []InvoiceTrend  `json:"trends"`
	TopVendors    []TopVendor     `json:"topVendors"`
	CategorySpend []CategorySpend `json:"categorySpend"`
	CashOutflow   []CashOutflow   `json:"cashOutflow"`
}

// Dashboard is the snapshot produced by one load cycle.
// Stats stays nil and the chart slices stay empty for resources that failed.
type Dashboard struct {
	LoadID     string            `json:"load_id"`
	StartedAt  time.Time         `json:"started_at"`
	FinishedAt time.Time         `json:"finished_at"`
	Stats      *Stats            `json:"stats"`
	Charts     Charts            `json:"charts"`
	Failures   []ResourceFailure `json:"failures,omitempty"`
}

// Complete reports whether every resource loaded.
func (d *Dashboard) Complete() bool {
	return len(d.Failures) == 0
}

// Loaded reports whether the slot for the resource was populated in this cycle.
func (d *Dashboard) Loaded(r Resource) bool {
	for _, f := range d.Failures {
		if f.Resource == r {
			return false
		}
	}
	if r == ResourceStats {
		return d.Stats != nil
	}
	return true
}

// Dataset holds one payload per resource, as served by the invoice API.
type Dataset struct {
	Stats         Stats           `json:"stats" yaml:"stats" toml:"stats"`
	InvoiceTrends []InvoiceTrend  `json:"invoice_trends" yaml:"invoice_trends" toml:"invoice_trends"`
	TopVendors    []TopVendor     `json:"top_vendors" yaml:"top_vendors" toml:"top_vendors"`
	CategorySpend []CategorySpend `json:"category_spend" yaml:"category_spend" toml:"category_spend"`
	CashOutflow   []CashOutflow   `json:"cash_outflow" yaml:"cash_outflow" toml:"cash_outflow"`
}

// Payload returns the value served for the resource.
func (d *Dataset) Payload(r Resource) (interface{}, bool) {
	switch r {
	case ResourceStats:
		return d.Stats, true
	case ResourceInvoiceTrends:
		return nonNil(d.InvoiceTrends), true
	case ResourceTopVendors:
		return nonNil(d.TopVendors), true
	case ResourceCategorySpend:
		return nonNil(d.CategorySpend), true
	case ResourceCashOutflow:
		return nonNil(d.CashOutflow), true
	}
	return nil, false
}

// nonNil keeps empty collections encoding as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
