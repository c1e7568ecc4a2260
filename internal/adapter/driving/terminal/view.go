// Package terminal renders dashboard snapshots on the console.
package terminal

import (
	"fmt"
	"strings"

	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

// missing is printed in place of a figure that could not be loaded.
const missing = "—"

// DashboardView mostra o snapshot usando o ConsoleInterface.
type DashboardView struct {
	console types.ConsoleInterface
}

// NewDashboardView creates a view bound to the console.
func NewDashboardView(console types.ConsoleInterface) *DashboardView {
	return &DashboardView{console: console}
}

// ShowOverview prints the four headline cards.
func (v *DashboardView) ShowOverview(stats *entity.Stats) {
	v.console.DisplayCards("Overview", OverviewCards(stats))
}

// OverviewCards formats the stats into display cards. Nil stats yield placeholders.
func OverviewCards(stats *entity.Stats) []types.Card {
	if stats == nil {
		return []types.Card{
			{Label: "Total Invoices Processed", Value: missing},
			{Label: "Total Spend YTD", Value: missing},
			{Label: "Documents Uploaded", Value: missing},
			{Label: "Average Invoice Value", Value: missing},
		}
	}
	return []types.Card{
		{Label: "Total Invoices Processed", Value: formatCount(stats.TotalInvoicesProcessed)},
		{Label: "Total Spend YTD", Value: formatMoney(stats.TotalSpendYTD)},
		{Label: "Documents Uploaded", Value: formatCount(stats.DocumentsUploaded)},
		{Label: "Average Invoice Value", Value: formatMoney(stats.AverageInvoiceValue)},
	}
}

// ShowCharts prints trends, rankings and cash outflow in the received order.
func (v *DashboardView) ShowCharts(charts entity.Charts) {
	if len(charts.Trends) > 0 {
		v.console.DisplayTrendBars("Invoice Spend Trend", TrendValues(charts.Trends))
		v.console.Print(v.trendCountTable(charts.Trends).Render())
	}

	if len(charts.TopVendors) > 0 {
		table := v.console.CreateTable()
		table.AddColumn("#")
		table.AddColumn("Top Vendors")
		table.AddColumn("Invoices")
		table.AddColumn("Total Spend")
		for i, vendor := range charts.TopVendors {
			table.AddRow(i+1, vendor.VendorName, formatCount(vendor.InvoiceCount), formatMoney(vendor.TotalSpend))
		}
		v.console.Print(table.Render())
	}

	if len(charts.CategorySpend) > 0 {
		table := v.console.CreateTable()
		table.AddColumn("Category")
		table.AddColumn("Total")
		table.AddColumn("Share")
		total := 0.0
		for _, c := range charts.CategorySpend {
			total += c.Total
		}
		for _, c := range charts.CategorySpend {
			table.AddRow(c.Category, formatMoney(c.Total), share(c.Total, total))
		}
		v.console.Print(table.Render())
	}

	if len(charts.CashOutflow) > 0 {
		v.console.DisplayTrendBars("Cash Outflow", OutflowValues(charts.CashOutflow))
	}
}

// ShowFailures lists the sections that could not be loaded.
func (v *DashboardView) ShowFailures(failures []entity.ResourceFailure) {
	if len(failures) == 0 {
		return
	}
	names := make([]string, 0, len(failures))
	for _, f := range failures {
		names = append(names, string(f.Resource))
	}
	v.console.LogWarning("Some sections could not be loaded: %s", strings.Join(names, ", "))
}

func (v *DashboardView) trendCountTable(trends []entity.InvoiceTrend) types.TableInterface {
	table := v.console.CreateTable()
	table.AddColumn("Month")
	table.AddColumn("Invoices")
	for _, t := range trends {
		table.AddRow(t.Month, formatCount(t.Count))
	}
	return table
}

// TrendValues maps invoice trends to spend bars.
func TrendValues(trends []entity.InvoiceTrend) []types.MonthlyValue {
	values := make([]types.MonthlyValue, 0, len(trends))
	for _, t := range trends {
		values = append(values, types.MonthlyValue{Month: t.Month, Value: t.Spend})
	}
	return values
}

// OutflowValues maps cash outflow points to bars.
func OutflowValues(outflow []entity.CashOutflow) []types.MonthlyValue {
	values := make([]types.MonthlyValue, 0, len(outflow))
	for _, o := range outflow {
		values = append(values, types.MonthlyValue{Month: o.Month, Value: o.Spend})
	}
	return values
}

func formatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}
	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(whole), cents)
}

func formatCount(n int) string {
	if n < 0 {
		return "-" + groupThousands(int64(-n))
	}
	return groupThousands(int64(n))
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func share(part, total float64) string {
	if total <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", part/total*100)
}
