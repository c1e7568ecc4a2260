package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
	"github.com/diillson/invoice-dashboard-go/internal/domain/repository"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct {
	now func() time.Time
}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{now: time.Now}
}

// ExportToCSV grava o snapshot como seções de linhas: section, label, métricas.
func (r *ExportRepositoryImpl) ExportToCSV(data *entity.Dashboard, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	records := [][]string{{"Section", "Label", "Count", "Amount"}}

	if data.Loaded(entity.ResourceStats) {
		s := data.Stats
		records = append(records,
			[]string{"stats", "Total Invoices Processed", strconv.Itoa(s.TotalInvoicesProcessed), ""},
			[]string{"stats", "Total Spend YTD", "", money(s.TotalSpendYTD)},
			[]string{"stats", "Documents Uploaded", strconv.Itoa(s.DocumentsUploaded), ""},
			[]string{"stats", "Average Invoice Value", "", money(s.AverageInvoiceValue)},
		)
	}
	for _, t := range data.Charts.Trends {
		records = append(records, []string{"invoice_trends", t.Month, strconv.Itoa(t.Count), money(t.Spend)})
	}
	for _, v := range data.Charts.TopVendors {
		records = append(records, []string{"top_vendors", v.VendorName, strconv.Itoa(v.InvoiceCount), money(v.TotalSpend)})
	}
	for _, c := range data.Charts.CategorySpend {
		records = append(records, []string{"category_spend", c.Category, "", money(c.Total)})
	}
	for _, o := range data.Charts.CashOutflow {
		records = append(records, []string{"cash_outflow", o.Month, "", money(o.Spend)})
	}
	for _, f := range data.Failures {
		records = append(records, []string{"failures", string(f.Resource), f.Phase, f.Error})
	}

	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("error writing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToJSON grava o snapshot completo, incluindo as falhas.
func (r *ExportRepositoryImpl) ExportToJSON(data *entity.Dashboard, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// ExportToPDF gera um relatório de uma página por seção do dashboard.
func (r *ExportRepositoryImpl) ExportToPDF(data *entity.Dashboard, filename, outputDir string) (string, error) {
	outputFilename, err := r.generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)
		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawTable := func(title string, headers []string, widths []float64, rows [][]string) {
		sectionTitle(title)
		if len(rows) == 0 {
			pdf.SetFont("Arial", "I", 10)
			pdf.SetTextColor(120, 120, 120)
			pdf.Cell(0, 6, "No data available")
			pdf.Ln(12)
			return
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for i, h := range headers {
			pdf.CellFormat(widths[i], 7, tr(h), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 10)
		for _, row := range rows {
			for i, cell := range row {
				pdf.CellFormat(widths[i], 6, tr(cell), "", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(8)
	}

	pdf.AddPage()

	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, "  Invoice Dashboard", "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	generated := data.FinishedAt
	if generated.IsZero() {
		generated = r.now()
	}
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Load %s  |  %s", data.LoadID, generated.Format("2006-01-02 15:04:05"))), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Overview")
	if !data.Loaded(entity.ResourceStats) {
		pdf.SetFont("Arial", "I", 10)
		pdf.SetTextColor(120, 120, 120)
		pdf.Cell(0, 6, "Stats unavailable")
		pdf.Ln(12)
	} else {
		cardWidth := 47.5
		labels := []string{"Invoices Processed", "Spend YTD", "Documents Uploaded", "Avg Invoice"}
		values := []string{
			strconv.Itoa(data.Stats.TotalInvoicesProcessed),
			money(data.Stats.TotalSpendYTD),
			strconv.Itoa(data.Stats.DocumentsUploaded),
			money(data.Stats.AverageInvoiceValue),
		}
		pdf.SetFont("Arial", "", 8)
		pdf.SetTextColor(100, 100, 100)
		for _, l := range labels {
			pdf.CellFormat(cardWidth, 5, l, "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "B", 16)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		for _, v := range values {
			pdf.CellFormat(cardWidth, 12, tr(v), "", 0, "L", false, 0, "")
		}
		pdf.Ln(20)
	}

	trendRows := make([][]string, 0, len(data.Charts.Trends))
	for _, t := range data.Charts.Trends {
		trendRows = append(trendRows, []string{t.Month, strconv.Itoa(t.Count), money(t.Spend)})
	}
	drawTable("Invoice Trends", []string{"Month", "Invoices", "Spend"}, []float64{70, 50, 70}, trendRows)

	vendorRows := make([][]string, 0, len(data.Charts.TopVendors))
	for i, v := range data.Charts.TopVendors {
		vendorRows = append(vendorRows, []string{strconv.Itoa(i + 1), truncate(v.VendorName, 60), strconv.Itoa(v.InvoiceCount), money(v.TotalSpend)})
	}
	drawTable("Top Vendors", []string{"#", "Vendor", "Invoices", "Total Spend"}, []float64{12, 98, 30, 50}, vendorRows)

	categoryRows := make([][]string, 0, len(data.Charts.CategorySpend))
	for _, c := range data.Charts.CategorySpend {
		categoryRows = append(categoryRows, []string{truncate(c.Category, 70), money(c.Total)})
	}
	drawTable("Spend by Category", []string{"Category", "Total"}, []float64{120, 70}, categoryRows)

	outflowRows := make([][]string, 0, len(data.Charts.CashOutflow))
	for _, o := range data.Charts.CashOutflow {
		outflowRows = append(outflowRows, []string{o.Month, money(o.Spend)})
	}
	drawTable("Cash Outflow", []string{"Month", "Spend"}, []float64{120, 70}, outflowRows)

	if len(data.Failures) > 0 {
		sectionTitle("Missing Sections")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(192, 0, 0)
		for _, f := range data.Failures {
			pdf.MultiCell(190, 5, tr(fmt.Sprintf("%s (%s): %s", f.Resource, f.Phase, f.Error)), "", "L", false)
		}
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func (r *ExportRepositoryImpl) generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := r.now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-3]) + "..."
}
