package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_Formats(t *testing.T) {
	want := &types.Config{
		BaseURL:        "http://invoices.local:3000",
		TimeoutSeconds: 10,
		ReportName:     "monthly",
		ReportType:     []string{"csv", "pdf"},
		S3:             types.S3Config{Bucket: "reports", Prefix: "dashboards", Region: "eu-west-1"},
	}

	files := map[string]string{
		"config.toml": `
base_url = "http://invoices.local:3000"
timeout_seconds = 10
report_name = "monthly"
report_type = ["csv", "pdf"]

[s3]
bucket = "reports"
prefix = "dashboards"
region = "eu-west-1"
`,
		"config.yaml": `
base_url: http://invoices.local:3000
timeout_seconds: 10
report_name: monthly
report_type: [csv, pdf]
s3:
  bucket: reports
  prefix: dashboards
  region: eu-west-1
`,
		"config.json": `{
  "base_url": "http://invoices.local:3000",
  "timeout_seconds": 10,
  "report_name": "monthly",
  "report_type": ["csv", "pdf"],
  "s3": {"bucket": "reports", "prefix": "dashboards", "region": "eu-west-1"}
}`,
	}

	repo := NewConfigRepository()
	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			cfg, err := repo.LoadConfigFile(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, want, cfg)
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(writeFile(t, "config.ini", "base_url=x"))
	assert.ErrorContains(t, err, "unsupported file format")

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.Error(t, err)

	_, err = repo.LoadConfigFile(writeFile(t, "broken.json", "{"))
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestLoadDataset(t *testing.T) {
	path := writeFile(t, "dataset.yaml", `
stats:
  totalInvoicesProcessed: 12
  totalSpendYTD: 45000
  documentsUploaded: 30
  averageInvoiceValue: 3750
invoice_trends:
  - {month: Jan, count: 4, spend: 15000}
  - {month: Feb, count: 8, spend: 30000}
top_vendors:
  - {vendorName: Acme Corp, totalSpend: 20000, invoiceCount: 5}
category_spend:
  - {category: Software, total: 25000}
cash_outflow:
  - {month: Jan, spend: 15000}
`)

	dataset, err := NewConfigRepository().LoadDataset(path)
	require.NoError(t, err)

	assert.Equal(t, entity.Stats{
		TotalInvoicesProcessed: 12,
		TotalSpendYTD:          45000,
		DocumentsUploaded:      30,
		AverageInvoiceValue:    3750,
	}, dataset.Stats)
	assert.Equal(t, []entity.InvoiceTrend{{Month: "Jan", Count: 4, Spend: 15000}, {Month: "Feb", Count: 8, Spend: 30000}}, dataset.InvoiceTrends)
	assert.Equal(t, []entity.TopVendor{{VendorName: "Acme Corp", TotalSpend: 20000, InvoiceCount: 5}}, dataset.TopVendors)
	assert.Equal(t, []entity.CategorySpend{{Category: "Software", Total: 25000}}, dataset.CategorySpend)
	assert.Equal(t, []entity.CashOutflow{{Month: "Jan", Spend: 15000}}, dataset.CashOutflow)
}

func TestLoadDataset_NoPath(t *testing.T) {
	_, err := NewConfigRepository().LoadDataset("")
	assert.ErrorIs(t, err, types.ErrEmptyDatasetSource)
}
