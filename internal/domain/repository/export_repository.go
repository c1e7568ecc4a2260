package repository

import (
	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(data *entity.Dashboard, filename string, outputDir string) (string, error)
	ExportToJSON(data *entity.Dashboard, filename string, outputDir string) (string, error)
	ExportToPDF(data *entity.Dashboard, filename string, outputDir string) (string, error)
}
