package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
	"github.com/diillson/invoice-dashboard-go/internal/domain/repository"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

// DashboardView receives a loaded snapshot for display.
type DashboardView interface {
	ShowOverview(stats *entity.Stats)
	ShowCharts(charts entity.Charts)
	ShowFailures(failures []entity.ResourceFailure)
}

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	apiRepo     repository.InvoiceAPIRepository
	exportRepo  repository.ExportRepository
	storageRepo repository.ReportStorageRepository
	console     types.ConsoleInterface
	view        DashboardView
	now         func() time.Time
}

// NewDashboardUseCase creates a new dashboard use case.
// storageRepo may be nil when report uploads are not configured.
func NewDashboardUseCase(
	apiRepo repository.InvoiceAPIRepository,
	exportRepo repository.ExportRepository,
	storageRepo repository.ReportStorageRepository,
	console types.ConsoleInterface,
	view DashboardView,
) *DashboardUseCase {
	return &DashboardUseCase{
		apiRepo:     apiRepo,
		exportRepo:  exportRepo,
		storageRepo: storageRepo,
		console:     console,
		view:        view,
		now:         time.Now,
	}
}

// fetchResult is the outcome of the transport phase for one resource.
type fetchResult struct {
	body io.ReadCloser
	err  error
}

// LoadDashboard runs one load cycle: every resource is requested concurrently,
// then every successful body is decoded concurrently. The loading status stays
// up until both joins finish, whatever the outcome. A failing resource only
// leaves its own slot empty.
func (uc *DashboardUseCase) LoadDashboard(ctx context.Context) *entity.Dashboard {
	dashboard := &entity.Dashboard{
		LoadID:    uuid.NewString(),
		StartedAt: uc.now(),
	}

	status := uc.console.Status("Loading dashboard...")
	defer status.Stop()

	resources := entity.Resources()

	// Fase 1: transporte
	fetched := make([]fetchResult, len(resources))
	var wg sync.WaitGroup
	for i, resource := range resources {
		wg.Add(1)
		go func(i int, resource entity.Resource) {
			defer wg.Done()
			body, err := uc.apiRepo.Request(ctx, resource)
			fetched[i] = fetchResult{body: body, err: err}
		}(i, resource)
	}
	wg.Wait()

	received := 0
	for _, f := range fetched {
		if f.err == nil {
			received++
		}
	}
	status.Update(fmt.Sprintf("Decoding dashboard data (%d/%d received)...", received, len(resources)))

	// Fase 2: decodificação
	decodeErrs := make([]error, len(resources))
	for i, resource := range resources {
		if fetched[i].err != nil {
			continue
		}
		wg.Add(1)
		go func(i int, resource entity.Resource) {
			defer wg.Done()
			decodeErrs[i] = decodeInto(dashboard, resource, fetched[i].body)
		}(i, resource)
	}
	wg.Wait()

	for i, resource := range resources {
		switch {
		case fetched[i].err != nil:
			uc.recordFailure(dashboard, resource, entity.PhaseRequest, fetched[i].err)
		case decodeErrs[i] != nil:
			uc.recordFailure(dashboard, resource, entity.PhaseDecode, decodeErrs[i])
		}
	}

	dashboard.FinishedAt = uc.now()
	return dashboard
}

// recordFailure is the single error handler of a load cycle: log and keep going.
func (uc *DashboardUseCase) recordFailure(d *entity.Dashboard, resource entity.Resource, phase string, err error) {
	uc.console.LogError("Error fetching dashboard data (%s, %s): %s", resource, phase, err)
	d.Failures = append(d.Failures, entity.ResourceFailure{
		Resource: resource,
		Phase:    phase,
		Error:    err.Error(),
	})
}

// decodeInto decodes a body into the slot of its resource and closes it.
// Each resource owns a distinct field, so concurrent calls never share memory.
// A JSON null stats body leaves the slot nil.
func decodeInto(d *entity.Dashboard, resource entity.Resource, body io.ReadCloser) error {
	defer body.Close()
	dec := json.NewDecoder(body)

	var err error
	switch resource {
	case entity.ResourceStats:
		var stats *entity.Stats
		if err = decodeSingle(dec, &stats); err == nil {
			d.Stats = stats
		}
	case entity.ResourceInvoiceTrends:
		var trends []entity.InvoiceTrend
		if err = decodeSingle(dec, &trends); err == nil {
			d.Charts.Trends = trends
		}
	case entity.ResourceTopVendors:
		var vendors []entity.TopVendor
		if err = decodeSingle(dec, &vendors); err == nil {
			d.Charts.TopVendors = vendors
		}
	case entity.ResourceCategorySpend:
		var categories []entity.CategorySpend
		if err = decodeSingle(dec, &categories); err == nil {
			d.Charts.CategorySpend = categories
		}
	case entity.ResourceCashOutflow:
		var outflow []entity.CashOutflow
		if err = decodeSingle(dec, &outflow); err == nil {
			d.Charts.CashOutflow = outflow
		}
	default:
		return fmt.Errorf("%w: %q", types.ErrUnknownResource, resource)
	}

	if err != nil {
		return fmt.Errorf("error decoding %s: %w", resource, err)
	}
	return nil
}

// decodeSingle exige que o corpo contenha exatamente um valor JSON.
func decodeSingle(dec *json.Decoder, v interface{}) error {
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return types.ErrTrailingData
	}
	return nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	uc.runCycle(ctx, args)

	if args.Watch <= 0 {
		return nil
	}

	// Cada tick é um novo ciclo explícito; nada é refeito entre ticks.
	uc.console.LogInfo("Refreshing every %s. Press Ctrl+C to stop.", args.Watch)
	ticker := time.NewTicker(args.Watch)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			uc.runCycle(ctx, args)
		}
	}
}

// runCycle loads, renders and exports one snapshot.
func (uc *DashboardUseCase) runCycle(ctx context.Context, args *types.CLIArgs) *entity.Dashboard {
	dashboard := uc.LoadDashboard(ctx)

	uc.view.ShowOverview(dashboard.Stats)
	uc.view.ShowCharts(dashboard.Charts)
	if !dashboard.Complete() {
		uc.view.ShowFailures(dashboard.Failures)
	}

	if args.ReportName != "" && len(args.ReportType) > 0 {
		uc.exportReports(ctx, dashboard, args)
	}

	return dashboard
}

// exportReports writes every requested report type and uploads it when storage is set.
// Failures are logged per report and never abort the run.
func (uc *DashboardUseCase) exportReports(ctx context.Context, dashboard *entity.Dashboard, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		var (
			path string
			err  error
		)

		switch reportType {
		case "csv":
			path, err = uc.exportRepo.ExportToCSV(dashboard, args.ReportName, args.Dir)
		case "json":
			path, err = uc.exportRepo.ExportToJSON(dashboard, args.ReportName, args.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportToPDF(dashboard, args.ReportName, args.Dir)
		default:
			uc.console.LogWarning("Skipping report type %q: %s", reportType, types.ErrUnsupportedReport)
			continue
		}

		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", reportType, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", reportType, path)

		if uc.storageRepo == nil {
			continue
		}

		uri, err := uc.storageRepo.Upload(ctx, dashboard.LoadID, path)
		if err != nil {
			uc.console.LogError("Failed to upload %s report: %s", reportType, err)
			continue
		}
		uc.console.LogSuccess("Uploaded %s report to %s", reportType, uri)
	}
}
