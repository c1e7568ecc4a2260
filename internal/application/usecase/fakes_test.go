package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/diillson/invoice-dashboard-go/internal/domain/entity"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

const (
	sampleStats    = `{"totalInvoicesProcessed":12,"totalSpendYTD":45000,"documentsUploaded":30,"averageInvoiceValue":3750}`
	sampleTrends   = `[{"month":"Jan","count":4,"spend":15000},{"month":"Feb","count":8,"spend":30000}]`
	sampleVendors  = `[{"vendorName":"Acme Corp","totalSpend":20000,"invoiceCount":5},{"vendorName":"Globex","totalSpend":9000,"invoiceCount":2}]`
	sampleCategory = `[{"category":"Software","total":25000},{"category":"Travel","total":4000}]`
	sampleOutflow  = `[{"month":"Jan","spend":15000},{"month":"Feb","spend":30000}]`
)

// recorder keeps an ordered log of events shared by all fakes.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

func (r *recorder) index(event string) int {
	for i, e := range r.snapshot() {
		if e == event {
			return i
		}
	}
	return -1
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.snapshot() {
		if e == event {
			n++
		}
	}
	return n
}

// fakeAPI serves canned bodies per resource.
type fakeAPI struct {
	rec    *recorder
	bodies map[entity.Resource]string
	errs   map[entity.Resource]error
	gates  map[entity.Resource]chan struct{}
}

func newFakeAPI(rec *recorder) *fakeAPI {
	return &fakeAPI{
		rec: rec,
		bodies: map[entity.Resource]string{
			entity.ResourceStats:         sampleStats,
			entity.ResourceInvoiceTrends: sampleTrends,
			entity.ResourceTopVendors:    sampleVendors,
			entity.ResourceCategorySpend: sampleCategory,
			entity.ResourceCashOutflow:   sampleOutflow,
		},
		errs:  map[entity.Resource]error{},
		gates: map[entity.Resource]chan struct{}{},
	}
}

func (f *fakeAPI) Request(ctx context.Context, resource entity.Resource) (io.ReadCloser, error) {
	f.rec.add("request:" + string(resource))
	if gate, ok := f.gates[resource]; ok {
		<-gate
	}
	if err := f.errs[resource]; err != nil {
		return nil, err
	}
	return &trackedBody{
		Reader:   strings.NewReader(f.bodies[resource]),
		rec:      f.rec,
		resource: resource,
	}, nil
}

// trackedBody records when the loader is done with a body.
type trackedBody struct {
	io.Reader
	rec      *recorder
	resource entity.Resource
}

func (b *trackedBody) Close() error {
	b.rec.add("closed:" + string(b.resource))
	return nil
}

type fakeStatus struct {
	rec     *recorder
	console *fakeConsole
}

func (s *fakeStatus) Update(message string) {
	s.console.mu.Lock()
	s.console.updates = append(s.console.updates, message)
	s.console.mu.Unlock()
	s.rec.add("status:update")
}
func (s *fakeStatus) Stop() { s.rec.add("status:stop") }

type fakeTable struct{}

func (t *fakeTable) AddColumn(name string, options ...interface{}) {}
func (t *fakeTable) AddRow(cells ...interface{})                   {}
func (t *fakeTable) Render() string                                { return "" }

// fakeConsole records the loading indicator and log lines.
type fakeConsole struct {
	rec     *recorder
	mu      sync.Mutex
	errors  []string
	updates []string
}

func (c *fakeConsole) Print(a ...interface{})                 {}
func (c *fakeConsole) Printf(format string, a ...interface{}) {}
func (c *fakeConsole) Println(a ...interface{})               {}
func (c *fakeConsole) LogInfo(format string, a ...interface{}) {}
func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.rec.add("warning")
}
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {}
func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
	c.rec.add("error")
}
func (c *fakeConsole) Status(message string) types.StatusHandle {
	c.rec.add("status:start")
	return &fakeStatus{rec: c.rec, console: c}
}
func (c *fakeConsole) CreateTable() types.TableInterface                     { return &fakeTable{} }
func (c *fakeConsole) DisplayCards(title string, cards []types.Card)         {}
func (c *fakeConsole) DisplayTrendBars(title string, v []types.MonthlyValue) {}

// fakeView captures what the views receive.
type fakeView struct {
	rec      *recorder
	stats    []*entity.Stats
	charts   []entity.Charts
	failures [][]entity.ResourceFailure
}

func (v *fakeView) ShowOverview(stats *entity.Stats) {
	v.rec.add("view:overview")
	v.stats = append(v.stats, stats)
}

func (v *fakeView) ShowCharts(charts entity.Charts) {
	v.rec.add("view:charts")
	v.charts = append(v.charts, charts)
}

func (v *fakeView) ShowFailures(failures []entity.ResourceFailure) {
	v.rec.add("view:failures")
	v.failures = append(v.failures, failures)
}

// fakeExport pretends to write reports.
type fakeExport struct {
	rec  *recorder
	fail map[string]bool
}

func (e *fakeExport) write(kind string) (string, error) {
	e.rec.add("export:" + kind)
	if e.fail[kind] {
		return "", errors.New("disk full")
	}
	return "/tmp/report." + kind, nil
}

func (e *fakeExport) ExportToCSV(data *entity.Dashboard, filename, outputDir string) (string, error) {
	return e.write("csv")
}

func (e *fakeExport) ExportToJSON(data *entity.Dashboard, filename, outputDir string) (string, error) {
	return e.write("json")
}

func (e *fakeExport) ExportToPDF(data *entity.Dashboard, filename, outputDir string) (string, error) {
	return e.write("pdf")
}

// fakeStorage records uploads.
type fakeStorage struct {
	rec     *recorder
	loadIDs []string
}

func (s *fakeStorage) Upload(ctx context.Context, loadID, localPath string) (string, error) {
	s.rec.add("upload:" + localPath)
	s.loadIDs = append(s.loadIDs, loadID)
	return "s3://reports/" + loadID, nil
}
