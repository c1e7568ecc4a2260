package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/invoice-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

func newTestApp(serve ServeFunc) *CLIApp {
	return NewCLIApp("0.0.0-dev", config.NewConfigRepository(), nil, serve)
}

func parse(t *testing.T, app *CLIApp, argv ...string) *types.CLIArgs {
	t.Helper()
	require.NoError(t, app.rootCmd.ParseFlags(argv))
	args, err := app.parseArgs(app.rootCmd)
	require.NoError(t, err)
	return args
}

func TestParseArgs_Defaults(t *testing.T) {
	t.Setenv("INVOICE_API_URL", "")

	args := parse(t, newTestApp(nil))

	cwd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, args.BaseURL)
	assert.Equal(t, []string{"csv"}, args.ReportType)
	assert.Equal(t, cwd, args.Dir)
	assert.Zero(t, args.Timeout)
	assert.Zero(t, args.Watch)
	assert.False(t, args.S3.Enabled())
}

func TestParseArgs_EnvBaseURL(t *testing.T) {
	t.Setenv("INVOICE_API_URL", "https://invoices.example.com")

	args := parse(t, newTestApp(nil))
	assert.Equal(t, "https://invoices.example.com", args.BaseURL)

	args = parse(t, newTestApp(nil), "--base-url", "http://127.0.0.1:9000")
	assert.Equal(t, "http://127.0.0.1:9000", args.BaseURL)
}

func TestParseArgs_ConfigFileAndFlags(t *testing.T) {
	t.Setenv("INVOICE_API_URL", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base_url: http://api.internal:3000
timeout_seconds: 5
report_name: monthly
report_type: [json, pdf]
watch_seconds: 60
s3:
  bucket: reports
  prefix: invoices
`), 0o600))

	args := parse(t, newTestApp(nil), "-C", path, "--timeout", "2s", "-d", dir)

	assert.Equal(t, "http://api.internal:3000", args.BaseURL)
	assert.Equal(t, 2*time.Second, args.Timeout)
	assert.Equal(t, "monthly", args.ReportName)
	assert.Equal(t, []string{"json", "pdf"}, args.ReportType)
	assert.Equal(t, time.Minute, args.Watch)
	assert.Equal(t, dir, args.Dir)
	assert.Equal(t, "reports", args.S3.Bucket)
	assert.Equal(t, "invoices", args.S3.Prefix)
}

func TestParseArgs_ConfigFileError(t *testing.T) {
	app := newTestApp(nil)
	require.NoError(t, app.rootCmd.ParseFlags([]string{"-C", filepath.Join(t.TempDir(), "missing.toml")}))

	_, err := app.parseArgs(app.rootCmd)
	assert.Error(t, err)
}

func TestServeCommand(t *testing.T) {
	var got *types.ServeArgs
	app := newTestApp(func(ctx context.Context, args *types.ServeArgs) error {
		got = args
		return nil
	})

	app.SetArgs([]string{"serve", "-f", "dataset.yaml", "--addr", ":8080", "--dev"})
	require.NoError(t, app.Execute())

	require.NotNil(t, got)
	assert.Equal(t, types.ServeArgs{DataFile: "dataset.yaml", Addr: ":8080", Dev: true}, *got)
}

func TestServeCommand_RequiresDataFile(t *testing.T) {
	called := false
	app := newTestApp(func(ctx context.Context, args *types.ServeArgs) error {
		called = true
		return nil
	})
	app.rootCmd.SilenceErrors = true

	app.SetArgs([]string{"serve"})
	assert.ErrorIs(t, app.Execute(), types.ErrEmptyDatasetSource)
	assert.False(t, called)
}
