package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/diillson/invoice-dashboard-go/pkg/version"
	"github.com/spf13/cobra"

	"github.com/diillson/invoice-dashboard-go/internal/application/usecase"
	"github.com/diillson/invoice-dashboard-go/internal/domain/repository"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

// DefaultBaseURL is used when neither flags, config nor INVOICE_API_URL set one.
const DefaultBaseURL = "http://localhost:3000"

// DashboardFactory builds the use case once the final arguments are known.
type DashboardFactory func(ctx context.Context, args *types.CLIArgs) (*usecase.DashboardUseCase, error)

// ServeFunc runs the demo invoice API.
type ServeFunc func(ctx context.Context, args *types.ServeArgs) error

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	newUseCase DashboardFactory
	serve      ServeFunc
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, newUseCase DashboardFactory, serve ServeFunc) *CLIApp {
	app := &CLIApp{
		version:    versionStr,
		configRepo: configRepo,
		newUseCase: newUseCase,
		serve:      serve,
	}

	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:          "invoice-dashboard",
		Short:        "Invoice Dashboard CLI",
		Version:      formattedVersion,
		SilenceUsage: true,
		RunE:         app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "Invoice Dashboard version: %s\n" .Version}}`)

	flags := rootCmd.Flags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("base-url", "u", "", "Base URL of the invoice API (default: $INVOICE_API_URL or "+DefaultBaseURL+")")
	flags.Duration("timeout", 0, "Per-request timeout, e.g. 10s (default: none)")
	flags.StringP("report-name", "n", "", "Specify the base name for the report file (without extension)")
	flags.StringSliceP("report-type", "y", []string{"csv"}, "Specify report types: csv, json, pdf")
	flags.StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	flags.DurationP("watch", "w", 0, "Reload the dashboard on this interval, e.g. 1m (default: load once)")
	flags.String("s3-bucket", "", "Upload exported reports to this S3 bucket")
	flags.String("s3-prefix", "", "Key prefix for uploaded reports")
	flags.String("s3-region", "", "AWS region of the report bucket")
	flags.String("s3-profile", "", "AWS shared config profile used for uploads")
	flags.String("s3-endpoint", "", "Custom S3-compatible endpoint (path-style)")

	rootCmd.AddCommand(app.newServeCommand())

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, used by tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	baseURL, _ := flags.GetString("base-url")
	timeout, _ := flags.GetDuration("timeout")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	watch, _ := flags.GetDuration("watch")
	bucket, _ := flags.GetString("s3-bucket")
	prefix, _ := flags.GetString("s3-prefix")
	region, _ := flags.GetString("s3-region")
	profile, _ := flags.GetString("s3-profile")
	endpoint, _ := flags.GetString("s3-endpoint")

	args := &types.CLIArgs{
		ConfigFile: configFile,
		BaseURL:    baseURL,
		Timeout:    timeout,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Watch:      watch,
		S3: types.S3Config{
			Bucket:   bucket,
			Prefix:   prefix,
			Region:   region,
			Profile:  profile,
			Endpoint: endpoint,
		},
	}

	// Lida com o arquivo de configuração, se especificado
	if args.ConfigFile != "" {
		cfg, err := app.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		usecase.ApplyConfig(args, cfg, flags.Changed)
	}

	if args.BaseURL == "" {
		args.BaseURL = os.Getenv("INVOICE_API_URL")
	}
	if args.BaseURL == "" {
		args.BaseURL = DefaultBaseURL
	}

	// Set default directory to current working directory if not specified
	if args.Dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		args.Dir = cwd
	} else {
		absDir, err := filepath.Abs(args.Dir)
		if err != nil {
			return nil, err
		}
		args.Dir = absDir
	}

	return args, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	displayWelcomeBanner(app.version)

	go version.CheckLatestVersion(app.version)

	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	dashboardUseCase, err := app.newUseCase(ctx, cliArgs)
	if err != nil {
		return err
	}

	return dashboardUseCase.RunDashboard(ctx, cliArgs)
}
