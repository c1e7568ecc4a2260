package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/diillson/invoice-dashboard-go/internal/adapter/driven/api"
	"github.com/diillson/invoice-dashboard-go/internal/adapter/driven/config"
	"github.com/diillson/invoice-dashboard-go/internal/adapter/driven/export"
	"github.com/diillson/invoice-dashboard-go/internal/adapter/driven/storage"
	"github.com/diillson/invoice-dashboard-go/internal/adapter/driving/cli"
	"github.com/diillson/invoice-dashboard-go/internal/adapter/driving/server"
	"github.com/diillson/invoice-dashboard-go/internal/adapter/driving/terminal"
	"github.com/diillson/invoice-dashboard-go/internal/application/usecase"
	"github.com/diillson/invoice-dashboard-go/internal/domain/repository"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
	"github.com/diillson/invoice-dashboard-go/pkg/console"
	"github.com/diillson/invoice-dashboard-go/pkg/version"
)

func main() {
	// Inicializa os repositórios
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	newDashboard := func(ctx context.Context, args *types.CLIArgs) (*usecase.DashboardUseCase, error) {
		apiRepo, err := api.NewAPIRepository(args.BaseURL, args.Timeout, http.DefaultClient)
		if err != nil {
			return nil, err
		}

		var storageRepo repository.ReportStorageRepository
		if args.S3.Enabled() {
			storageRepo, err = storage.NewS3Repository(ctx, args.S3)
			if err != nil {
				return nil, err
			}
		}

		return usecase.NewDashboardUseCase(
			apiRepo,
			exportRepo,
			storageRepo,
			consoleImpl,
			terminal.NewDashboardView(consoleImpl),
		), nil
	}

	serve := func(ctx context.Context, args *types.ServeArgs) error {
		dataset, err := configRepo.LoadDataset(args.DataFile)
		if err != nil {
			return err
		}

		logger, err := newLogger(args.Dev)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return server.ListenAndServe(ctx, args.Addr, server.NewHandler(dataset, logger))
	}

	app := cli.NewCLIApp(version.Version, configRepo, newDashboard, serve)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
