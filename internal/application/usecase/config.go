package usecase

import (
	"time"

	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

// ApplyConfig merges values from a config file into args.
// Flags reported by changed were set explicitly on the command line and win.
func ApplyConfig(args *types.CLIArgs, cfg *types.Config, changed func(flag string) bool) {
	if cfg == nil {
		return
	}
	if changed == nil {
		changed = func(string) bool { return false }
	}

	if cfg.BaseURL != "" && !changed("base-url") {
		args.BaseURL = cfg.BaseURL
	}
	if cfg.TimeoutSeconds > 0 && !changed("timeout") {
		args.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if cfg.ReportName != "" && !changed("report-name") {
		args.ReportName = cfg.ReportName
	}
	if len(cfg.ReportType) > 0 && !changed("report-type") {
		args.ReportType = cfg.ReportType
	}
	if cfg.Dir != "" && !changed("dir") {
		args.Dir = cfg.Dir
	}
	if cfg.WatchSeconds > 0 && !changed("watch") {
		args.Watch = time.Duration(cfg.WatchSeconds) * time.Second
	}

	s3 := cfg.S3
	if s3.Bucket != "" && !changed("s3-bucket") {
		args.S3.Bucket = s3.Bucket
	}
	if s3.Prefix != "" && !changed("s3-prefix") {
		args.S3.Prefix = s3.Prefix
	}
	if s3.Region != "" && !changed("s3-region") {
		args.S3.Region = s3.Region
	}
	if s3.Profile != "" && !changed("s3-profile") {
		args.S3.Profile = s3.Profile
	}
	if s3.Endpoint != "" && !changed("s3-endpoint") {
		args.S3.Endpoint = s3.Endpoint
	}
	// Credenciais só existem no arquivo.
	if s3.AccessKeyID != "" {
		args.S3.AccessKeyID = s3.AccessKeyID
		args.S3.SecretAccessKey = s3.SecretAccessKey
	}
}
