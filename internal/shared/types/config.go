package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	BaseURL        string   `json:"base_url" yaml:"base_url" toml:"base_url"`
	TimeoutSeconds int      `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds"`
	ReportName     string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType     []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir            string   `json:"dir" yaml:"dir" toml:"dir"`
	WatchSeconds   int      `json:"watch_seconds" yaml:"watch_seconds" toml:"watch_seconds"`
	S3             S3Config `json:"s3" yaml:"s3" toml:"s3"`
}

// S3Config configures where exported reports are uploaded.
// Uploads are disabled while Bucket is empty.
type S3Config struct {
	Bucket          string `json:"bucket" yaml:"bucket" toml:"bucket"`
	Prefix          string `json:"prefix" yaml:"prefix" toml:"prefix"`
	Region          string `json:"region" yaml:"region" toml:"region"`
	Profile         string `json:"profile" yaml:"profile" toml:"profile"`
	Endpoint        string `json:"endpoint" yaml:"endpoint" toml:"endpoint"`
	AccessKeyID     string `json:"access_key_id" yaml:"access_key_id" toml:"access_key_id"`
	SecretAccessKey string `json:"secret_access_key" yaml:"secret_access_key" toml:"secret_access_key"`
}

// Enabled reports whether report uploads are configured.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}
