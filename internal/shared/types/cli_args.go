package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	BaseURL    string
	Timeout    time.Duration
	ReportName string
	ReportType []string
	Dir        string
	Watch      time.Duration
	S3         S3Config
}

// ServeArgs represents the arguments of the serve command.
type ServeArgs struct {
	DataFile string
	Addr     string
	Dev      bool
}
