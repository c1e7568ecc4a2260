package types

import "errors"

var (
	ErrNoBaseURL          = errors.New("no invoice API base URL configured")
	ErrUnknownResource    = errors.New("unknown dashboard resource")
	ErrUnsupportedReport  = errors.New("unsupported report type")
	ErrStorageNotEnabled  = errors.New("report storage is not configured: set an S3 bucket")
	ErrEmptyDatasetSource = errors.New("no dataset file given")
	ErrTrailingData       = errors.New("unexpected data after JSON value")
)
