package repository

import "context"

// ReportStorageRepository publishes exported reports to object storage.
type ReportStorageRepository interface {
	// Upload stores the file under the given load ID and returns its URI.
	Upload(ctx context.Context, loadID string, localPath string) (string, error)
}
