package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/diillson/invoice-dashboard-go/internal/domain/repository"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
)

// objectPutter is the subset of the S3 client used for uploads.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// identityGetter is the subset of the STS client used to tag uploads.
type identityGetter interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// S3RepositoryImpl implementa o ReportStorageRepository sobre S3.
type S3RepositoryImpl struct {
	cfg      types.S3Config
	s3Client objectPutter
	sts      identityGetter

	mu        sync.Mutex
	accountID *string
}

// NewS3Repository cria o cliente S3 a partir da configuração de upload.
func NewS3Repository(ctx context.Context, cfg types.S3Config) (repository.ReportStorageRepository, error) {
	if !cfg.Enabled() {
		return nil, types.ErrStorageNotEnabled
	}

	awsCfg, err := loadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// Endpoints compatíveis (MinIO, B2) exigem path-style.
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Repository(cfg, s3Client, sts.NewFromConfig(awsCfg)), nil
}

func newS3Repository(cfg types.S3Config, putter objectPutter, identity identityGetter) *S3RepositoryImpl {
	return &S3RepositoryImpl{
		cfg:      cfg,
		s3Client: putter,
		sts:      identity,
	}
}

func loadAWSConfig(ctx context.Context, cfg types.S3Config) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return awsCfg, nil
}

// ObjectKey monta a chave <prefix>/<loadID>/<arquivo>.
func (r *S3RepositoryImpl) ObjectKey(loadID, localPath string) string {
	parts := []string{}
	if p := strings.Trim(r.cfg.Prefix, "/"); p != "" {
		parts = append(parts, p)
	}
	if loadID != "" {
		parts = append(parts, loadID)
	}
	parts = append(parts, filepath.Base(localPath))
	return path.Join(parts...)
}

// Upload envia um relatório exportado e devolve a URI s3://.
func (r *S3RepositoryImpl) Upload(ctx context.Context, loadID, localPath string) (string, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open report %s: %w", localPath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat report %s: %w", localPath, err)
	}

	key := r.ObjectKey(loadID, localPath)
	metadata := map[string]string{
		"load-id":       loadID,
		"upload-source": "invoice-dashboard",
	}
	if account := r.callerAccount(ctx); account != "" {
		metadata["uploaded-by-account"] = account
	}

	_, err = r.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.cfg.Bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(contentType(localPath)),
		ContentLength: aws.Int64(info.Size()),
		Metadata:      metadata,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3://%s/%s: %w", r.cfg.Bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", r.cfg.Bucket, key), nil
}

// callerAccount resolve o account ID uma única vez; endpoints sem STS devolvem "".
func (r *S3RepositoryImpl) callerAccount(ctx context.Context) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.accountID != nil {
		return *r.accountID
	}

	account := ""
	if r.sts != nil && r.cfg.Endpoint == "" {
		if out, err := r.sts.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{}); err == nil && out.Account != nil {
			account = *out.Account
		}
	}
	r.accountID = &account
	return account
}

func contentType(localPath string) string {
	switch strings.ToLower(filepath.Ext(localPath)) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	case ".pdf":
		return "application/pdf"
	}
	return "application/octet-stream"
}
