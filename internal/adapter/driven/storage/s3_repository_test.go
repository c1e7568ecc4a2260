package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/invoice-dashboard-go/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	f.body, _ = io.ReadAll(params.Body)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

type fakeIdentity struct {
	calls int
}

func (f *fakeIdentity) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.calls++
	return &sts.GetCallerIdentityOutput{Account: aws.String("123456789012")}, nil
}

func TestNewS3Repository_RequiresBucket(t *testing.T) {
	_, err := NewS3Repository(context.Background(), types.S3Config{})
	assert.ErrorIs(t, err, types.ErrStorageNotEnabled)
}

func TestObjectKey(t *testing.T) {
	repo := newS3Repository(types.S3Config{Bucket: "reports", Prefix: "/dashboards/"}, nil, nil)
	assert.Equal(t, "dashboards/load-1/report.csv", repo.ObjectKey("load-1", "/tmp/out/report.csv"))

	repo = newS3Repository(types.S3Config{Bucket: "reports"}, nil, nil)
	assert.Equal(t, "load-1/report.pdf", repo.ObjectKey("load-1", "report.pdf"))
}

func TestUpload(t *testing.T) {
	local := filepath.Join(t.TempDir(), "dashboard_20260304_050607.json")
	require.NoError(t, os.WriteFile(local, []byte(`{"load_id":"load-1"}`), 0o644))

	putter := &fakePutter{}
	identity := &fakeIdentity{}
	repo := newS3Repository(types.S3Config{Bucket: "reports", Prefix: "dash"}, putter, identity)

	uri, err := repo.Upload(context.Background(), "load-1", local)
	require.NoError(t, err)
	assert.Equal(t, "s3://reports/dash/load-1/dashboard_20260304_050607.json", uri)

	require.NotNil(t, putter.input)
	assert.Equal(t, "reports", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "application/json", aws.ToString(putter.input.ContentType))
	assert.Equal(t, int64(len(putter.body)), aws.ToInt64(putter.input.ContentLength))
	assert.Equal(t, "123456789012", putter.input.Metadata["uploaded-by-account"])
	assert.Equal(t, "load-1", putter.input.Metadata["load-id"])

	_, err = repo.Upload(context.Background(), "load-1", local)
	require.NoError(t, err)
	assert.Equal(t, 1, identity.calls, "caller identity is resolved once")
}

func TestUpload_CustomEndpointSkipsIdentity(t *testing.T) {
	local := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(local, []byte("a,b\n"), 0o644))

	identity := &fakeIdentity{}
	repo := newS3Repository(types.S3Config{Bucket: "reports", Endpoint: "http://minio:9000"}, &fakePutter{}, identity)

	_, err := repo.Upload(context.Background(), "load-1", local)
	require.NoError(t, err)
	assert.Zero(t, identity.calls)
}

func TestUpload_Errors(t *testing.T) {
	repo := newS3Repository(types.S3Config{Bucket: "reports"}, &fakePutter{err: errors.New("access denied")}, nil)

	_, err := repo.Upload(context.Background(), "load-1", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to open report")

	local := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(local, []byte("a,b\n"), 0o644))

	_, err = repo.Upload(context.Background(), "load-1", local)
	assert.ErrorContains(t, err, "access denied")
}
