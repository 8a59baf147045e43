package storage_test

import (
	"context"
	"testing"

	"spool-sync/core/storage"
	"spool-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestConfig_Enabled(t *testing.T) {
	assert.False(t, storage.Config{}.Enabled())
	assert.True(t, storage.Config{Endpoint: "localhost:9000"}.Enabled())
}

func TestEnsureBucket(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), client, "reports", ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("creates", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "reports", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), client, "reports", "eu-west-1"))
		client.AssertExpectations(t)
	})

	t.Run("error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, assert.AnError)

		err := storage.EnsureBucket(context.Background(), client, "reports", "")
		assert.ErrorIs(t, err, assert.AnError)
	})
}
