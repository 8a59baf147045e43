package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"spool-sync/core/database"
	"spool-sync/core/storage"
	"spool-sync/core/storage/mocks"
	"spool-sync/feature/health/checks"
	"spool-sync/feature/spoolsync/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakePinger struct{ err error }

func (p fakePinger) Health(context.Context) error { return p.err }

func migratedDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

func setupTestApp(t *testing.T, store storage.Client, pingErr error) *fiber.App {
	svc := NewService(store, "reports", "", fakePinger{err: pingErr}, migratedDB(t), models.All(), zap.NewNop())
	app := fiber.New()
	feature := NewFeature(svc)
	require.NoError(t, feature.Load(app))
	return app
}

func TestLoader(t *testing.T) {
	feature := NewFeature(NewService(nil, "", "", fakePinger{}, nil, nil, zap.NewNop()))
	assert.Equal(t, "health", feature.Name())
	assert.True(t, feature.IsEnabled())
}

func TestHandleHealth_OK(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	app := setupTestApp(t, store, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, checks.StatusOK, report.Status)
	assert.True(t, report.Schema.Matched)
}

func TestHandleHealth_StorageDisabled(t *testing.T) {
	app := setupTestApp(t, nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, checks.StatusDisabled, report.Storage.Status)
}

func TestHandleHealth_SpoolmanDown(t *testing.T) {
	app := setupTestApp(t, nil, errors.New("connection refused"))

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleStorageCheck_Fix(t *testing.T) {
	store := new(mocks.Client)
	store.On("BucketExists", mock.Anything, "reports").Return(false, nil).Twice()
	store.On("MakeBucket", mock.Anything, "reports", minio.MakeBucketOptions{}).Return(nil).Once()
	store.On("BucketExists", mock.Anything, "reports").Return(true, nil)
	app := setupTestApp(t, store, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/storage?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report checks.StorageReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Exists)
	store.AssertExpectations(t)
}

func TestHandleSchemaCheck(t *testing.T) {
	app := setupTestApp(t, nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var report checks.SchemaReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Matched)
}

func TestHandleSpoolmanCheck(t *testing.T) {
	app := setupTestApp(t, nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/health/spoolman", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
