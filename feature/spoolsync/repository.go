package spoolsync

import (
	"context"
	"errors"
	"fmt"

	"spool-sync/feature/spoolsync/models"

	"gorm.io/gorm"
)

var (
	// ErrPrinterNotFound is returned when no printer has the given name.
	ErrPrinterNotFound = errors.New("printer not found")
	// ErrPrinterExists is returned when registering a duplicate printer name.
	ErrPrinterExists = errors.New("printer already exists")
)

// Repository persists printers and run history.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the feature's tables.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate spoolsync tables: %w", err)
	}
	return nil
}

// ListPrinters returns every registered printer ordered by name.
func (r *Repository) ListPrinters(ctx context.Context) ([]models.Printer, error) {
	var printers []models.Printer
	if err := r.db.WithContext(ctx).Order("name").Find(&printers).Error; err != nil {
		return nil, fmt.Errorf("failed to list printers: %w", err)
	}
	return printers, nil
}

// GetPrinter returns the printer named name.
func (r *Repository) GetPrinter(ctx context.Context, name string) (*models.Printer, error) {
	var printer models.Printer
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&printer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrPrinterNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get printer %s: %w", name, err)
	}
	return &printer, nil
}

// CreatePrinter registers a new printer.
func (r *Repository) CreatePrinter(ctx context.Context, printer *models.Printer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Printer{}).Where("name = ?", printer.Name).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check printer %s: %w", printer.Name, err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrPrinterExists, printer.Name)
		}
		if err := tx.Create(printer).Error; err != nil {
			return fmt.Errorf("failed to create printer %s: %w", printer.Name, err)
		}
		return nil
	})
}

// DeletePrinter removes the printer named name. Its run history is kept.
func (r *Repository) DeletePrinter(ctx context.Context, name string) error {
	res := r.db.WithContext(ctx).Where("name = ?", name).Delete(&models.Printer{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete printer %s: %w", name, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrPrinterNotFound, name)
	}
	return nil
}

// SaveRun stores a run together with its tray results.
func (r *Repository) SaveRun(ctx context.Context, run *models.SyncRun) error {
	if err := r.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.RunID, err)
	}
	return nil
}

// ListRuns returns the most recent runs of a printer, newest first.
func (r *Repository) ListRuns(ctx context.Context, printerName string, limit int) ([]models.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []models.SyncRun
	err := r.db.WithContext(ctx).
		Preload("Trays").
		Where("printer_name = ?", printerName).
		Order("started_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs for %s: %w", printerName, err)
	}
	return runs, nil
}
