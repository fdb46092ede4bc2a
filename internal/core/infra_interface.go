package core

import (
	"context"

	"github.com/anvita-health/anvita/internal/models"
)

// DbClient defines all persistence operations the snapshot pipeline needs.
// It abstracts Postgres so higher layers never depend on a specific DB.
type DbClient interface {
	// SaveReport inserts a finished report. Reports are insert-once;
	// there is no update path.
	SaveReport(ctx context.Context, report *models.Report) error
	GetReportByID(ctx context.Context, reportID string) (*models.Report, error)

	// GetProfileByPhone resolves a marketplace profile from a normalized
	// phone number. Returns (nil, nil) when no profile exists.
	GetProfileByPhone(ctx context.Context, phone string) (*models.Profile, error)

	Close() error
}

// ObjectClient defines interactions with S3 or any object storage.
// Abstract so AWS can be swapped for MinIO, GCP, etc.
type ObjectClient interface {
	PutJSON(ctx context.Context, bucket, key string, payload any) error
}
