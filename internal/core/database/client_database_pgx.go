package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/anvita-health/anvita/internal/config"
	"github.com/anvita-health/anvita/internal/core"
	"github.com/anvita-health/anvita/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(ctx context.Context, cfg *config.Config) (core.DbClient, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database client configuration is nil")
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	// Sensible pool settings for an API service; adjust as needed.
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	db.SetConnMaxIdleTime(10 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := EnsureBootstrapped(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (c *DatabaseClient) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// SaveReport inserts a finished report. Transcript and findings go into
// JSONB columns; reports are never updated after insert.
func (c *DatabaseClient) SaveReport(ctx context.Context, report *models.Report) error {
	if report == nil {
		return errors.New("nil report")
	}

	transcript, err := json.Marshal(report.FullTranscript)
	if err != nil {
		return fmt.Errorf("marshal transcript: %w", err)
	}
	findings, err := json.Marshal(report.StructuredFindings)
	if err != nil {
		return fmt.Errorf("marshal findings: %w", err)
	}

	const q = `
		INSERT INTO snapshot_reports (id, owner_id, owner_phone, transcript, findings, created_at)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, now()))
	`
	_, err = c.db.ExecContext(ctx, q,
		report.ReportID, report.OwnerID, report.OwnerPhone, transcript, findings, report.CreatedAt)
	return err
}

func (c *DatabaseClient) GetReportByID(ctx context.Context, reportID string) (*models.Report, error) {
	const q = `
		SELECT id, owner_id, owner_phone, transcript, findings, created_at
		FROM snapshot_reports WHERE id = $1
	`
	var (
		r          models.Report
		transcript []byte
		findings   []byte
	)
	err := c.db.QueryRowContext(ctx, q, reportID).Scan(
		&r.ReportID, &r.OwnerID, &r.OwnerPhone, &transcript, &findings, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(transcript, &r.FullTranscript); err != nil {
		return nil, fmt.Errorf("unmarshal transcript: %w", err)
	}
	if err := json.Unmarshal(findings, &r.StructuredFindings); err != nil {
		return nil, fmt.Errorf("unmarshal findings: %w", err)
	}
	return &r, nil
}

func (c *DatabaseClient) GetProfileByPhone(ctx context.Context, phone string) (*models.Profile, error) {
	const q = `
		SELECT id, phone, full_name, role, status, created_at, updated_at
		FROM profiles WHERE phone = $1
	`
	var p models.Profile
	err := c.db.QueryRowContext(ctx, q, phone).Scan(
		&p.ID, &p.Phone, &p.FullName, &p.Role, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
