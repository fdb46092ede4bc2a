package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/anvita-health/anvita/internal/core"
	"github.com/anvita-health/anvita/internal/core/snapshot"
	"github.com/anvita-health/anvita/internal/models"
)

// SnapshotService runs the turn pipeline and owns its side effects:
// generate through the engine, persist the report on terminal turns,
// then archive best-effort. Persist happens before the handler responds,
// so a reportId that reaches the caller is always readable.
//
// Idempotency is the caller's job: replaying an already-terminal
// transcript re-runs extraction and creates a second report under a
// fresh id.
type SnapshotService struct {
	engine        *snapshot.Engine
	db            core.DbClient
	archiver      core.ObjectClient // nil when archival is disabled
	archiveBucket string
}

func NewSnapshotService(engine *snapshot.Engine, db core.DbClient, archiver core.ObjectClient, archiveBucket string) *SnapshotService {
	return &SnapshotService{engine: engine, db: db, archiver: archiver, archiveBucket: archiveBucket}
}

// TurnOutcome is what the handler needs to build the HTTP response.
type TurnOutcome struct {
	Response     string
	IsComplete   bool
	ReportID     string
	Findings     *models.StructuredFindings
	CreatedAt    time.Time
	ProviderUsed string
}

// ResolveOwner backfills an anonymous owner id from an approved profile
// matching the normalized phone, if one exists. Lookup errors only log;
// an anonymous snapshot is still a valid snapshot.
func (s *SnapshotService) ResolveOwner(ctx context.Context, ownerID, normalizedPhone string) string {
	if ownerID != "anonymous" || normalizedPhone == "" {
		return ownerID
	}
	p, err := s.db.GetProfileByPhone(ctx, normalizedPhone)
	if err != nil {
		log.Printf("profile lookup failed for snapshot owner: %v", err)
		return ownerID
	}
	if p != nil && p.Status == "approved" {
		return p.ID
	}
	return ownerID
}

// Turn runs one conversational turn. On terminal turns the report is
// saved before returning; a save failure fails the call.
func (s *SnapshotService) Turn(ctx context.Context, ownerID, ownerPhone string, history []models.Turn, message string) (*TurnOutcome, error) {
	res, err := s.engine.NextTurn(ctx, history, message)
	if err != nil {
		return nil, err
	}

	out := &TurnOutcome{
		Response:     res.Assistant.Text,
		IsComplete:   res.IsComplete,
		ProviderUsed: res.ProviderUsed,
	}
	if !res.IsComplete {
		return out, nil
	}

	report := &models.Report{
		ReportID:           snapshot.NewReportID(),
		OwnerID:            ownerID,
		OwnerPhone:         ownerPhone,
		FullTranscript:     res.FullTranscript,
		StructuredFindings: *res.Findings,
		CreatedAt:          time.Now(),
	}

	if err := s.db.SaveReport(ctx, report); err != nil {
		return nil, fmt.Errorf("save report: %w", err)
	}

	s.archive(ctx, report)

	out.ReportID = report.ReportID
	out.Findings = res.Findings
	out.CreatedAt = report.CreatedAt
	return out, nil
}

// GetReport is the read path; returns (nil, nil) when the id is unknown.
func (s *SnapshotService) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	return s.db.GetReportByID(ctx, reportID)
}

func (s *SnapshotService) archive(ctx context.Context, report *models.Report) {
	if s.archiver == nil || s.archiveBucket == "" {
		return
	}
	key := fmt.Sprintf("reports/%s/%s.json", report.CreatedAt.Format("2006/01"), report.ReportID)
	if err := s.archiver.PutJSON(ctx, s.archiveBucket, key, report); err != nil {
		// Archival is best-effort; the report is already durable in Postgres.
		log.Printf("report archive failed for %s: %v", report.ReportID, err)
	}
}
