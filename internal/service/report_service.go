package service

import (
	"context"
	"errors"
	"time"

	"forumflow/internal/auth"
	"forumflow/internal/models"
	"forumflow/internal/repository"
)

// ErrInvalidAction means the moderation action was outside the closed
// set warn/delete/ban/resolve.
var ErrInvalidAction = errors.New("action must be one of warn, delete, ban, resolve")

const (
	ActionWarn    = "warn"
	ActionDelete  = "delete"
	ActionBan     = "ban"
	ActionResolve = "resolve"
)

type CreateReportRequest struct {
	ReportedUserUID   string
	ReportedUserEmail string
	ContentID         string
	ContentSnippet    string
	Reason            string
}

type ReportService interface {
	CreateReport(ctx context.Context, reporter auth.Identity, req CreateReportRequest) (string, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	ApplyAction(ctx context.Context, reportID, action string) (*models.Report, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// CreateReport files a report. Reporter identity fields come from the
// verified identity, never from client input.
func (s *reportService) CreateReport(ctx context.Context, reporter auth.Identity, req CreateReportRequest) (string, error) {
	report := &models.Report{
		ReporterUID:       reporter.UID,
		ReporterEmail:     reporter.Email,
		ReportedUserUID:   req.ReportedUserUID,
		ReportedUserEmail: req.ReportedUserEmail,
		ContentID:         req.ContentID,
		ContentSnippet:    req.ContentSnippet,
		Reason:            req.Reason,
	}

	return s.reportRepo.Create(ctx, report)
}

func (s *reportService) ListReports(ctx context.Context) ([]models.Report, error) {
	return s.reportRepo.List(ctx)
}

// ApplyAction appends one action record and recomputes the status:
// resolve moves the report to resolved, any other valid action to
// action_taken.
func (s *reportService) ApplyAction(ctx context.Context, reportID, action string) (*models.Report, error) {
	var status string
	switch action {
	case ActionResolve:
		status = models.ReportResolved
	case ActionWarn, ActionDelete, ActionBan:
		status = models.ReportActionTaken
	default:
		return nil, ErrInvalidAction
	}

	record := models.ReportAction{
		Type: action,
		At:   time.Now().UTC(),
	}

	return s.reportRepo.ApplyAction(ctx, reportID, record, status)
}
