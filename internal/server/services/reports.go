package services

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
)

// ReportService stores and lists reports of suspected fake profiles.
type ReportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewReportService(db *sql.DB, m repomanager.RepositoryManager) *ReportService {
	return &ReportService{db: db, repomanager: m}
}

// Submit files a Pending report under the reporter's email. Timestamps
// keep millisecond precision, which is what the wire format carries.
func (s *ReportService) Submit(ctx context.Context, reporter *models.User, username, reason string) (*models.Report, error) {
	username = strings.TrimSpace(username)
	reason = strings.TrimSpace(reason)
	if username == "" || reason == "" {
		return nil, fail(common.ErrorValidation, MsgReportFields)
	}

	r := &models.Report{
		Username:     username,
		Reason:       reason,
		Status:       common.ReportStatusPending,
		DateReported: now().Truncate(time.Millisecond),
		UserEmail:    reporter.Email,
	}
	if err := s.repomanager.Reports(s.db).Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Mine lists the reporter's own reports, newest first.
func (s *ReportService) Mine(ctx context.Context, reporter *models.User) ([]models.Report, error) {
	return s.repomanager.Reports(s.db).ListByEmail(ctx, reporter.Email)
}

// All lists every report, newest first.
func (s *ReportService) All(ctx context.Context) ([]models.Report, error) {
	return s.repomanager.Reports(s.db).ListAll(ctx)
}
