package services

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/forms"
	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
)

// ReportService keeps the user's report list. Submit appends the created
// report to the held list only after the server accepted it.
type ReportService interface {
	Submit(ctx context.Context, req models.ReportRequest) (*models.Report, error)
	List(ctx context.Context) ([]models.Report, error)
	Mine(ctx context.Context) ([]models.Report, error)
	Held() []models.Report
}

type reportService struct {
	guard

	mu   sync.Mutex
	held []models.Report
}

func NewReportService(c client.Client, store session.Repository) ReportService {
	return &reportService{guard: guard{client: c, store: store}}
}

func (s *reportService) Submit(ctx context.Context, req models.ReportRequest) (*models.Report, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Reason = strings.TrimSpace(req.Reason)
	if err := forms.Report(req); err != nil {
		return nil, err
	}

	r, err := guarded(ctx, s.guard, func(ctx context.Context) (*models.Report, error) {
		return s.client.CreateReport(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.held = append(s.held, *r)
	s.mu.Unlock()
	return r, nil
}

// List reloads the held list from /reports.
func (s *reportService) List(ctx context.Context) ([]models.Report, error) {
	list, err := guarded(ctx, s.guard, s.client.Reports)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.held = slices.Clone(list)
	s.mu.Unlock()
	return list, nil
}

func (s *reportService) Mine(ctx context.Context) ([]models.Report, error) {
	return guarded(ctx, s.guard, s.client.MyReports)
}

func (s *reportService) Held() []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.held)
}
