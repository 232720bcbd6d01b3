package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
)

const exportLinkValidity = 15 * time.Minute

// Export kinds.
const (
	ExportReports  = "reports"
	ExportResults  = "results"
	ExportFeedback = "feedback"
)

// ObjectStore keeps exported files.
//
// Contract:
//   - PresignGet does not check that key exists.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// ExportLink points at an uploaded export.
type ExportLink struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// ExportService dumps admin tables to CSV in object storage.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       ObjectStore
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, store ObjectStore) *ExportService {
	return &ExportService{db: db, repomanager: m, store: store}
}

// Export writes the current contents of kind as CSV and returns a
// short-lived download link.
func (s *ExportService) Export(ctx context.Context, kind string) (*ExportLink, error) {
	var (
		rows [][]string
		err  error
	)
	switch kind {
	case ExportReports:
		rows, err = s.reportRows(ctx)
	case ExportResults:
		rows, err = s.resultRows(ctx)
	case ExportFeedback:
		rows, err = s.feedbackRows(ctx)
	default:
		return nil, fail(common.ErrorValidation, MsgUnknownExport)
	}
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", kind, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	at := now()
	key := exportKey(kind, at)
	if err := s.store.Put(ctx, key, buf.Bytes(), "text/csv"); err != nil {
		return nil, err
	}

	url, err := s.store.PresignGet(ctx, key, exportLinkValidity)
	if err != nil {
		return nil, err
	}

	return &ExportLink{Key: key, URL: url, ExpiresAt: at.Add(exportLinkValidity)}, nil
}

func exportKey(kind string, at time.Time) string {
	return fmt.Sprintf("exports/%s/%d/%d/%d/%v.csv", kind, at.Year(), at.Month(), at.Day(), uuid.New())
}

func (s *ExportService) reportRows(ctx context.Context) ([][]string, error) {
	list, err := s.repomanager.Reports(s.db).ListAll(ctx)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"id", "username", "reason", "status", "date_reported", "user_email"}}
	for _, r := range list {
		rows = append(rows, []string{r.ID, r.Username, r.Reason, r.Status, r.DateReported.UTC().Format(time.RFC3339), r.UserEmail})
	}
	return rows, nil
}

func (s *ExportService) resultRows(ctx context.Context) ([][]string, error) {
	list, err := s.repomanager.Results(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"id", "user_id", "username", "prediction", "confidence", "model_version", "timestamp", "note"}}
	for _, r := range list {
		rows = append(rows, []string{
			r.ID, r.UserID, r.Username, r.Prediction, formatConfidence(r.Confidence),
			r.ModelVersion, r.Timestamp.UTC().Format(time.RFC3339), deref(r.Note),
		})
	}
	return rows, nil
}

func (s *ExportService) feedbackRows(ctx context.Context) ([][]string, error) {
	list, err := s.repomanager.Feedback(s.db).ListWithAuthors(ctx)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"id", "name", "email", "impression", "feedback", "timestamp"}}
	for _, f := range list {
		rows = append(rows, []string{f.ID, f.Name, f.Email, f.Impression, strings.TrimSpace(f.Comment), f.Timestamp.UTC().Format(time.RFC3339)})
	}
	return rows, nil
}

func formatConfidence(c *float64) string {
	if c == nil {
		return ""
	}
	return strconv.FormatFloat(*c, 'f', 2, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
