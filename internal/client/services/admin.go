package services

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sync"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/forms"
	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
	"github.com/instaguard/instaguard/internal/filex"
	"github.com/instaguard/instaguard/internal/netx"
	"golang.org/x/sync/errgroup"
)

// AdminService backs the admin dashboard. Users and DeleteUser keep the
// displayed user list in step with the server.
type AdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) (string, []models.User, error)
	Reports(ctx context.Context) ([]models.Report, error)
	Feedback(ctx context.Context) ([]models.Feedback, error)
	ProfileResults(ctx context.Context) ([]models.ProfileResult, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	Settings(ctx context.Context) (*models.Settings, error)
	SaveSettings(ctx context.Context, s models.Settings) (string, error)
	Export(ctx context.Context, kind string) (string, error)
}

type adminService struct {
	guard
	dataDir  string
	download *http.Client

	mu     sync.Mutex
	users  []models.User
	loaded bool
}

// NewAdminService builds an AdminService. Exports are written under
// dataDir/exports.
func NewAdminService(c client.Client, store session.Repository, dataDir string) AdminService {
	return &adminService{
		guard:    guard{client: c, store: store},
		dataDir:  dataDir,
		download: http.DefaultClient,
	}
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	users, err := guarded(ctx, s.guard, s.client.AdminUsers)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.users = slices.Clone(users)
	s.loaded = true
	s.mu.Unlock()
	return users, nil
}

// DeleteUser removes exactly the entry with id from the held list once the
// server confirms, and returns what is left. When no list has been fetched
// yet, the remaining users are loaded from the server instead.
func (s *adminService) DeleteUser(ctx context.Context, id string) (string, []models.User, error) {
	msg, err := guarded(ctx, s.guard, func(ctx context.Context) (string, error) {
		return s.client.DeleteUser(ctx, id)
	})
	if err != nil {
		return "", nil, err
	}

	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()
	if !loaded {
		users, err := s.Users(ctx)
		if err != nil {
			return msg, nil, err
		}
		return msg, users, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = slices.DeleteFunc(s.users, func(u models.User) bool { return u.ID == id })
	return msg, slices.Clone(s.users), nil
}

func (s *adminService) Reports(ctx context.Context) ([]models.Report, error) {
	return guarded(ctx, s.guard, s.client.AdminReports)
}

func (s *adminService) Feedback(ctx context.Context) ([]models.Feedback, error) {
	return guarded(ctx, s.guard, s.client.AdminFeedback)
}

func (s *adminService) ProfileResults(ctx context.Context) ([]models.ProfileResult, error) {
	return guarded(ctx, s.guard, s.client.ProfileResults)
}

// Dashboard fetches analytics and recent activities together. Either
// failure fails the whole view.
func (s *adminService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var (
		analytics  *models.Analytics
		activities []models.RecentActivity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		analytics, err = s.client.Analytics(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = s.client.RecentActivities(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, s.check(ctx, err)
	}
	return &models.Dashboard{Analytics: *analytics, Activities: activities}, nil
}

func (s *adminService) Settings(ctx context.Context) (*models.Settings, error) {
	return guarded(ctx, s.guard, s.client.Settings)
}

func (s *adminService) SaveSettings(ctx context.Context, settings models.Settings) (string, error) {
	if err := forms.Settings(settings); err != nil {
		return "", err
	}
	return guarded(ctx, s.guard, func(ctx context.Context) (string, error) {
		return s.client.UpdateSettings(ctx, settings)
	})
}

// Export asks the server for a CSV export and downloads it through the
// presigned link. It returns the local file path.
func (s *adminService) Export(ctx context.Context, kind string) (string, error) {
	switch kind {
	case models.ExportReports, models.ExportResults, models.ExportFeedback:
	default:
		return "", fmt.Errorf("unknown export %q", kind)
	}

	link, err := guarded(ctx, s.guard, func(ctx context.Context) (*models.ExportLink, error) {
		return s.client.Export(ctx, kind)
	})
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureSubDir(s.dataDir, "exports")
	if err != nil {
		return "", err
	}

	name := path.Base(link.Key)
	if name == "." || name == "/" {
		name = kind + ".csv"
	}
	target := filepath.Join(dir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if _, err := netx.DownloadPresignedURL(ctx, s.download, link.URL, f); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	return target, nil
}
