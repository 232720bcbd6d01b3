package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
	"golang.org/x/sync/errgroup"
)

const (
	recentUsersLimit     = 5
	recentReportsLimit   = 5
	recentActivitiesSize = 8
)

// AdminService backs the admin dashboard: user management, analytics and
// site settings.
type AdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager) *AdminService {
	return &AdminService{db: db, repomanager: m}
}

// Users lists regular accounts. Admins are not listed.
func (s *AdminService) Users(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users(s.db).ListByRole(ctx, common.RoleUser)
}

// DeleteUser removes the account with id. Their activity and feedback go
// with it; reports stay, keyed by email.
func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errUserNotFound
	}

	err := s.repomanager.Users(s.db).Delete(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return errUserNotFound
	}
	return err
}

// Analytics counts users and reports and lists the newest accounts. The
// queries run concurrently; any failure fails the whole call.
func (s *AdminService) Analytics(ctx context.Context) (*models.Analytics, error) {
	users := s.repomanager.Users(s.db)
	reports := s.repomanager.Reports(s.db)

	var a models.Analytics
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		a.TotalUsers, err = users.CountByRole(ctx, common.RoleUser, false)
		return err
	})
	g.Go(func() (err error) {
		a.VerifiedUsers, err = users.CountByRole(ctx, common.RoleUser, true)
		return err
	})
	g.Go(func() (err error) {
		a.TotalReports, err = reports.Count(ctx, "")
		return err
	})
	g.Go(func() (err error) {
		a.PendingReports, err = reports.Count(ctx, common.ReportStatusPending)
		return err
	})
	g.Go(func() (err error) {
		a.RecentUsers, err = users.Recent(ctx, common.RoleUser, recentUsersLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics: %w", err)
	}
	return &a, nil
}

// RecentActivities merges the newest signups (any role) with the newest
// reports and keeps the latest few.
func (s *AdminService) RecentActivities(ctx context.Context) ([]models.RecentActivity, error) {
	users, err := s.repomanager.Users(s.db).Recent(ctx, "", recentUsersLimit)
	if err != nil {
		return nil, err
	}
	reports, err := s.repomanager.Reports(s.db).Recent(ctx, recentReportsLimit)
	if err != nil {
		return nil, err
	}

	out := make([]models.RecentActivity, 0, len(users)+len(reports))
	for _, u := range users {
		out = append(out, models.RecentActivity{
			Description: "New user registered: " + u.FullName,
			Timestamp:   u.CreatedAt,
		})
	}
	for _, r := range reports {
		out = append(out, models.RecentActivity{
			Description: "New report submitted by " + r.UserEmail,
			Timestamp:   r.DateReported,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > recentActivitiesSize {
		out = out[:recentActivitiesSize]
	}
	return out, nil
}

// Settings returns the site settings, storing the defaults on first read.
func (s *AdminService) Settings(ctx context.Context) (*models.Settings, error) {
	return s.repomanager.Settings(s.db).GetOrCreate(ctx, models.DefaultSettings())
}

// UpdateSettings saves st and reports whether anything changed.
func (s *AdminService) UpdateSettings(ctx context.Context, st models.Settings) (bool, error) {
	return s.repomanager.Settings(s.db).Save(ctx, st)
}
