package services

import (
	"context"
	"strings"

	"github.com/instaguard/instaguard/internal/client/client"
	"github.com/instaguard/instaguard/internal/client/forms"
	"github.com/instaguard/instaguard/internal/client/models"
	"github.com/instaguard/instaguard/internal/client/repositories/session"
)

type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, req models.UpdateProfileRequest, confirm string) (string, error)
	History(ctx context.Context) ([]models.Activity, error)
	UserInfo(ctx context.Context) (*models.UserInfo, error)
	ChangePassword(ctx context.Context, req models.UpdatePasswordRequest) (string, error)
}

type profileService struct {
	guard
	needCaptcha bool
}

func NewProfileService(c client.Client, store session.Repository, needCaptcha bool) ProfileService {
	return &profileService{guard: guard{client: c, store: store}, needCaptcha: needCaptcha}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	return guarded(ctx, s.guard, s.client.Profile)
}

// Update records the time of the change locally once the server accepts it.
func (s *profileService) Update(ctx context.Context, req models.UpdateProfileRequest, confirm string) (string, error) {
	if err := forms.UpdateProfile(req, confirm, s.needCaptcha); err != nil {
		return "", err
	}
	req.FullName = strings.TrimSpace(req.FullName)

	msg, err := guarded(ctx, s.guard, func(ctx context.Context) (string, error) {
		return s.client.UpdateProfile(ctx, req)
	})
	if err != nil {
		return "", err
	}

	if err := s.store.MarkProfileUpdated(ctx, now()); err != nil {
		return msg, err
	}
	return msg, nil
}

func (s *profileService) History(ctx context.Context) ([]models.Activity, error) {
	return guarded(ctx, s.guard, s.client.History)
}

func (s *profileService) UserInfo(ctx context.Context) (*models.UserInfo, error) {
	return guarded(ctx, s.guard, s.client.UserInfo)
}

// ChangePassword is the admin password form, with the stricter rule.
func (s *profileService) ChangePassword(ctx context.Context, req models.UpdatePasswordRequest) (string, error) {
	if err := forms.AdminPassword(req); err != nil {
		return "", err
	}
	return guarded(ctx, s.guard, func(ctx context.Context) (string, error) {
		return s.client.UpdatePassword(ctx, req)
	})
}
