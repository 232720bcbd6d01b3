package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/server/mailer"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
)

// ContactService takes messages from the public contact form.
type ContactService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	mailer      mailer.Mailer
	support     string
}

func NewContactService(db *sql.DB, m repomanager.RepositoryManager, ml mailer.Mailer, supportEmail string) *ContactService {
	return &ContactService{db: db, repomanager: m, mailer: ml, support: supportEmail}
}

// Send stores the message, then forwards it to support. The stored copy
// survives a mail failure, which is still reported.
func (s *ContactService) Send(ctx context.Context, name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return fail(common.ErrorValidation, MsgContactFields)
	}

	m := &models.ContactMessage{Name: name, Email: email, Message: message, CreatedAt: now()}
	if err := s.repomanager.Contacts(s.db).Create(ctx, m); err != nil {
		return err
	}

	return s.mailer.Send(ctx, mailer.Support(s.support, name, email, message))
}
