package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportSubmit(t *testing.T) {
	db, _ := newSQLMockDB(t)
	fixNow(t, time.Date(2025, 3, 1, 10, 0, 0, 123456789, time.UTC))

	rm := newFakeRepoManager()
	svc := NewReportService(db, rm)
	reporter := &models.User{ID: "u1", Email: "r@example.com"}

	r, err := svc.Submit(context.Background(), reporter, " fake.account ", " spam ")
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "fake.account", r.Username)
	assert.Equal(t, "spam", r.Reason)
	assert.Equal(t, common.ReportStatusPending, r.Status)
	assert.Equal(t, "r@example.com", r.UserEmail)
	assert.Equal(t, 123000000, r.DateReported.Nanosecond())

	mine, err := svc.Mine(context.Background(), reporter)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	other, err := svc.Mine(context.Background(), &models.User{Email: "x@example.com"})
	require.NoError(t, err)
	assert.Empty(t, other)

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestReportSubmit_Validation(t *testing.T) {
	db, _ := newSQLMockDB(t)
	svc := NewReportService(db, newFakeRepoManager())
	reporter := &models.User{ID: "u1", Email: "r@example.com"}

	_, err := svc.Submit(context.Background(), reporter, "user", "  ")
	assertKind(t, err, common.ErrorValidation, MsgReportFields)

	_, err = svc.Submit(context.Background(), reporter, "", "reason")
	assertKind(t, err, common.ErrorValidation, MsgReportFields)
}

func TestReportSubmit_RepoError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.reports.err = errors.New("db error: boom")
	svc := NewReportService(db, rm)

	_, err := svc.Submit(context.Background(), &models.User{}, "user", "reason")
	require.Error(t, err)
}

func TestFeedbackSubmit(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	svc := NewFeedbackService(db, rm)
	author := &models.User{ID: "u1"}

	err := svc.Submit(context.Background(), author, "  ", "text")
	assertKind(t, err, common.ErrorValidation, MsgImpressionRequired)

	require.NoError(t, svc.Submit(context.Background(), author, "Great", ""))

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "u1", list[0].UserID)
	assert.Equal(t, "Great", list[0].Impression)
}

func TestContactSend(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	ml := &fakeMailer{}
	svc := NewContactService(db, rm, ml, "support@example.com")

	err := svc.Send(context.Background(), "Ali", "", "hi")
	assertKind(t, err, common.ErrorValidation, MsgContactFields)

	require.NoError(t, svc.Send(context.Background(), "Ali", "ali@example.com", "hello there"))
	require.Len(t, rm.contacts.list, 1)
	require.Len(t, ml.sent, 1)
	assert.Equal(t, "support@example.com", ml.sent[0].To)
	assert.Contains(t, ml.sent[0].Body, "hello there")
}

func TestContactSend_MailFailureKeepsMessage(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	ml := &fakeMailer{err: errors.New("smtp down")}
	svc := NewContactService(db, rm, ml, "support@example.com")

	err := svc.Send(context.Background(), "Ali", "ali@example.com", "hello")
	require.Error(t, err)
	assert.Len(t, rm.contacts.list, 1)
}
