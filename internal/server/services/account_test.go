package services

import (
	"context"
	"testing"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/cryptox"
	"github.com/instaguard/instaguard/internal/server/captcha"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile_NameAndPassword(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	u := verifiedUser(t, common.RoleUser)
	rm := newFakeRepoManager(u)
	svc := NewAccountService(db, rm, &fakeCaptcha{})

	require.NoError(t, svc.UpdateProfile(context.Background(), u, " Ayesha K. ", "NewPass1!", "cap", ""))
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "Ayesha K.", u.FullName)
	assert.NoError(t, cryptox.ComparePassword(u.PasswordHash, []byte("NewPass1!")))
	require.Len(t, rm.activities.list, 1)
	assert.Equal(t, models.ActionProfileUpdated, rm.activities.list[0].Action)
}

func TestUpdateProfile_PasswordOnlyKeepsName(t *testing.T) {
	db, mock := newSQLMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	u := verifiedUser(t, common.RoleUser)
	rm := newFakeRepoManager(u)
	svc := NewAccountService(db, rm, &fakeCaptcha{})

	require.NoError(t, svc.UpdateProfile(context.Background(), u, "", "NewPass1!", "cap", ""))
	assert.Equal(t, "Ayesha Khan", u.FullName)
	assert.NoError(t, cryptox.ComparePassword(u.PasswordHash, []byte("NewPass1!")))
}

func TestUpdateProfile_NothingChanged(t *testing.T) {
	db, mock := newSQLMockDB(t)

	u := verifiedUser(t, common.RoleUser)
	rm := newFakeRepoManager(u)
	svc := NewAccountService(db, rm, &fakeCaptcha{})

	require.NoError(t, svc.UpdateProfile(context.Background(), u, "Ayesha Khan", "", "cap", ""))
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Empty(t, rm.activities.list)
	assert.Nil(t, u.UpdatedAt)
}

func TestUpdateProfile_Captcha(t *testing.T) {
	db, _ := newSQLMockDB(t)
	u := verifiedUser(t, common.RoleUser)

	svc := NewAccountService(db, newFakeRepoManager(u), &fakeCaptcha{})
	err := svc.UpdateProfile(context.Background(), u, "X", "", "", "")
	assertKind(t, err, common.ErrorValidation, MsgCaptchaRequired)

	svc = NewAccountService(db, newFakeRepoManager(u), &fakeCaptcha{err: captcha.ErrFailed})
	err = svc.UpdateProfile(context.Background(), u, "X", "", "bad", "")
	assertKind(t, err, common.ErrorValidation, MsgCaptchaFailed)
}

func TestHistory(t *testing.T) {
	db, _ := newSQLMockDB(t)
	rm := newFakeRepoManager()
	rm.activities.list = []models.Activity{
		{UserID: "u1", Action: models.ActionLoggedIn},
		{UserID: "u2", Action: models.ActionLoggedIn},
		{UserID: "u1", Action: models.ActionProfileUpdated},
	}
	svc := NewAccountService(db, rm, &fakeCaptcha{})

	got, err := svc.History(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpdatePassword(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		current string
		next    string
		kind    error
		msg     string
	}{
		{"missing fields", common.RoleAdmin, "", "NewPass1!", common.ErrorValidation, MsgPasswordFields},
		{"not admin", common.RoleUser, "Secret1!", "NewPass1!", common.ErrorForbidden, MsgUnauthorizedAccess},
		{"wrong current", common.RoleAdmin, "Wrong1!", "NewPass1!", common.ErrorValidation, MsgCurrentPasswordBad},
		{"weak", common.RoleAdmin, "Secret1!", "password", common.ErrorValidation, MsgWeakPassword},
		{"ok", common.RoleAdmin, "Secret1!", "NewPass1!", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			u := verifiedUser(t, tt.role)
			svc := NewAccountService(db, newFakeRepoManager(u), &fakeCaptcha{})

			err := svc.UpdatePassword(context.Background(), u, tt.current, tt.next)
			if tt.kind != nil {
				assertKind(t, err, tt.kind, tt.msg)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, cryptox.ComparePassword(u.PasswordHash, []byte(tt.next)))
		})
	}
}

func TestStrongPassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Secret1!", true},
		{"Aa1@aaaa", true},
		{"Secret1", false},
		{"secret1!", false},
		{"SECRET1!", false},
		{"Secret!!", false},
		{"Secret11", false},
		{"Secret1#", false},
		{"Secret 1!", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, strongPassword(tt.in), tt.in)
	}
}
