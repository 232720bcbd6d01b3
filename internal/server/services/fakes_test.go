package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/dbx"
	"github.com/instaguard/instaguard/internal/server/auth"
	"github.com/instaguard/instaguard/internal/server/captcha"
	"github.com/instaguard/instaguard/internal/server/classifier"
	"github.com/instaguard/instaguard/internal/server/mailer"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/repositories/activities"
	"github.com/instaguard/instaguard/internal/server/repositories/contacts"
	"github.com/instaguard/instaguard/internal/server/repositories/feedback"
	"github.com/instaguard/instaguard/internal/server/repositories/reports"
	"github.com/instaguard/instaguard/internal/server/repositories/results"
	"github.com/instaguard/instaguard/internal/server/repositories/settings"
	"github.com/instaguard/instaguard/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// fixNow pins the clock used by services for the test.
func fixNow(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	t.Cleanup(func() { now = orig })
	now = func() time.Time { return at }
}

// --- repositories ---

type fakeUsers struct {
	mu   sync.Mutex
	byID map[string]*models.User
	err  error
}

func newFakeUsers(list ...*models.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]*models.User{}}
	for _, u := range list {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) find(match func(*models.User) bool) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if match(u) {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) update(id string, fn func(*models.User)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	u, ok := f.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	fn(u)
	return nil
}

func (f *fakeUsers) Create(ctx context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = now()
	f.byID[user.ID] = user
	return user, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.ID == id })
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.Email == email })
}

func (f *fakeUsers) GetByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	return f.find(func(u *models.User) bool { return u.VerificationToken != nil && *u.VerificationToken == token })
}

func (f *fakeUsers) MarkVerified(ctx context.Context, id string) error {
	return f.update(id, func(u *models.User) {
		u.IsVerified = true
		u.VerificationToken = nil
		u.VerificationTokenExpiry = nil
	})
}

func (f *fakeUsers) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	return f.update(id, func(u *models.User) { u.LastLogin = &at })
}

func (f *fakeUsers) SetRefreshToken(ctx context.Context, id, token string) error {
	return f.update(id, func(u *models.User) { u.RefreshToken = &token })
}

func (f *fakeUsers) UpdateProfile(ctx context.Context, id, fullName string, passwordHash []byte, at time.Time) error {
	return f.update(id, func(u *models.User) {
		u.FullName = fullName
		if passwordHash != nil {
			u.PasswordHash = passwordHash
		}
		u.UpdatedAt = &at
	})
}

func (f *fakeUsers) UpdatePassword(ctx context.Context, id string, passwordHash []byte) error {
	return f.update(id, func(u *models.User) { u.PasswordHash = passwordHash })
}

func (f *fakeUsers) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.User
	for _, u := range f.byID {
		if role == "" || u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeUsers) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUsers) CountByRole(ctx context.Context, role string, verifiedOnly bool) (int, error) {
	list, err := f.ListByRole(ctx, role)
	n := 0
	for _, u := range list {
		if !verifiedOnly || u.IsVerified {
			n++
		}
	}
	return n, err
}

func (f *fakeUsers) Recent(ctx context.Context, role string, limit int) ([]models.User, error) {
	list, err := f.ListByRole(ctx, role)
	if len(list) > limit {
		list = list[:limit]
	}
	return list, err
}

type fakeActivities struct {
	mu   sync.Mutex
	list []models.Activity
	err  error
}

func (f *fakeActivities) Create(ctx context.Context, a *models.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.list = append(f.list, *a)
	return nil
}

func (f *fakeActivities) ListByUser(ctx context.Context, userID string) ([]models.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Activity
	for _, a := range f.list {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, f.err
}

type fakeReports struct {
	mu   sync.Mutex
	list []models.Report
	err  error
}

func (f *fakeReports) Create(ctx context.Context, r *models.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	r.ID = uuid.NewString()
	f.list = append([]models.Report{*r}, f.list...)
	return nil
}

func (f *fakeReports) ListByEmail(ctx context.Context, email string) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Report
	for _, r := range f.list {
		if r.UserEmail == email {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeReports) ListAll(ctx context.Context) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Report(nil), f.list...), f.err
}

func (f *fakeReports) Recent(ctx context.Context, limit int) ([]models.Report, error) {
	list, err := f.ListAll(ctx)
	if len(list) > limit {
		list = list[:limit]
	}
	return list, err
}

func (f *fakeReports) Count(ctx context.Context, status string) (int, error) {
	list, err := f.ListAll(ctx)
	n := 0
	for _, r := range list {
		if status == "" || r.Status == status {
			n++
		}
	}
	return n, err
}

type fakeResults struct {
	mu   sync.Mutex
	list []models.ProfileResult
	err  error
}

func (f *fakeResults) Create(ctx context.Context, r *models.ProfileResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	r.ID = uuid.NewString()
	f.list = append([]models.ProfileResult{*r}, f.list...)
	return nil
}

func (f *fakeResults) List(ctx context.Context) ([]models.ProfileResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ProfileResult(nil), f.list...), f.err
}

type fakeFeedback struct {
	mu   sync.Mutex
	list []models.Feedback
	err  error
}

func (f *fakeFeedback) Create(ctx context.Context, fb *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	fb.ID = uuid.NewString()
	f.list = append([]models.Feedback{*fb}, f.list...)
	return nil
}

func (f *fakeFeedback) ListWithAuthors(ctx context.Context) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Feedback(nil), f.list...), f.err
}

type fakeSettings struct {
	stored *models.Settings
	err    error
}

func (f *fakeSettings) GetOrCreate(ctx context.Context, def models.Settings) (*models.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.stored == nil {
		f.stored = &def
	}
	s := *f.stored
	return &s, nil
}

func (f *fakeSettings) Save(ctx context.Context, s models.Settings) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	changed := f.stored == nil || *f.stored != s
	f.stored = &s
	return changed, nil
}

type fakeContacts struct {
	list []models.ContactMessage
	err  error
}

func (f *fakeContacts) Create(ctx context.Context, m *models.ContactMessage) error {
	if f.err != nil {
		return f.err
	}
	f.list = append(f.list, *m)
	return nil
}

type fakeRepoManager struct {
	users      *fakeUsers
	activities *fakeActivities
	reports    *fakeReports
	results    *fakeResults
	feedback   *fakeFeedback
	settings   *fakeSettings
	contacts   *fakeContacts
}

func newFakeRepoManager(list ...*models.User) *fakeRepoManager {
	return &fakeRepoManager{
		users:      newFakeUsers(list...),
		activities: &fakeActivities{},
		reports:    &fakeReports{},
		results:    &fakeResults{},
		feedback:   &fakeFeedback{},
		settings:   &fakeSettings{},
		contacts:   &fakeContacts{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) users.Repository           { return m.users }
func (m *fakeRepoManager) Activities(db dbx.DBTX) activities.Repository { return m.activities }
func (m *fakeRepoManager) Reports(db dbx.DBTX) reports.Repository       { return m.reports }
func (m *fakeRepoManager) Results(db dbx.DBTX) results.Repository       { return m.results }
func (m *fakeRepoManager) Feedback(db dbx.DBTX) feedback.Repository     { return m.feedback }
func (m *fakeRepoManager) Settings(db dbx.DBTX) settings.Repository     { return m.settings }
func (m *fakeRepoManager) Contacts(db dbx.DBTX) contacts.Repository     { return m.contacts }

// --- collaborators ---

type fakeCaptcha struct {
	err    error
	tokens []string
}

func (f *fakeCaptcha) Verify(ctx context.Context, token, remoteIP string) error {
	f.tokens = append(f.tokens, token)
	return f.err
}

var _ captcha.Verifier = (*fakeCaptcha)(nil)

type fakeGoogle struct {
	id  *auth.GoogleIdentity
	err error
}

func (f *fakeGoogle) Verify(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	return f.id, f.err
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, m mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, m)
	return f.err
}

type fakeModel struct {
	out *models.Classification
	err error
	got []models.FeatureVector
}

func (f *fakeModel) Classify(ctx context.Context, fv models.FeatureVector) (*models.Classification, error) {
	f.got = append(f.got, fv)
	return f.out, f.err
}

type fakeLookup struct {
	profiles map[string]*models.InstagramProfile
	err      error
	calls    int
}

func (f *fakeLookup) Lookup(ctx context.Context, username string) (*models.InstagramProfile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.profiles[username]
	if !ok {
		return nil, classifier.ErrProfileNotFound
	}
	return p, nil
}

type fakeStore struct {
	puts       map[string][]byte
	ctype      string
	putErr     error
	presignErr error
	ttl        time.Duration
}

func (f *fakeStore) Put(ctx context.Context, key string, body []byte, contentType string) error {
	if f.putErr != nil {
		return f.putErr
	}
	if f.puts == nil {
		f.puts = map[string][]byte{}
	}
	f.puts[key] = body
	f.ctype = contentType
	return nil
}

func (f *fakeStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	f.ttl = ttl
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "http://minio.local/instaguard/" + key + "?X-Amz-Signature=x", nil
}

// assertKind checks err is an *Error of kind carrying msg.
func assertKind(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	e, ok := AsError(err)
	if !ok {
		t.Fatalf("expected *Error, got %v", err)
	}
	if e.Kind != kind || e.Message != msg {
		t.Fatalf("got (%v, %q), want (%v, %q)", e.Kind, e.Message, kind, msg)
	}
}
