package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/logging"
	"github.com/instaguard/instaguard/internal/server/captcha"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type predictionFixture struct {
	svc     *PredictionService
	rm      *fakeRepoManager
	model   *fakeModel
	lookup  *fakeLookup
	captcha *fakeCaptcha
}

func newPredictionFixture(t *testing.T) *predictionFixture {
	t.Helper()
	db, _ := newSQLMockDB(t)
	f := &predictionFixture{
		rm:      newFakeRepoManager(),
		model:   &fakeModel{},
		lookup:  &fakeLookup{profiles: map[string]*models.InstagramProfile{}},
		captcha: &fakeCaptcha{},
	}
	f.svc = NewPredictionService(db, f.rm, f.model, f.lookup, f.captcha, "", logging.Nop())
	return f
}

func TestExtractFeatures(t *testing.T) {
	p := &models.InstagramProfile{
		FullName:       "John Doe 99",
		Biography:      "héllo",
		ExternalURL:    "https://example.com",
		HasProfilePic:  true,
		IsPrivate:      true,
		PostsCount:     12,
		FollowersCount: 340,
		FollowingCount: 560,
	}

	got := ExtractFeatures(p, "john_doe123")
	want := models.FeatureVector{
		ProfilePic:          1,
		UsernameLengthRatio: 0.27,
		FullnameWords:       3,
		FullnameLengthRatio: 0.18,
		NameMatchesUsername: 0,
		DescriptionLength:   5,
		ExternalURL:         1,
		Private:             0,
		Posts:               12,
		Followers:           340,
		Follows:             560,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("features mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractFeatures_NameMatchesUsername(t *testing.T) {
	got := ExtractFeatures(&models.InstagramProfile{FullName: " JohnDoe "}, "johndoe")
	assert.Equal(t, 1.0, got.NameMatchesUsername)
	assert.Equal(t, 0.0, got.FullnameLengthRatio)
	assert.Equal(t, 0.0, got.ProfilePic)
}

func TestDigitRatio(t *testing.T) {
	assert.Equal(t, 0.0, digitRatio(""))
	assert.Equal(t, 0.5, digitRatio("a1"))
	assert.Equal(t, 0.33, digitRatio("ab1"))
	assert.Equal(t, 1.0, digitRatio("123"))
}

func TestPredict_KnownRealAccount(t *testing.T) {
	f := newPredictionFixture(t)
	user := &models.User{ID: "u1"}

	res, err := f.svc.Predict(context.Background(), user, " BabarAzam ")
	require.NoError(t, err)
	assert.Equal(t, "babarazam", res.Username)
	assert.Equal(t, common.PredictionReal, res.Prediction)
	require.NotNil(t, res.Confidence)
	assert.Equal(t, 1.0, *res.Confidence)
	assert.Equal(t, msgKnownReal, res.Message)
	assert.Equal(t, "real", res.Note)

	assert.Zero(t, f.lookup.calls)
	assert.Empty(t, f.model.got)

	require.Len(t, f.rm.results.list, 1)
	stored := f.rm.results.list[0]
	assert.Equal(t, "u1", stored.UserID)
	assert.Empty(t, stored.Features)
	assert.Equal(t, common.DefaultModelVersion, stored.ModelVersion)
	require.NotNil(t, stored.Note)
	assert.Equal(t, "real", *stored.Note)
}

func TestPredict_Classified(t *testing.T) {
	tests := []struct {
		name       string
		out        *models.Classification
		wantLabel  string
		wantConf   *float64
		wantPhrase string
	}{
		{"fake", &models.Classification{Label: 1, Probability: ptr(0.8765)}, common.PredictionFake, ptr(0.88), "appears to be fake"},
		{"real", &models.Classification{Label: 0, Probability: ptr(0.104)}, common.PredictionReal, ptr(0.1), "appears to be real"},
		{"no probability", &models.Classification{Label: 1}, common.PredictionFake, nil, "appears to be fake"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPredictionFixture(t)
			f.lookup.profiles["someone"] = &models.InstagramProfile{FullName: "Some One", PostsCount: 3}
			f.model.out = tt.out

			res, err := f.svc.Predict(context.Background(), &models.User{ID: "u1"}, "someone")
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, res.Prediction)
			assert.Equal(t, tt.wantConf, res.Confidence)
			assert.Contains(t, res.Message, tt.wantPhrase)
			assert.Empty(t, res.Note)

			require.Len(t, f.model.got, 1)
			assert.Equal(t, 3.0, f.model.got[0].Posts)

			require.Len(t, f.rm.results.list, 1)
			stored := f.rm.results.list[0]
			assert.Equal(t, tt.wantLabel, stored.Prediction)
			assert.Equal(t, 3.0, stored.Features["#posts"])
			assert.Nil(t, stored.Note)
		})
	}
}

func TestPredict_Failures(t *testing.T) {
	t.Run("empty username", func(t *testing.T) {
		f := newPredictionFixture(t)
		_, err := f.svc.Predict(context.Background(), &models.User{}, "  ")
		assertKind(t, err, common.ErrorValidation, MsgUsernameRequired)
	})

	t.Run("unknown username", func(t *testing.T) {
		f := newPredictionFixture(t)
		_, err := f.svc.Predict(context.Background(), &models.User{}, "ghost")
		assertKind(t, err, common.ErrorNotFound, MsgUsernameUnknown)
		assert.Empty(t, f.rm.results.list)
	})

	t.Run("lookup down", func(t *testing.T) {
		f := newPredictionFixture(t)
		f.lookup.err = errors.New("connection refused")
		_, err := f.svc.Predict(context.Background(), &models.User{}, "ghost")
		require.Error(t, err)
		_, ok := AsError(err)
		assert.False(t, ok)
	})

	t.Run("model down", func(t *testing.T) {
		f := newPredictionFixture(t)
		f.lookup.profiles["someone"] = &models.InstagramProfile{}
		f.model.err = errors.New("503")
		_, err := f.svc.Predict(context.Background(), &models.User{}, "someone")
		assertKind(t, err, common.ErrorInternal, MsgModelUnavailable)
		assert.Empty(t, f.rm.results.list)
	})
}

func TestCheckFeatures(t *testing.T) {
	f := newPredictionFixture(t)
	f.model.out = &models.Classification{Label: 1, Probability: ptr(0.93)}

	fv := models.FeatureVector{ProfilePic: 1, Posts: 10, Followers: 20, Follows: 3000}
	c, err := f.svc.CheckFeatures(context.Background(), fv, "cap", "")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Label)
	assert.Equal(t, []models.FeatureVector{fv}, f.model.got)
	assert.Empty(t, f.rm.results.list, "feature checks are not stored")
}

func TestCheckFeatures_Rejected(t *testing.T) {
	f := newPredictionFixture(t)
	f.captcha.err = captcha.ErrFailed
	_, err := f.svc.CheckFeatures(context.Background(), models.FeatureVector{}, "bad", "")
	assertKind(t, err, common.ErrorValidation, MsgInvalidCaptcha)

	f = newPredictionFixture(t)
	_, err = f.svc.CheckFeatures(context.Background(), models.FeatureVector{Posts: -1}, "cap", "")
	assertKind(t, err, common.ErrorValidation, MsgInvalidFeatures)

	_, err = f.svc.CheckFeatures(context.Background(), models.FeatureVector{Followers: math.NaN()}, "cap", "")
	assertKind(t, err, common.ErrorValidation, MsgInvalidFeatures)
	assert.Empty(t, f.model.got)
}

func TestResults(t *testing.T) {
	f := newPredictionFixture(t)
	f.rm.results.list = []models.ProfileResult{{ID: "a"}, {ID: "b"}}

	got, err := f.svc.Results(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
