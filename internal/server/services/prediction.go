package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/instaguard/instaguard/internal/common"
	"github.com/instaguard/instaguard/internal/logging"
	"github.com/instaguard/instaguard/internal/server/captcha"
	"github.com/instaguard/instaguard/internal/server/classifier"
	"github.com/instaguard/instaguard/internal/server/models"
	"github.com/instaguard/instaguard/internal/server/repositories/repomanager"
)

const (
	msgKnownReal = "This is a verified real account based on trusted sources."
	msgPredicted = "This account appears to be %s based on profile metrics."
)

// PredictionResult is the answer to a username prediction.
type PredictionResult struct {
	Username   string
	Prediction string
	Confidence *float64
	Message    string
	Note       string
}

// PredictionService classifies Instagram profiles and keeps every answer
// for the admin results view.
type PredictionService struct {
	db           *sql.DB
	repomanager  repomanager.RepositoryManager
	model        classifier.Model
	profiles     classifier.ProfileLookup
	captcha      captcha.Verifier
	modelVersion string
	logger       logging.Logger
}

func NewPredictionService(db *sql.DB, m repomanager.RepositoryManager, model classifier.Model,
	profiles classifier.ProfileLookup, cv captcha.Verifier, modelVersion string, l logging.Logger) *PredictionService {
	if modelVersion == "" {
		modelVersion = common.DefaultModelVersion
	}
	return &PredictionService{
		db:           db,
		repomanager:  m,
		model:        model,
		profiles:     profiles,
		captcha:      cv,
		modelVersion: modelVersion,
		logger:       l,
	}
}

// Predict classifies username on behalf of user and stores the result.
func (s *PredictionService) Predict(ctx context.Context, user *models.User, username string) (*PredictionResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, fail(common.ErrorValidation, MsgUsernameRequired)
	}

	if note, ok := knownRealAccounts[username]; ok {
		s.logger.Info(ctx, "known real account", "username", username)
		confidence := 1.0
		if err := s.store(ctx, user, username, nil, common.PredictionReal, &confidence, &note); err != nil {
			return nil, err
		}
		return &PredictionResult{
			Username:   username,
			Prediction: common.PredictionReal,
			Confidence: &confidence,
			Message:    msgKnownReal,
			Note:       note,
		}, nil
	}

	profile, err := s.profiles.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, classifier.ErrProfileNotFound) {
			return nil, fail(common.ErrorNotFound, MsgUsernameUnknown)
		}
		return nil, fmt.Errorf("profile lookup: %w", err)
	}

	fv := ExtractFeatures(profile, username)

	c, err := s.model.Classify(ctx, fv)
	if err != nil {
		s.logger.Error(ctx, "classify", "error", err)
		return nil, fail(common.ErrorInternal, MsgModelUnavailable)
	}

	label := labelOf(c.Label)
	var confidence *float64
	if c.Probability != nil {
		v := round2(*c.Probability)
		confidence = &v
	}

	if err := s.store(ctx, user, username, fv.Map(), label, confidence, nil); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "prediction", "username", username, "label", label, "confidence", confidence)

	return &PredictionResult{
		Username:   username,
		Prediction: label,
		Confidence: confidence,
		Message:    fmt.Sprintf(msgPredicted, strings.ToLower(label)),
	}, nil
}

// CheckFeatures classifies a vector the caller measured themselves.
// Nothing is stored.
func (s *PredictionService) CheckFeatures(ctx context.Context, fv models.FeatureVector, captchaToken, remoteIP string) (*models.Classification, error) {
	if err := checkCaptcha(ctx, s.captcha, captchaToken, remoteIP, errCaptcha); err != nil {
		return nil, err
	}
	for _, v := range fv.Map() {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fail(common.ErrorValidation, MsgInvalidFeatures)
		}
	}

	c, err := s.model.Classify(ctx, fv)
	if err != nil {
		s.logger.Error(ctx, "classify", "error", err)
		return nil, fail(common.ErrorInternal, MsgModelUnavailable)
	}
	return c, nil
}

// Results lists stored predictions, newest first.
func (s *PredictionService) Results(ctx context.Context) ([]models.ProfileResult, error) {
	return s.repomanager.Results(s.db).List(ctx)
}

func (s *PredictionService) store(ctx context.Context, user *models.User, username string,
	features map[string]float64, label string, confidence *float64, note *string) error {
	return s.repomanager.Results(s.db).Create(ctx, &models.ProfileResult{
		UserID:       user.ID,
		Username:     username,
		Features:     features,
		Prediction:   label,
		ModelVersion: s.modelVersion,
		Confidence:   confidence,
		Timestamp:    now(),
		Note:         note,
	})
}

// ExtractFeatures derives the model's input columns from a profile. The
// account is always treated as public, as the model was trained that way.
func ExtractFeatures(p *models.InstagramProfile, username string) models.FeatureVector {
	fullName := strings.TrimSpace(p.FullName)

	return models.FeatureVector{
		ProfilePic:          boolToFloat(p.HasProfilePic),
		UsernameLengthRatio: digitRatio(username),
		FullnameWords:       float64(len(strings.Fields(fullName))),
		FullnameLengthRatio: digitRatio(p.FullName),
		NameMatchesUsername: boolToFloat(strings.EqualFold(fullName, username)),
		DescriptionLength:   float64(len([]rune(p.Biography))),
		ExternalURL:         boolToFloat(p.ExternalURL != ""),
		Private:             0,
		Posts:               float64(p.PostsCount),
		Followers:           float64(p.FollowersCount),
		Follows:             float64(p.FollowingCount),
	}
}

func labelOf(label int) string {
	if label == 1 {
		return common.PredictionFake
	}
	return common.PredictionReal
}

// digitRatio is the share of digits in s, rounded to two places.
func digitRatio(s string) float64 {
	r := []rune(s)
	if len(r) == 0 {
		return 0
	}
	n := 0
	for _, c := range r {
		if unicode.IsDigit(c) {
			n++
		}
	}
	return round2(float64(n) / float64(len(r)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
