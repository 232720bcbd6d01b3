package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/instaguard/instaguard/internal/common"
)

// GoogleCertsURL serves the keys Google signs ID tokens with.
const GoogleCertsURL = "https://www.googleapis.com/oauth2/v3/certs"

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// GoogleIdentity is the part of a verified Google ID token the API uses.
type GoogleIdentity struct {
	Email string
	Name  string
}

type googleClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleVerifier checks Google ID tokens against a JWKS and the OAuth
// client id they must be issued for.
type GoogleVerifier struct {
	keys     keyfunc.Keyfunc
	clientID string
}

// NewGoogleVerifier fetches Google's JWKS and keeps it refreshed until ctx
// is done.
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	k, err := keyfunc.NewDefaultCtx(ctx, []string{GoogleCertsURL})
	if err != nil {
		return nil, fmt.Errorf("google jwks: %w", err)
	}
	return &GoogleVerifier{keys: k, clientID: clientID}, nil
}

// NewGoogleVerifierFromJWKS builds a verifier from a static key set.
func NewGoogleVerifierFromJWKS(raw json.RawMessage, clientID string) (*GoogleVerifier, error) {
	k, err := keyfunc.NewJWKSetJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("google jwks: %w", err)
	}
	return &GoogleVerifier{keys: k, clientID: clientID}, nil
}

// Verify validates idToken and returns the identity it asserts. Every
// failure wraps common.ErrInvalidToken. A token without an email is
// reported as ErrGoogleEmailMissing.
func (v *GoogleVerifier) Verify(ctx context.Context, idToken string) (*GoogleIdentity, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{"RS256"}), jwt.WithExpirationRequired()}
	if v.clientID != "" {
		opts = append(opts, jwt.WithAudience(v.clientID))
	}

	claims := &googleClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, v.keys.KeyfuncCtx(ctx), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid || !googleIssuers[claims.Issuer] {
		return nil, common.ErrInvalidToken
	}
	if claims.Email == "" {
		return nil, ErrGoogleEmailMissing
	}

	return &GoogleIdentity{Email: claims.Email, Name: claims.Name}, nil
}

// ErrGoogleEmailMissing is returned for a valid Google token with no email.
var ErrGoogleEmailMissing = errors.New("google token missing email")
