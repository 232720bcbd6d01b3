package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/instaguard/instaguard/internal/common"
)

// Claims are the registered claims plus the identity the API trusts. The
// JSON names match the tokens the web frontend was issued, so a browser
// session keeps working against this server.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Role   string `json:"role,omitempty"`
	Type   string `json:"typ,omitempty"`
}

// Token types carried in the typ claim. Tokens without one predate the
// claim and are treated as access tokens.
const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

// Identity is what a token is issued for. Refresh tokens carry only the
// user id.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

var now = time.Now

// GenerateToken signs an HS256 access token for id that expires after
// validity.
func GenerateToken(id Identity, secretKey []byte, validity time.Duration) (string, error) {
	return sign(Claims{UserID: id.UserID, Email: id.Email, Role: id.Role, Type: TokenAccess}, secretKey, validity)
}

// GenerateRefreshToken signs a refresh token for userID. It carries no role
// and is refused where an access token is expected.
func GenerateRefreshToken(userID string, secretKey []byte, validity time.Duration) (string, error) {
	return sign(Claims{UserID: userID, Type: TokenRefresh}, secretKey, validity)
}

func sign(claims Claims, secretKey []byte, validity time.Duration) (string, error) {
	claims.RegisteredClaims = jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(now()),
		ExpiresAt: jwt.NewNumericDate(now().Add(validity)),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return tokenString, nil
}

// IsRefresh reports whether the claims belong to a refresh token.
func (c *Claims) IsRefresh() bool { return c.Type == TokenRefresh }

// ParseToken verifies tokenString and returns its claims. An expired token
// yields common.ErrTokenExpired, anything else that fails common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
