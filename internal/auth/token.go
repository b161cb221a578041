package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// TokenManager handles issuing and validating signed access tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager. A non-positive ttl falls back to the
// 4 hour default.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 4 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload: subject id, token kind, issue and expiry
// instants.
type Claims struct {
	Kind domain.TokenKind `json:"type"`
	jwt.RegisteredClaims
}

// Issue builds and signs an access token for the admin id.
func (tm *TokenManager) Issue(adminID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		Kind: domain.TokenKindAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, util.NewInternalError(err)
	}
	return tokenString, expiresAt, nil
}

// Parse validates signature, expiry and kind, returning the claims. Expiry is
// compared against the local wall clock with no leeway.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, util.NewExpiredToken()
		}
		return nil, util.NewInvalidToken()
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, util.NewInvalidToken()
	}
	if claims.Kind != domain.TokenKindAccess {
		return nil, util.NewWrongTokenKind(string(claims.Kind))
	}
	return claims, nil
}
