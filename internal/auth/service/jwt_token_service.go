package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/messaging/internal/auth/domain"
	apperrors "github.com/allisson/messaging/internal/errors"
)

// tokenClaims is the wire shape of the session token payload.
type tokenClaims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// jwtTokenService implements TokenService using HMAC-SHA256 signed JWTs.
// The signature binds all claims; any mutation invalidates the token.
type jwtTokenService struct {
	secret   []byte
	lifetime time.Duration
	clock    Clock
}

// NewTokenService creates a TokenService signing with the given secret.
// Tokens expire lifetime after issuance. The clock drives both issuance and
// expiry validation so tests can control time.
func NewTokenService(secret []byte, lifetime time.Duration, clock Clock) TokenService {
	return &jwtTokenService{
		secret:   secret,
		lifetime: lifetime,
		clock:    clock,
	}
}

// Issue produces a signed token for the subject with expiry bound to the
// fixed lifetime.
func (s *jwtTokenService) Issue(userID uuid.UUID, isAdmin bool) (string, error) {
	now := s.clock.Now().UTC()

	claims := tokenClaims{
		UserID:  userID.String(),
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks shape, signature, and expiry and returns the claims.
func (s *jwtTokenService) Verify(tokenValue string) (*authDomain.Claims, error) {
	var claims tokenClaims

	_, err := jwt.ParseWithClaims(
		tokenValue,
		&claims,
		func(token *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, authDomain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, authDomain.ErrTokenSignature
		default:
			return nil, authDomain.ErrTokenMalformed
		}
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, authDomain.ErrTokenMalformed
	}

	return &authDomain.Claims{
		UserID:    userID,
		IsAdmin:   claims.IsAdmin,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// DecodeIssuedAt extracts the issue time without verifying the signature.
func (s *jwtTokenService) DecodeIssuedAt(tokenValue string) (time.Time, error) {
	var claims tokenClaims

	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(tokenValue, &claims); err != nil {
		return time.Time{}, apperrors.Wrap(err, "failed to decode token")
	}

	if claims.IssuedAt == nil {
		return time.Time{}, apperrors.New("token has no issued-at claim")
	}

	return claims.IssuedAt.Time, nil
}

// Hash returns the SHA-256 hex digest of the raw token value.
func (s *jwtTokenService) Hash(tokenValue string) string {
	hash := sha256.Sum256([]byte(tokenValue))
	return hex.EncodeToString(hash[:])
}
