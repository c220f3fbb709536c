package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/allisson/custody/internal/auth/internal/claims"
	apperrors "github.com/allisson/custody/internal/errors"
)

// tokenClaims is the JWT payload: registered claims plus the role list.
type tokenClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// jwtTokenService implements TokenService with HS256-signed JWTs.
type jwtTokenService struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	parser     *jwt.Parser
	now        func() time.Time
}

// Verify parses and validates token.
func (s *jwtTokenService) Verify(ctx context.Context, token string) (claims.Verified, error) {
	var parsed tokenClaims

	_, err := s.parser.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return claims.Verified{}, apperrors.Wrap(err, "invalid token")
	}

	subject, err := uuid.Parse(parsed.Subject)
	if err != nil {
		return claims.Verified{}, apperrors.Wrap(err, "invalid token subject")
	}

	return claims.New(subject, parsed.Roles), nil
}

// Issue signs a new token valid for the configured expiration.
func (s *jwtTokenService) Issue(subject uuid.UUID, roles []string) (string, error) {
	now := s.now()
	claims := tokenClaims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
			ID:        uuid.Must(uuid.NewV7()).String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// NewJWTTokenService creates a TokenService using HS256 with secret.
// Tokens must carry the given issuer and an expiry.
func NewJWTTokenService(secret string, issuer string, expiration time.Duration) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("token secret must not be empty")
	}

	return &jwtTokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		expiration: expiration,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(5*time.Second),
		),
		now: time.Now,
	}, nil
}
