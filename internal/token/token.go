package token

import (
	"fmt"
	"time"

	"tireshop/internal/entity"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// HS256 with a key shorter than the hash size is not meaningfully
	// signed; reject it when the service is built, not when tokens are
	// issued.
	minSecretLen = 32

	RoleAdmin = "ADMIN"
)

// Claims is the verified content of a bearer token.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// Service issues and verifies self-contained HS256 tokens. There is no
// refresh and no revocation list; tokens are valid until natural expiry.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) (*Service, error) {
	const op = "token.New"

	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("%s: signing secret must be at least %d bytes, got %d",
			op, minSecretLen, len(secret))
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%s: token ttl must be positive, got %s", op, ttl)
	}

	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

func (s *Service) TTL() time.Duration {
	return s.ttl
}

func (s *Service) Issue(subject, role string) (string, error) {
	const op = "token.Issue"

	now := s.now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"iat":  jwt.NewNumericDate(now),
		"exp":  jwt.NewNumericDate(now.Add(s.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%s: sign token: %w", op, err)
	}
	return signed, nil
}

// Verify parses and validates a bearer token. Any failure, be it a bad
// signature, malformed input, an unexpected signing method or an expired
// token, surfaces as entity.ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return nil, entity.ErrInvalidToken
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, entity.ErrInvalidToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, entity.ErrInvalidToken
	}

	role, _ := mapClaims["role"].(string)
	if role == "" {
		return nil, entity.ErrInvalidToken
	}

	expiry, err := mapClaims.GetExpirationTime()
	if err != nil || expiry == nil {
		return nil, entity.ErrInvalidToken
	}

	return &Claims{
		Subject:   subject,
		Role:      role,
		ExpiresAt: expiry.Time,
	}, nil
}
