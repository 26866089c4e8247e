package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminSubject is the only subject accepted on admin tokens.
const AdminSubject = "admin"

var (
	ErrAdminDisabled = errors.New("admin access is not configured")
	ErrInvalidToken  = errors.New("invalid token")
)

// AuthService issues and checks the HS256 tokens that guard the admin
// routes.
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(secret string, ttl time.Duration) *AuthService {
	return &AuthService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (s *AuthService) Enabled() bool {
	return len(s.secret) > 0
}

// IssueAdminToken signs a token for the admin subject.
func (s *AuthService) IssueAdminToken() (string, error) {
	if !s.Enabled() {
		return "", ErrAdminDisabled
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   AdminSubject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateAdminToken accepts unexpired HS256 tokens issued for the admin
// subject.
func (s *AuthService) ValidateAdminToken(tokenString string) (*jwt.RegisteredClaims, error) {
	if !s.Enabled() {
		return nil, ErrAdminDisabled
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithSubject(AdminSubject))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
