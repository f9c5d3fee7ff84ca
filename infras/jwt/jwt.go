package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"salon/config"
	"salon/shared/timezone"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
	ErrMissingToken = errors.New("authorization header is required")
)

// TokenType represents the type of JWT token
type TokenType string

const (
	VisitorToken TokenType = "visitor"

	bearerPrefix = "Bearer "
)

// Claims identifies an anonymous visitor. The visitor id keys the cart and owns wizard sessions.
type Claims struct {
	VisitorID string    `json:"visitor_id"`
	TokenID   string    `json:"token_id"`
	Type      TokenType `json:"type"`
	jwt.RegisteredClaims
}

type Visitor struct {
	VisitorID string `json:"visitor_id"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}

type JWT interface {
	IssueVisitor() (*Visitor, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
	now    func() time.Time
}

func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
		now:    timezone.Now,
	}
}

// IssueVisitor creates a fresh visitor id and signs a token for it.
func (s *Service) IssueVisitor() (*Visitor, error) {
	visitorID := uuid.NewString()

	token, err := s.generateToken(visitorID, s.now(), s.config.JWT.VisitorExpireMin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate visitor token: %w", err)
	}

	return &Visitor{
		VisitorID: visitorID,
		Token:     token,
		TokenType: strings.TrimSpace(bearerPrefix),
		ExpiresIn: int64(s.config.JWT.VisitorExpireMin * 60), //nolint:mnd
	}, nil
}

func (s *Service) generateToken(visitorID string, issuedAt time.Time, expireMin int) (string, error) {
	expiresAt := issuedAt.Add(time.Duration(expireMin) * time.Minute)
	tokenID := uuid.NewString()

	claims := Claims{
		VisitorID: visitorID,
		TokenID:   tokenID,
		Type:      VisitorToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   visitorID,
			ID:        tokenID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString([]byte(s.config.JWT.VisitorSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken validates and parses a visitor token
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(s.config.JWT.VisitorSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Type != VisitorToken || claims.VisitorID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingToken
	}

	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return authHeader[len(bearerPrefix):], nil
}
