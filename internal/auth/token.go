package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"task-tracker/internal/domain"
)

// ErrInvalidToken indicates a token that is malformed, tampered with,
// expired, or of the wrong type for the operation.
var ErrInvalidToken = errors.New("invalid token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims is the payload carried by every token the service mints. Username
// and IsAdmin are set only on access tokens minted at credential login;
// refresh tokens, and access tokens minted from them, carry neither.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
	Username  string `json:"username,omitempty"`
	IsAdmin   *bool  `json:"is_admin,omitempty"`
}

// UserID parses the subject claim back into a user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidToken
	}
	return id, nil
}

// TokenPair is the result of a successful credential login.
type TokenPair struct {
	Access  string
	Refresh string
}

// TokenService mints and verifies HS256-signed JWTs.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Obtain mints an access/refresh pair for an authenticated user. The access
// token embeds the username and is_admin claims as of issuance.
func (s *TokenService) Obtain(user *domain.User) (TokenPair, error) {
	isAdmin := user.IsStaff
	access, err := s.sign(Claims{
		RegisteredClaims: s.registered(user.ID, s.accessTTL),
		TokenType:        tokenTypeAccess,
		Username:         user.Username,
		IsAdmin:          &isAdmin,
	})
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign access token: %w", err)
	}

	refresh, err := s.sign(Claims{
		RegisteredClaims: s.registered(user.ID, s.refreshTTL),
		TokenType:        tokenTypeRefresh,
	})
	if err != nil {
		return TokenPair{}, fmt.Errorf("sign refresh token: %w", err)
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh verifies a refresh token and mints a new access token for its
// subject. The new token carries no username/is_admin claims; only the
// credential login path embeds those.
func (s *TokenService) Refresh(refreshToken string) (string, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != tokenTypeRefresh {
		return "", ErrInvalidToken
	}
	id, err := claims.UserID()
	if err != nil {
		return "", err
	}

	access, err := s.sign(Claims{
		RegisteredClaims: s.registered(id, s.accessTTL),
		TokenType:        tokenTypeAccess,
	})
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return access, nil
}

// VerifyAccess validates an access token and returns its claims.
func (s *TokenService) VerifyAccess(token string) (*Claims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *TokenService) registered(userID int64, ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now().UTC()
	return jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}
}

func (s *TokenService) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *TokenService) parse(token string) (*Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}
