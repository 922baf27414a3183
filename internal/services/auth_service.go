package services

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kherrera/devfolio/internal/utils"
)

// AuthConfig holds the admin credentials and signing material, read from the
// environment by the caller. There is exactly one admin account.
type AuthConfig struct {
	AdminEmail        string
	AdminPasswordHash string // bcrypt
	JWTSecret         string
	TokenTTL          time.Duration
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, expiresAt time.Time, err error)
}

type authService struct {
	cfg AuthConfig
}

func NewAuthService(cfg AuthConfig) AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 12 * time.Hour
	}
	return &authService{cfg: cfg}
}

func (s *authService) Login(_ context.Context, email, password string) (string, time.Time, error) {
	const op = "AuthService.Login"

	if s.cfg.AdminEmail == "" || s.cfg.AdminPasswordHash == "" || s.cfg.JWTSecret == "" {
		return "", time.Time{}, utils.E(utils.CodeInternal, op, "auth is not configured", nil)
	}
	if email == "" || password == "" {
		return "", time.Time{}, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	if !strings.EqualFold(email, s.cfg.AdminEmail) ||
		utils.CheckPassword(s.cfg.AdminPasswordHash, password) != nil {
		return "", time.Time{}, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	now := time.Now().UTC()
	exp := now.Add(s.cfg.TokenTTL)

	claims := jwt.MapClaims{
		"sub":  s.cfg.AdminEmail,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", time.Time{}, utils.E(utils.CodeInternal, op, "failed to sign token", err)
	}
	return tok, exp, nil
}
