package service

import (
	"context"
	"time"

	"github.com/abhay8696/rajmudra-backend/internal/auth"
	"github.com/abhay8696/rajmudra-backend/internal/config"
	"github.com/abhay8696/rajmudra-backend/internal/domain"
	"github.com/abhay8696/rajmudra-backend/internal/repository"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// AuthService coordinates the login flow: credential lookup, password
// verification and token issuance.
type AuthService struct {
	admins   repository.AdminRepository
	tokenMgr *auth.TokenManager
	limiter  *auth.LoginLimiter
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, admins repository.AdminRepository, limiter *auth.LoginLimiter) *AuthService {
	return &AuthService{
		admins:   admins,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL()),
		limiter:  limiter,
	}
}

// LoginResult carries the authenticated admin and its access token.
type LoginResult struct {
	Admin     *domain.Admin
	Token     string
	ExpiresAt time.Time
}

// Login authenticates an admin by contact and password. Unknown contact and
// wrong password collapse into one message so callers cannot tell which
// occurred.
func (s *AuthService) Login(ctx context.Context, contact, password string) (*LoginResult, error) {
	if err := s.limiter.Allow(ctx, contact); err != nil {
		return nil, err
	}

	admin, err := s.admins.GetByContact(ctx, contact)
	if err != nil {
		if util.IsNotFound(err) {
			s.limiter.RecordFailure(ctx, contact)
			return nil, util.NewUnauthorized("incorrect contact or password")
		}
		return nil, err
	}

	match, err := auth.ComparePassword(admin.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !match {
		s.limiter.RecordFailure(ctx, contact)
		return nil, util.NewUnauthorized("incorrect contact or password")
	}

	s.limiter.Reset(ctx, contact)

	token, expiresAt, err := s.tokenMgr.Issue(admin.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Admin: admin, Token: token, ExpiresAt: expiresAt}, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
