package service

import (
	"context"
	"strings"

	"learning_iq/internal/common"
	"learning_iq/internal/common/security"
	"learning_iq/internal/domain/model"
	"learning_iq/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	College  string `json:"college"`
	Stream   string `json:"stream"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	User    model.UserSummary `json:"user"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, common.Errorf("name and email required: %w", common.ErrValidation)
	}

	user := &model.User{
		Name:    name,
		Email:   email,
		College: strings.TrimSpace(req.College),
		Stream:  strings.TrimSpace(req.Stream),
	}
	if req.Password != "" {
		hashed, err := security.HashPassword(req.Password)
		if err != nil {
			return nil, common.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // Repo wraps duplicate email as ErrConflict
	}

	token, err := security.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Success: true, Token: token, User: user.Summary()}, nil
}

// Login resolves the email and issues a token. A password is only verified
// when the stored row carries a hash; rows without one (the demo seed)
// accept any password, matching the original contract.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, common.Errorf("email required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == common.ErrNotFound {
			return nil, common.Errorf("user not found: %w", common.ErrUnauthorized)
		}
		return nil, common.Errorf("failed to find user: %w", err)
	}

	if user.PasswordHash != "" && !security.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, common.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}

	token, err := security.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Success: true, Token: token, User: user.Summary()}, nil
}
