package service

import (
	"context"
	"errors"
	"strings"

	"github.com/healthtrack/healthtrack-go/internal/crypto"
	"github.com/healthtrack/healthtrack-go/internal/model"
	"github.com/healthtrack/healthtrack-go/internal/repository"
)

var (
	ErrRegistrationFields = errors.New("name, email, and password are required")
	ErrLoginFields        = errors.New("email and password are required")
	ErrEmailTaken         = errors.New("an account with that email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration, login, and session business logic.
type AuthService struct {
	users    *repository.UserRepository
	sessions *repository.SessionRepository
	metrics  *repository.MetricRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(users *repository.UserRepository, sessions *repository.SessionRepository, metrics *repository.MetricRepository) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		metrics:  metrics,
	}
}

// Register creates a new user account. Emails are lowercased before storage
// so uniqueness is case-insensitive; lookups must use the same form.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) error {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" || req.Password == "" {
		return ErrRegistrationFields
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// Login authenticates a user and issues a new session token. A user may
// log in from multiple clients; each login creates an independent session.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return model.AuthResponse{}, ErrLoginFields
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.NewSessionToken()
	if err != nil {
		return model.AuthResponse{}, err
	}

	if err := s.sessions.Create(ctx, user.ID, token); err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User: model.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// Logout revokes the presented session token. Revoking an already-revoked
// token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	err := s.sessions.Delete(ctx, token)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil
	}
	return err
}

// Profile returns the user's public data plus their total metric count.
func (s *AuthService) Profile(ctx context.Context, user *model.User) (model.ProfileResponse, error) {
	entries, err := s.metrics.CountFor(ctx, user.ID)
	if err != nil {
		return model.ProfileResponse{}, err
	}

	return model.ProfileResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Entries: entries,
	}, nil
}
