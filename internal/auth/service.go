package auth

import (
	"context"
	"errors"
	"time"

	"academia-backend/internal/database"
	"academia-backend/internal/models"
)

// ErrInvalidCredentials covers unknown usernames and wrong passwords alike;
// the two cases must stay indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service handles admin authentication
type Service struct {
	admins   *database.AdminRepo
	sessions *database.SessionRepo
	ttl      time.Duration
}

// NewService creates a new auth service
func NewService(admins *database.AdminRepo, sessions *database.SessionRepo, ttl time.Duration) *Service {
	return &Service{admins: admins, sessions: sessions, ttl: ttl}
}

// Login verifies credentials and creates a session, returning the plain
// cookie token
func (s *Service) Login(ctx context.Context, usuario, senha string) (string, *models.Session, error) {
	admin, err := s.admins.GetByUsername(ctx, usuario)
	if err != nil {
		if errors.Is(err, database.ErrAdminNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !VerifyPassword(senha, admin.Senha) {
		return "", nil, ErrInvalidCredentials
	}

	return s.sessions.Create(ctx, admin.Usuario, s.ttl)
}

// Logout destroys the session behind token. A token that no longer maps to
// a session is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.sessions.DeleteByToken(ctx, token)
	if errors.Is(err, database.ErrSessionNotFound) {
		return nil
	}
	return err
}

// Validate resolves token to a live session
func (s *Service) Validate(ctx context.Context, token string) (*models.Session, error) {
	return s.sessions.GetByToken(ctx, token)
}
