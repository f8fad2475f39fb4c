package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/frahmantamala/hr-management/internal"
	"golang.org/x/crypto/bcrypt"
)

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (AccessToken, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ResolveUser(ctx context.Context, claims *Claims) (*internal.User, error)
}

// Service is the main auth service with dependencies
type Service struct {
	store          CredentialStore
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(store CredentialStore, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		store:          store,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// Authenticate checks the password against the stored bcrypt hash and mints
// an access token. Unknown emails and wrong passwords are indistinguishable.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (AccessToken, error) {
	dto.Normalize()
	if err := dto.Validate(); err != nil {
		return AccessToken{}, err
	}

	creds, err := s.store.GetCredentialsByEmail(ctx, dto.Email)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			s.logger.Warn("login failed: unknown email", "email", dto.Email)
			return AccessToken{}, internal.ErrInvalidCredentials
		}
		return AccessToken{}, fmt.Errorf("load credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login failed: password mismatch", "user_id", creds.UserID)
		return AccessToken{}, internal.ErrInvalidCredentials
	}

	if !creds.IsActive {
		s.logger.Warn("login failed: inactive user", "user_id", creds.UserID)
		return AccessToken{}, internal.ErrUserInactive
	}

	token, err := s.tokenGenerator.Generate(creds)
	if err != nil {
		return AccessToken{}, err
	}

	s.logger.Info("user logged in", "user_id", creds.UserID, "role", creds.Role)
	return AccessToken{AccessToken: token, TokenType: TokenTypeBearer}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.Validate(tokenString)
}

// ResolveUser reloads the token subject so that deactivated or deleted users
// lose access before their token expires.
func (s *Service) ResolveUser(ctx context.Context, claims *Claims) (*internal.User, error) {
	creds, err := s.store.GetCredentialsByEmail(ctx, claims.Subject)
	if err != nil {
		if _, ok := internal.IsAppError(err); ok {
			return nil, internal.ErrInvalidToken
		}
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if !creds.IsActive {
		return nil, internal.ErrUserInactive
	}
	return creds.ToContextUser(), nil
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	return HashPassword(password, s.bcryptCost)
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *Service) RBACAuthorization() *RBACAuthorization {
	return NewRBACAuthorization(s.logger)
}
