// Package identity implements account registration and token issuance.
package identity

import (
	"context"

	"github.com/cataloghub/backend/internal/domain/identity"
	"github.com/cataloghub/backend/internal/domain/shared"
	"github.com/cataloghub/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo identity.UserRepository
	tokens   *auth.TokenService
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, tokens *auth.TokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Register creates a regular account
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*UserView, error) {
	return s.register(ctx, input, identity.RoleUser)
}

// RegisterAdmin creates an account allowed to trigger integrations
func (s *AuthService) RegisterAdmin(ctx context.Context, input RegisterInput) (*UserView, error) {
	return s.register(ctx, input, identity.RoleAdmin)
}

func (s *AuthService) register(ctx context.Context, input RegisterInput, role identity.Role) (*UserView, error) {
	user, err := identity.NewUser(input.Username, input.Password, role)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already taken")
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		if err == shared.ErrAlreadyExists {
			return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already taken")
		}
		return nil, err
	}

	s.logger.Info("User registered",
		zap.String("username", user.Username),
		zap.String("role", string(role)),
	)

	view := toUserView(user)
	return &view, nil
}

// Login verifies credentials and issues a signed token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if err == shared.ErrNotFound {
			// Same error for unknown user and bad password, no account probing
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
		}
		return nil, err
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Failed login attempt", zap.String("username", user.Username))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("User logged in", zap.String("username", user.Username))

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserView(user),
	}, nil
}

func toUserView(user *identity.User) UserView {
	return UserView{
		ID:       user.ID.String(),
		Username: user.Username,
		Role:     string(user.Role),
	}
}
