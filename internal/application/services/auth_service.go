package services

import (
	"context"

	"blog-service/internal/application/command"
	"blog-service/internal/application/common"
	"blog-service/internal/application/interfaces"
	"blog-service/internal/application/mapper"
	"blog-service/internal/domain"
	"blog-service/internal/domain/entities"
	"blog-service/internal/domain/repositories"
	"blog-service/internal/infrastructure"

	"github.com/rs/zerolog"
)

const TokenTypeBearer = "bearer"

type AuthService struct {
	userRepo   repositories.UserRepository
	hasher     *infrastructure.PasswordHasher
	jwtService *infrastructure.JWTService
	logger     zerolog.Logger
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher *infrastructure.PasswordHasher,
	jwtService *infrastructure.JWTService,
	logger zerolog.Logger,
) interfaces.AuthService {
	return &AuthService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *AuthService) Register(ctx context.Context, cmd *command.RegisterUserCommand) (*common.UserResult, error) {
	user, err := s.createUser(ctx, cmd.Username, cmd.Email, cmd.Password, entities.RoleUser)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return mapper.NewUserResultFromEntity(user), nil
}

func (s *AuthService) Login(ctx context.Context, cmd *command.LoginUserCommand) (*common.TokenResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Verify(cmd.Password, user.Password) {
		return nil, domain.Unauthenticated("incorrect username or password")
	}

	token, err := s.jwtService.GenerateToken(infrastructure.Claims{
		Subject: user.Username,
		Role:    user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &common.TokenResult{AccessToken: token, TokenType: TokenTypeBearer}, nil
}

// Authenticate trusts the role carried by the token and looks the user up
// only to resolve its id.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*common.Identity, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.Unauthenticated("could not validate credentials")
	}

	return &common.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     claims.Role,
	}, nil
}

// EnsureAdmin creates the bootstrap administrator unless a user with that
// name already exists.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	if username == "" || password == "" {
		return nil
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	user, err := s.createUser(ctx, username, email, password, entities.RoleAdmin)
	if err != nil {
		return err
	}
	s.logger.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("admin user created")
	return nil
}

func (s *AuthService) createUser(ctx context.Context, username, email, password string, role entities.Role) (*entities.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("username already registered")
	}

	existing, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict("email already registered")
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := entities.NewUser(username, email, digest, role)
	if err := user.Validate(); err != nil {
		return nil, domain.InvalidInput(err.Error())
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
