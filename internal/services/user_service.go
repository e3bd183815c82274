package services

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"sync-backend/internal/auth"
	"sync-backend/internal/models"
	"sync-backend/internal/repositories"
)

var userLogger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "auth").Logger()

// ErrInvalidCredentials is returned for unknown users and wrong passwords
// alike, so login responses never reveal which of the two failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
	}
}

// Login authenticates a user against acc_users and returns a session token.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if req.UserID == "" || req.Password == "" {
		return nil, errors.New("userid & password required")
	}

	userLogger.Info().Str("userid", req.UserID).Msg("login attempt")

	user, err := s.Repo.Get(ctx, req.UserID)
	if err != nil {
		userLogger.Warn().Str("userid", req.UserID).Msg("login failed")
		return nil, ErrInvalidCredentials
	}

	if !auth.VerifyPassword(user.Pass, req.Password) {
		userLogger.Warn().Str("userid", req.UserID).Msg("login failed")
		return nil, ErrInvalidCredentials
	}

	token, err := s.JWTManager.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	userLogger.Info().Str("userid", user.ID).Msg("login successful")
	return &models.LoginResponse{
		Status:  "success",
		Message: "Login successful",
		UserID:  user.ID,
		Token:   token,
	}, nil
}
