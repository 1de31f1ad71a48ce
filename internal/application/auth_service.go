package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/expensio/expensio/internal/domain/entity"
	repo "github.com/expensio/expensio/internal/domain/repository"
	"github.com/expensio/expensio/pkg/helpers"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email and wrong password alike, so
	// login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService registers users and exchanges credentials for bearer tokens.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// AuthResult is a freshly issued token with its subject.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

func (s *AuthService) issue(u *entity.User) (*AuthResult, error) {
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: u}, nil
}

// Register creates a user with a bcrypt-hashed password and issues a token
// bound to the new id. Email matching is case-sensitive.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hash,
		Name:     name,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user registered")
	return s.issue(u)
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(u)
}

// VerifyToken validates a bearer token and resolves its subject. A valid
// signature whose user has since disappeared is treated the same as a bad
// token.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	u, err := s.Users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
