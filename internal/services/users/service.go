package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/killallgit/podscribe-api/internal/models"
	"github.com/killallgit/podscribe-api/internal/services/auth"
	"golang.org/x/crypto/bcrypt"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new user service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// Register creates a new account. New accounts start with no role; an
// admin raises the level out of band.
func (s *ServiceImpl) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("Email is required")
	}
	if name == "" {
		return nil, fmt.Errorf("Name is required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("Password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		PID:          uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		APIKey:       uuid.New().String(),
		Name:         name,
		Role:         models.RoleNone,
	}

	if err := s.repository.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the matching user
func (s *ServiceImpl) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repository.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}

// GetByPID retrieves a user by public id
func (s *ServiceImpl) GetByPID(ctx context.Context, pid string) (*models.User, error) {
	return s.repository.GetUserByPID(ctx, pid)
}
