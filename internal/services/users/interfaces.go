package users

import (
	"context"

	"github.com/killallgit/podscribe-api/internal/models"
)

// Repository defines the interface for user data access
type Repository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByPID(ctx context.Context, pid string) (*models.User, error)
}

// Service defines the interface for user account logic
type Service interface {
	Register(ctx context.Context, email, name, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetByPID(ctx context.Context, pid string) (*models.User, error)
}
