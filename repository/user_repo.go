package repository

import (
	"context"

	"roshanservice/models"
)

// UserRepository defines the interface for operator account operations.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.AppUser) error
	GetUserByEmail(ctx context.Context, email string) (*models.AppUser, error)
}
