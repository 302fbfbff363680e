package repository

import (
	"context"

	"chatbotService/models"
)

// UserRepositoryI defines operations on User entities.
//
// There is deliberately no update or delete surface: accounts are created
// once (by the startup seed) and only ever read back during login.
type UserRepositoryI interface {
	Create(ctx context.Context, username, password string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
}
