package repositories

import (
	"context"

	"affirm/internal/models"
)

// AccountRepository defines the interface for account data access.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByID(ctx context.Context, id uint) (*models.Account, error)
}
