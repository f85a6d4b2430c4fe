package repositories

import (
	"context"

	"affirm/internal/models"
)

// AffirmationRepository defines the interface for saved affirmation data
// access. Reads and deletes by id are always scoped to an owner.
type AffirmationRepository interface {
	Create(ctx context.Context, affirmation *models.Affirmation) error
	ListByOwner(ctx context.Context, owner string) ([]models.Affirmation, error)
	GetByOwnerAndID(ctx context.Context, owner string, id uint) (*models.Affirmation, error)
	DeleteByOwnerAndID(ctx context.Context, owner string, id uint) error
}
