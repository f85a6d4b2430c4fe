package repositories

import (
	"context"
	"errors"
	"fmt"

	"affirm/internal/models"

	"gorm.io/gorm"
)

// GORMAffirmationRepository is a GORM implementation of AffirmationRepository.
type GORMAffirmationRepository struct {
	db *gorm.DB
}

// NewGORMAffirmationRepository creates a new instance of GORMAffirmationRepository.
func NewGORMAffirmationRepository(db *gorm.DB) *GORMAffirmationRepository {
	return &GORMAffirmationRepository{
		db: db,
	}
}

// Create inserts a saved affirmation. The store assigns ID and CreatedAt.
func (r *GORMAffirmationRepository) Create(ctx context.Context, affirmation *models.Affirmation) error {
	if err := r.db.WithContext(ctx).Create(affirmation).Error; err != nil {
		return fmt.Errorf("failed to create affirmation: %w", err)
	}
	return nil
}

// ListByOwner returns every affirmation saved under owner, newest first.
// Rows created within the same clock tick fall back to descending ID.
func (r *GORMAffirmationRepository) ListByOwner(ctx context.Context, owner string) ([]models.Affirmation, error) {
	affirmations := []models.Affirmation{}
	err := r.db.WithContext(ctx).
		Where("username = ?", owner).
		Order("created_at DESC").
		Order("id DESC").
		Find(&affirmations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list affirmations for %s: %w", owner, err)
	}
	return affirmations, nil
}

// GetByOwnerAndID retrieves the affirmation matching both owner and id.
func (r *GORMAffirmationRepository) GetByOwnerAndID(ctx context.Context, owner string, id uint) (*models.Affirmation, error) {
	var affirmation models.Affirmation
	err := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, owner).
		First(&affirmation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("affirmation %d for %s: %w", id, owner, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get affirmation %d: %w", id, err)
	}
	return &affirmation, nil
}

// DeleteByOwnerAndID removes the affirmation matching both owner and id.
func (r *GORMAffirmationRepository) DeleteByOwnerAndID(ctx context.Context, owner string, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", id, owner).
		Delete(&models.Affirmation{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete affirmation %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("affirmation %d for %s: %w", id, owner, ErrRecordNotFound)
	}
	return nil
}
