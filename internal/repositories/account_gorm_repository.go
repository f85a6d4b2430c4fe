package repositories

import (
	"context"
	"errors"
	"fmt"

	"affirm/internal/models"

	"gorm.io/gorm"
)

// GORMAccountRepository is a GORM implementation of AccountRepository.
type GORMAccountRepository struct {
	db *gorm.DB
}

// NewGORMAccountRepository creates a new instance of GORMAccountRepository.
func NewGORMAccountRepository(db *gorm.DB) *GORMAccountRepository {
	return &GORMAccountRepository{
		db: db,
	}
}

// Create inserts a new account. The store assigns ID and CreatedAt.
func (r *GORMAccountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("account %s: %w", account.Username, ErrDuplicate)
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByUsername retrieves an account by its username.
func (r *GORMAccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	return r.first(ctx, "username = ?", username)
}

// GetByEmail retrieves an account by its email.
func (r *GORMAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.first(ctx, "email = ?", email)
}

// GetByID retrieves an account by its ID.
func (r *GORMAccountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *GORMAccountRepository) first(ctx context.Context, query string, arg any) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %v: %w", arg, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get account %v: %w", arg, err)
	}
	return &account, nil
}
