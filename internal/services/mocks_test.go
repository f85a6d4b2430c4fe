package services_test

import (
	"context"

	"affirm/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of repositories.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *models.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

// MockAffirmationRepository is a mock implementation of repositories.AffirmationRepository
type MockAffirmationRepository struct {
	mock.Mock
}

func (m *MockAffirmationRepository) Create(ctx context.Context, affirmation *models.Affirmation) error {
	args := m.Called(ctx, affirmation)
	return args.Error(0)
}

func (m *MockAffirmationRepository) ListByOwner(ctx context.Context, owner string) ([]models.Affirmation, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Affirmation), args.Error(1)
}

func (m *MockAffirmationRepository) GetByOwnerAndID(ctx context.Context, owner string, id uint) (*models.Affirmation, error) {
	args := m.Called(ctx, owner, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Affirmation), args.Error(1)
}

func (m *MockAffirmationRepository) DeleteByOwnerAndID(ctx context.Context, owner string, id uint) error {
	args := m.Called(ctx, owner, id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}
