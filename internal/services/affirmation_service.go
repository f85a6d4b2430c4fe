package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"affirm/internal/composer"
	"affirm/internal/models"
	"affirm/internal/repositories"

	"go.uber.org/zap"
)

// SaveInput carries the fields of an affirmation to persist.
type SaveInput struct {
	Username             string
	Desire               string
	Fear                 string
	Blessing             string
	Outcome              string
	Address              string
	GeneratedAffirmation string
}

// AffirmationService composes affirmations and manages saved ones.
type AffirmationService struct {
	repo      repositories.AffirmationRepository
	rng       composer.RandomSource
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewAffirmationService creates a new AffirmationService. A nil rng uses
// composer.DefaultSource; a nil publisher disables events.
func NewAffirmationService(repo repositories.AffirmationRepository, rng composer.RandomSource, publisher EventPublisher, logger *zap.Logger) *AffirmationService {
	if rng == nil {
		rng = composer.DefaultSource()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AffirmationService{
		repo:      repo,
		rng:       rng,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Generate composes a new affirmation text. Nothing is persisted.
func (s *AffirmationService) Generate(in composer.Input) (string, error) {
	text, err := composer.Compose(in, s.rng)
	if err != nil {
		if errors.Is(err, composer.ErrEmptyField) {
			return "", fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return "", err
	}
	return text, nil
}

// Save persists an affirmation and returns the assigned ID.
func (s *AffirmationService) Save(ctx context.Context, in SaveInput) (uint, error) {
	var missing []string
	for _, f := range []struct{ name, val string }{
		{"username", in.Username},
		{"desire", in.Desire},
		{"outcome", in.Outcome},
		{"generated_affirmation", in.GeneratedAffirmation},
	} {
		if strings.TrimSpace(f.val) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}

	affirmation := &models.Affirmation{
		Username:             in.Username,
		Desire:               in.Desire,
		Fear:                 in.Fear,
		Blessing:             in.Blessing,
		Outcome:              in.Outcome,
		Address:              in.Address,
		GeneratedAffirmation: in.GeneratedAffirmation,
	}
	if err := s.repo.Create(ctx, affirmation); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrStore, err)
	}

	s.logger.Info("Affirmation saved", zap.Uint("id", affirmation.ID), zap.String("username", affirmation.Username))
	publishEvent(s.publisher, s.logger, Event{
		Type:       EventAffirmationSaved,
		ID:         affirmation.ID,
		Username:   affirmation.Username,
		OccurredAt: s.now().UTC(),
	})
	return affirmation.ID, nil
}

// List returns the owner's affirmations, newest first. An owner with no
// saved affirmations gets an empty slice.
func (s *AffirmationService) List(ctx context.Context, owner string) ([]models.Affirmation, error) {
	affirmations, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	if affirmations == nil {
		affirmations = []models.Affirmation{}
	}
	return affirmations, nil
}

// Get returns the affirmation matching both owner and id.
func (s *AffirmationService) Get(ctx context.Context, owner string, id uint) (*models.Affirmation, error) {
	affirmation, err := s.repo.GetByOwnerAndID(ctx, owner, id)
	if err != nil {
		return nil, s.mapRepoError(err, id)
	}
	return affirmation, nil
}

// Delete removes the affirmation matching both owner and id. Deleting an
// already deleted affirmation reports ErrNotFound.
func (s *AffirmationService) Delete(ctx context.Context, owner string, id uint) error {
	if err := s.repo.DeleteByOwnerAndID(ctx, owner, id); err != nil {
		return s.mapRepoError(err, id)
	}

	s.logger.Info("Affirmation deleted", zap.Uint("id", id), zap.String("username", owner))
	publishEvent(s.publisher, s.logger, Event{
		Type:       EventAffirmationDeleted,
		ID:         id,
		Username:   owner,
		OccurredAt: s.now().UTC(),
	})
	return nil
}

func (s *AffirmationService) mapRepoError(err error, id uint) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return fmt.Errorf("affirmation %d %w", id, ErrNotFound)
	}
	return fmt.Errorf("%w: %v", ErrStore, err)
}
