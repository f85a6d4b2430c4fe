package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"affirm/internal/composer"
	"affirm/internal/models"
	"affirm/internal/repositories"
	"affirm/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAffirmationService_Generate(t *testing.T) {
	in := composer.Input{Desire: "peace", Fear: "failure", Outcome: "to be happy", Address: "Maya"}

	a := services.NewAffirmationService(nil, rand.New(rand.NewPCG(3, 5)), nil, nil)
	b := services.NewAffirmationService(nil, rand.New(rand.NewPCG(3, 5)), nil, nil)

	textA, err := a.Generate(in)
	require.NoError(t, err)
	textB, err := b.Generate(in)
	require.NoError(t, err)
	assert.Equal(t, textA, textB)
	assert.Contains(t, textA, "peace")
	assert.Contains(t, textA, "to be happy")
	assert.Contains(t, textA, "Maya")

	_, err = a.Generate(composer.Input{Desire: "peace"})
	assert.ErrorIs(t, err, services.ErrValidation)
}

func TestAffirmationService_Save(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAffirmationRepository)
	publisher := new(MockPublisher)
	service := services.NewAffirmationService(mockRepo, nil, publisher, nil)

	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Affirmation")).
		Run(func(args mock.Arguments) {
			a := args.Get(1).(*models.Affirmation)
			assert.Equal(t, "alice", a.Username)
			assert.Equal(t, "text", a.GeneratedAffirmation)
			a.ID = 5
		}).
		Return(nil).Once()
	publisher.On("Publish", services.EventsExchange, services.EventAffirmationSaved, mock.MatchedBy(func(body []byte) bool {
		var evt services.Event
		return json.Unmarshal(body, &evt) == nil && evt.ID == 5 && evt.Username == "alice"
	})).Return(nil).Once()

	id, err := service.Save(ctx, services.SaveInput{
		Username:             "alice",
		Desire:               "peace",
		Outcome:              "to be happy",
		GeneratedAffirmation: "text",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAffirmationService_Save_PublishFailureIsNotSurfaced(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAffirmationRepository)
	publisher := new(MockPublisher)
	service := services.NewAffirmationService(mockRepo, nil, publisher, nil)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	publisher.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("channel closed")).Once()

	_, err := service.Save(ctx, services.SaveInput{Username: "alice", Desire: "d", Outcome: "o", GeneratedAffirmation: "t"})
	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestAffirmationService_Save_Validation(t *testing.T) {
	mockRepo := new(MockAffirmationRepository)
	service := services.NewAffirmationService(mockRepo, nil, nil, nil)

	valid := services.SaveInput{Username: "alice", Desire: "d", Outcome: "o", GeneratedAffirmation: "t"}
	tests := []struct {
		name  string
		edit  func(*services.SaveInput)
		field string
	}{
		{"owner", func(in *services.SaveInput) { in.Username = "" }, "username"},
		{"desire", func(in *services.SaveInput) { in.Desire = " " }, "desire"},
		{"outcome", func(in *services.SaveInput) { in.Outcome = "" }, "outcome"},
		{"text", func(in *services.SaveInput) { in.GeneratedAffirmation = "" }, "generated_affirmation"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.edit(&in)
			_, err := service.Save(context.Background(), in)
			assert.ErrorIs(t, err, services.ErrValidation)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAffirmationService_Save_StoreFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAffirmationRepository)
	service := services.NewAffirmationService(mockRepo, nil, nil, nil)

	mockRepo.On("Create", ctx, mock.Anything).Return(fmt.Errorf("database is locked")).Once()
	_, err := service.Save(ctx, services.SaveInput{Username: "alice", Desire: "d", Outcome: "o", GeneratedAffirmation: "t"})
	assert.ErrorIs(t, err, services.ErrStore)
}

func TestAffirmationService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAffirmationRepository)
	service := services.NewAffirmationService(mockRepo, nil, nil, nil)

	saved := []models.Affirmation{
		{ID: 2, Username: "alice", CreatedAt: time.Now()},
		{ID: 1, Username: "alice", CreatedAt: time.Now().Add(-time.Minute)},
	}
	mockRepo.On("ListByOwner", ctx, "alice").Return(saved, nil).Once()
	mockRepo.On("ListByOwner", ctx, "nobody-ever-saved").Return(nil, nil).Once()

	list, err := service.List(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, saved, list)

	empty, err := service.List(ctx, "nobody-ever-saved")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	mockRepo.AssertExpectations(t)
}

func TestAffirmationService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAffirmationRepository)
	publisher := new(MockPublisher)
	service := services.NewAffirmationService(mockRepo, nil, publisher, nil)

	missing := fmt.Errorf("affirmation 999 for alice: %w", repositories.ErrRecordNotFound)

	mockRepo.On("GetByOwnerAndID", ctx, "alice", uint(1)).Return(&models.Affirmation{ID: 1, Username: "alice"}, nil).Once()
	mockRepo.On("GetByOwnerAndID", ctx, "alice", uint(999)).Return(nil, missing).Once()

	a, err := service.Get(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, uint(1), a.ID)

	_, err = service.Get(ctx, "alice", 999)
	assert.ErrorIs(t, err, services.ErrNotFound)

	mockRepo.On("DeleteByOwnerAndID", ctx, "alice", uint(1)).Return(nil).Once()
	mockRepo.On("DeleteByOwnerAndID", ctx, "alice", uint(1)).Return(missing).Once()
	publisher.On("Publish", services.EventsExchange, services.EventAffirmationDeleted, mock.Anything).Return(nil).Once()

	assert.NoError(t, service.Delete(ctx, "alice", 1))
	assert.ErrorIs(t, service.Delete(ctx, "alice", 1), services.ErrNotFound)

	mockRepo.On("DeleteByOwnerAndID", ctx, "alice", uint(3)).Return(fmt.Errorf("connection reset")).Once()
	assert.ErrorIs(t, service.Delete(ctx, "alice", 3), services.ErrStore)

	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
