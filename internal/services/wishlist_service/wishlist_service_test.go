package services

import (
	"context"
	"log/slog"
	"testing"

	"solemate/internal/domain/models"
	"solemate/internal/storage"
	"solemate/internal/transport/http/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWishlistRepository struct {
	mock.Mock
}

func (m *MockWishlistRepository) AddItem(ctx context.Context, item models.WishlistItem) (int64, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWishlistRepository) Items(ctx context.Context) ([]models.WishlistItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.WishlistItem), args.Error(1)
}

func (m *MockWishlistRepository) RemoveItem(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func TestWishlistService_Add(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockWishlistRepository)
	service := NewWishlistService(slog.Default(), mockRepo)

	input := dto.AddWishlistInput{
		ProductID: 3,
		Name:      "Nike Redstar",
		Price:     5999,
		Category:  "Kids",
		Image:     "Nike_Redstar.jpg",
	}

	t.Run("first add succeeds", func(t *testing.T) {
		mockRepo.On("AddItem", ctx, input.ToDomain()).Return(int64(1), nil).Once()

		require.NoError(t, service.Add(ctx, input))
	})

	t.Run("second add of same product reports duplicate", func(t *testing.T) {
		mockRepo.On("AddItem", ctx, input.ToDomain()).
			Return(int64(0), storage.ErrWishlistDuplicate).Once()

		err := service.Add(ctx, input)
		assert.ErrorIs(t, err, ErrAlreadyInWishlist)
	})

	mockRepo.AssertExpectations(t)
}

func TestWishlistService_Remove(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockWishlistRepository)
	service := NewWishlistService(slog.Default(), mockRepo)

	// repository delete is idempotent, so removing an absent product is fine
	mockRepo.On("RemoveItem", ctx, int64(99)).Return(nil).Twice()

	require.NoError(t, service.Remove(ctx, 99))
	require.NoError(t, service.Remove(ctx, 99))

	mockRepo.AssertExpectations(t)
}

func TestWishlistService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockWishlistRepository)
	service := NewWishlistService(slog.Default(), mockRepo)

	want := []models.WishlistItem{
		{ID: 1, ProductID: 3, Name: "Nike Redstar", Price: 5999, Category: "Kids", Image: "Nike_Redstar.jpg"},
	}
	mockRepo.On("Items", ctx).Return(want, nil).Once()

	items, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, items)

	mockRepo.AssertExpectations(t)
}
