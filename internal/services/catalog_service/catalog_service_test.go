package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"solemate/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product models.Product) (int64, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Products(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) DeleteAllProducts(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestCatalogService_Products(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	service := NewCatalogService(slog.Default(), mockRepo)

	t.Run("returns catalog", func(t *testing.T) {
		want := []models.Product{
			{ID: 1, Name: "Nike Falcon", Price: 7999, Category: "Men", Image: "shoe.jpg", Link: "https://amazon.com"},
		}
		mockRepo.On("Products", ctx).Return(want, nil).Once()

		products, err := service.Products(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, products)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		mockRepo.On("Products", ctx).
			Return([]models.Product(nil), errors.New("db down")).Once()

		_, err := service.Products(ctx)
		assert.Error(t, err)
	})

	mockRepo.AssertExpectations(t)
}
