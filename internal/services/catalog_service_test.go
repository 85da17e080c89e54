package services_test

import (
	"fmt"
	"testing"

	"storefront/internal/models"
	"storefront/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByCategory(category string) ([]models.Product, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) TopPopular(limit int) ([]models.PopularProduct, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PopularProduct), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func TestCatalogService_GetProductsByCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo)

	expected := []models.Product{
		{ID: 1, Name: "Laptop", Price: 1200.0, Category: "electronics"},
		{ID: 2, Name: "Keyboard", Price: 75.0, Category: "electronics"},
	}
	mockRepo.On("GetByCategory", "electronics").Return(expected, nil).Once()

	products, err := service.GetProductsByCategory("electronics")
	assert.NoError(t, err)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_TopPopular_DefaultLimit(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo)

	ranked := []models.PopularProduct{
		{ID: 3, Name: "Mug", TotalQuantity: 15},
	}
	// Zero and negative limits fall back to the default of five.
	mockRepo.On("TopPopular", services.DefaultTopPopularLimit).Return(ranked, nil).Twice()

	got, err := service.TopPopular(0)
	assert.NoError(t, err)
	assert.Equal(t, ranked, got)

	got, err = service.TopPopular(-3)
	assert.NoError(t, err)
	assert.Equal(t, ranked, got)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_TopPopular_ExplicitLimit(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo)

	mockRepo.On("TopPopular", 3).Return([]models.PopularProduct{}, nil).Once()

	_, err := service.TopPopular(3)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCatalogService_GetProductByID_NotFound(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewCatalogService(mockRepo)

	mockRepo.On("GetByID", uint(99)).
		Return(nil, fmt.Errorf("product %d: %w", 99, models.ErrNotFound)).Once()

	product, err := service.GetProductByID(99)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}
