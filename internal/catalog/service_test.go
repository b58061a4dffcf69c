package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProducts(ctx context.Context) ([]Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) GetProductByID(ctx context.Context, id int) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestService_Browse(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - filters repository products", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetProducts", ctx).Return(testProducts(), nil).Once()

		got, err := svc.Browse(ctx, "pizza", CategoryAll)

		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Margherita Pizza", got[0].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - empty category defaults to all", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetProducts", ctx).Return(testProducts(), nil).Once()

		got, err := svc.Browse(ctx, "", "")

		assert.NoError(t, err)
		assert.Len(t, got, 2)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - repository failure", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		dbErr := errors.New("catalog unavailable")

		mockRepo.On("GetProducts", ctx).Return(nil, dbErr).Once()

		_, err := svc.Browse(ctx, "", CategoryAll)

		assert.Error(t, err)
		assert.Equal(t, dbErr, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestService_GetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)
		want := &Product{ID: 1, Name: "Margherita Pizza"}

		mockRepo.On("GetProductByID", ctx, 1).Return(want, nil).Once()

		got, err := svc.GetProduct(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, want, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - not found", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo)

		mockRepo.On("GetProductByID", ctx, 99).Return(nil, ErrProductNotFound).Once()

		_, err := svc.GetProduct(ctx, 99)

		assert.Error(t, err)
		assert.Equal(t, ErrProductNotFound, err)
	})
}

func TestSeedRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	t.Run("GetProducts returns a copy", func(t *testing.T) {
		first, err := repo.GetProducts(ctx)
		assert.NoError(t, err)

		first[0].Name = "mutated"

		second, err := repo.GetProducts(ctx)
		assert.NoError(t, err)
		assert.Equal(t, "Margherita Pizza", second[0].Name)
	})

	t.Run("GetProductByID", func(t *testing.T) {
		p, err := repo.GetProductByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "Caesar Salad", p.Name)

		_, err = repo.GetProductByID(ctx, 404)
		assert.Equal(t, ErrProductNotFound, err)
	})

	t.Run("GetCategories starts with all", func(t *testing.T) {
		cats, err := repo.GetCategories(ctx)
		assert.NoError(t, err)
		assert.Equal(t, CategoryAll, cats[0])
	})
}
