package usecase_test

import (
	"context"
	"testing"

	"vastrakala/internal/domain/model"
	repo "vastrakala/internal/repository"
	"vastrakala/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: ProductRepository
// =====================

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) ListAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *CartProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CartProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *CartProductRepoMock) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestCartUsecase_BuildView_TotalIsSumOfLines(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CartProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Handloom Saree", Price: 2499.0}, nil)
	pRepo.On("FindByID", mock.Anything, int64(2)).Return(model.Product{ID: 2, Name: "Men's Kurta", Price: 1299.0}, nil)

	uc := usecase.NewCartUsecase(pRepo)

	cart := model.Cart{1: 2, 2: 1}

	out, err := uc.BuildView(ctx, cart)
	assert.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2499.0*2+1299.0, out.Total)

	//商品ID昇順で返る
	assert.Equal(t, int64(1), out.Items[0].ID)
	assert.Equal(t, 2499.0*2, out.Items[0].Total)
	assert.Equal(t, int64(2), out.Items[1].ID)
}

func TestCartUsecase_BuildView_StaleProductIsSkipped(t *testing.T) {
	ctx := context.Background()

	pRepo := new(CartProductRepoMock)
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "Handloom Saree", Price: 2499.0}, nil)
	//消えた商品
	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCartUsecase(pRepo)

	cart := model.Cart{1: 1, 99: 3}

	out, err := uc.BuildView(ctx, cart)
	assert.NoError(t, err)

	//消えた行はitemsに出ず、totalにも乗らない
	assert.Len(t, out.Items, 1)
	assert.Equal(t, int64(1), out.Items[0].ID)
	assert.Equal(t, 2499.0, out.Total)

	//カート自体はいじらない
	assert.Equal(t, int64(3), cart[99])
}

func TestCartUsecase_BuildView_EmptyCart(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartProductRepoMock))

	out, err := uc.BuildView(context.Background(), model.NewCart())
	assert.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0.0, out.Total)
}
