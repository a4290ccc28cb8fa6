package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockProductRepo) GetProducts(ctx context.Context, filter domain.ProductFilter, page pkgdto.Filter) ([]domain.Product, int64, error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).([]domain.Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockProductRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) AddOrder(ctx context.Context, data domain.Order) (primitive.ObjectID, error) {
	args := m.Called(ctx, data)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockOrderRepo) GetOrdersByUserID(ctx context.Context, userID string, page pkgdto.Filter) ([]domain.Order, int64, error) {
	args := m.Called(ctx, userID, page)
	return args.Get(0).([]domain.Order), args.Get(1).(int64), args.Error(2)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, id string) (domain.Product, bool) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Bool(1)
}

func (m *mockCache) Set(ctx context.Context, product domain.Product) {
	m.Called(ctx, product)
}

func (m *mockCache) Close() error {
	return nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, eventType, key string, data interface{}) error {
	args := m.Called(ctx, eventType, key, data)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return nil
}
