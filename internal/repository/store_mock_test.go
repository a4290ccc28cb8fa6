package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/database/mongodb"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Insert(ctx context.Context, collection string, document interface{}) (primitive.ObjectID, error) {
	args := m.Called(ctx, collection, document)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockStore) Find(ctx context.Context, collection string, filter interface{}, opts mongodb.FindOptions, results interface{}) error {
	args := m.Called(ctx, collection, filter, opts, results)
	return args.Error(0)
}

func (m *mockStore) FindByField(ctx context.Context, collection string, field string, value interface{}, opts mongodb.FindOptions, results interface{}) error {
	args := m.Called(ctx, collection, field, value, opts, results)
	return args.Error(0)
}

func (m *mockStore) FindOne(ctx context.Context, collection string, filter interface{}, result interface{}) error {
	args := m.Called(ctx, collection, filter, result)
	return args.Error(0)
}

func (m *mockStore) Count(ctx context.Context, collection string, filter interface{}) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}
