package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/database/mongodb"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DocumentStore is the subset of mongodb.Store the repositories need.
type DocumentStore interface {
	Insert(ctx context.Context, collection string, document interface{}) (primitive.ObjectID, error)
	Find(ctx context.Context, collection string, filter interface{}, opts mongodb.FindOptions, results interface{}) error
	FindByField(ctx context.Context, collection string, field string, value interface{}, opts mongodb.FindOptions, results interface{}) error
	FindOne(ctx context.Context, collection string, filter interface{}, result interface{}) error
	Count(ctx context.Context, collection string, filter interface{}) (int64, error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context, filter domain.ProductFilter, page pkgdto.Filter) (data []domain.Product, total int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
}

type OrderRepository interface {
	AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error)
	GetOrdersByUserID(ctx context.Context, userID string, page pkgdto.Filter) (data []domain.Order, total int64, err error)
}
