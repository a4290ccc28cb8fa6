package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/dto"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
)

const (
	EventProductCreated = "product_created"
	EventOrderCreated   = "order_created"
)

type ProductService interface {
	AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error)
	GetProducts(ctx context.Context, filter domain.ProductFilter, page pkgdto.Filter) (res pkgdto.PaginationResponse, err error)
}

type OrderService interface {
	AddOrder(ctx context.Context, data dto.OrderRequest) (order domain.Order, err error)
	GetOrdersByUser(ctx context.Context, userID string, page pkgdto.Filter) (res pkgdto.PaginationResponse, err error)
}
