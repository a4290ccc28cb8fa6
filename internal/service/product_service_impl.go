package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/cache"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/metrics"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/repository"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/validation"
	"github.com/rs/zerolog/log"
)

type ProductServiceImpl struct {
	repo      repository.ProductRepository
	cache     cache.ProductCache
	publisher kafka.EventPublisher
}

func CreateProductService(repo repository.ProductRepository, cache cache.ProductCache, publisher kafka.EventPublisher) ProductService {
	return &ProductServiceImpl{repo: repo, cache: cache, publisher: publisher}
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (product domain.Product, err error) {
	if err = validation.Struct(data); err != nil {
		return
	}

	product = domain.Product{
		Name:  data.Name,
		Price: *data.Price,
		Sizes: make([]domain.Size, 0, len(data.Sizes)),
	}
	for _, size := range data.Sizes {
		product.Sizes = append(product.Sizes, domain.Size{
			Size:     size.Size,
			Quantity: *size.Quantity,
		})
	}

	product.ID, err = s.repo.AddProduct(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}

	metrics.ProductsCreated.Inc()
	s.cache.Set(ctx, product)

	if err := s.publisher.Publish(ctx, EventProductCreated, product.ID.Hex(), product); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "AddProduct").Str("product_id", product.ID.Hex()).Msg("event not published")
	}

	return product, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter domain.ProductFilter, page pkgdto.Filter) (res pkgdto.PaginationResponse, err error) {
	if err = page.Normalize(); err != nil {
		return
	}

	products, total, err := s.repo.GetProducts(ctx, filter, page)
	if err != nil {
		return
	}

	return pkgdto.PaginationResponse{
		Data:     products,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    total,
	}, nil
}
