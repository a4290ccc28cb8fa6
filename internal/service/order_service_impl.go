package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/cache"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/message-queue/kafka"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/metrics"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/repository"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/validation"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type OrderServiceImpl struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cache       cache.ProductCache
	publisher   kafka.EventPublisher
	now         func() time.Time
}

func CreateOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cache cache.ProductCache, publisher kafka.EventPublisher) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cache:       cache,
		publisher:   publisher,
		now:         time.Now,
	}
}

func (s *OrderServiceImpl) AddOrder(ctx context.Context, data dto.OrderRequest) (order domain.Order, err error) {
	if err = validation.Struct(data); err != nil {
		return
	}

	// mongo keeps millisecond precision
	order = domain.Order{
		UserID:    data.UserID,
		Items:     make([]domain.OrderItem, 0, len(data.Items)),
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}

	total := decimal.Zero
	for _, item := range data.Items {
		product, err := s.getProduct(ctx, item.ProductID)
		if err != nil {
			return domain.Order{}, err
		}

		order.Items = append(order.Items, domain.OrderItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
			Name:      product.Name,
			Price:     product.Price,
		})
		total = total.Add(decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	order.Total = total.InexactFloat64()
	if math.IsInf(order.Total, 0) || math.IsNaN(order.Total) {
		return domain.Order{}, errs.NewValidationError("items", "total")
	}

	order.ID, err = s.orderRepo.AddOrder(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	metrics.OrdersCreated.Inc()
	metrics.OrderItems.Add(float64(len(order.Items)))

	if err := s.publisher.Publish(ctx, EventOrderCreated, order.ID.Hex(), order); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "AddOrder").Str("order_id", order.ID.Hex()).Msg("event not published")
	}

	return order, nil
}

// getProduct reads through the product cache. Products are immutable, so a
// cached snapshot is always current.
func (s *OrderServiceImpl) getProduct(ctx context.Context, id string) (product domain.Product, err error) {
	if product, ok := s.cache.Get(ctx, id); ok {
		return product, nil
	}

	product, err = s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	s.cache.Set(ctx, product)

	return product, nil
}

func (s *OrderServiceImpl) GetOrdersByUser(ctx context.Context, userID string, page pkgdto.Filter) (res pkgdto.PaginationResponse, err error) {
	if strings.TrimSpace(userID) == "" {
		return res, errs.NewValidationError("userId", "required")
	}

	if err = page.Normalize(); err != nil {
		return
	}

	orders, total, err := s.orderRepo.GetOrdersByUserID(ctx, userID, page)
	if err != nil {
		return
	}

	return pkgdto.PaginationResponse{
		Data:     orders,
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    total,
	}, nil
}
