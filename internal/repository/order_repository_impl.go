package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/database/mongodb"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderRepositoryImpl struct {
	store DocumentStore
}

func CreateNewOrderRepository(store DocumentStore) OrderRepository {
	return &OrderRepositoryImpl{store: store}
}

func (r *OrderRepositoryImpl) AddOrder(ctx context.Context, data domain.Order) (id primitive.ObjectID, err error) {
	id, err = r.store.Insert(ctx, mongodb.OrdersCollection, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddOrder").Msg("")
		return
	}

	return id, nil
}

func (r *OrderRepositoryImpl) GetOrdersByUserID(ctx context.Context, userID string, page pkgdto.Filter) (data []domain.Order, total int64, err error) {
	total, err = r.store.Count(ctx, mongodb.OrdersCollection, bson.D{{Key: "userId", Value: userID}})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return
	}

	if page.Skip() >= total {
		return []domain.Order{}, total, nil
	}

	err = r.store.FindByField(ctx, mongodb.OrdersCollection, "userId", userID, mongodb.FindOptions{
		Skip:  page.Skip(),
		Limit: page.Limit(),
		Sort:  naturalOrder,
	}, &data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetOrdersByUserID").Msg("")
		return nil, 0, err
	}

	if data == nil {
		data = []domain.Order{}
	}

	return data, total, nil
}
