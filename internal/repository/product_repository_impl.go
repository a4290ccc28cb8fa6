package repository

import (
	"context"
	"errors"
	"regexp"

	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/domain"
	"github.com/alimikegami/point-of-sales/ecommerce-service/internal/infrastructure/database/mongodb"
	pkgdto "github.com/alimikegami/point-of-sales/ecommerce-service/pkg/dto"
	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var naturalOrder = bson.D{{Key: "_id", Value: 1}}

type ProductRepositoryImpl struct {
	store DocumentStore
}

func CreateNewProductRepository(store DocumentStore) ProductRepository {
	return &ProductRepositoryImpl{store: store}
}

func (r *ProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	id, err = r.store.Insert(ctx, mongodb.ProductsCollection, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return id, nil
}

func (r *ProductRepositoryImpl) GetProducts(ctx context.Context, filter domain.ProductFilter, page pkgdto.Filter) (data []domain.Product, total int64, err error) {
	query := BuildProductFilter(filter)

	total, err = r.store.Count(ctx, mongodb.ProductsCollection, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if page.Skip() >= total {
		return []domain.Product{}, total, nil
	}

	err = r.store.Find(ctx, mongodb.ProductsCollection, query, mongodb.FindOptions{
		Skip:  page.Skip(),
		Limit: page.Limit(),
		Sort:  naturalOrder,
	}, &data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, 0, err
	}

	if data == nil {
		data = []domain.Product{}
	}

	return data, total, nil
}

func (r *ProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.NewValidationError("productId", "mongodb")
	}

	err = r.store.FindOne(ctx, mongodb.ProductsCollection, bson.D{{Key: "_id", Value: productID}}, &product)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return product, errs.NotFound("product", id)
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

// BuildProductFilter ANDs the supplied filters. The name is matched as a
// literal, case-insensitive substring; size must equal one of the product's
// size labels.
func BuildProductFilter(filter domain.ProductFilter) bson.D {
	query := bson.D{}

	if filter.Name != "" {
		query = append(query, bson.E{Key: "name", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(filter.Name),
			Options: "i",
		}})
	}

	if filter.Size != "" {
		query = append(query, bson.E{Key: "sizes.size", Value: filter.Size})
	}

	return query
}
