package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// FindOptions controls paging, ordering and projection of a Find call.
// Zero Skip/Limit and nil Sort/Projection are left to the server defaults.
type FindOptions struct {
	Skip       int64
	Limit      int64
	Sort       interface{}
	Projection interface{}
}

// Store is a thin document store over a single database handle. Every
// driver failure is returned wrapped in errs.ErrStorage.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, collection string, document interface{}) (id primitive.ObjectID, err error) {
	result, err := s.db.Collection(collection).InsertOne(ctx, document)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Insert").Str("collection", collection).Msg("")
		return id, errs.Storage("insert "+collection, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return id, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}

	return id, nil
}

func (s *Store) Find(ctx context.Context, collection string, filter interface{}, opts FindOptions, results interface{}) error {
	findOpts := options.Find()
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if opts.Sort != nil {
		findOpts.SetSort(opts.Sort)
	}
	if opts.Projection != nil {
		findOpts.SetProjection(opts.Projection)
	}

	if filter == nil {
		filter = bson.D{}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Find").Str("collection", collection).Msg("")
		return errs.Storage("find "+collection, err)
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Find").Str("collection", collection).Msg("")
		return errs.Storage("decode "+collection, err)
	}

	return nil
}

func (s *Store) FindByField(ctx context.Context, collection string, field string, value interface{}, opts FindOptions, results interface{}) error {
	return s.Find(ctx, collection, bson.D{{Key: field, Value: value}}, opts, results)
}

// FindOne decodes the first match into result, or returns errs.ErrNotFound.
func (s *Store) FindOne(ctx context.Context, collection string, filter interface{}, result interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, filter).Decode(result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "FindOne").Str("collection", collection).Msg("")
		return errs.Storage("find one "+collection, err)
	}

	return nil
}

func (s *Store) Count(ctx context.Context, collection string, filter interface{}) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}

	count, err := s.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Count").Str("collection", collection).Msg("")
		return 0, errs.Storage("count "+collection, err)
	}

	return count, nil
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return errs.Storage("ping", err)
	}
	return nil
}

func (s *Store) Disconnect(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}
