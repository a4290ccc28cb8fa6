package mongodb

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ProductsCollection = "products"
	OrdersCollection   = "orders"
)

var indexes = map[string][]mongo.IndexModel{
	ProductsCollection: {
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("name_1")},
		{Keys: bson.D{{Key: "sizes.size", Value: 1}}, Options: options.Index().SetName("sizes_size_1")},
	},
	OrdersCollection: {
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "_id", Value: 1}}, Options: options.Index().SetName("userId_1__id_1")},
	},
}

// EnsureIndexes creates the secondary indexes used by the list queries.
// Creating an index that already exists is a no-op on the server.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for collection, models := range indexes {
		names, err := s.db.Collection(collection).Indexes().CreateMany(ctx, models)
		if err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "EnsureIndexes").Str("collection", collection).Msg("")
			return err
		}

		log.Ctx(ctx).Info().Str("collection", collection).Strs("indexes", names).Msg("indexes ensured")
	}

	return nil
}
