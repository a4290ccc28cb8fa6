package mongodb

import (
	"context"
	"testing"

	"github.com/alimikegami/point-of-sales/ecommerce-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type sampleDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

func TestStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert returns generated id", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := store.Insert(context.Background(), "samples", sampleDoc{Name: "T-Shirt"})

		require.NoError(t, err)
		assert.False(t, id.IsZero())
	})

	mt.Run("insert failure is a storage error", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := store.Insert(context.Background(), "samples", sampleDoc{Name: "T-Shirt"})

		assert.ErrorIs(t, err, errs.ErrStorage)
	})

	mt.Run("find decodes every batch", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		ns := mt.Coll.Database().Name() + ".samples"
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "a"}})
		second := mtest.CreateCursorResponse(0, ns, mtest.NextBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "b"}})
		mt.AddMockResponses(first, second)

		var docs []sampleDoc
		err := store.Find(context.Background(), "samples", nil, FindOptions{Skip: 0, Limit: 10}, &docs)

		require.NoError(t, err)
		require.Len(t, docs, 2)
		assert.Equal(t, "a", docs[0].Name)
		assert.Equal(t, "b", docs[1].Name)
	})

	mt.Run("find command error is a storage error", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad filter",
		}))

		var docs []sampleDoc
		err := store.FindByField(context.Background(), "samples", "name", "a", FindOptions{}, &docs)

		assert.ErrorIs(t, err, errs.ErrStorage)
	})

	mt.Run("find one without match is not found", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		ns := mt.Coll.Database().Name() + ".samples"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		var doc sampleDoc
		err := store.FindOne(context.Background(), "samples", bson.D{{Key: "_id", Value: primitive.NewObjectID()}}, &doc)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	mt.Run("count", func(mt *mtest.T) {
		store := NewStore(mt.DB)
		ns := mt.Coll.Database().Name() + ".samples"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "n", Value: int32(3)}}))

		count, err := store.Count(context.Background(), "samples", nil)

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})
}
