package histories

import (
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMockHistoryRepository(mt *mtest.T) *HistoryMongoRepository {
	return &HistoryMongoRepository{
		Client:     mt.Client,
		Collection: mt.Coll,
		Accounts:   mt.DB.Collection(constvars.MongoCollectionAccounts),
	}
}

func commandNames(events []*event.CommandStartedEvent) []string {
	names := make([]string, 0, len(events))
	for _, evt := range events {
		names = append(names, evt.CommandName)
	}
	return names
}

func TestHistoryMongoRepository_DeleteAndUnlink(t *testing.T) {
	ctx := context.Background()
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Deletes And Unlinks In One Transaction", func(mt *mtest.T) {
		repo := newMockHistoryRepository(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}, bson.E{Key: "nModified", Value: 2}),
			mtest.CreateSuccessResponse(),
		)

		deleted, err := repo.DeleteAndUnlink(ctx, historyID)
		require.NoError(mt, err)
		assert.True(mt, deleted)

		events := mt.GetAllStartedEvents()
		require.Equal(mt, []string{"delete", "update", "commitTransaction"}, commandNames(events))

		deleteCmd, updateCmd := events[0].Command, events[1].Command
		assert.True(mt, deleteCmd.Lookup("startTransaction").Boolean())
		assert.Equal(mt, historyID, deleteCmd.Lookup("deletes", "0", "q", "_id").ObjectID().Hex())

		assert.Equal(mt, constvars.MongoCollectionAccounts, updateCmd.Lookup("update").StringValue())
		assert.Equal(mt, deleteCmd.Lookup("txnNumber"), updateCmd.Lookup("txnNumber"))
		assert.True(mt, updateCmd.Lookup("updates", "0", "multi").Boolean())
		assert.Equal(mt, historyID, updateCmd.Lookup("updates", "0", "q", "patient.history").StringValue())
		assert.Equal(mt, historyID, updateCmd.Lookup("updates", "0", "u", "$pull", "patient.history").StringValue())
	})

	mt.Run("Unknown History Leaves Accounts Untouched", func(mt *mtest.T) {
		repo := newMockHistoryRepository(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}),
			mtest.CreateSuccessResponse(),
		)

		deleted, err := repo.DeleteAndUnlink(ctx, historyID)
		require.NoError(mt, err)
		assert.False(mt, deleted)
		assert.Equal(mt, []string{"delete", "commitTransaction"}, commandNames(mt.GetAllStartedEvents()))
	})

	mt.Run("Unlink Failure Aborts", func(mt *mtest.T) {
		repo := newMockHistoryRepository(mt)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad update"}),
			mtest.CreateSuccessResponse(),
		)

		_, err := repo.DeleteAndUnlink(ctx, historyID)
		assert.Equal(mt, constvars.StatusInternalServerError, exceptions.StatusCodeOf(err))
		assert.Equal(mt, []string{"delete", "update", "abortTransaction"}, commandNames(mt.GetAllStartedEvents()))
	})

	mt.Run("Malformed Id Sends Nothing", func(mt *mtest.T) {
		repo := newMockHistoryRepository(mt)

		_, err := repo.DeleteAndUnlink(ctx, "not-an-id")
		assert.Error(mt, err)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})
}
