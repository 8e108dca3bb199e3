package accounts

import (
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func updateResponse(matched, modified int) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: matched},
		bson.E{Key: "nModified", Value: modified},
	)
}

// updateStatement returns the first {q, u} statement of an update command.
func updateStatement(t *mtest.T, evt *event.CommandStartedEvent) bson.Raw {
	t.Helper()
	require.Equal(t, "update", evt.CommandName)
	statement, ok := evt.Command.Lookup("updates", "0").DocumentOK()
	require.True(t, ok, "update command carries no statement")
	return statement
}

func practitionerObjectID(t *mtest.T) primitive.ObjectID {
	t.Helper()
	objectID, err := primitive.ObjectIDFromHex(practitionerID)
	require.NoError(t, err)
	return objectID
}

func TestAccountMongoRepository_UpsertRating(t *testing.T) {
	ctx := context.Background()
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Existing Entry Set In Place", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(updateResponse(1, 1))

		require.NoError(mt, repo.UpsertRating(ctx, practitionerID, patientID, 4))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 1)
		statement := updateStatement(mt, events[0])
		assert.Equal(mt, practitionerObjectID(mt), statement.Lookup("q", "_id").ObjectID())
		assert.Equal(mt, patientID, statement.Lookup("q", "practitioner.ratings.patientId").StringValue())
		assert.Equal(mt, 4.0, statement.Lookup("u", "$set", "practitioner.ratings.$.value").Double())
	})

	mt.Run("First Rating Pushed Once", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(updateResponse(0, 0), updateResponse(1, 1))

		require.NoError(mt, repo.UpsertRating(ctx, practitionerID, patientID, 3))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 2)
		push := updateStatement(mt, events[1])
		assert.Equal(mt, patientID, push.Lookup("q", "practitioner.ratings.patientId", "$ne").StringValue())
		entry := push.Lookup("u", "$push", "practitioner.ratings").Document()
		assert.Equal(mt, patientID, entry.Lookup("patientId").StringValue())
		assert.Equal(mt, 3.0, entry.Lookup("value").Double())
	})

	mt.Run("Concurrent Push Falls Back To Set", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		// set misses, push guard fails because the entry appeared, set matches
		mt.AddMockResponses(updateResponse(0, 0), updateResponse(0, 0), updateResponse(1, 1))

		require.NoError(mt, repo.UpsertRating(ctx, practitionerID, patientID, 5))

		events := mt.GetAllStartedEvents()
		require.Len(mt, events, 3)
		retry := updateStatement(mt, events[2])
		assert.Equal(mt, 5.0, retry.Lookup("u", "$set", "practitioner.ratings.$.value").Double())
	})

	mt.Run("Missing Practitioner", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(updateResponse(0, 0), updateResponse(0, 0), updateResponse(0, 0), updateResponse(0, 0))

		err := repo.UpsertRating(ctx, practitionerID, patientID, 5)
		assert.Equal(mt, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
		assert.Len(mt, mt.GetAllStartedEvents(), 4)
	})
}

func TestAccountMongoRepository_PullAvailableDate(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Date Removed", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(updateResponse(1, 1))

		removed, err := repo.PullAvailableDate(ctx, practitionerID, date)
		require.NoError(mt, err)
		assert.True(mt, removed)

		statement := updateStatement(mt, mt.GetStartedEvent())
		assert.Equal(mt, date.UnixMilli(), statement.Lookup("q", "practitioner.availableDays").DateTime())
		assert.Equal(mt, date.UnixMilli(), statement.Lookup("u", "$pull", "practitioner.availableDays").DateTime())
	})

	mt.Run("Date Absent", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(updateResponse(0, 0))

		removed, err := repo.PullAvailableDate(ctx, practitionerID, date)
		require.NoError(mt, err)
		assert.False(mt, removed)
	})

	mt.Run("Malformed Id Sends Nothing", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}

		_, err := repo.PullAvailableDate(ctx, "not-an-id", date)
		assert.Error(mt, err)
		assert.Empty(mt, mt.GetAllStartedEvents())
	})
}

func TestAccountMongoRepository_AddAvailableDates(t *testing.T) {
	ctx := context.Background()
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Adds To Set With Each", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		first := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
		second := first.AddDate(0, 0, 1)
		mt.AddMockResponses(updateResponse(1, 1))

		require.NoError(mt, repo.AddAvailableDates(ctx, practitionerID, []time.Time{first, second}))

		statement := updateStatement(mt, mt.GetStartedEvent())
		values, err := statement.Lookup("u", "$addToSet", "practitioner.availableDays", "$each").Array().Values()
		require.NoError(mt, err)
		require.Len(mt, values, 2)
		assert.Equal(mt, first.UnixMilli(), values[0].DateTime())
		assert.Equal(mt, second.UnixMilli(), values[1].DateTime())
	})
}

func TestAccountMongoRepository_Create(t *testing.T) {
	ctx := context.Background()
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Returns Generated Id", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		id, err := repo.Create(ctx, &models.Account{Email: "jane@example.com", Role: models.RolePatient, Patient: &models.PatientProfile{}})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)
	})

	mt.Run("Duplicate Email", func(mt *mtest.T) {
		repo := &AccountMongoRepository{Collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: accounts index: email_1",
		}))

		_, err := repo.Create(ctx, &models.Account{Email: "jane@example.com", Role: models.RolePatient, Patient: &models.PatientProfile{}})
		assert.Equal(mt, constvars.StatusConflict, exceptions.StatusCodeOf(err))
	})
}
