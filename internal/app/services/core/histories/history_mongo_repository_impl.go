package histories

import (
	"carelink-service/internal/app/contracts"
	"carelink-service/internal/app/models"
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type HistoryMongoRepository struct {
	Client     *mongo.Client
	Collection *mongo.Collection
	Accounts   *mongo.Collection
}

func NewHistoryMongoRepository(db *mongo.Client, dbName string) contracts.HistoryRepository {
	database := db.Database(dbName)
	return &HistoryMongoRepository{
		Client:     db,
		Collection: database.Collection(constvars.MongoCollectionHistories),
		Accounts:   database.Collection(constvars.MongoCollectionAccounts),
	}
}

func (r *HistoryMongoRepository) Create(ctx context.Context, history *models.History) (string, error) {
	result, err := r.Collection.InsertOne(ctx, history)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *HistoryMongoRepository) FindByID(ctx context.Context, historyID string) (*models.History, error) {
	objectID, err := primitive.ObjectIDFromHex(historyID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var history models.History
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&history)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &history, nil
}

// FindByIDs returns the histories in the order of historyIDs. Unknown and
// malformed ids are skipped.
func (r *HistoryMongoRepository) FindByIDs(ctx context.Context, historyIDs []string) ([]models.History, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(historyIDs))
	for _, historyID := range historyIDs {
		objectID, err := primitive.ObjectIDFromHex(historyID)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return []models.History{}, nil
	}

	found, err := r.find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}}, nil)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.History, len(found))
	for _, history := range found {
		byID[history.ID] = history
	}

	ordered := make([]models.History, 0, len(historyIDs))
	for _, historyID := range historyIDs {
		if history, ok := byID[historyID]; ok {
			ordered = append(ordered, history)
		}
	}
	return ordered, nil
}

func (r *HistoryMongoRepository) FindAll(ctx context.Context) ([]models.History, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

func (r *HistoryMongoRepository) Update(ctx context.Context, history *models.History) error {
	objectID, err := primitive.ObjectIDFromHex(history.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"title":       history.Title,
		"media":       history.Media,
		"description": history.Description,
		"updatedAt":   history.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrHistoryNotExist(nil, history.ID)
	}
	return nil
}

// DeleteAndUnlink removes the history and pulls it from every account in one
// multi-document transaction. MongoDB must run as a replica set.
func (r *HistoryMongoRepository) DeleteAndUnlink(ctx context.Context, historyID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(historyID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	session, err := r.Client.StartSession()
	if err != nil {
		return false, exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		deleteResult, err := r.Collection.DeleteOne(sc, bson.M{"_id": objectID})
		if err != nil {
			return false, err
		}
		if deleteResult.DeletedCount == 0 {
			return false, nil
		}

		_, err = r.Accounts.UpdateMany(sc,
			bson.M{"patient.history": historyID},
			bson.M{
				"$pull": bson.M{"patient.history": historyID},
				"$set":  bson.M{"updatedAt": time.Now().UTC()},
			},
		)
		if err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		return false, exceptions.ErrMongoDBTransaction(err)
	}

	deleted, _ := result.(bool)
	return deleted, nil
}

func (r *HistoryMongoRepository) find(ctx context.Context, filter bson.M, findOptions *options.FindOptions) ([]models.History, error) {
	if findOptions == nil {
		findOptions = options.Find()
	}
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	histories := []models.History{}
	if err := cursor.All(ctx, &histories); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return histories, nil
}
