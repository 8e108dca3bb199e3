package reservations

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

type ReservationMongoRepository struct {
	Collection *mongo.Collection
}

func NewReservationMongoRepository(db *mongo.Client, dbName string) contracts.ReservationRepository {
	return &ReservationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionReservations),
	}
}

func (r *ReservationMongoRepository) Create(ctx context.Context, reservation *models.Reservation) (string, error) {
	result, err := r.Collection.InsertOne(ctx, reservation)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ReservationMongoRepository) FindBetween(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	filter := bson.M{"date": bson.M{"$gte": from.UTC(), "$lt": to.UTC()}}
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	reservations := []models.Reservation{}
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reservations, nil
}
