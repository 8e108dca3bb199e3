package accounts

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

type AccountMongoRepository struct {
	Collection *mongo.Collection
}

func NewAccountMongoRepository(db *mongo.Client, dbName string) contracts.AccountRepository {
	return &AccountMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAccounts),
	}
}

func (r *AccountMongoRepository) Create(ctx context.Context, account *models.Account) (string, error) {
	account.InitCollections()
	result, err := r.Collection.InsertOne(ctx, account)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrEmailAlreadyExist(err, account.Email)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AccountMongoRepository) FindByID(ctx context.Context, accountID string) (*models.Account, error) {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *AccountMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Account, error) {
	var account models.Account
	err := r.Collection.FindOne(ctx, filter).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &account, nil
}

func (r *AccountMongoRepository) FindByRole(ctx context.Context, role models.Role) ([]models.Account, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"role": role}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	accounts := []models.Account{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return accounts, nil
}

func (r *AccountMongoRepository) FindNamesByIDs(ctx context.Context, accountIDs []string) (map[string]string, error) {
	names := make(map[string]string, len(accountIDs))
	objectIDs := toObjectIDs(accountIDs)
	if len(objectIDs) == 0 {
		return names, nil
	}

	findOptions := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var row struct {
			ID   string `bson:"_id"`
			Name string `bson:"name"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		names[row.ID] = row.Name
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return names, nil
}

func (r *AccountMongoRepository) UpdateProfile(ctx context.Context, account *models.Account) error {
	return r.updateByID(ctx, account.ID, bson.M{"$set": account.ConvertProfileToBsonM()})
}

func (r *AccountMongoRepository) Delete(ctx context.Context, accountID string) error {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *AccountMongoRepository) PushHistory(ctx context.Context, patientID, historyID string) error {
	return r.updateByID(ctx, patientID, bson.M{
		"$push": bson.M{"patient.history": historyID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *AccountMongoRepository) PushInquiry(ctx context.Context, patientID, inquiryID string) error {
	return r.updateByID(ctx, patientID, bson.M{
		"$push": bson.M{"patient.inquiries": inquiryID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *AccountMongoRepository) PullInquiry(ctx context.Context, patientID, inquiryID string) error {
	return r.updateByID(ctx, patientID, bson.M{
		"$pull": bson.M{"patient.inquiries": inquiryID},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
}

// AddAvailableDates adds dates not already present; the stored set keeps
// insertion order.
func (r *AccountMongoRepository) AddAvailableDates(ctx context.Context, practitionerID string, dates []time.Time) error {
	return r.updateByID(ctx, practitionerID, bson.M{
		"$addToSet": bson.M{"practitioner.availableDays": bson.M{"$each": dates}},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (r *AccountMongoRepository) PullAvailableDate(ctx context.Context, practitionerID string, date time.Time) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(practitionerID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "practitioner.availableDays": date}
	update := bson.M{
		"$pull": bson.M{"practitioner.availableDays": date},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount > 0, nil
}

// UpsertRating sets the value of the patient's entry in place or pushes a new
// entry guarded against a concurrent push by the same patient.
func (r *AccountMongoRepository) UpsertRating(ctx context.Context, practitionerID, patientID string, value float64) error {
	objectID, err := primitive.ObjectIDFromHex(practitionerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	now := time.Now().UTC()

	for attempt := 0; attempt < 2; attempt++ {
		result, err := r.Collection.UpdateOne(ctx,
			bson.M{"_id": objectID, "practitioner.ratings.patientId": patientID},
			bson.M{"$set": bson.M{"practitioner.ratings.$.value": value, "updatedAt": now}},
		)
		if err != nil {
			return exceptions.ErrMongoDBUpdateDocument(err)
		}
		if result.MatchedCount > 0 {
			return nil
		}

		result, err = r.Collection.UpdateOne(ctx,
			bson.M{"_id": objectID, "practitioner.ratings.patientId": bson.M{"$ne": patientID}},
			bson.M{
				"$push": bson.M{"practitioner.ratings": models.Rating{PatientID: patientID, Value: value}},
				"$set":  bson.M{"updatedAt": now},
			},
		)
		if err != nil {
			return exceptions.ErrMongoDBUpdateDocument(err)
		}
		if result.MatchedCount > 0 {
			return nil
		}
	}
	return exceptions.ErrPractitionerNotExist(nil, practitionerID)
}

func (r *AccountMongoRepository) updateByID(ctx context.Context, accountID string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(accountID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func toObjectIDs(ids []string) []primitive.ObjectID {
	seen := make(map[string]struct{}, len(ids))
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	return objectIDs
}
