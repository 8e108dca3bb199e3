package inquiries

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

type InquiryMongoRepository struct {
	Collection *mongo.Collection
}

func NewInquiryMongoRepository(db *mongo.Client, dbName string) contracts.InquiryRepository {
	return &InquiryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionInquiries),
	}
}

func (r *InquiryMongoRepository) Create(ctx context.Context, inquiry *models.Inquiry) (string, error) {
	if inquiry.Comments == nil {
		inquiry.Comments = []models.Comment{}
	}
	result, err := r.Collection.InsertOne(ctx, inquiry)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *InquiryMongoRepository) FindByID(ctx context.Context, inquiryID string) (*models.Inquiry, error) {
	objectID, err := primitive.ObjectIDFromHex(inquiryID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var inquiry models.Inquiry
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&inquiry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &inquiry, nil
}

func (r *InquiryMongoRepository) FindAll(ctx context.Context) ([]models.Inquiry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return inquiries, nil
}

// UpdateText replaces the inquiry text only. Comments are never rewritten.
func (r *InquiryMongoRepository) UpdateText(ctx context.Context, inquiryID, text string) error {
	return r.updateByID(ctx, inquiryID, bson.M{
		"$set": bson.M{"inquiry": text, "updatedAt": time.Now().UTC()},
	})
}

func (r *InquiryMongoRepository) Delete(ctx context.Context, inquiryID string) error {
	objectID, err := primitive.ObjectIDFromHex(inquiryID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *InquiryMongoRepository) PushComment(ctx context.Context, inquiryID string, comment *models.Comment) error {
	return r.updateByID(ctx, inquiryID, bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updatedAt": comment.CreatedAt},
	})
}

func (r *InquiryMongoRepository) updateByID(ctx context.Context, inquiryID string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(inquiryID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrInquiryNotExist(nil, inquiryID)
	}
	return nil
}
