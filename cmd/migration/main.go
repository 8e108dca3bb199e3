package main

import (
	"carelink-service/internal/app/config"
	"carelink-service/internal/app/drivers/database"
	"carelink-service/internal/app/drivers/logger"
	"carelink-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

var migrations = []collectionIndexes{
	{
		collection: constvars.MongoCollectionAccounts,
		models: []mongo.IndexModel{
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
			{Keys: bson.D{{Key: "role", Value: 1}}, Options: options.Index().SetName("role")},
			{Keys: bson.D{{Key: "patient.history", Value: 1}}, Options: options.Index().SetName("patient_history")},
		},
	},
	{
		collection: constvars.MongoCollectionInquiries,
		models: []mongo.IndexModel{
			{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
		},
	},
	{
		collection: constvars.MongoCollectionHistories,
		models: []mongo.IndexModel{
			{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
		},
	},
	{
		collection: constvars.MongoCollectionReservations,
		models: []mongo.IndexModel{
			{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetName("date")},
		},
	},
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	client := database.NewMongoDB(driverConfig)
	defer func() {
		err := client.Disconnect(context.Background())
		if err != nil {
			log.Errorf("Error closing mongo connection: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db := client.Database(driverConfig.MongoDB.DbName)
	applied := 0
	for _, migration := range migrations {
		names, err := db.Collection(migration.collection).Indexes().CreateMany(ctx, migration.models)
		if err != nil {
			log.WithField("collection", migration.collection).Fatalf("Error creating indexes: %v", err)
		}
		log.WithFields(logrus.Fields{
			"collection": migration.collection,
			"indexes":    names,
		}).Info("Indexes ensured")
		applied += len(names)
	}

	log.Infof("Applied %d indexes!", applied)
}
