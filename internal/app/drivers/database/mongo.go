package database

import (
	"carelink-service/internal/app/config"
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewMongoDB connects and pings. Multi-document transactions used by
// history deletion require the server to run as a replica set.
func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(BuildMongoURI(driverConfig.MongoDB))
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

func BuildMongoURI(cfg config.MongoDB) string {
	var connectionString string
	if cfg.Username == "" {
		connectionString = fmt.Sprintf("mongodb://%s:%s", cfg.Host, cfg.Port)
	} else {
		connectionString = fmt.Sprintf(
			"mongodb://%s:%s@%s:%s",
			cfg.Username,
			cfg.Password,
			cfg.Host,
			cfg.Port,
		)
	}
	if cfg.ReplicaSet != "" {
		connectionString = fmt.Sprintf("%s/?replicaSet=%s", connectionString, cfg.ReplicaSet)
	}
	return connectionString
}
