package database

import (
	"context"
	"time"

	"leasehub-admin/pkg/logger"
	"leasehub-admin/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// create indexes for the properties collection. The 2dsphere index on
// locationGeo is not queried by any admin listing yet, but it is
// declared here so near-me queries stay correct once they land.
func CreatePropertyIndexes(db *mongo.Database) error {
	collection := db.Collection("properties")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "locationGeo", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{
				{Key: "title", Value: "text"},
				{Key: "description", Value: "text"},
				{Key: "address.city", Value: "text"},
				{Key: "address.state", Value: "text"},
				{Key: "type", Value: "text"},
			},
		},
		{
			Keys: bson.D{{Key: "owner", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "properties").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "properties").Inc()
		logger.GlobalLogger.Errorf("Failed to create property indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("Property indexes created successfully.")
	return nil
}

// create indexes for the users collection.
func CreateUserIndexes(db *mongo.Database) error {
	collection := db.Collection("users")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "email", Value: "text"},
				{Key: "firstname", Value: "text"},
				{Key: "lastname", Value: "text"},
			},
		},
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "users").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "users").Inc()
		logger.GlobalLogger.Errorf("Failed to create user indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("User indexes created successfully.")
	return nil
}

// create indexes for the subscriptions collection.
func CreateSubscriptionIndexes(db *mongo.Database) error {
	collection := db.Collection("subscriptions")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "property", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "user", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	})
	duration := time.Since(start).Seconds()
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", "subscriptions").Observe(duration)
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", "subscriptions").Inc()
		logger.GlobalLogger.Errorf("Failed to create subscription indexes: %v", err)
		return err
	}

	logger.GlobalLogger.Println("Subscription indexes created successfully.")
	return nil
}
