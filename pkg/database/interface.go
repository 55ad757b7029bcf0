package database

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// interface for MongoDB operations.
type Database interface {
	GetCollection(name string) *mongo.Collection
	CreateIndexes(ctx context.Context) error
}

// Database interface using a MongoDB database.
type MongoDatabase struct {
	db *mongo.Database
}

// create a new MongoDatabase instance.
func NewMongoDatabase(db *mongo.Database) *MongoDatabase {
	return &MongoDatabase{db: db}
}

// return a MongoDB collection by name.
func (m *MongoDatabase) GetCollection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// create indexes for all admin collections.
func (m *MongoDatabase) CreateIndexes(ctx context.Context) error {
	if err := CreatePropertyIndexes(m.db); err != nil {
		return err
	}
	if err := CreateUserIndexes(m.db); err != nil {
		return err
	}
	return CreateSubscriptionIndexes(m.db)
}
