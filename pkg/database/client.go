package database

import (
	"context"
	"fmt"
	"time"

	"leasehub-admin/pkg/config"
	"leasehub-admin/pkg/logger"
	"leasehub-admin/pkg/metrics"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	connectTimeout    = 10 * time.Second
	disconnectTimeout = 5 * time.Second
	// Admin traffic is low-volume; a small pool keeps connections off
	// the shared cluster.
	maxPoolSize = 20
)

var MongoClient *mongo.Client
var DB *mongo.Database

// initialize the MongoDB client and database connection.
func InitDB(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.Database.URI).
		SetAppName("leasehub-admin").
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetMaxPoolSize(maxPoolSize)

	start := time.Now()
	client, err := mongo.Connect(ctx, clientOptions)
	metrics.MongoOperationDuration.WithLabelValues("connect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("connect", "").Inc()
		return fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	start = time.Now()
	err = client.Ping(ctx, readpref.Primary())
	metrics.MongoOperationDuration.WithLabelValues("ping", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("ping", "").Inc()
		client.Disconnect(ctx)
		return fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	MongoClient = client
	DB = client.Database(cfg.Database.DBName)

	logger.GlobalLogger.Printf("connected to MongoDB database %q", cfg.Database.DBName)
	return nil
}

// close the MongoDB client connection.
func CloseDB() {
	if MongoClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()

	start := time.Now()
	err := MongoClient.Disconnect(ctx)
	metrics.MongoOperationDuration.WithLabelValues("disconnect", "").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("disconnect", "").Inc()
		logger.GlobalLogger.Errorf("error closing MongoDB: %v", err)
		return
	}
	logger.GlobalLogger.Println("MongoDB connection closed")
}
