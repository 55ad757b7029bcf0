package repositories

import (
	"context"
	"time"

	apperrors "leasehub-admin/internal/errors"
	"leasehub-admin/internal/models"
	"leasehub-admin/pkg/database"
	"leasehub-admin/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type subscriptionRepository struct {
	collection *mongo.Collection
}

func NewSubscriptionRepository(db database.Database) SubscriptionRepository {
	return &subscriptionRepository{
		collection: db.GetCollection("subscriptions"),
	}
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error) {
	start := time.Now()
	var subscription models.Subscription
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&subscription)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "subscriptions").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "subscriptions").Inc()
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) FindAll(ctx context.Context) ([]models.Subscription, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "subscriptions").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "subscriptions").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var subscriptions []models.Subscription
	start = time.Now()
	err = cursor.All(ctx, &subscriptions)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "subscriptions").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "subscriptions").Inc()
		return nil, err
	}
	return subscriptions, nil
}

func (r *subscriptionRepository) FindByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Subscription, error) {
	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"property": propertyID})
	metrics.MongoOperationDuration.WithLabelValues("find", "subscriptions").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "subscriptions").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var subscriptions []models.Subscription
	if err := cursor.All(ctx, &subscriptions); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "subscriptions").Inc()
		return nil, err
	}
	return subscriptions, nil
}

func (r *subscriptionRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SubscriptionStatus, boostExpiration time.Time) error {
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":          status,
			"boostExpiration": boostExpiration,
			"updatedAt":       time.Now().UTC(),
		}},
	)
	metrics.MongoOperationDuration.WithLabelValues("update_one", "subscriptions").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", "subscriptions").Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", "subscriptions").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", "subscriptions").Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}
