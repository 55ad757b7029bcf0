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

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db database.Database) UserRepository {
	return &userRepository{
		collection: db.GetCollection("users"),
	}
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	metrics.MongoOperationDuration.WithLabelValues("find", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "users").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "users").Inc()
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrUserNotFound
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "users").Inc()
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "users").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	start = time.Now()
	err = cursor.All(ctx, &users)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "users").Inc()
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", "users").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", "users").Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
