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

type propertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db database.Database) PropertyRepository {
	return &propertyRepository{
		collection: db.GetCollection("properties"),
	}
}

func (r *propertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	start := time.Now()
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrPropertyNotFound
		}
		metrics.MongoErrorsTotal.WithLabelValues("find_one", "properties").Inc()
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	metrics.MongoOperationDuration.WithLabelValues("find", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "properties").Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) Search(ctx context.Context, search string, skip, limit int) ([]models.Property, int64, error) {
	filter := bson.M{}
	if search != "" {
		filter["$text"] = bson.M{"$search": search}
	}

	// total is recomputed against the live collection on every request,
	// so a delete between two listing calls shows up on the next one.
	start := time.Now()
	total, err := r.collection.CountDocuments(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("count_documents", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", "properties").Inc()
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	start = time.Now()
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", "properties").Inc()
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	start = time.Now()
	err = cursor.All(ctx, &properties)
	metrics.MongoOperationDuration.WithLabelValues("cursor_all", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", "properties").Inc()
		return nil, 0, err
	}
	return properties, total, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) error {
	property.ID = primitive.NewObjectID()
	now := time.Now().UTC()
	property.CreatedAt = now
	property.UpdatedAt = now

	start := time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	metrics.MongoOperationDuration.WithLabelValues("insert", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", "properties").Inc()
		return err
	}
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, property *models.Property) error {
	property.UpdatedAt = time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"title":             property.Title,
			"description":       property.Description,
			"type":              property.Type,
			"audience":          property.Audience,
			"location":          property.Location,
			"address":           property.Address,
			"locationGeo":       property.LocationGeo,
			"bedrooms":          property.Bedrooms,
			"beds":              property.Beds,
			"bathrooms":         property.Bathrooms,
			"balcony":           property.Balcony,
			"squareFeet":        property.SquareFeet,
			"amenities":         property.Amenities,
			"petsAllowed":       property.PetsAllowed,
			"photos":            property.Photos,
			"featuredImage":     property.FeaturedImage,
			"price":             property.Price,
			"currency":          property.Currency,
			"contactDetails":    property.ContactDetails,
			"isActive":          property.IsActive,
			"isFeatured":        property.IsFeatured,
			"availabilityDate":  property.AvailabilityDate,
			"leaseTerms":        property.LeaseTerms,
			"neighborhoodInfo":  property.NeighborhoodInfo,
			"nearbyAttractions": property.NearbyAttractions,
			"updatedAt":         property.UpdatedAt,
		},
	}
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": property.ID}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", "properties").Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", "properties").Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrPropertyNotFound
	}
	return nil
}

func (r *propertyRepository) NullOwner(ctx context.Context, owner primitive.ObjectID) (int64, error) {
	start := time.Now()
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"owner": owner},
		bson.M{"$set": bson.M{"owner": nil, "updatedAt": time.Now().UTC()}},
	)
	metrics.MongoOperationDuration.WithLabelValues("update_many", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_many", "properties").Inc()
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (r *propertyRepository) SetBoost(ctx context.Context, propertyID, subscriptionID primitive.ObjectID, expiration time.Time) (bool, error) {
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": propertyID},
		bson.M{"$set": bson.M{
			"boostSubscription": subscriptionID,
			"boostExpiration":   expiration,
			"updatedAt":         time.Now().UTC(),
		}},
	)
	metrics.MongoOperationDuration.WithLabelValues("update_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", "properties").Inc()
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *propertyRepository) ClearBoost(ctx context.Context, propertyID, subscriptionID primitive.ObjectID) (bool, error) {
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": propertyID, "boostSubscription": subscriptionID},
		bson.M{
			"$unset": bson.M{"boostExpiration": "", "boostSubscription": ""},
			"$set":   bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	metrics.MongoOperationDuration.WithLabelValues("update_one", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", "properties").Inc()
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (r *propertyRepository) ClearExpiredBoosts(ctx context.Context, now time.Time) (int64, error) {
	start := time.Now()
	result, err := r.collection.UpdateMany(ctx,
		bson.M{"boostExpiration": bson.M{"$lte": now}},
		bson.M{
			"$unset": bson.M{"boostExpiration": "", "boostSubscription": ""},
			"$set":   bson.M{"updatedAt": time.Now().UTC()},
		},
	)
	metrics.MongoOperationDuration.WithLabelValues("update_many", "properties").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_many", "properties").Inc()
		return 0, err
	}
	return result.ModifiedCount, nil
}
