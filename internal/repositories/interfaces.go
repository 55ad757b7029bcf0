package repositories

import (
	"context"
	"time"

	"leasehub-admin/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Property, error)
	// Search returns the [skip, skip+limit) window of properties matching
	// the free-text search (all properties when search is empty), newest
	// first, plus the total match count independent of the window.
	Search(ctx context.Context, search string, skip, limit int) ([]models.Property, int64, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// NullOwner orphans every listing owned by the given user. Safe to
	// re-run; already-orphaned listings are not matched.
	NullOwner(ctx context.Context, owner primitive.ObjectID) (int64, error)
	SetBoost(ctx context.Context, propertyID, subscriptionID primitive.ObjectID, expiration time.Time) (bool, error)
	// ClearBoost removes the boost fields only while the property is
	// still bound to the given subscription, so a stale event for an old
	// subscription cannot wipe a boost a newer one is funding.
	ClearBoost(ctx context.Context, propertyID, subscriptionID primitive.ObjectID) (bool, error)
	ClearExpiredBoosts(ctx context.Context, now time.Time) (int64, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type SubscriptionRepository interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Subscription, error)
	FindAll(ctx context.Context) ([]models.Subscription, error)
	FindByProperty(ctx context.Context, propertyID primitive.ObjectID) ([]models.Subscription, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.SubscriptionStatus, boostExpiration time.Time) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
