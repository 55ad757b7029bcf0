package services

import (
	"context"

	"leasehub-admin/internal/models"
	"leasehub-admin/internal/repositories"
	"leasehub-admin/pkg/logger"
	"leasehub-admin/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CascadeManager keeps the three collections consistent across deletes.
// Cascades are not transactional with the primary delete: a crash
// between the two steps leaves a partially-applied cascade, so every
// cascade here is idempotent and safe to re-run.
type CascadeManager struct {
	properties    repositories.PropertyRepository
	subscriptions repositories.SubscriptionRepository
}

func NewCascadeManager(properties repositories.PropertyRepository, subscriptions repositories.SubscriptionRepository) *CascadeManager {
	return &CascadeManager{
		properties:    properties,
		subscriptions: subscriptions,
	}
}

// OnUserDeleted orphans every listing the user owned: owner is nulled,
// the listing stays up. Re-running on already-nulled owners matches
// nothing and is a no-op. Subscriptions where the user was the payer
// are deliberately left alone — the payment provider still knows the
// payer, and canceling someone's boost because an admin removed the
// payer's account would be wrong.
func (m *CascadeManager) OnUserDeleted(ctx context.Context, userID primitive.ObjectID) error {
	orphaned, err := m.properties.NullOwner(ctx, userID)
	if err != nil {
		return err
	}
	if orphaned > 0 {
		logger.GlobalLogger.Printf("orphaned %d properties after deleting user %s", orphaned, userID.Hex())
	}
	return nil
}

// OnPropertyDeleted cancels every non-canceled subscription bound to
// the property, so no subscription keeps billing for a listing that no
// longer exists. Already-canceled subscriptions are skipped, which
// makes a re-run a no-op. The subscription records are kept for
// history.
func (m *CascadeManager) OnPropertyDeleted(ctx context.Context, propertyID primitive.ObjectID) error {
	subscriptions, err := m.subscriptions.FindByProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	for _, subscription := range subscriptions {
		if subscription.Status == models.StatusCanceled {
			continue
		}
		if err := m.subscriptions.UpdateStatus(ctx, subscription.ID, models.StatusCanceled, subscription.BoostExpiration); err != nil {
			return err
		}
		logger.GlobalLogger.Printf("canceled subscription %s bound to deleted property %s",
			subscription.ID.Hex(), propertyID.Hex())
	}
	return nil
}

// OnSubscriptionDeleted clears the boost fields of the property the
// subscription was funding. The clear matches nothing when the property
// is gone or its boost is already bound to another subscription.
func (m *CascadeManager) OnSubscriptionDeleted(ctx context.Context, subscription *models.Subscription) error {
	_, err := m.properties.ClearBoost(ctx, subscription.Property, subscription.ID)
	return err
}

// reportCascadeFailure applies the delete-completes policy: the cascade
// failure is logged and counted, the primary delete still succeeds.
func reportCascadeFailure(cascade string, err error) {
	metrics.CascadeFailuresTotal.WithLabelValues(cascade).Inc()
	logger.GlobalLogger.Errorf("cascade %s failed (primary delete already applied, linkage may dangle): %v", cascade, err)
}
