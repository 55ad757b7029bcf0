package services

import (
	"context"
	"fmt"
	"time"

	apperrors "leasehub-admin/internal/errors"
	"leasehub-admin/internal/models"
	"leasehub-admin/internal/repositories"
	"leasehub-admin/pkg/cache"
	"leasehub-admin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionLifecycle applies payment-provider driven status
// transitions to a subscription together with their side effect on the
// boosted property. Transitions arrive from the webhook collaborator;
// nothing in this service initiates one.
type SubscriptionLifecycle struct {
	subscriptions repositories.SubscriptionRepository
	properties    repositories.PropertyRepository
}

func NewSubscriptionLifecycle(subscriptions repositories.SubscriptionRepository, properties repositories.PropertyRepository) *SubscriptionLifecycle {
	return &SubscriptionLifecycle{
		subscriptions: subscriptions,
		properties:    properties,
	}
}

// transitionAllowed encodes the status machine:
// active -> canceled | past_due, past_due -> active | unpaid,
// unpaid -> canceled. Re-applying the current status is allowed because
// payment providers redeliver webhooks.
func transitionAllowed(from, to models.SubscriptionStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case models.StatusActive:
		return to == models.StatusCanceled || to == models.StatusPastDue
	case models.StatusPastDue:
		return to == models.StatusActive || to == models.StatusUnpaid
	case models.StatusUnpaid:
		return to == models.StatusCanceled
	default:
		return false
	}
}

// ApplyTransition records the subscription's new status and keeps the
// bound property's boost fields in step. A property that was deleted
// independently makes the property side a no-op; the subscription state
// is still recorded and no error escapes for that reason.
func (l *SubscriptionLifecycle) ApplyTransition(ctx context.Context, subscriptionID primitive.ObjectID, newStatus models.SubscriptionStatus, newBoostExpiration time.Time) error {
	subscription, err := l.subscriptions.FindByID(ctx, subscriptionID)
	if err != nil {
		return err
	}

	if !transitionAllowed(subscription.Status, newStatus) {
		return apperrors.NewValidationError(
			fmt.Sprintf("illegal subscription transition %s -> %s", subscription.Status, newStatus),
			map[string]string{"status": fmt.Sprintf("cannot transition from %s to %s", subscription.Status, newStatus)},
		)
	}

	// Renewal events are the only thing that advances the boost window.
	boostExpiration := subscription.BoostExpiration
	if newStatus == models.StatusActive && !newBoostExpiration.IsZero() {
		boostExpiration = newBoostExpiration
	}

	if err := l.subscriptions.UpdateStatus(ctx, subscriptionID, newStatus, boostExpiration); err != nil {
		return err
	}
	// The boosts listing serves a cached snapshot of these statuses.
	invalidateSnapshot(ctx, cache.SubscriptionsSnapshotKey)

	if newStatus == models.StatusActive {
		matched, err := l.properties.SetBoost(ctx, subscription.Property, subscriptionID, boostExpiration)
		if err != nil {
			logger.GlobalLogger.Errorf("failed to set boost on property %s for subscription %s: %v",
				subscription.Property.Hex(), subscriptionID.Hex(), err)
			return nil
		}
		if !matched {
			logger.GlobalLogger.Warnf("subscription %s activated but property %s no longer exists",
				subscriptionID.Hex(), subscription.Property.Hex())
		}
		return nil
	}

	// Leaving active (or re-confirming a non-active status): the listing
	// loses promoted placement. The clear only matches while the
	// property is still bound to this subscription, so a redelivered
	// event for an old subscription cannot wipe a boost a newer one is
	// funding. The subscription record is kept for history.
	matched, err := l.properties.ClearBoost(ctx, subscription.Property, subscriptionID)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to clear boost on property %s for subscription %s: %v",
			subscription.Property.Hex(), subscriptionID.Hex(), err)
		return nil
	}
	if !matched {
		logger.GlobalLogger.Warnf("subscription %s left active but property %s no longer holds its boost",
			subscriptionID.Hex(), subscription.Property.Hex())
	}
	return nil
}

// ExpireBoosts clears the boost fields of every property whose window
// has elapsed. Exposed for the admin maintenance endpoint.
func (l *SubscriptionLifecycle) ExpireBoosts(ctx context.Context, now time.Time) (int64, error) {
	expired, err := l.properties.ClearExpiredBoosts(ctx, now)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		logger.GlobalLogger.Printf("cleared boost on %d properties with elapsed windows", expired)
	}
	return expired, nil
}
