package services

import (
	"context"
	"time"

	apperrors "leasehub-admin/internal/errors"
	"leasehub-admin/internal/models"
	"leasehub-admin/internal/repositories"
	"leasehub-admin/pkg/cache"
	"leasehub-admin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscriptionService serves the boosts table. Like users, the listing
// is a full snapshot: each subscription carries the joined payer name
// and property title so the table never has to chase references.
type SubscriptionService struct {
	subscriptions repositories.SubscriptionRepository
	users         repositories.UserRepository
	properties    repositories.PropertyRepository
	cascade       *CascadeManager
	snapshotTTL   time.Duration
}

func NewSubscriptionService(subscriptions repositories.SubscriptionRepository, users repositories.UserRepository, properties repositories.PropertyRepository, cascade *CascadeManager, snapshotTTL time.Duration) *SubscriptionService {
	return &SubscriptionService{
		subscriptions: subscriptions,
		users:         users,
		properties:    properties,
		cascade:       cascade,
		snapshotTTL:   snapshotTTL,
	}
}

func subscriptionSearchText(s models.SubscriptionWithRefs) []string {
	return []string{s.CustomerFirstname + " " + s.CustomerLastname, s.PropertyTitle}
}

// ListSubscriptions returns the full snapshot with joined fields.
func (s *SubscriptionService) ListSubscriptions(ctx context.Context) ([]models.SubscriptionWithRefs, error) {
	return s.loadSnapshot(ctx)
}

// SearchSubscriptions filters the snapshot by customer name or
// property title and slices the requested window.
func (s *SubscriptionService) SearchSubscriptions(ctx context.Context, term string, page, limit int) ([]models.SubscriptionWithRefs, int, int, error) {
	subscriptions, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	window, total, totalPages := NewSnapshot(subscriptions, subscriptionSearchText).Page(term, page, limit)
	return window, total, totalPages, nil
}

func (s *SubscriptionService) loadSnapshot(ctx context.Context) ([]models.SubscriptionWithRefs, error) {
	if cache.RedisClient != nil {
		var cached []models.SubscriptionWithRefs
		hit, err := cache.GetSnapshot(ctx, cache.SubscriptionsSnapshotKey, &cached)
		if err != nil {
			logger.GlobalLogger.Errorf("subscriptions snapshot read failed, falling back to store: %v", err)
		} else if hit {
			return cached, nil
		}
	}

	subscriptions, err := s.subscriptions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	withRefs, err := s.joinRefs(ctx, subscriptions)
	if err != nil {
		return nil, err
	}

	if cache.RedisClient != nil {
		if err := cache.SetSnapshot(ctx, cache.SubscriptionsSnapshotKey, withRefs, s.snapshotTTL); err != nil {
			logger.GlobalLogger.Errorf("failed to cache subscriptions snapshot: %v", err)
		}
	}
	return withRefs, nil
}

// joinRefs resolves payer names and property titles in two keyed
// lookups. Dangling references (payer or property deleted) fall back
// to "N/A" instead of failing the listing.
func (s *SubscriptionService) joinRefs(ctx context.Context, subscriptions []models.Subscription) ([]models.SubscriptionWithRefs, error) {
	userIDs := map[primitive.ObjectID]struct{}{}
	propertyIDs := map[primitive.ObjectID]struct{}{}
	for _, subscription := range subscriptions {
		userIDs[subscription.User] = struct{}{}
		propertyIDs[subscription.Property] = struct{}{}
	}

	users, err := s.users.FindByIDs(ctx, keys(userIDs))
	if err != nil {
		return nil, err
	}
	properties, err := s.properties.FindByIDs(ctx, keys(propertyIDs))
	if err != nil {
		return nil, err
	}

	usersByID := make(map[primitive.ObjectID]models.User, len(users))
	for _, user := range users {
		usersByID[user.ID] = user
	}
	propertiesByID := make(map[primitive.ObjectID]models.Property, len(properties))
	for _, property := range properties {
		propertiesByID[property.ID] = property
	}

	withRefs := make([]models.SubscriptionWithRefs, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		item := models.SubscriptionWithRefs{
			Subscription:      subscription,
			CustomerFirstname: "N/A",
			PropertyTitle:     "N/A",
		}
		if user, ok := usersByID[subscription.User]; ok {
			item.CustomerFirstname = user.Firstname
			item.CustomerLastname = user.Lastname
		}
		if property, ok := propertiesByID[subscription.Property]; ok {
			item.PropertyTitle = property.Title
		}
		withRefs = append(withRefs, item)
	}
	return withRefs, nil
}

func keys(set map[primitive.ObjectID]struct{}) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

// DeleteSubscription removes the record and clears the boost it was
// funding, if the property still points at it.
func (s *SubscriptionService) DeleteSubscription(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrSubscriptionNotFound
	}

	subscription, err := s.subscriptions.FindByID(ctx, objectID)
	if err != nil {
		return err
	}

	if err := s.subscriptions.Delete(ctx, objectID); err != nil {
		return err
	}

	if err := s.cascade.OnSubscriptionDeleted(ctx, subscription); err != nil {
		reportCascadeFailure("subscription_delete", err)
	}

	invalidateSnapshot(ctx, cache.SubscriptionsSnapshotKey)
	return nil
}
