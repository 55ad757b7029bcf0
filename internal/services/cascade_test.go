package services

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "leasehub-admin/internal/errors"
	"leasehub-admin/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOnUserDeleted_OrphansListings(t *testing.T) {
	properties := newFakePropertyRepository()
	subscriptions := newFakeSubscriptionRepository()
	users := newFakeUserRepository()
	cascade := NewCascadeManager(properties, subscriptions)
	service := NewUserService(users, properties, cascade, time.Minute)

	owner := users.add(models.User{Email: "owner@example.com"})
	other := users.add(models.User{Email: "other@example.com"})
	ownerID := owner.ID
	otherID := other.ID
	owned1 := properties.add(models.Property{Title: "One", Owner: &ownerID})
	owned2 := properties.add(models.Property{Title: "Two", Owner: &ownerID})
	kept := properties.add(models.Property{Title: "Kept", Owner: &otherID})

	if err := service.DeleteUser(context.Background(), owner.ID.Hex()); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if properties.byID[owned1.ID].Owner != nil || properties.byID[owned2.ID].Owner != nil {
		t.Error("owned properties were not orphaned")
	}
	if properties.byID[kept.ID].Owner == nil {
		t.Error("another user's property was orphaned")
	}

	// Repeated delete of the same user id is NotFound.
	err := service.DeleteUser(context.Background(), owner.ID.Hex())
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("second delete: expected ErrUserNotFound, got %v", err)
	}
}

func TestOnUserDeleted_Idempotent(t *testing.T) {
	properties := newFakePropertyRepository()
	cascade := NewCascadeManager(properties, newFakeSubscriptionRepository())

	userID := primitive.NewObjectID()
	owned := properties.add(models.Property{Title: "One", Owner: &userID})

	// Re-running the cascade after a crash between delete and cascade
	// must be safe.
	for i := 0; i < 2; i++ {
		if err := cascade.OnUserDeleted(context.Background(), userID); err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
	}
	if properties.byID[owned.ID].Owner != nil {
		t.Error("property owner not nulled")
	}
}

func TestOnUserDeleted_PayerSubscriptionsUntouched(t *testing.T) {
	properties := newFakePropertyRepository()
	subscriptions := newFakeSubscriptionRepository()
	users := newFakeUserRepository()
	cascade := NewCascadeManager(properties, subscriptions)
	service := NewUserService(users, properties, cascade, time.Minute)

	payer := users.add(models.User{Email: "payer@example.com"})
	subscription := subscriptions.add(models.Subscription{
		User:     payer.ID,
		Property: primitive.NewObjectID(),
		Status:   models.StatusActive,
	})

	if err := service.DeleteUser(context.Background(), payer.ID.Hex()); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if subscriptions.byID[subscription.ID].Status != models.StatusActive {
		t.Error("payer deletion must not touch their subscriptions")
	}
}

func TestDeleteProperty_CancelsBoundSubscription(t *testing.T) {
	properties := newFakePropertyRepository()
	subscriptions := newFakeSubscriptionRepository()
	users := newFakeUserRepository()
	cascade := NewCascadeManager(properties, subscriptions)
	service := NewPropertyService(properties, users, nil, cascade)

	property := properties.add(models.Property{Title: "Doomed"})
	active := subscriptions.add(models.Subscription{
		Property: property.ID,
		Status:   models.StatusActive,
	})
	alreadyCanceled := subscriptions.add(models.Subscription{
		Property: property.ID,
		Status:   models.StatusCanceled,
	})
	unrelated := subscriptions.add(models.Subscription{
		Property: primitive.NewObjectID(),
		Status:   models.StatusActive,
	})

	if err := service.DeleteProperty(context.Background(), property.ID.Hex()); err != nil {
		t.Fatalf("DeleteProperty failed: %v", err)
	}

	if _, ok := properties.byID[property.ID]; ok {
		t.Fatal("property was not deleted")
	}
	if subscriptions.byID[active.ID].Status != models.StatusCanceled {
		t.Error("bound subscription was not cascade-canceled")
	}
	if _, ok := subscriptions.byID[alreadyCanceled.ID]; !ok {
		t.Error("canceled subscription record must be retained")
	}
	if subscriptions.byID[unrelated.ID].Status != models.StatusActive {
		t.Error("unrelated subscription was touched")
	}

	err := service.DeleteProperty(context.Background(), property.ID.Hex())
	if !errors.Is(err, apperrors.ErrPropertyNotFound) {
		t.Fatalf("second delete: expected ErrPropertyNotFound, got %v", err)
	}
}

// The delete-completes policy: a failing cascade is logged, the primary
// delete still succeeds.
func TestDeleteProperty_CascadeFailureStillDeletes(t *testing.T) {
	properties := newFakePropertyRepository()
	subscriptions := newFakeSubscriptionRepository()
	subscriptions.failUpdate = true
	cascade := NewCascadeManager(properties, subscriptions)
	service := NewPropertyService(properties, newFakeUserRepository(), nil, cascade)

	property := properties.add(models.Property{Title: "Doomed"})
	subscriptions.add(models.Subscription{Property: property.ID, Status: models.StatusActive})

	if err := service.DeleteProperty(context.Background(), property.ID.Hex()); err != nil {
		t.Fatalf("delete must succeed despite cascade failure, got %v", err)
	}
	if _, ok := properties.byID[property.ID]; ok {
		t.Fatal("property was not deleted")
	}
}

func TestDeleteUser_CascadeFailureStillDeletes(t *testing.T) {
	properties := newFakePropertyRepository()
	properties.failNullOwner = true
	users := newFakeUserRepository()
	cascade := NewCascadeManager(properties, newFakeSubscriptionRepository())
	service := NewUserService(users, properties, cascade, time.Minute)

	user := users.add(models.User{Email: "u@example.com"})

	if err := service.DeleteUser(context.Background(), user.ID.Hex()); err != nil {
		t.Fatalf("delete must succeed despite cascade failure, got %v", err)
	}
	if _, ok := users.byID[user.ID]; ok {
		t.Fatal("user was not deleted")
	}
}

func TestDeleteSubscription_ClearsBoost(t *testing.T) {
	properties := newFakePropertyRepository()
	subscriptions := newFakeSubscriptionRepository()
	users := newFakeUserRepository()
	cascade := NewCascadeManager(properties, subscriptions)
	service := NewSubscriptionService(subscriptions, users, properties, cascade, time.Minute)

	expiration := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	property := properties.add(models.Property{Title: "Boosted"})
	subscription := subscriptions.add(models.Subscription{
		Property:        property.ID,
		Status:          models.StatusActive,
		BoostExpiration: expiration,
	})
	properties.SetBoost(context.Background(), property.ID, subscription.ID, expiration)

	if err := service.DeleteSubscription(context.Background(), subscription.ID.Hex()); err != nil {
		t.Fatalf("DeleteSubscription failed: %v", err)
	}

	if _, ok := subscriptions.byID[subscription.ID]; ok {
		t.Fatal("subscription was not deleted")
	}
	if properties.byID[property.ID].BoostExpiration != nil {
		t.Error("boost fields were not cleared on the funded property")
	}

	err := service.DeleteSubscription(context.Background(), subscription.ID.Hex())
	if !errors.Is(err, apperrors.ErrSubscriptionNotFound) {
		t.Fatalf("second delete: expected ErrSubscriptionNotFound, got %v", err)
	}
}
