package services

import (
	"context"
	"testing"
	"time"

	"leasehub-admin/internal/models"
	"leasehub-admin/pkg/cache"
)

func captureInvalidations(t *testing.T) *[]string {
	t.Helper()
	orig := invalidateSnapshot
	keys := &[]string{}
	invalidateSnapshot = func(ctx context.Context, key string) {
		*keys = append(*keys, key)
	}
	t.Cleanup(func() { invalidateSnapshot = orig })
	return keys
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

func TestDeleteProperty_InvalidatesSubscriptionsSnapshot(t *testing.T) {
	keys := captureInvalidations(t)
	service, properties, _ := newPropertyFixture(t)

	property := properties.add(models.Property{Title: "Cabin"})

	if err := service.DeleteProperty(context.Background(), property.ID.Hex()); err != nil {
		t.Fatalf("DeleteProperty failed: %v", err)
	}
	if !containsKey(*keys, cache.SubscriptionsSnapshotKey) {
		t.Error("property delete did not invalidate the subscriptions snapshot")
	}
}

func TestApplyTransition_InvalidatesSubscriptionsSnapshot(t *testing.T) {
	keys := captureInvalidations(t)
	properties := newFakePropertyRepository()
	subscriptions := newFakeSubscriptionRepository()
	lifecycle := NewSubscriptionLifecycle(subscriptions, properties)

	property := properties.add(models.Property{Title: "Cabin"})
	subscription := subscriptions.add(models.Subscription{
		Property: property.ID,
		Status:   models.StatusActive,
	})

	if err := lifecycle.ApplyTransition(context.Background(), subscription.ID, models.StatusCanceled, time.Time{}); err != nil {
		t.Fatalf("ApplyTransition failed: %v", err)
	}
	if !containsKey(*keys, cache.SubscriptionsSnapshotKey) {
		t.Error("status transition did not invalidate the subscriptions snapshot")
	}
}

func TestDeleteUser_InvalidatesBothSnapshots(t *testing.T) {
	keys := captureInvalidations(t)
	properties := newFakePropertyRepository()
	users := newFakeUserRepository()
	cascade := NewCascadeManager(properties, newFakeSubscriptionRepository())
	service := NewUserService(users, properties, cascade, time.Minute)

	user := users.add(models.User{Email: "payer@example.com"})

	if err := service.DeleteUser(context.Background(), user.ID.Hex()); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if !containsKey(*keys, cache.UsersSnapshotKey) {
		t.Error("user delete did not invalidate the users snapshot")
	}
	if !containsKey(*keys, cache.SubscriptionsSnapshotKey) {
		t.Error("user delete did not invalidate the subscriptions snapshot with its joined payer names")
	}
}
