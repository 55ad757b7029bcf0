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

func newUserFixture(t *testing.T) (*UserService, *fakeUserRepository, *fakePropertyRepository) {
	t.Helper()
	users := newFakeUserRepository()
	properties := newFakePropertyRepository()
	cascade := NewCascadeManager(properties, newFakeSubscriptionRepository())
	return NewUserService(users, properties, cascade, time.Minute), users, properties
}

func TestSearchUsers(t *testing.T) {
	service, users, _ := newUserFixture(t)

	users.add(models.User{Email: "alice@example.com", Firstname: "Alice", Lastname: "Larkin"})
	users.add(models.User{Email: "bob@example.com", Firstname: "Bob", Lastname: "Stone"})
	users.add(models.User{Email: "carol@other.org", Firstname: "Carol", Lastname: "Larkin"})

	window, total, totalPages, err := service.SearchUsers(context.Background(), "larkin", 1, 10)
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if total != 2 || totalPages != 1 || len(window) != 2 {
		t.Errorf("got total=%d totalPages=%d window=%d, expected 2/1/2", total, totalPages, len(window))
	}

	// Empty matches are a valid response.
	window, total, _, err = service.SearchUsers(context.Background(), "nobody", 1, 10)
	if err != nil {
		t.Fatalf("SearchUsers failed: %v", err)
	}
	if total != 0 || len(window) != 0 {
		t.Errorf("expected empty result, got total=%d window=%d", total, len(window))
	}
}

func TestGetUserDetail(t *testing.T) {
	service, users, properties := newUserFixture(t)

	favorite := properties.add(models.Property{Title: "Saved loft"})
	gone := primitive.NewObjectID() // favorite that was deleted
	user := users.add(models.User{
		Email:     "alice@example.com",
		Favorites: []primitive.ObjectID{favorite.ID, gone},
		ReferralEarnings: []models.ReferralEarning{
			{Amount: 500, Date: time.Now()},
			{Amount: 250, Date: time.Now()},
		},
		WithdrawableAmount: 750,
	})

	detail, err := service.GetUserDetail(context.Background(), user.ID.Hex())
	if err != nil {
		t.Fatalf("GetUserDetail failed: %v", err)
	}
	if detail.ReferralCount != 2 {
		t.Errorf("referralCount == %d, expected 2", detail.ReferralCount)
	}
	if detail.SavedProperties != 2 {
		t.Errorf("savedProperties == %d, expected 2", detail.SavedProperties)
	}
	if len(detail.FavoriteProperties) != 1 || detail.FavoriteProperties[0].Title != "Saved loft" {
		t.Errorf("favorites populate == %+v, expected the surviving property", detail.FavoriteProperties)
	}
	if detail.WithdrawableAmount != 750 {
		t.Errorf("withdrawableAmount == %d, expected the stored aggregate", detail.WithdrawableAmount)
	}
}

func TestGetUserDetail_NotFound(t *testing.T) {
	service, _, _ := newUserFixture(t)

	_, err := service.GetUserDetail(context.Background(), primitive.NewObjectID().Hex())
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// Malformed ids are NotFound as well, not internal errors.
	_, err = service.GetUserDetail(context.Background(), "not-a-hex-id")
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound for malformed id, got %v", err)
	}
}
