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

// UserService serves the customers table. Users use the snapshot
// strategy: the full collection is fetched once (Redis-cached), search
// and pagination happen against that snapshot.
type UserService struct {
	users       repositories.UserRepository
	properties  repositories.PropertyRepository
	cascade     *CascadeManager
	snapshotTTL time.Duration
}

func NewUserService(users repositories.UserRepository, properties repositories.PropertyRepository, cascade *CascadeManager, snapshotTTL time.Duration) *UserService {
	return &UserService{
		users:       users,
		properties:  properties,
		cascade:     cascade,
		snapshotTTL: snapshotTTL,
	}
}

func userSearchText(user models.User) []string {
	return []string{user.Email, user.Firstname, user.Lastname}
}

// ListUsers returns the full snapshot the customers table filters
// locally.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.loadSnapshot(ctx)
}

// SearchUsers applies the snapshot strategy server-side for callers
// that want a pre-filtered window: case-insensitive substring match
// over email and first/last name, then page/limit slicing.
func (s *UserService) SearchUsers(ctx context.Context, term string, page, limit int) ([]models.User, int, int, error) {
	users, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, 0, 0, err
	}
	window, total, totalPages := NewSnapshot(users, userSearchText).Page(term, page, limit)
	return window, total, totalPages, nil
}

func (s *UserService) loadSnapshot(ctx context.Context) ([]models.User, error) {
	if cache.RedisClient != nil {
		var users []models.User
		hit, err := cache.GetSnapshot(ctx, cache.UsersSnapshotKey, &users)
		if err != nil {
			logger.GlobalLogger.Errorf("users snapshot read failed, falling back to store: %v", err)
		} else if hit {
			return users, nil
		}
	}

	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if cache.RedisClient != nil {
		if err := cache.SetSnapshot(ctx, cache.UsersSnapshotKey, users, s.snapshotTTL); err != nil {
			logger.GlobalLogger.Errorf("failed to cache users snapshot: %v", err)
		}
	}
	return users, nil
}

// GetUserDetail loads one user with favorites populated and the
// summary counts the detail page shows. The referral and balance
// aggregates are written by the payout pipeline; they are read back
// as stored.
func (s *UserService) GetUserDetail(ctx context.Context, id string) (*models.UserDetail, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.users.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	favorites, err := s.properties.FindByIDs(ctx, user.Favorites)
	if err != nil {
		logger.GlobalLogger.Errorf("failed to populate favorites for user %s: %v", id, err)
		return nil, err
	}

	return &models.UserDetail{
		User:               *user,
		FavoriteProperties: favorites,
		ReferralCount:      len(user.ReferralEarnings),
		SavedProperties:    len(user.Favorites),
	}, nil
}

// DeleteUser removes the account and orphans its listings. The cascade
// is intentionally outside the delete: if it fails the delete stands,
// and re-running it later is safe.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if err := s.users.Delete(ctx, objectID); err != nil {
		return err
	}

	if err := s.cascade.OnUserDeleted(ctx, objectID); err != nil {
		reportCascadeFailure("user_delete", err)
	}

	// The subscriptions snapshot joins payer names, so it goes stale
	// together with the users snapshot.
	invalidateSnapshot(ctx, cache.UsersSnapshotKey)
	invalidateSnapshot(ctx, cache.SubscriptionsSnapshotKey)
	return nil
}
