package services

import (
	"context"

	apperrors "leasehub-admin/internal/errors"
	"leasehub-admin/internal/models"
	"leasehub-admin/internal/repositories"
	"leasehub-admin/internal/transformers"
	"leasehub-admin/internal/utils"
	"leasehub-admin/internal/validators"
	"leasehub-admin/pkg/cache"
	"leasehub-admin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyService serves the listings table. Property listings use the
// server-side strategy: every request recomputes the window and totals
// against the live collection, so deletes from other sessions show up
// on the next call.
type PropertyService struct {
	properties repositories.PropertyRepository
	users      repositories.UserRepository
	validator  validators.PropertyValidator
	cascade    *CascadeManager
}

func NewPropertyService(properties repositories.PropertyRepository, users repositories.UserRepository, validator validators.PropertyValidator, cascade *CascadeManager) *PropertyService {
	return &PropertyService{
		properties: properties,
		users:      users,
		validator:  validator,
		cascade:    cascade,
	}
}

// ListProperties returns one page of properties matching the free-text
// search, each with its owner joined in. Orphaned listings get the
// "N/A" owner fallback.
func (s *PropertyService) ListProperties(ctx context.Context, page, limit int, search string) (*models.PaginatedPropertiesResponse, error) {
	page, limit = utils.NormalizePage(page, limit)

	properties, total, err := s.properties.Search(ctx, search, utils.Skip(page, limit), limit)
	if err != nil {
		logger.GlobalLogger.Errorf("property search failed: page=%d, limit=%d, search=%q, error=%v", page, limit, search, err)
		return nil, err
	}

	owners, err := s.ownersByID(ctx, properties)
	if err != nil {
		return nil, err
	}

	withOwners := make([]models.PropertyWithOwner, 0, len(properties))
	for _, property := range properties {
		summary := models.OwnerSummary{Firstname: "N/A", Lastname: "", Email: "N/A"}
		if property.Owner != nil {
			if owner, ok := owners[*property.Owner]; ok {
				summary = models.OwnerSummary{
					Firstname: owner.Firstname,
					Lastname:  owner.Lastname,
					Email:     owner.Email,
				}
			}
		}
		withOwners = append(withOwners, models.PropertyWithOwner{Property: property, Owner: summary})
	}

	return &models.PaginatedPropertiesResponse{
		Properties:  withOwners,
		Total:       total,
		TotalPages:  utils.TotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

func (s *PropertyService) ownersByID(ctx context.Context, properties []models.Property) (map[primitive.ObjectID]models.User, error) {
	seen := map[primitive.ObjectID]struct{}{}
	var ids []primitive.ObjectID
	for _, property := range properties {
		if property.Owner == nil {
			continue
		}
		if _, ok := seen[*property.Owner]; ok {
			continue
		}
		seen[*property.Owner] = struct{}{}
		ids = append(ids, *property.Owner)
	}

	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	owners := make(map[primitive.ObjectID]models.User, len(users))
	for _, user := range users {
		owners[user.ID] = user
	}
	return owners, nil
}

func (s *PropertyService) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPropertyNotFound
	}
	return s.properties.FindByID(ctx, objectID)
}

func (s *PropertyService) CreateProperty(ctx context.Context, property *models.Property) error {
	if err := s.validator.ValidateUpsert(property); err != nil {
		return err
	}
	deriveWriteFields(property)
	return s.properties.Create(ctx, property)
}

func (s *PropertyService) UpdateProperty(ctx context.Context, property *models.Property) error {
	if err := s.validator.ValidateUpsert(property); err != nil {
		return err
	}
	deriveWriteFields(property)
	return s.properties.Update(ctx, property)
}

// deriveWriteFields recomputes the fields derived from the address.
// Running it on every write keeps locationGeo from ever disagreeing
// with address.lat/lng.
func deriveWriteFields(property *models.Property) {
	property.LocationGeo = transformers.DeriveGeoPoint(property.Address)
	property.Address.FormattedAddress = transformers.FormatAddress(property.Address)
}

// DeleteProperty removes the listing, then cancels any subscription
// still funding its boost. A failed cascade does not roll back the
// delete: the delete-completes policy prefers a dangling subscription
// reference over a listing that cannot be removed.
func (s *PropertyService) DeleteProperty(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrPropertyNotFound
	}

	if err := s.properties.Delete(ctx, objectID); err != nil {
		return err
	}

	if err := s.cascade.OnPropertyDeleted(ctx, objectID); err != nil {
		reportCascadeFailure("property_delete", err)
	}

	// The cascade cancels bound subscriptions and the snapshot joins
	// property titles, so the boosts listing must be refetched.
	invalidateSnapshot(ctx, cache.SubscriptionsSnapshotKey)
	return nil
}
