package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property types accepted on write.
var PropertyTypes = []string{"Apartment", "Condo", "House", "Townhouse", "Other"}

type Address struct {
	Address1         string  `json:"address1" bson:"address1"`
	Address2         string  `json:"address2,omitempty" bson:"address2,omitempty"`
	Address3         string  `json:"address3,omitempty" bson:"address3,omitempty"`
	City             string  `json:"city" bson:"city"`
	State            string  `json:"state" bson:"state"`
	Zip              string  `json:"zip" bson:"zip"`
	Country string `json:"country" bson:"country"`
	// Pointers so an absent coordinate is distinguishable from 0 and can
	// be rejected on write.
	Lat              *float64 `json:"lat" bson:"lat"`
	Lng              *float64 `json:"lng" bson:"lng"`
	FormattedAddress string   `json:"formattedAddress" bson:"formattedAddress"`
	PlaceID          string   `json:"placeId,omitempty" bson:"placeId,omitempty"`
}

// GeoPoint is a GeoJSON point. Coordinates are [lng, lat] — longitude
// first, which is what the 2dsphere index expects.
type GeoPoint struct {
	Type        string     `json:"type" bson:"type"`
	Coordinates [2]float64 `json:"coordinates" bson:"coordinates"`
}

type Amenity struct {
	Name     string `json:"name" bson:"name"`
	Included bool   `json:"included" bson:"included"`
}

type Amenities struct {
	Interior      []Amenity `json:"interior,omitempty" bson:"interior,omitempty"`
	Outdoor       []Amenity `json:"outdoor,omitempty" bson:"outdoor,omitempty"`
	Utilities     []Amenity `json:"utilities,omitempty" bson:"utilities,omitempty"`
	OtherFeatures []Amenity `json:"otherFeatures,omitempty" bson:"otherFeatures,omitempty"`
}

type ContactDetails struct {
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
}

type Property struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Type        string             `json:"type" bson:"type"`
	Audience    string             `json:"audience,omitempty" bson:"audience,omitempty"`
	Location    string             `json:"location" bson:"location"`
	Address     Address            `json:"address" bson:"address"`
	LocationGeo GeoPoint           `json:"locationGeo" bson:"locationGeo"`

	Bedrooms   int    `json:"bedrooms" bson:"bedrooms"`
	Beds       int    `json:"beds" bson:"beds"`
	Bathrooms  int    `json:"bathrooms" bson:"bathrooms"`
	Balcony    int    `json:"balcony" bson:"balcony"`
	SquareFeet string `json:"squareFeet,omitempty" bson:"squareFeet,omitempty"`

	Amenities   Amenities `json:"amenities,omitempty" bson:"amenities,omitempty"`
	PetsAllowed []string  `json:"petsAllowed,omitempty" bson:"petsAllowed,omitempty"`

	Photos        []string `json:"photos" bson:"photos"`
	FeaturedImage string   `json:"featuredImage,omitempty" bson:"featuredImage,omitempty"`

	Price          float64        `json:"price" bson:"price"`
	Currency       string         `json:"currency" bson:"currency"`
	ContactDetails ContactDetails `json:"contactDetails" bson:"contactDetails"`

	// Owner is nil for orphaned listings (the owner account was deleted,
	// the listing stays up).
	Owner      *primitive.ObjectID `json:"owner" bson:"owner"`
	IsActive   bool                `json:"isActive" bson:"isActive"`
	IsFeatured bool                `json:"isFeatured" bson:"isFeatured"`

	BoostSubscription *primitive.ObjectID `json:"boostSubscription,omitempty" bson:"boostSubscription,omitempty"`
	BoostExpiration   *time.Time          `json:"boostExpiration,omitempty" bson:"boostExpiration,omitempty"`

	AvailabilityDate  *time.Time `json:"availabilityDate,omitempty" bson:"availabilityDate,omitempty"`
	LeaseTerms        string     `json:"leaseTerms,omitempty" bson:"leaseTerms,omitempty"`
	NeighborhoodInfo  string     `json:"neighborhoodInfo,omitempty" bson:"neighborhoodInfo,omitempty"`
	NearbyAttractions []string   `json:"nearbyAttractions,omitempty" bson:"nearbyAttractions,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// OwnerSummary is the slice of the owner document joined into admin
// property listings. Orphaned listings get the "N/A" fallback.
type OwnerSummary struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

type PropertyWithOwner struct {
	Property
	Owner OwnerSummary `json:"owner"`
}

type PaginatedPropertiesResponse struct {
	Properties  []PropertyWithOwner `json:"properties"`
	Total       int64               `json:"total"`
	TotalPages  int                 `json:"totalPages"`
	CurrentPage int                 `json:"currentPage"`
}
