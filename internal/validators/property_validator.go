package validators

import (
	"fmt"
	"regexp"

	apperrors "leasehub-admin/internal/errors"
	"leasehub-admin/internal/models"
)

var emailPattern = regexp.MustCompile(`.+@.+\..+`)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

// ValidateUpsert checks the write-side invariants of a property record
// and reports every violated field at once.
func (v *propertyValidator) ValidateUpsert(property *models.Property) error {
	fields := map[string]string{}

	if property.Title == "" {
		fields["title"] = "title is required"
	}
	if property.Description == "" {
		fields["description"] = "description is required"
	}
	if !validPropertyType(property.Type) {
		fields["type"] = fmt.Sprintf("type must be one of %v", models.PropertyTypes)
	}
	if property.Location == "" {
		fields["location"] = "location is required"
	}

	if property.Address.Address1 == "" {
		fields["address.address1"] = "street address is required"
	}
	if property.Address.City == "" {
		fields["address.city"] = "city is required"
	}
	if property.Address.State == "" {
		fields["address.state"] = "state is required"
	}
	if property.Address.Zip == "" {
		fields["address.zip"] = "zip is required"
	}
	if property.Address.Country == "" {
		fields["address.country"] = "country is required"
	}
	if property.Address.Lat == nil {
		fields["address.lat"] = "latitude is required"
	}
	if property.Address.Lng == nil {
		fields["address.lng"] = "longitude is required"
	}

	if property.Bedrooms < 1 {
		fields["bedrooms"] = "bedrooms must be at least 1"
	}
	if property.Beds < 1 {
		fields["beds"] = "beds must be at least 1"
	}
	if property.Bathrooms < 1 {
		fields["bathrooms"] = "bathrooms must be at least 1"
	}
	if property.Balcony < 0 {
		fields["balcony"] = "balcony cannot be negative"
	}
	if property.Price < 0 {
		fields["price"] = "price cannot be negative"
	}

	if property.ContactDetails.Name == "" {
		fields["contactDetails.name"] = "contact name is required"
	}
	if property.ContactDetails.Email == "" {
		fields["contactDetails.email"] = "contact email is required"
	} else if !emailPattern.MatchString(property.ContactDetails.Email) {
		fields["contactDetails.email"] = "contact email is not a valid email address"
	}
	if property.ContactDetails.PhoneNumber == "" {
		fields["contactDetails.phoneNumber"] = "contact phone number is required"
	}

	if len(fields) > 0 {
		return apperrors.NewValidationError("property validation failed", fields)
	}
	return nil
}

func validPropertyType(t string) bool {
	for _, known := range models.PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}
