package validators

import (
	"leasehub-admin/internal/models"
)

type PropertyValidator interface {
	ValidateUpsert(property *models.Property) error
}
