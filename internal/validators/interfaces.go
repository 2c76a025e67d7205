package validators

import (
	"homeinsight-septic/internal/models"
)

type AddressValidator interface {
	ValidateLookup(query *models.AddressQuery) error
}
