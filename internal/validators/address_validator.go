package validators

import (
	"fmt"
	"strings"

	"homeinsight-septic/internal/models"
)

type addressValidator struct{}

func NewAddressValidator() AddressValidator {
	return &addressValidator{}
}

// ValidateLookup enforces the minimal address sufficiency rule: a street is
// always required, plus either a zip or both city and state. HouseCanary
// rejects anything less, so under-specified queries fail here instead of
// being forwarded.
func (v *addressValidator) ValidateLookup(query *models.AddressQuery) error {
	if strings.TrimSpace(query.Street) == "" {
		return fmt.Errorf("'street' is required")
	}
	if strings.TrimSpace(query.Zip) == "" && (strings.TrimSpace(query.City) == "" || strings.TrimSpace(query.State) == "") {
		return fmt.Errorf("either 'zip' or both 'city' and 'state' must be specified")
	}
	return nil
}
