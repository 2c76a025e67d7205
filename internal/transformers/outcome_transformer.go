package transformers

import (
	"fmt"
	"net/http"
	"strconv"

	"homeinsight-septic/internal/errors"
	"homeinsight-septic/internal/models"
	"homeinsight-septic/pkg/housecanary"
)

type outcomeTransformer struct{}

func NewOutcomeTransformer() OutcomeTransformer {
	return &outcomeTransformer{}
}

// Transform maps a HouseCanary outcome onto the service's own response or
// error. The mapping is total over the outcome kinds and has no side
// effects. Upstream status codes are kept in the technical message for the
// logs and never reach the caller.
func (t *outcomeTransformer) Transform(outcome housecanary.Outcome) (*models.PropertyDetails, *errors.AppError) {
	switch outcome.Kind {
	case housecanary.OutcomeResolved:
		return &models.PropertyDetails{HasSepticSystem: outcome.HasSeptic}, nil
	case housecanary.OutcomeNotFound:
		return nil, &errors.AppError{
			TechnicalMessage: "HouseCanary could not resolve the address",
			UserMessage:      errors.MsgAddressNotResolved,
			Code:             errors.ErrCodeAddressNotResolved,
			HTTPStatus:       http.StatusNotFound,
		}
	case housecanary.OutcomeRateLimited:
		return nil, &errors.AppError{
			TechnicalMessage: fmt.Sprintf("HouseCanary rate limit hit, retry after %d seconds", outcome.RetryAfterSeconds),
			UserMessage:      errors.MsgRateLimited,
			Code:             errors.ErrCodeRateLimited,
			HTTPStatus:       http.StatusTooManyRequests,
			Headers: map[string]string{
				"Retry-After": strconv.Itoa(outcome.RetryAfterSeconds),
			},
		}
	default:
		return nil, &errors.AppError{
			TechnicalMessage: fmt.Sprintf("HouseCanary lookup failed with status %d", outcome.RawCode),
			UserMessage:      errors.MsgInternalError,
			Code:             errors.ErrCodeInternalError,
			HTTPStatus:       http.StatusInternalServerError,
		}
	}
}
