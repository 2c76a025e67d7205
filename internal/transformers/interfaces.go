package transformers

import (
	"homeinsight-septic/internal/errors"
	"homeinsight-septic/internal/models"
	"homeinsight-septic/pkg/housecanary"
)

type OutcomeTransformer interface {
	Transform(outcome housecanary.Outcome) (*models.PropertyDetails, *errors.AppError)
}
