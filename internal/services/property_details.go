package services

import (
	"context"
	"time"

	"homeinsight-septic/internal/models"
	"homeinsight-septic/internal/transformers"
	"homeinsight-septic/pkg/housecanary"
	"homeinsight-septic/pkg/metrics"
)

// PropertyLookup is the upstream call the service depends on.
type PropertyLookup interface {
	Lookup(ctx context.Context, query *models.AddressQuery) housecanary.Outcome
}

type PropertyDetailsService struct {
	upstream PropertyLookup
	outcomes transformers.OutcomeTransformer
}

func NewPropertyDetailsService(upstream PropertyLookup, outcomes transformers.OutcomeTransformer) *PropertyDetailsService {
	return &PropertyDetailsService{
		upstream: upstream,
		outcomes: outcomes,
	}
}

// GetPropertyDetails performs exactly one upstream lookup for the validated
// query and translates the outcome. The returned error is always an
// *errors.AppError.
func (s *PropertyDetailsService) GetPropertyDetails(ctx context.Context, query *models.AddressQuery) (*models.PropertyDetails, error) {
	start := time.Now()
	outcome := s.upstream.Lookup(ctx, query)
	metrics.UpstreamRequestDuration.Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues(outcome.Kind.String()).Inc()

	details, appErr := s.outcomes.Transform(outcome)
	if appErr != nil {
		return nil, appErr
	}
	return details, nil
}
