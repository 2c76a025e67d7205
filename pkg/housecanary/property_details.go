package housecanary

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"homeinsight-septic/internal/models"
	"homeinsight-septic/pkg/logger"
)

const detailsPath = "/v2/property/details"

// DefaultRetryAfterSeconds is used when HouseCanary rate-limits us without
// a usable X-RateLimit-Reset header.
const DefaultRetryAfterSeconds = 60

// OutcomeKind enumerates the possible results of a HouseCanary lookup.
type OutcomeKind int

const (
	// OutcomeResolved means HouseCanary matched the address and returned a property record.
	OutcomeResolved OutcomeKind = iota
	// OutcomeNotFound means HouseCanary could not geocode the address.
	OutcomeNotFound
	// OutcomeRateLimited means HouseCanary is rate-limiting this service.
	OutcomeRateLimited
	// OutcomeFault covers every other upstream failure, including transport errors.
	OutcomeFault
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeResolved:
		return "resolved"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeRateLimited:
		return "rate_limited"
	default:
		return "fault"
	}
}

// Outcome is the result of a single HouseCanary lookup. RawCode holds the
// upstream HTTP status for faults, or 0 for network-level failures.
type Outcome struct {
	Kind              OutcomeKind
	HasSeptic         bool
	RetryAfterSeconds int
	RawCode           int
}

type detailsResponse struct {
	AddressInfo struct {
		Status struct {
			Match bool `json:"match"`
		} `json:"status"`
	} `json:"address_info"`
	PropertyDetails struct {
		Result struct {
			Property struct {
				Sewer string `json:"sewer"`
			} `json:"property"`
		} `json:"result"`
	} `json:"property/details"`
}

// Lookup issues one request to the HouseCanary property details endpoint
// and folds the response into an Outcome. It never retries; failures are
// logged here with full detail and reported to callers only through the
// Outcome kind.
func (c *Client) Lookup(ctx context.Context, query *models.AddressQuery) Outcome {
	lookupURL := c.baseURL + detailsPath + "?" + buildParams(query).Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create HouseCanary request: url=%s, error=%v", lookupURL, err)
		return Outcome{Kind: OutcomeFault}
	}
	req.SetBasicAuth(c.apiKey, c.apiSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to send HouseCanary request: url=%s, error=%v", lookupURL, err)
		return Outcome{Kind: OutcomeFault}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read HouseCanary response body: url=%s, status=%s, error=%v", lookupURL, resp.Status, err)
		return Outcome{Kind: OutcomeFault, RawCode: resp.StatusCode}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := c.retryAfter(resp.Header.Get("X-RateLimit-Reset"))
		logger.GlobalLogger.Errorf("HouseCanary rate limit hit: url=%s, retry_after=%d, response=%s", lookupURL, retryAfter, string(body))
		return Outcome{Kind: OutcomeRateLimited, RetryAfterSeconds: retryAfter, RawCode: resp.StatusCode}
	}

	if resp.StatusCode != http.StatusOK {
		// Any other status means we sent HouseCanary a malformed or
		// mis-authenticated request.
		logger.GlobalLogger.Errorf("Request to HouseCanary failed: url=%s, status=%s, response=%s", lookupURL, resp.Status, string(body))
		return Outcome{Kind: OutcomeFault, RawCode: resp.StatusCode}
	}

	var details detailsResponse
	if err := json.Unmarshal(body, &details); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode HouseCanary response: url=%s, response=%s, error=%v", lookupURL, string(body), err)
		return Outcome{Kind: OutcomeFault, RawCode: resp.StatusCode}
	}

	if !details.AddressInfo.Status.Match {
		return Outcome{Kind: OutcomeNotFound}
	}

	return Outcome{
		Kind:      OutcomeResolved,
		HasSeptic: strings.EqualFold(details.PropertyDetails.Result.Property.Sewer, "septic"),
	}
}

// buildParams maps our address fields onto HouseCanary's parameter names,
// dropping unset fields.
func buildParams(query *models.AddressQuery) url.Values {
	params := url.Values{}
	params.Set("address", query.Street)
	if query.Unit != "" {
		params.Set("unit", query.Unit)
	}
	if query.City != "" {
		params.Set("city", query.City)
	}
	if query.State != "" {
		params.Set("state", query.State)
	}
	if query.Zip != "" {
		params.Set("zipcode", query.Zip)
	}
	return params
}

// retryAfter translates HouseCanary's X-RateLimit-Reset header, a UTC epoch
// second, into a Retry-After style seconds-to-wait value.
func (c *Client) retryAfter(resetHeader string) int {
	reset, err := strconv.ParseInt(resetHeader, 10, 64)
	if err != nil {
		return DefaultRetryAfterSeconds
	}
	retryAfter := int(reset - c.clock.Now().Unix())
	if retryAfter < 0 {
		retryAfter = 0
	}
	return retryAfter
}
