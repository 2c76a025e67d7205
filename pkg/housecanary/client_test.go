package housecanary

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"homeinsight-septic/internal/models"
	"homeinsight-septic/pkg/logger"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitLogger(io.Discard, "ERROR")
	os.Exit(m.Run())
}

func newTestClient(baseURL string) *Client {
	return NewClient("foo", "bar", baseURL, 5*time.Second)
}

func matchedBody(sewer string) string {
	return `{
		"address_info": {"status": {"match": true}},
		"property/details": {"api_code": 0, "result": {"property": {"sewer": "` + sewer + `"}}}
	}`
}

func TestLookupSepticProperty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/property/details", r.URL.Path)
		assert.Equal(t, "123 Street", r.URL.Query().Get("address"))
		assert.Equal(t, "98765", r.URL.Query().Get("zipcode"))

		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "foo", username)
		assert.Equal(t, "bar", password)

		io.WriteString(w, matchedBody("Septic"))
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Zip: "98765"})
	assert.Equal(t, OutcomeResolved, outcome.Kind)
	assert.True(t, outcome.HasSeptic)
}

func TestLookupNonSepticProperty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, matchedBody("Municipal"))
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Zip: "98765"})
	assert.Equal(t, OutcomeResolved, outcome.Kind)
	assert.False(t, outcome.HasSeptic)
}

func TestLookupParameterTranslation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "123 Street", query.Get("address"))
		assert.Equal(t, "10f", query.Get("unit"))
		assert.Equal(t, "Big", query.Get("city"))
		assert.Equal(t, "MA", query.Get("state"))
		// Unset fields are omitted entirely.
		assert.False(t, query.Has("zipcode"))

		io.WriteString(w, matchedBody("Septic"))
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Unit: "10f", City: "Big", State: "MA"})
	assert.Equal(t, OutcomeResolved, outcome.Kind)
}

func TestLookupAddressNotResolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"address_info": {"status": {"match": false}}}`)
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Zip: "98765"})
	assert.Equal(t, OutcomeNotFound, outcome.Kind)
}

func TestLookupRateLimited(t *testing.T) {
	now := time.Unix(1700000000, 0)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Reset", "1700001000")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"message": "Too Many Requests"}`)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	mock := clock.NewMock()
	mock.Set(now)
	client.clock = mock

	outcome := client.Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Zip: "98765"})
	assert.Equal(t, OutcomeRateLimited, outcome.Kind)
	assert.Equal(t, 1000, outcome.RetryAfterSeconds)
}

func TestLookupRateLimitedWithoutResetHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Zip: "98765"})
	assert.Equal(t, OutcomeRateLimited, outcome.Kind)
	assert.Equal(t, DefaultRetryAfterSeconds, outcome.RetryAfterSeconds)
}

func TestLookupUpstreamFault(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusServiceUnavailable} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			io.WriteString(w, `{"message": "upstream failure"}`)
		}))

		outcome := newTestClient(srv.URL).Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Zip: "98765"})
		assert.Equal(t, OutcomeFault, outcome.Kind)
		assert.Equal(t, status, outcome.RawCode)

		srv.Close()
	}
}

func TestLookupTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	outcome := newTestClient(srv.URL).Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Zip: "98765"})
	assert.Equal(t, OutcomeFault, outcome.Kind)
	assert.Equal(t, 0, outcome.RawCode)
}

func TestLookupMalformedResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).Lookup(context.Background(), &models.AddressQuery{Street: "123 Street", Zip: "98765"})
	assert.Equal(t, OutcomeFault, outcome.Kind)
}
