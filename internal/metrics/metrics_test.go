package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegistrationAttemptsTotal(t *testing.T) {
	initial := testutil.ToFloat64(RegistrationAttemptsTotal.WithLabelValues(ResultCreated))

	RegistrationAttemptsTotal.WithLabelValues(ResultCreated).Inc()

	after := testutil.ToFloat64(RegistrationAttemptsTotal.WithLabelValues(ResultCreated))
	assert.Equal(t, initial+1, after, "attempts counter should increment by 1")
}

func TestCatalogGauges(t *testing.T) {
	CatalogEvents.Set(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(CatalogEvents))

	CatalogArticles.Set(2)
	assert.Equal(t, float64(2), testutil.ToFloat64(CatalogArticles))
}

func TestAdminMutationsTotal(t *testing.T) {
	initial := testutil.ToFloat64(AdminMutationsTotal.WithLabelValues("event", "create"))

	AdminMutationsTotal.WithLabelValues("event", "create").Inc()

	after := testutil.ToFloat64(AdminMutationsTotal.WithLabelValues("event", "create"))
	assert.Equal(t, initial+1, after)
}

func TestHTTPMetricsExist(t *testing.T) {
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInFlight)

	initial := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	HTTPRequestsTotal.WithLabelValues("GET", "/health", "200").Inc()
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, initial+1, after)
}
