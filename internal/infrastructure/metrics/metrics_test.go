package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAssistant(t *testing.T) {
	before := testutil.ToFloat64(assistantFindings.WithLabelValues("alerta"))

	Assistant{}.ObserveFindings("alerta", 3)
	Assistant{}.ObserveFindings("alerta", 0)
	Assistant{}.SetHealthScore(72)

	assert.Equal(t, before+3, testutil.ToFloat64(assistantFindings.WithLabelValues("alerta")))
	assert.Equal(t, float64(72), testutil.ToFloat64(assistantHealthScore))
}

func TestObserveHTTP(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/dashboard", "200"))

	ObserveHTTP("GET", "/api/dashboard", 200, 15*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/dashboard", "200")))
}

func TestObserveLogin(t *testing.T) {
	before := testutil.ToFloat64(loginAttempts.WithLabelValues("throttled"))
	ObserveLogin("throttled")
	assert.Equal(t, before+1, testutil.ToFloat64(loginAttempts.WithLabelValues("throttled")))
}
