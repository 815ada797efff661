package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"NewswireNotifier/internal/domain"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe(domain.DialectLegacy, domain.OutcomeDelivered, 2, 3*time.Millisecond)
	m.Observe(domain.DialectLegacy, domain.OutcomeDelivered, 1, time.Millisecond)
	m.Observe("", domain.OutcomeInvalidDocument, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bulletins.WithLabelValues("legacy", "delivered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bulletins.WithLabelValues("unknown", "invalid_document")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.attachments.WithLabelValues("legacy")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}
