package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	f := NewFetch(reg)

	f.Observe(OutcomeTransient, 0.1)
	f.Observe(OutcomeOK, 0.2)
	f.Retry()

	assert.Equal(t, 1.0, testutil.ToFloat64(f.Attempts.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.Attempts.WithLabelValues(OutcomeTransient)))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.Retries))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 3)
}

func TestNilFetchIsNoop(t *testing.T) {
	var f *Fetch
	f.Observe(OutcomeOK, 1)
	f.Retry()
}

func TestNewFetchWithoutRegistry(t *testing.T) {
	a := NewFetch(nil)
	b := NewFetch(nil)
	a.Retry()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Retries))
}
