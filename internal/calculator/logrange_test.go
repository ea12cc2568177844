package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btis/internal/model"
)

func TestLogRangePercentile_Empty(t *testing.T) {
	assert.Nil(t, LogRangePercentile(nil))
	assert.Nil(t, LogRangePercentile(model.PriceSeries{}))
}

func TestLogRangePercentile_NonPositiveLast(t *testing.T) {
	assert.Nil(t, LogRangePercentile(model.PriceSeries{100, 0}))
	assert.Nil(t, LogRangePercentile(model.PriceSeries{100, -5}))
}

func TestLogRangePercentile_FlatSeries(t *testing.T) {
	// min == max across history is the flat-domain fallback, not a division
	// fault.
	v := LogRangePercentile(model.PriceSeries{42000, 42000, 42000})
	require.NotNil(t, v)
	assert.Equal(t, 0.0, *v)

	single := LogRangePercentile(model.PriceSeries{42000})
	require.NotNil(t, single)
	assert.Equal(t, 0.0, *single)
}

func TestLogRangePercentile_Midpoint(t *testing.T) {
	// Logs are 0, 2, 1; last sits exactly halfway.
	e := math.E
	v := LogRangePercentile(model.PriceSeries{1, e * e, e})
	require.NotNil(t, v)
	assert.InDelta(t, 50.0, *v, 1e-9)
}

func TestLogRangePercentile_Extremes(t *testing.T) {
	atMax := LogRangePercentile(model.PriceSeries{100, 500, 1000})
	require.NotNil(t, atMax)
	assert.InDelta(t, 100.0, *atMax, 1e-9)

	atMin := LogRangePercentile(model.PriceSeries{1000, 500, 100})
	require.NotNil(t, atMin)
	assert.InDelta(t, 0.0, *atMin, 1e-9)
}

func TestLogRangePercentile_SkipsNonPositiveHistory(t *testing.T) {
	// Zero entries (null upstream bars) must not poison the log domain.
	e := math.E
	v := LogRangePercentile(model.PriceSeries{0, 1, e * e, e})
	require.NotNil(t, v)
	assert.InDelta(t, 50.0, *v, 1e-9)
}
