package composite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btis/internal/model"
)

func TestWeightedMean_Renormalization(t *testing.T) {
	// The absent pair's 0.25 weight is dropped from the denominator, not
	// counted as zero: (80*0.2 + 60*0.2 + 40*0.15) / 0.55.
	pairs := []WeightedValue{
		{Value: model.Float(80), Weight: 0.2},
		{Value: nil, Weight: 0.25},
		{Value: model.Float(60), Weight: 0.2},
		{Value: model.Float(40), Weight: 0.15},
	}
	got := WeightedMean(pairs)
	require.NotNil(t, got)
	assert.InDelta(t, 34.0/0.55, *got, 1e-9)
}

func TestWeightedMean_AllAbsent(t *testing.T) {
	pairs := []WeightedValue{
		{Value: nil, Weight: 0.5},
		{Value: nil, Weight: 0.5},
	}
	assert.Nil(t, WeightedMean(pairs))
	assert.Nil(t, WeightedMean(nil))
}

func TestWeightedMean_NonPositiveWeightsDropped(t *testing.T) {
	pairs := []WeightedValue{
		{Value: model.Float(100), Weight: 0},
		{Value: model.Float(100), Weight: -1},
		{Value: model.Float(30), Weight: 0.4},
	}
	got := WeightedMean(pairs)
	require.NotNil(t, got)
	assert.InDelta(t, 30.0, *got, 1e-9)
}

func TestWeightedMean_SingleSurvivor(t *testing.T) {
	pairs := []WeightedValue{
		{Value: nil, Weight: 0.8},
		{Value: model.Float(72.5), Weight: 0.2},
	}
	got := WeightedMean(pairs)
	require.NotNil(t, got)
	assert.InDelta(t, 72.5, *got, 1e-9)
}

func TestWeightedMean_WeightsNeedNotSumToOne(t *testing.T) {
	pairs := []WeightedValue{
		{Value: model.Float(40), Weight: 3},
		{Value: model.Float(80), Weight: 1},
	}
	got := WeightedMean(pairs)
	require.NotNil(t, got)
	assert.InDelta(t, 50.0, *got, 1e-9)
}
