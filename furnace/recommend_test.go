package furnace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendations_DefaultCase(t *testing.T) {
	result, err := NewFurnace().Simulate(DefaultSinterFeed(), baseConditions())
	require.NoError(t, err)

	recs := Recommendations(result)
	require.Len(t, recs, 3, "recovery, intensity, and production guidance")
	assert.Contains(t, recs[0], "recovery is high")
	assert.Contains(t, recs[2], "close to the target")
}

func TestRecommendations_LowRecovery(t *testing.T) {
	recoveries := DefaultRecoveries()
	recoveries.ZnToMetal = 0.70
	recoveries.ZnToSlag = 0.20
	recoveries.ZnToGas = 0.10

	result, err := NewFurnaceWith(recoveries, DefaultCokeSpec()).Simulate(DefaultSinterFeed(), baseConditions())
	require.NoError(t, err)

	recs := Recommendations(result)
	assert.Contains(t, recs[0], "recovery is relatively low")
}

func TestRecommendations_ProductionBelowTarget(t *testing.T) {
	op := baseConditions()
	op.ZnProductionTargetTPH = 50.0 // simulated ~29.4 t/h is well below

	result, err := NewFurnace().Simulate(DefaultSinterFeed(), op)
	require.NoError(t, err)

	recs := Recommendations(result)
	assert.Contains(t, recs[2], "well below the target")
}

func TestRecommendations_ZeroProductionSkipsIntensityGuidance(t *testing.T) {
	feed := Feed{ElementsWtFrac: map[Element]float64{Fe: 1.0}, FeedRateTPH: 10.0}
	result, err := NewFurnace().Simulate(feed, baseConditions())
	require.NoError(t, err)

	// No zinc means intensity is 0 and no intensity band applies.
	recs := Recommendations(result)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.NotContains(t, rec, "energy intensity")
	}
}
