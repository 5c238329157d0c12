package furnace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConditions() OperatingConditions {
	return OperatingConditions{
		CokeRateKgph:          18000.0,
		ZnProductionTargetTPH: 30.0,
		CokeLHVMJPerKg:        28.0,
	}
}

func TestSimulate_PureZincFeed(t *testing.T) {
	// 100% Zn at 80 t/h, no fuel: metal Zn = 80000 * 0.92 = 73600 kg/h.
	feed := Feed{ElementsWtFrac: map[Element]float64{Zn: 1.0}, FeedRateTPH: 80.0}
	op := OperatingConditions{CokeRateKgph: 0, ZnProductionTargetTPH: 30, CokeLHVMJPerKg: 28}

	result, err := NewFurnace().Simulate(feed, op)
	require.NoError(t, err)

	assert.InDelta(t, 73600.0, result.Metal.Get(Zn), 1e-9)
	assert.InDelta(t, 92.0, result.ZincRecoveryPct(), 1e-9)
}

func TestSimulate_DefaultSinterCase(t *testing.T) {
	result, err := NewFurnace().Simulate(DefaultSinterFeed(), baseConditions())
	require.NoError(t, err)

	// Feed: 80 t/h of the default sinter analysis.
	assert.InDelta(t, 32000.0, result.Feed.Get(Zn), 1e-6)
	assert.InDelta(t, 80000.0, result.Feed.Total(), 1e-6)

	// Coke: 18000 kg/h of the default spec.
	assert.InDelta(t, 16200.0, result.Coke.Get(C), 1e-6)
	assert.InDelta(t, 180.0, result.Coke.Get(S), 1e-6)
	assert.InDelta(t, 1620.0, result.Coke.Get(Ash), 1e-6)

	// Metal: tracked splits only.
	assert.InDelta(t, 29440.0, result.Metal.Get(Zn), 1e-6)
	assert.InDelta(t, 6080.0, result.Metal.Get(Pb), 1e-6)
	assert.InDelta(t, 0.0, result.Metal.Get(Fe), 1e-6)

	// Slag: tracked splits plus gangue (feed S and coke S combine first).
	assert.InDelta(t, 1600.0, result.Slag.Get(Zn), 1e-6)
	assert.InDelta(t, 11760.0, result.Slag.Get(Fe), 1e-6)
	assert.InDelta(t, 8180.0*0.03, result.Slag.Get(S), 1e-6)
	assert.InDelta(t, 9600.0*0.995, result.Slag.Get(Si), 1e-6)
	assert.InDelta(t, 1620.0*0.995, result.Slag.Get(Ash), 1e-6)

	// Gas: tracked splits, gangue remainder, and all C and O.
	assert.InDelta(t, 960.0, result.Gas.Get(Zn), 1e-6)
	assert.InDelta(t, 8180.0*0.97, result.Gas.Get(S), 1e-6)
	assert.InDelta(t, 9600.0*0.005, result.Gas.Get(Si), 1e-6)
	assert.InDelta(t, 16200.0, result.Gas.Get(C), 1e-6)
	assert.InDelta(t, 3200.0, result.Gas.Get(O), 1e-6)
}

func TestSimulate_OutputNeverExceedsInputPerTrackedElement(t *testing.T) {
	result, err := NewFurnace().Simulate(DefaultSinterFeed(), baseConditions())
	require.NoError(t, err)

	for _, el := range TrackedElements {
		totalIn := result.Feed.Get(el) + result.Coke.Get(el)
		totalOut := result.Metal.Get(el) + result.Slag.Get(el) + result.Gas.Get(el)
		assert.LessOrEqual(t, totalOut, totalIn+1e-9, "element %s", el)
	}
}

func TestSimulate_AllOutputFlowsNonNegative(t *testing.T) {
	result, err := NewFurnace().Simulate(DefaultSinterFeed(), baseConditions())
	require.NoError(t, err)

	for _, stream := range []Stream{result.Metal, result.Slag, result.Gas} {
		for el, kgph := range stream.Elements() {
			assert.GreaterOrEqual(t, kgph, 0.0, "%s in %s", el, stream.Name)
		}
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	f := NewFurnace()
	feed := DefaultSinterFeed()
	op := baseConditions()

	first, err := f.Simulate(feed, op)
	require.NoError(t, err)
	second, err := f.Simulate(feed, op)
	require.NoError(t, err)

	for _, pair := range []struct{ a, b Stream }{
		{first.Metal, second.Metal},
		{first.Slag, second.Slag},
		{first.Gas, second.Gas},
	} {
		assert.Equal(t, pair.a.Elements(), pair.b.Elements())
	}
	assert.Equal(t, first.ZincRecoveryPct(), second.ZincRecoveryPct())
}

func TestSimulate_ZeroFeed(t *testing.T) {
	feed := Feed{ElementsWtFrac: map[Element]float64{Zn: 1.0}, FeedRateTPH: 0}
	op := OperatingConditions{CokeRateKgph: 0, ZnProductionTargetTPH: 0, CokeLHVMJPerKg: 28}

	result, err := NewFurnace().Simulate(feed, op)
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.ZincRecoveryPct())
	assert.Equal(t, 0.0, result.CokeEnergyIntensityGJPerTZn())
	assert.Equal(t, 0.0, result.ZincProductionTPH())
}

func TestSimulate_TraceElementRoutesThroughGanguePath(t *testing.T) {
	feed := Feed{
		ElementsWtFrac: map[Element]float64{Zn: 0.9, Element("Cd"): 0.1},
		FeedRateTPH:    10.0,
	}
	result, err := NewFurnace().Simulate(feed, baseConditions())
	require.NoError(t, err)

	assert.InDelta(t, 1000.0*0.995, result.Slag.Get(Element("Cd")), 1e-9)
	assert.InDelta(t, 1000.0*0.005, result.Gas.Get(Element("Cd")), 1e-9)
}

func TestSimulate_RejectsInvalidInputs(t *testing.T) {
	f := NewFurnace()
	op := baseConditions()

	badFeed := Feed{ElementsWtFrac: map[Element]float64{Zn: -0.5}, FeedRateTPH: 10}
	_, err := f.Simulate(badFeed, op)
	assert.ErrorContains(t, err, "invalid feed")

	badOp := op
	badOp.CokeRateKgph = -1
	_, err = f.Simulate(DefaultSinterFeed(), badOp)
	assert.ErrorContains(t, err, "invalid operating conditions")

	badRec := DefaultRecoveries()
	badRec.ZnToMetal = 0.99
	badRec.ZnToSlag = 0.10
	_, err = NewFurnaceWith(badRec, DefaultCokeSpec()).Simulate(DefaultSinterFeed(), op)
	assert.ErrorContains(t, err, "invalid recovery parameters")

	badFuel := FuelSpec{Carbon: 1.2}
	_, err = NewFurnaceWith(DefaultRecoveries(), badFuel).Simulate(DefaultSinterFeed(), op)
	assert.ErrorContains(t, err, "invalid fuel spec")
}

func TestSimulate_ResultsCarryDistinctRunIDs(t *testing.T) {
	f := NewFurnace()
	first, err := f.Simulate(DefaultSinterFeed(), baseConditions())
	require.NoError(t, err)
	second, err := f.Simulate(DefaultSinterFeed(), baseConditions())
	require.NoError(t, err)

	assert.NotEmpty(t, first.RunID)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestCombineStreams_UnionWithMissingAsZero(t *testing.T) {
	a := NewStream("A", map[Element]float64{Zn: 100, S: 10})
	b := NewStream("B", map[Element]float64{S: 5, C: 50})
	combined := combineStreams(a, b)

	assert.InDelta(t, 100.0, combined[Zn], 1e-12)
	assert.InDelta(t, 15.0, combined[S], 1e-12)
	assert.InDelta(t, 50.0, combined[C], 1e-12)
}
