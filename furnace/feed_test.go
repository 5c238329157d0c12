package furnace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeed_ToStream_ScalesFractionsByRate(t *testing.T) {
	feed := Feed{
		ElementsWtFrac: map[Element]float64{Zn: 0.40, Fe: 0.15},
		FeedRateTPH:    80.0,
	}
	s := feed.ToStream("Feed")
	assert.Equal(t, "Feed", s.Name)
	assert.InDelta(t, 32000.0, s.Get(Zn), 1e-9)
	assert.InDelta(t, 12000.0, s.Get(Fe), 1e-9)
}

func TestFeed_ToStream_DoesNotRenormalize(t *testing.T) {
	// Fractions summing to 0.5 mean half the throughput is elemental mass.
	feed := Feed{
		ElementsWtFrac: map[Element]float64{Zn: 0.5},
		FeedRateTPH:    10.0,
	}
	s := feed.ToStream("Feed")
	assert.InDelta(t, 5000.0, s.Total(), 1e-9)
}

func TestFeed_Validate(t *testing.T) {
	valid := DefaultSinterFeed()
	assert.NoError(t, valid.Validate())

	negRate := Feed{ElementsWtFrac: map[Element]float64{Zn: 1}, FeedRateTPH: -1}
	assert.ErrorContains(t, negRate.Validate(), "feed rate")

	negFrac := Feed{ElementsWtFrac: map[Element]float64{Zn: -0.1}, FeedRateTPH: 10}
	assert.ErrorContains(t, negFrac.Validate(), "fraction for Zn")

	overFrac := Feed{ElementsWtFrac: map[Element]float64{Zn: 1.2}, FeedRateTPH: 10}
	assert.ErrorContains(t, overFrac.Validate(), "fraction for Zn")
}

func TestDefaultSinterFeed_FractionsSumToOne(t *testing.T) {
	feed := DefaultSinterFeed()
	var sum float64
	for _, frac := range feed.ElementsWtFrac {
		sum += frac
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Equal(t, 80.0, feed.FeedRateTPH)
}

func TestNormalizeFractions(t *testing.T) {
	fractions := map[Element]float64{Zn: 2, Pb: 2}
	NormalizeFractions(fractions)
	assert.InDelta(t, 0.5, fractions[Zn], 1e-12)
	assert.InDelta(t, 0.5, fractions[Pb], 1e-12)

	empty := map[Element]float64{}
	NormalizeFractions(empty)
	assert.Empty(t, empty)
}
