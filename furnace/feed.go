package furnace

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Feed describes the furnace feed (sinter or a blended charge) as element
// mass fractions plus a total throughput in tonnes per hour.
//
// Fractions are expected to sum to ~1.0 but are deliberately not
// renormalized: off-unity sums scale the total elemental mass
// proportionally, which lets a caller model partially specified charges.
type Feed struct {
	ElementsWtFrac map[Element]float64
	FeedRateTPH    float64
}

// Validate checks the feed for out-of-range fractions and rates.
func (f Feed) Validate() error {
	if f.FeedRateTPH < 0 {
		return fmt.Errorf("feed rate must be non-negative, got %f t/h", f.FeedRateTPH)
	}
	for _, el := range canonicalOrder(f.ElementsWtFrac) {
		frac := f.ElementsWtFrac[el]
		if frac < 0 || frac > 1 {
			return fmt.Errorf("feed fraction for %s must be in [0,1], got %f", el, frac)
		}
	}
	return nil
}

// ToStream converts the feed into a mass-flow stream (kg/h per element).
// No normalization is performed here.
func (f Feed) ToStream(name string) Stream {
	totalKgph := f.FeedRateTPH * 1000.0
	elements := make(map[Element]float64, len(f.ElementsWtFrac))
	var fracSum float64
	for _, el := range canonicalOrder(f.ElementsWtFrac) {
		frac := f.ElementsWtFrac[el]
		elements[el] = frac * totalKgph
		fracSum += frac
	}
	if len(f.ElementsWtFrac) > 0 && math.Abs(fracSum-1.0) > 0.01 {
		logrus.Debugf("feed %q fractions sum to %.4f, elemental mass scales accordingly", name, fracSum)
	}
	return NewStream(name, elements)
}

// DefaultSinterFeed returns a typical ISF sinter feed at 80 t/h.
func DefaultSinterFeed() Feed {
	return Feed{
		ElementsWtFrac: map[Element]float64{
			Zn: 0.40,
			Pb: 0.08,
			Fe: 0.15,
			S:  0.10,
			Si: 0.12,
			Ca: 0.08,
			Mg: 0.03,
			O:  0.04,
		},
		FeedRateTPH: 80.0,
	}
}
