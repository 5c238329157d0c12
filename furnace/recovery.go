package furnace

import "fmt"

// RecoveryParameters are the configured split fractions of each tracked
// element reporting to each product stream, plus the gangue-to-slag
// fraction for everything else. Fractions are in [0,1]; a per-element sum
// below 1 represents unrecovered loss (see SimulationResult.MassClosure),
// a sum above 1 would mint mass and is rejected by Validate.
type RecoveryParameters struct {
	ZnToMetal float64
	ZnToSlag  float64
	ZnToGas   float64

	PbToMetal float64
	PbToSlag  float64
	PbToGas   float64

	FeToMetal float64
	FeToSlag  float64
	FeToGas   float64

	SToSlag float64
	SToGas  float64 // as SO2 etc.

	GangueToSlag float64 // Si, Ca, Mg, Al, ash
}

// DefaultRecoveries returns the standard ISF split fractions.
func DefaultRecoveries() RecoveryParameters {
	return RecoveryParameters{
		ZnToMetal: 0.92,
		ZnToSlag:  0.05,
		ZnToGas:   0.03,

		PbToMetal: 0.95,
		PbToSlag:  0.03,
		PbToGas:   0.02,

		FeToMetal: 0.0,
		FeToSlag:  0.98,
		FeToGas:   0.02,

		SToSlag: 0.03,
		SToGas:  0.97,

		GangueToSlag: 0.995,
	}
}

// split groups one element's destination fractions for validation and
// for the engine's per-element dispatch.
type split struct {
	toMetal, toSlag, toGas float64
}

func (r RecoveryParameters) splitFor(el Element) split {
	switch el {
	case Zn:
		return split{r.ZnToMetal, r.ZnToSlag, r.ZnToGas}
	case Pb:
		return split{r.PbToMetal, r.PbToSlag, r.PbToGas}
	case Fe:
		return split{r.FeToMetal, r.FeToSlag, r.FeToGas}
	case S:
		return split{0, r.SToSlag, r.SToGas}
	}
	return split{}
}

// Validate rejects negative fractions and per-element sums above 1.
// Sums below 1 are legal: the remainder is an operating loss surfaced by
// the mass-closure diagnostic rather than silently corrected.
func (r RecoveryParameters) Validate() error {
	for _, el := range TrackedElements {
		sp := r.splitFor(el)
		for _, frac := range []float64{sp.toMetal, sp.toSlag, sp.toGas} {
			if frac < 0 {
				return fmt.Errorf("recovery fraction for %s must be non-negative, got %f", el, frac)
			}
		}
		if sum := sp.toMetal + sp.toSlag + sp.toGas; sum > 1 {
			return fmt.Errorf("recovery fractions for %s sum to %f, must not exceed 1", el, sum)
		}
	}
	if r.GangueToSlag < 0 || r.GangueToSlag > 1 {
		return fmt.Errorf("gangue-to-slag fraction must be in [0,1], got %f", r.GangueToSlag)
	}
	return nil
}
