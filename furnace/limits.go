package furnace

import "fmt"

// OperatingLimits is the SOP reference table the compliance evaluator
// checks against. Defaults are derived from ISF-SOP-001, sections 4-5.
type OperatingLimits struct {
	SinterPreheatTempTargetC float64
	SinterPreheatTempTolC    float64

	BlastPressureMinBar float64
	BlastPressureMaxBar float64

	LeadSplashTempMinC float64
	LeadSplashTempMaxC float64

	SlagToFeedRatioTarget float64
	SlagToFeedRatioTol    float64

	ResidualZnInSlagMaxWtFrac  float64
	ZincProductPurityMinWtFrac float64
}

// DefaultLimits returns the ISF-SOP-001 limit table.
func DefaultLimits() OperatingLimits {
	return OperatingLimits{
		SinterPreheatTempTargetC: 800.0,
		SinterPreheatTempTolC:    10.0,

		BlastPressureMinBar: 1.8,
		BlastPressureMaxBar: 2.2,

		LeadSplashTempMinC: 450.0,
		LeadSplashTempMaxC: 550.0,

		SlagToFeedRatioTarget: 0.12,
		SlagToFeedRatioTol:    0.03,

		ResidualZnInSlagMaxWtFrac:  0.02,
		ZincProductPurityMinWtFrac: 0.995,
	}
}

// Validate checks the limit table for inverted bands and out-of-range
// fractions.
func (l OperatingLimits) Validate() error {
	if l.SinterPreheatTempTolC < 0 {
		return fmt.Errorf("sinter preheat tolerance must be non-negative, got %f", l.SinterPreheatTempTolC)
	}
	if l.BlastPressureMinBar > l.BlastPressureMaxBar {
		return fmt.Errorf("blast pressure band inverted: min %f > max %f", l.BlastPressureMinBar, l.BlastPressureMaxBar)
	}
	if l.LeadSplashTempMinC > l.LeadSplashTempMaxC {
		return fmt.Errorf("lead splash temperature band inverted: min %f > max %f", l.LeadSplashTempMinC, l.LeadSplashTempMaxC)
	}
	if l.SlagToFeedRatioTol < 0 {
		return fmt.Errorf("slag-to-feed ratio tolerance must be non-negative, got %f", l.SlagToFeedRatioTol)
	}
	if l.ResidualZnInSlagMaxWtFrac < 0 || l.ResidualZnInSlagMaxWtFrac > 1 {
		return fmt.Errorf("residual Zn-in-slag limit must be in [0,1], got %f", l.ResidualZnInSlagMaxWtFrac)
	}
	if l.ZincProductPurityMinWtFrac < 0 || l.ZincProductPurityMinWtFrac > 1 {
		return fmt.Errorf("zinc product purity minimum must be in [0,1], got %f", l.ZincProductPurityMinWtFrac)
	}
	return nil
}
