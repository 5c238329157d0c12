package furnace

import "math"

// Verdict is the outcome of one compliance check. Checks over optional
// measured parameters must distinguish "not measured" from pass/fail, so
// this is a tri-state, not a boolean.
type Verdict int

const (
	VerdictNotApplicable Verdict = iota
	VerdictPass
	VerdictFail
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictFail:
		return "fail"
	default:
		return "n/a"
	}
}

// Applicable reports whether the check had a measured value to judge.
func (v Verdict) Applicable() bool { return v != VerdictNotApplicable }

// OK reports whether the check passed. A not-applicable verdict is not OK
// and not a failure; callers that need the distinction use Applicable.
func (v Verdict) OK() bool { return v == VerdictPass }

// ComplianceResult summarizes how a simulation compares to SOP limits:
// three ratios computed from the balance, each with a within-limit flag,
// plus tri-state verdicts for the optional measured parameters.
type ComplianceResult struct {
	SlagToFeedRatio       float64
	SlagToFeedWithinLimit bool

	ResidualZnInSlagWtFrac      float64
	ResidualZnInSlagWithinLimit bool

	ZincProductPurityWtFrac     float64
	ZincProductPurityWithinSpec bool

	SinterPreheatTempWithinSpec Verdict
	BlastPressureWithinSpec     Verdict
	LeadSplashTempWithinSpec    Verdict
}

// AllWithinLimits reports whether every applicable check passed.
// Not-applicable measured checks do not count against compliance.
func (c ComplianceResult) AllWithinLimits() bool {
	if !c.SlagToFeedWithinLimit || !c.ResidualZnInSlagWithinLimit || !c.ZincProductPurityWithinSpec {
		return false
	}
	for _, v := range []Verdict{c.SinterPreheatTempWithinSpec, c.BlastPressureWithinSpec, c.LeadSplashTempWithinSpec} {
		if v == VerdictFail {
			return false
		}
	}
	return true
}

// EvaluateCompliance compares a simulation result and any measured
// operating data against SOP limits. Zero-throughput denominators yield
// ratio 0 rather than an error; a zero-feed operating point is valid.
func EvaluateCompliance(result *SimulationResult, limits OperatingLimits) ComplianceResult {
	feedMass := result.Feed.Total()
	slagMass := result.Slag.Total()
	metalMass := result.Metal.Total()

	var slagToFeed float64
	if feedMass > 0 {
		slagToFeed = slagMass / feedMass
	}
	var residualZn float64
	if slagMass > 0 {
		residualZn = result.Slag.Get(Zn) / slagMass
	}
	var purity float64
	if metalMass > 0 {
		purity = result.Metal.Get(Zn) / metalMass
	}

	out := ComplianceResult{
		SlagToFeedRatio:       slagToFeed,
		SlagToFeedWithinLimit: math.Abs(slagToFeed-limits.SlagToFeedRatioTarget) <= limits.SlagToFeedRatioTol,

		ResidualZnInSlagWtFrac:      residualZn,
		ResidualZnInSlagWithinLimit: residualZn <= limits.ResidualZnInSlagMaxWtFrac,

		ZincProductPurityWtFrac:     purity,
		ZincProductPurityWithinSpec: purity >= limits.ZincProductPurityMinWtFrac,
	}

	op := result.Operating
	out.SinterPreheatTempWithinSpec = checkBand(op.SinterPreheatTempC,
		limits.SinterPreheatTempTargetC-limits.SinterPreheatTempTolC,
		limits.SinterPreheatTempTargetC+limits.SinterPreheatTempTolC)
	out.BlastPressureWithinSpec = checkBand(op.BlastPressureBar,
		limits.BlastPressureMinBar, limits.BlastPressureMaxBar)
	out.LeadSplashTempWithinSpec = checkBand(op.LeadSplashTempC,
		limits.LeadSplashTempMinC, limits.LeadSplashTempMaxC)

	return out
}

// checkBand judges an optional measured value against inclusive bounds.
func checkBand(measured *float64, low, high float64) Verdict {
	if measured == nil {
		return VerdictNotApplicable
	}
	if low <= *measured && *measured <= high {
		return VerdictPass
	}
	return VerdictFail
}
