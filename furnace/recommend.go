package furnace

import "fmt"

// Recovery, intensity, and production bands used for operator guidance.
const (
	lowRecoveryPct      = 85.0
	moderateRecoveryPct = 92.0

	highIntensityGJPerT       = 4.5
	acceptableIntensityGJPerT = 3.5

	targetBandFraction = 0.10
)

// Recommendations derives operator guidance from a simulation's KPIs.
// The text is advisory; the thresholds encode typical ISF performance
// bands. Pure derivation, safe to call repeatedly.
func Recommendations(result *SimulationResult) []string {
	recs := []string{}

	recovery := result.ZincRecoveryPct()
	switch {
	case recovery < lowRecoveryPct:
		recs = append(recs, "Zinc recovery is relatively low. Consider improving feed preparation "+
			"(sinter quality, temperature profile) or adjusting furnace conditions to increase metal recovery.")
	case recovery < moderateRecoveryPct:
		recs = append(recs, "Zinc recovery is moderate. Small improvements in operating practice or "+
			"feed quality could push recovery into a higher performance band.")
	default:
		recs = append(recs, "Zinc recovery is high. Focus on maintaining stable operating conditions "+
			"and monitoring for early signs of deterioration.")
	}

	intensity := result.CokeEnergyIntensityGJPerTZn()
	switch {
	case intensity > highIntensityGJPerT:
		recs = append(recs, "Coke energy intensity is high. Investigate opportunities to reduce coke rate "+
			"(air distribution, burden distribution, heat recovery) while maintaining metal quality.")
	case intensity > acceptableIntensityGJPerT:
		recs = append(recs, "Coke energy intensity is acceptable but could likely be reduced. "+
			"Consider optimisation trials with slightly lower coke rates.")
	case intensity > 0:
		recs = append(recs, "Coke energy intensity is relatively low for the assumed zinc output. "+
			"Ensure that this is sustainable and does not compromise furnace stability.")
	}

	production := result.ZincProductionTPH()
	target := result.Operating.ZnProductionTargetTPH
	switch {
	case production < (1-targetBandFraction)*target:
		recs = append(recs, fmt.Sprintf("Simulated zinc production (%.1f t/h) is well below the target (%.1f t/h). "+
			"Consider increasing feed rate, improving recovery, or revisiting the production target.", production, target))
	case production > (1+targetBandFraction)*target:
		recs = append(recs, fmt.Sprintf("Simulated zinc production (%.1f t/h) is above the target (%.1f t/h). "+
			"Confirm that downstream units can handle the extra throughput.", production, target))
	default:
		recs = append(recs, "Simulated zinc production is close to the target, indicating a good match "+
			"between furnace operation and planning assumptions.")
	}

	return recs
}
