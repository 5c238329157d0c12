package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/isf-sim/isf-sim/furnace"
)

// printReport renders the full console report for one simulation: the
// five streams, KPIs, mass closure, SOP compliance, and operator
// recommendations. Pure formatting over engine outputs.
func printReport(w io.Writer, result *furnace.SimulationResult, compliance furnace.ComplianceResult, limits furnace.OperatingLimits) {
	fmt.Fprintf(w, "=== ISF Furnace Steady-State Simulation (run %s) ===\n", result.RunID)

	printStreamTable(w, result.Feed)
	printStreamTable(w, result.Coke)
	printStreamTable(w, result.Metal)
	printStreamTable(w, result.Slag)
	printStreamTable(w, result.Gas)

	fmt.Fprintln(w, "=== KPIs ===")
	fmt.Fprintf(w, "Zinc recovery to metal : %5.1f %%\n", result.ZincRecoveryPct())
	fmt.Fprintf(w, "Coke energy intensity  : %5.2f GJ/t Zn\n", result.CokeEnergyIntensityGJPerTZn())
	fmt.Fprintf(w, "Zinc metal production  : %5.2f t/h (target %.2f t/h)\n",
		result.ZincProductionTPH(), result.Operating.ZnProductionTargetTPH)

	closure := result.MassClosure()
	fmt.Fprintf(w, "Mass closure           : in %.1f kg/h, out %.1f kg/h, loss %.1f kg/h (%.4f %%)\n",
		closure.InputKgph, closure.OutputKgph, closure.LossKgph, 100*closure.LossFraction)

	fmt.Fprintln(w, "\n=== SOP Compliance ===")
	fmt.Fprintf(w, "Slag-to-feed ratio   : %.3f (target %.3f ± %.3f) -> %s\n",
		compliance.SlagToFeedRatio, limits.SlagToFeedRatioTarget, limits.SlagToFeedRatioTol,
		okLabel(compliance.SlagToFeedWithinLimit))
	fmt.Fprintf(w, "Residual Zn in slag  : %.2f wt%% (limit %.2f wt%%) -> %s\n",
		100*compliance.ResidualZnInSlagWtFrac, 100*limits.ResidualZnInSlagMaxWtFrac,
		okLabel(compliance.ResidualZnInSlagWithinLimit))
	fmt.Fprintf(w, "Zinc product purity  : %.2f wt%% (min %.2f wt%%) -> %s\n",
		100*compliance.ZincProductPurityWtFrac, 100*limits.ZincProductPurityMinWtFrac,
		okLabel(compliance.ZincProductPurityWithinSpec))
	fmt.Fprintf(w, "Sinter preheat temp  : %s\n", compliance.SinterPreheatTempWithinSpec)
	fmt.Fprintf(w, "Blast pressure       : %s\n", compliance.BlastPressureWithinSpec)
	fmt.Fprintf(w, "Lead splash temp     : %s\n", compliance.LeadSplashTempWithinSpec)
	if t := result.Operating.ReductionZoneTempC; t != nil {
		// Reported but not checked; no SOP limit exists for it.
		fmt.Fprintf(w, "Reduction zone temp  : %.0f C (reported only)\n", *t)
	}

	fmt.Fprintln(w, "\n=== Recommendations ===")
	for _, rec := range furnace.Recommendations(result) {
		fmt.Fprintf(w, " - %s\n", rec)
	}
}

// printStreamTable prints one stream as element / kg/h / wt% rows.
func printStreamTable(w io.Writer, stream furnace.Stream) {
	total := stream.Total()
	fmt.Fprintf(w, "\n%s\n", stream.Name)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Element\tMass (kg/h)\tWt %")
	for _, el := range stream.ElementOrder() {
		mass := stream.Get(el)
		var wtPct float64
		if total > 0 {
			wtPct = 100 * mass / total
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%6.2f\n", el, mass, wtPct)
	}
	tw.Flush()
	fmt.Fprintf(w, "Total: %.1f kg/h\n", total)
}

func okLabel(ok bool) string {
	if ok {
		return "OK"
	}
	return "OUT OF SPEC"
}
