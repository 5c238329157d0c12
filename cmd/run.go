package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/isf-sim/isf-sim/furnace"
)

// runCmd executes one steady-state simulation from CLI flags or a
// scenario file and prints the full report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one furnace balance and report streams, KPIs, and SOP compliance",
	Run: func(cmd *cobra.Command, args []string) {
		inputs, err := resolveInputs(cmd, "run")
		if err != nil {
			logrus.Fatalf("unable to resolve simulation inputs: %v", err)
		}

		result, err := inputs.Engine.Simulate(inputs.Feed, inputs.Operating)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		compliance := furnace.EvaluateCompliance(result, inputs.Limits)
		printReport(cmd.OutOrStdout(), result, compliance, inputs.Limits)
	},
}

func init() {
	registerInputFlags(runCmd, "run")
	rootCmd.AddCommand(runCmd)
}
