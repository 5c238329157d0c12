package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/isf-sim/isf-sim/furnace"
)

// Simulation input flags shared by the run and sweep subcommands. Each
// command registers the same set and binds it under its own viper
// namespace, so ISFSIM_RUN_* / ISFSIM_SWEEP_* env vars work too.
var (
	scenarioPath string // Path to a YAML scenario file (overrides input flags)

	feedRateTPH   float64 // Feed throughput (t/h)
	znFrac        float64 // Zn mass fraction in feed
	pbFrac        float64 // Pb mass fraction in feed
	feFrac        float64 // Fe mass fraction in feed
	sFrac         float64 // S mass fraction in feed
	siFrac        float64 // Si mass fraction in feed
	caFrac        float64 // Ca mass fraction in feed
	mgFrac        float64 // Mg mass fraction in feed
	oFrac         float64 // O mass fraction in feed
	normalizeFeed bool    // Rescale fractions to sum to 1

	cokeRateKgph float64 // Coke consumption (kg/h)
	znTargetTPH  float64 // Planned zinc metal production (t/h)
	cokeLHV      float64 // Coke lower heating value (MJ/kg)

	// Optional measured operating parameters; only forwarded when the
	// flag was explicitly set.
	preheatTempC     float64
	blastPressureBar float64
	reductionTempC   float64
	leadSplashTempC  float64
)

// registerInputFlags attaches the simulation input flags to a command and
// binds them into the command's viper namespace.
func registerInputFlags(cmd *cobra.Command, namespace string) {
	flags := cmd.Flags()

	flags.StringVar(&scenarioPath, "scenario", "", "YAML scenario file (takes precedence over input flags)")

	flags.Float64Var(&feedRateTPH, "feed-rate", 80.0, "Feed throughput (t/h)")
	flags.Float64Var(&znFrac, "zn-frac", 0.40, "Zn mass fraction in feed")
	flags.Float64Var(&pbFrac, "pb-frac", 0.08, "Pb mass fraction in feed")
	flags.Float64Var(&feFrac, "fe-frac", 0.15, "Fe mass fraction in feed")
	flags.Float64Var(&sFrac, "s-frac", 0.10, "S mass fraction in feed")
	flags.Float64Var(&siFrac, "si-frac", 0.12, "Si mass fraction in feed")
	flags.Float64Var(&caFrac, "ca-frac", 0.08, "Ca mass fraction in feed")
	flags.Float64Var(&mgFrac, "mg-frac", 0.03, "Mg mass fraction in feed")
	flags.Float64Var(&oFrac, "o-frac", 0.04, "O mass fraction in feed")
	flags.BoolVar(&normalizeFeed, "normalize-feed", false, "Rescale feed fractions to sum to 1")

	flags.Float64Var(&cokeRateKgph, "coke-rate", 18000.0, "Coke consumption (kg/h)")
	flags.Float64Var(&znTargetTPH, "zn-target", 30.0, "Planned zinc metal production (t/h)")
	flags.Float64Var(&cokeLHV, "coke-lhv", furnace.DefaultCokeLHVMJPerKg, "Coke lower heating value (MJ/kg)")

	flags.Float64Var(&preheatTempC, "preheat-temp", 800.0, "Measured sinter preheat temperature (C)")
	flags.Float64Var(&blastPressureBar, "blast-pressure", 2.0, "Measured blast pressure (bar)")
	flags.Float64Var(&reductionTempC, "reduction-temp", 1250.0, "Measured reduction zone temperature (C)")
	flags.Float64Var(&leadSplashTempC, "lead-splash-temp", 500.0, "Measured lead splash temperature (C)")

	for _, name := range []string{
		"scenario", "feed-rate", "zn-frac", "pb-frac", "fe-frac", "s-frac",
		"si-frac", "ca-frac", "mg-frac", "o-frac", "normalize-feed",
		"coke-rate", "zn-target", "coke-lhv",
	} {
		viper.BindPFlag(namespace+"."+name, flags.Lookup(name))
	}
}

// simulationInputs is everything a subcommand needs to run simulations.
type simulationInputs struct {
	Feed      furnace.Feed
	Operating furnace.OperatingConditions
	Engine    *furnace.Furnace
	Limits    furnace.OperatingLimits
	Sweep     furnace.SweepConfig
}

// resolveInputs builds the simulation inputs from a scenario file when
// given, or from the flag values otherwise.
func resolveInputs(cmd *cobra.Command, namespace string) (*simulationInputs, error) {
	if path := viper.GetString(namespace + ".scenario"); path != "" {
		sc, err := furnace.LoadScenario(path)
		if err != nil {
			return nil, err
		}
		if err := sc.Validate(); err != nil {
			return nil, err
		}
		return &simulationInputs{
			Feed:      sc.Feed(),
			Operating: sc.Operating(),
			Engine:    sc.Furnace(),
			Limits:    sc.Limits(),
			Sweep:     sc.Sweep(),
		}, nil
	}

	feed := furnace.Feed{
		ElementsWtFrac: map[furnace.Element]float64{
			furnace.Zn: viper.GetFloat64(namespace + ".zn-frac"),
			furnace.Pb: viper.GetFloat64(namespace + ".pb-frac"),
			furnace.Fe: viper.GetFloat64(namespace + ".fe-frac"),
			furnace.S:  viper.GetFloat64(namespace + ".s-frac"),
			furnace.Si: viper.GetFloat64(namespace + ".si-frac"),
			furnace.Ca: viper.GetFloat64(namespace + ".ca-frac"),
			furnace.Mg: viper.GetFloat64(namespace + ".mg-frac"),
			furnace.O:  viper.GetFloat64(namespace + ".o-frac"),
		},
		FeedRateTPH: viper.GetFloat64(namespace + ".feed-rate"),
	}
	if viper.GetBool(namespace + ".normalize-feed") {
		furnace.NormalizeFractions(feed.ElementsWtFrac)
	}
	if err := feed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid feed inputs: %w", err)
	}

	op := furnace.OperatingConditions{
		CokeRateKgph:          viper.GetFloat64(namespace + ".coke-rate"),
		ZnProductionTargetTPH: viper.GetFloat64(namespace + ".zn-target"),
		CokeLHVMJPerKg:        viper.GetFloat64(namespace + ".coke-lhv"),
	}
	// Measured parameters are optional: forward only flags the user set.
	if cmd.Flags().Changed("preheat-temp") {
		op.SinterPreheatTempC = furnace.Float64Ptr(preheatTempC)
	}
	if cmd.Flags().Changed("blast-pressure") {
		op.BlastPressureBar = furnace.Float64Ptr(blastPressureBar)
	}
	if cmd.Flags().Changed("reduction-temp") {
		op.ReductionZoneTempC = furnace.Float64Ptr(reductionTempC)
	}
	if cmd.Flags().Changed("lead-splash-temp") {
		op.LeadSplashTempC = furnace.Float64Ptr(leadSplashTempC)
	}
	if err := op.Validate(); err != nil {
		return nil, fmt.Errorf("invalid operating inputs: %w", err)
	}

	return &simulationInputs{
		Feed:      feed,
		Operating: op,
		Engine:    furnace.NewFurnace(),
		Limits:    furnace.DefaultLimits(),
		Sweep:     furnace.DefaultSweepConfig(),
	}, nil
}

func init() {
	viper.SetEnvPrefix("ISFSIM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()
}
