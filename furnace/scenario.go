package furnace

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is the top-level YAML configuration for one furnace case:
// the feed, the operating point, and optional overrides of recoveries,
// limits, fuel composition, and sweep parameters. Loaded via
// LoadScenario(path) with strict parsing.
type Scenario struct {
	Name      string             `yaml:"name"`
	FeedSpec  FeedSpec           `yaml:"feed"`
	OpSpec    OperatingSpec      `yaml:"operating"`
	Recovery  *RecoveryOverrides `yaml:"recoveries,omitempty"`
	LimitSpec *LimitOverrides    `yaml:"limits,omitempty"`
	FuelSpec  *FuelOverrides     `yaml:"fuel,omitempty"`
	SweepSpec *SweepOverrides    `yaml:"sweep,omitempty"`
}

// FeedSpec describes the feed block of a scenario.
type FeedSpec struct {
	RateTPH        float64            `yaml:"rate_tph"`
	ElementsWtFrac map[string]float64 `yaml:"elements_wtfrac"`
	Normalize      bool               `yaml:"normalize,omitempty"`
}

// OperatingSpec describes the operating block of a scenario.
type OperatingSpec struct {
	CokeRateKgph   float64       `yaml:"coke_rate_kgph"`
	ZnTargetTPH    float64       `yaml:"zn_target_tph"`
	CokeLHVMJPerKg float64       `yaml:"coke_lhv_mj_per_kg,omitempty"`
	Measured       *MeasuredSpec `yaml:"measured,omitempty"`
}

// MeasuredSpec carries the optional measured operating parameters. Each
// field is independently optional; absent fields stay nil and their SOP
// checks come back not-applicable.
type MeasuredSpec struct {
	SinterPreheatTempC *float64 `yaml:"sinter_preheat_temp_c,omitempty"`
	BlastPressureBar   *float64 `yaml:"blast_pressure_bar,omitempty"`
	ReductionZoneTempC *float64 `yaml:"reduction_zone_temp_c,omitempty"`
	LeadSplashTempC    *float64 `yaml:"lead_splash_temp_c,omitempty"`
}

// RecoveryOverrides overlays individual recovery fractions on the
// defaults; nil fields keep the default value.
type RecoveryOverrides struct {
	ZnToMetal *float64 `yaml:"zn_to_metal,omitempty"`
	ZnToSlag  *float64 `yaml:"zn_to_slag,omitempty"`
	ZnToGas   *float64 `yaml:"zn_to_gas,omitempty"`

	PbToMetal *float64 `yaml:"pb_to_metal,omitempty"`
	PbToSlag  *float64 `yaml:"pb_to_slag,omitempty"`
	PbToGas   *float64 `yaml:"pb_to_gas,omitempty"`

	FeToMetal *float64 `yaml:"fe_to_metal,omitempty"`
	FeToSlag  *float64 `yaml:"fe_to_slag,omitempty"`
	FeToGas   *float64 `yaml:"fe_to_gas,omitempty"`

	SToSlag *float64 `yaml:"s_to_slag,omitempty"`
	SToGas  *float64 `yaml:"s_to_gas,omitempty"`

	GangueToSlag *float64 `yaml:"gangue_to_slag,omitempty"`
}

// LimitOverrides overlays individual SOP limits on the defaults.
type LimitOverrides struct {
	SinterPreheatTempTargetC *float64 `yaml:"sinter_preheat_temp_target_c,omitempty"`
	SinterPreheatTempTolC    *float64 `yaml:"sinter_preheat_temp_tol_c,omitempty"`

	BlastPressureMinBar *float64 `yaml:"blast_pressure_min_bar,omitempty"`
	BlastPressureMaxBar *float64 `yaml:"blast_pressure_max_bar,omitempty"`

	LeadSplashTempMinC *float64 `yaml:"lead_splash_temp_min_c,omitempty"`
	LeadSplashTempMaxC *float64 `yaml:"lead_splash_temp_max_c,omitempty"`

	SlagToFeedRatioTarget *float64 `yaml:"slag_to_feed_ratio_target,omitempty"`
	SlagToFeedRatioTol    *float64 `yaml:"slag_to_feed_ratio_tol,omitempty"`

	ResidualZnInSlagMaxWtFrac  *float64 `yaml:"residual_zn_in_slag_max_wtfrac,omitempty"`
	ZincProductPurityMinWtFrac *float64 `yaml:"zinc_product_purity_min_wtfrac,omitempty"`
}

// FuelOverrides overlays a fuel composition on the default coke spec.
type FuelOverrides struct {
	Carbon *float64 `yaml:"carbon,omitempty"`
	Sulfur *float64 `yaml:"sulfur,omitempty"`
	Ash    *float64 `yaml:"ash,omitempty"`
}

// SweepOverrides overlays sweep parameters on the defaults.
type SweepOverrides struct {
	Points      *int     `yaml:"points,omitempty"`
	MinFactor   *float64 `yaml:"min_factor,omitempty"`
	MaxFactor   *float64 `yaml:"max_factor,omitempty"`
	MinRateKgph *float64 `yaml:"min_rate_kgph,omitempty"`
	Workers     *int     `yaml:"workers,omitempty"`
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate materializes every block and runs its validation, so a bad
// scenario fails before any simulation starts.
func (sc *Scenario) Validate() error {
	if len(sc.FeedSpec.ElementsWtFrac) == 0 {
		return fmt.Errorf("scenario %q: feed has no elements", sc.Name)
	}
	if err := sc.Feed().Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if err := sc.Operating().Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if err := sc.Recoveries().Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if err := sc.Limits().Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if err := sc.Fuel().Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	if err := sc.Sweep().Validate(); err != nil {
		return fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return nil
}

// Feed materializes the feed block. With normalize set, fractions are
// rescaled to sum to 1 (the interactive-input convention); otherwise they
// pass through untouched.
func (sc *Scenario) Feed() Feed {
	fractions := make(map[Element]float64, len(sc.FeedSpec.ElementsWtFrac))
	for symbol, frac := range sc.FeedSpec.ElementsWtFrac {
		fractions[Element(symbol)] = frac
	}
	if sc.FeedSpec.Normalize {
		NormalizeFractions(fractions)
	}
	return Feed{ElementsWtFrac: fractions, FeedRateTPH: sc.FeedSpec.RateTPH}
}

// Operating materializes the operating block, defaulting the coke LHV.
func (sc *Scenario) Operating() OperatingConditions {
	op := OperatingConditions{
		CokeRateKgph:          sc.OpSpec.CokeRateKgph,
		ZnProductionTargetTPH: sc.OpSpec.ZnTargetTPH,
		CokeLHVMJPerKg:        sc.OpSpec.CokeLHVMJPerKg,
	}
	if op.CokeLHVMJPerKg == 0 {
		op.CokeLHVMJPerKg = DefaultCokeLHVMJPerKg
	}
	if m := sc.OpSpec.Measured; m != nil {
		op.SinterPreheatTempC = m.SinterPreheatTempC
		op.BlastPressureBar = m.BlastPressureBar
		op.ReductionZoneTempC = m.ReductionZoneTempC
		op.LeadSplashTempC = m.LeadSplashTempC
	}
	return op
}

// Recoveries materializes the recovery table: defaults plus overrides.
func (sc *Scenario) Recoveries() RecoveryParameters {
	r := DefaultRecoveries()
	o := sc.Recovery
	if o == nil {
		return r
	}
	overlay(&r.ZnToMetal, o.ZnToMetal)
	overlay(&r.ZnToSlag, o.ZnToSlag)
	overlay(&r.ZnToGas, o.ZnToGas)
	overlay(&r.PbToMetal, o.PbToMetal)
	overlay(&r.PbToSlag, o.PbToSlag)
	overlay(&r.PbToGas, o.PbToGas)
	overlay(&r.FeToMetal, o.FeToMetal)
	overlay(&r.FeToSlag, o.FeToSlag)
	overlay(&r.FeToGas, o.FeToGas)
	overlay(&r.SToSlag, o.SToSlag)
	overlay(&r.SToGas, o.SToGas)
	overlay(&r.GangueToSlag, o.GangueToSlag)
	return r
}

// Limits materializes the SOP limit table: defaults plus overrides.
func (sc *Scenario) Limits() OperatingLimits {
	l := DefaultLimits()
	o := sc.LimitSpec
	if o == nil {
		return l
	}
	overlay(&l.SinterPreheatTempTargetC, o.SinterPreheatTempTargetC)
	overlay(&l.SinterPreheatTempTolC, o.SinterPreheatTempTolC)
	overlay(&l.BlastPressureMinBar, o.BlastPressureMinBar)
	overlay(&l.BlastPressureMaxBar, o.BlastPressureMaxBar)
	overlay(&l.LeadSplashTempMinC, o.LeadSplashTempMinC)
	overlay(&l.LeadSplashTempMaxC, o.LeadSplashTempMaxC)
	overlay(&l.SlagToFeedRatioTarget, o.SlagToFeedRatioTarget)
	overlay(&l.SlagToFeedRatioTol, o.SlagToFeedRatioTol)
	overlay(&l.ResidualZnInSlagMaxWtFrac, o.ResidualZnInSlagMaxWtFrac)
	overlay(&l.ZincProductPurityMinWtFrac, o.ZincProductPurityMinWtFrac)
	return l
}

// Fuel materializes the fuel composition: default coke plus overrides.
func (sc *Scenario) Fuel() FuelSpec {
	fs := DefaultCokeSpec()
	o := sc.FuelSpec
	if o == nil {
		return fs
	}
	overlay(&fs.Carbon, o.Carbon)
	overlay(&fs.Sulfur, o.Sulfur)
	overlay(&fs.Ash, o.Ash)
	return fs
}

// Sweep materializes the sweep config: defaults plus overrides.
func (sc *Scenario) Sweep() SweepConfig {
	cfg := DefaultSweepConfig()
	o := sc.SweepSpec
	if o == nil {
		return cfg
	}
	if o.Points != nil {
		cfg.Points = *o.Points
	}
	overlay(&cfg.MinFactor, o.MinFactor)
	overlay(&cfg.MaxFactor, o.MaxFactor)
	overlay(&cfg.MinRateKgph, o.MinRateKgph)
	if o.Workers != nil {
		cfg.Workers = *o.Workers
	}
	return cfg
}

// Furnace materializes an engine from the scenario configuration.
func (sc *Scenario) Furnace() *Furnace {
	return NewFurnaceWith(sc.Recoveries(), sc.Fuel())
}

func overlay(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
