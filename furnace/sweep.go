package furnace

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// SweepConfig parameterizes a coke-rate sweep around an operating point.
// The swept rates span [MinFactor, MaxFactor] times the base coke rate,
// floored at MinRateKgph so the low end stays physically sensible.
type SweepConfig struct {
	Points      int
	MinFactor   float64
	MaxFactor   float64
	MinRateKgph float64
	Workers     int
}

// DefaultSweepConfig mirrors the usual what-if band around an operating
// point: 25 points from 60% to 140% of the base coke rate.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Points:      25,
		MinFactor:   0.6,
		MaxFactor:   1.4,
		MinRateKgph: 5000.0,
		Workers:     runtime.NumCPU(),
	}
}

// Validate checks the sweep parameters.
func (c SweepConfig) Validate() error {
	if c.Points < 2 {
		return fmt.Errorf("sweep needs at least 2 points, got %d", c.Points)
	}
	if c.MinFactor <= 0 || c.MaxFactor < c.MinFactor {
		return fmt.Errorf("sweep factor band invalid: min %f, max %f", c.MinFactor, c.MaxFactor)
	}
	if c.MinRateKgph < 0 {
		return fmt.Errorf("sweep minimum rate must be non-negative, got %f kg/h", c.MinRateKgph)
	}
	if c.Workers < 1 {
		return fmt.Errorf("sweep needs at least 1 worker, got %d", c.Workers)
	}
	return nil
}

// SweepPoint is one simulated operating point of a sweep.
type SweepPoint struct {
	CokeRateKgph              float64
	ZincRecoveryPct           float64
	CokeEnergyIntensityGJPerT float64
	ZincProductionTPH         float64
}

// CokeRateSweep simulates the same feed across a span of coke rates.
// Every point is an independent Simulate call sharing only immutable
// configuration, so the points run on a bounded worker pool; the returned
// slice is ordered by ascending coke rate regardless of completion order.
func (f *Furnace) CokeRateSweep(feed Feed, op OperatingConditions, cfg SweepConfig) ([]SweepPoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sweep config: %w", err)
	}

	low := op.CokeRateKgph * cfg.MinFactor
	if low < cfg.MinRateKgph {
		low = cfg.MinRateKgph
	}
	high := op.CokeRateKgph * cfg.MaxFactor
	if high < low {
		high = low
	}
	rates := floats.Span(make([]float64, cfg.Points), low, high)

	points := make([]SweepPoint, len(rates))
	errs := make([]error, len(rates))

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.Workers)
	for i, rate := range rates {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, rate float64) {
			defer wg.Done()
			defer func() { <-sem }()
			pointOp := op
			pointOp.CokeRateKgph = rate
			result, err := f.Simulate(feed, pointOp)
			if err != nil {
				errs[i] = fmt.Errorf("sweep point %d (coke %.1f kg/h): %w", i, rate, err)
				return
			}
			points[i] = SweepPoint{
				CokeRateKgph:              rate,
				ZincRecoveryPct:           result.ZincRecoveryPct(),
				CokeEnergyIntensityGJPerT: result.CokeEnergyIntensityGJPerTZn(),
				ZincProductionTPH:         result.ZincProductionTPH(),
			}
		}(i, rate)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
