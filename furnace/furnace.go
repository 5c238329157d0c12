package furnace

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// closureWarnTolerance is the relative mass loss above which Simulate
// emits a warning. Losses below it are floating-point noise.
const closureWarnTolerance = 1e-9

// Furnace is the steady-state ISF balance engine: a lumped element-wise
// mass balance with configured recovery/distribution fractions. The
// configuration is immutable once the furnace is built, so one Furnace
// may serve concurrent Simulate calls without coordination.
type Furnace struct {
	Recoveries RecoveryParameters
	Fuel       FuelSpec
}

// NewFurnace builds an engine with the default recoveries and coke spec.
func NewFurnace() *Furnace {
	return &Furnace{Recoveries: DefaultRecoveries(), Fuel: DefaultCokeSpec()}
}

// NewFurnaceWith builds an engine with explicit configuration.
func NewFurnaceWith(recoveries RecoveryParameters, fuel FuelSpec) *Furnace {
	return &Furnace{Recoveries: recoveries, Fuel: fuel}
}

// Simulate runs one steady-state balance for a feed and operating point.
// It is a pure function of its inputs and the furnace configuration:
// identical inputs produce bit-identical results, because every
// element-wise accumulation iterates in canonical order.
func (f *Furnace) Simulate(feed Feed, op OperatingConditions) (*SimulationResult, error) {
	if err := feed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid feed: %w", err)
	}
	if err := op.Validate(); err != nil {
		return nil, fmt.Errorf("invalid operating conditions: %w", err)
	}
	if err := f.Recoveries.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recovery parameters: %w", err)
	}
	if err := f.Fuel.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fuel spec: %w", err)
	}

	feedStream := feed.ToStream("Feed")
	cokeStream := f.Fuel.ToStream("Coke", op.CokeRateKgph)

	totalInput := combineStreams(feedStream, cokeStream)

	metal := make(map[Element]float64)
	slag := make(map[Element]float64)
	gas := make(map[Element]float64)

	// Tracked elements get explicit three-way splits.
	for _, el := range TrackedElements {
		mass := totalInput[el]
		sp := f.Recoveries.splitFor(el)
		metal[el] = mass * sp.toMetal
		slag[el] = mass * sp.toSlag
		gas[el] = mass * sp.toGas
	}

	// Everything else except C and O is gangue: a configured fraction to
	// slag, the remainder of that element to gas.
	for _, el := range canonicalOrder(totalInput) {
		if isTracked(el) || combustionElements[el] {
			continue
		}
		mass := totalInput[el]
		toSlag := mass * f.Recoveries.GangueToSlag
		slag[el] += toSlag
		gas[el] += mass - toSlag
	}

	// Carbon and oxygen from combustion report entirely to gas (CO, CO2).
	gas[C] += totalInput[C]
	gas[O] += totalInput[O]

	result := &SimulationResult{
		RunID:      uuid.NewString(),
		Feed:       feedStream,
		Coke:       cokeStream,
		Metal:      NewStream("Metal", metal),
		Slag:       NewStream("Slag", slag),
		Gas:        NewStream("Off-gas", gas),
		Operating:  op,
		Recoveries: f.Recoveries,
	}

	if closure := result.MassClosure(); closure.LossFraction > closureWarnTolerance {
		logrus.Warnf("[run %s] mass balance not closed: %.3f kg/h unallocated (%.4f%% of input)",
			result.RunID, closure.LossKgph, 100*closure.LossFraction)
	}
	logrus.Debugf("[run %s] simulated feed %.1f t/h, coke %.1f kg/h", result.RunID, feed.FeedRateTPH, op.CokeRateKgph)

	return result, nil
}

// combineStreams element-wise-sums streams into a single mapping; missing
// elements are treated as zero.
func combineStreams(streams ...Stream) map[Element]float64 {
	combined := make(map[Element]float64)
	for _, s := range streams {
		elements := s.Elements()
		for _, el := range canonicalOrder(elements) {
			combined[el] += elements[el]
		}
	}
	return combined
}
