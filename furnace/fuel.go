package furnace

import "fmt"

// FuelSpec is the mass-fraction composition of the solid fuel charged to
// the furnace. It is injectable configuration consumed by the engine, not
// a constant baked into it; DefaultCokeSpec supplies the usual
// metallurgical coke analysis.
type FuelSpec struct {
	Carbon float64
	Sulfur float64
	Ash    float64
}

// DefaultCokeSpec returns a typical metallurgical coke composition.
func DefaultCokeSpec() FuelSpec {
	return FuelSpec{Carbon: 0.90, Sulfur: 0.01, Ash: 0.09}
}

// Validate checks the fuel composition fractions.
func (fs FuelSpec) Validate() error {
	fracs := map[string]float64{"carbon": fs.Carbon, "sulfur": fs.Sulfur, "ash": fs.Ash}
	for _, name := range []string{"ash", "carbon", "sulfur"} {
		if frac := fracs[name]; frac < 0 || frac > 1 {
			return fmt.Errorf("fuel %s fraction must be in [0,1], got %f", name, frac)
		}
	}
	if sum := fs.Carbon + fs.Sulfur + fs.Ash; sum > 1 {
		return fmt.Errorf("fuel composition fractions sum to %f, must not exceed 1", sum)
	}
	return nil
}

// ToStream scales the composition by a fuel rate (kg/h) into a stream.
func (fs FuelSpec) ToStream(name string, rateKgph float64) Stream {
	return NewStream(name, map[Element]float64{
		C:   fs.Carbon * rateKgph,
		S:   fs.Sulfur * rateKgph,
		Ash: fs.Ash * rateKgph,
	})
}
