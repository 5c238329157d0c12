package furnace

// SimulationResult is a fully self-describing balance: the product
// streams plus the input streams and configuration that produced them.
// It is immutable; the KPI methods are pure and may be re-derived any
// number of times with bit-identical results.
type SimulationResult struct {
	RunID string

	Feed  Stream
	Coke  Stream
	Metal Stream
	Slag  Stream
	Gas   Stream

	Operating  OperatingConditions
	Recoveries RecoveryParameters
}

// ZincRecoveryPct is the percentage of feed zinc reporting to metal.
// Defined as 0 when the feed carries no zinc.
func (r *SimulationResult) ZincRecoveryPct() float64 {
	feedZn := r.Feed.Get(Zn)
	if feedZn <= 0 {
		return 0
	}
	return 100.0 * r.Metal.Get(Zn) / feedZn
}

// CokeEnergyIntensityGJPerTZn is the coke energy spent per tonne of zinc
// metal produced. Defined as 0 when zinc production is 0.
func (r *SimulationResult) CokeEnergyIntensityGJPerTZn() float64 {
	znTPH := r.Metal.Get(Zn) / 1000.0
	if znTPH <= 0 {
		return 0
	}
	gjPerHour := (r.Operating.CokeRateKgph * r.Operating.CokeLHVMJPerKg) / 1000.0
	return gjPerHour / znTPH
}

// ZincProductionTPH is the simulated zinc metal production rate.
func (r *SimulationResult) ZincProductionTPH() float64 {
	return r.Metal.Get(Zn) / 1000.0
}

// MassClosure reports how much input mass the configured splits left
// unallocated. Split fractions summing below 1 lose mass silently during
// the balance; this diagnostic surfaces the gap instead of correcting it.
type MassClosure struct {
	InputKgph    float64
	OutputKgph   float64
	LossKgph     float64
	LossFraction float64
}

// MassClosure compares total input (feed + coke) against total output
// (metal + slag + gas).
func (r *SimulationResult) MassClosure() MassClosure {
	input := r.Feed.Total() + r.Coke.Total()
	output := r.Metal.Total() + r.Slag.Total() + r.Gas.Total()
	closure := MassClosure{InputKgph: input, OutputKgph: output, LossKgph: input - output}
	if input > 0 {
		closure.LossFraction = closure.LossKgph / input
	}
	return closure
}
