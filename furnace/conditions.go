package furnace

import "fmt"

// OperatingConditions carries the furnace operating point used for KPIs
// and SOP compliance checks.
//
// The four measured parameters are each independently optional: a nil
// pointer means "not measured" and the corresponding compliance verdict
// becomes not-applicable. ReductionZoneTempC has no SOP limit in this
// table; it is carried through for reporting only.
type OperatingConditions struct {
	CokeRateKgph          float64
	ZnProductionTargetTPH float64
	CokeLHVMJPerKg        float64

	SinterPreheatTempC *float64
	BlastPressureBar   *float64
	ReductionZoneTempC *float64
	LeadSplashTempC    *float64
}

// DefaultCokeLHVMJPerKg is the lower heating value assumed for coke when
// a scenario does not override it.
const DefaultCokeLHVMJPerKg = 28.0

// Validate checks rates and heating value.
func (op OperatingConditions) Validate() error {
	if op.CokeRateKgph < 0 {
		return fmt.Errorf("coke rate must be non-negative, got %f kg/h", op.CokeRateKgph)
	}
	if op.ZnProductionTargetTPH < 0 {
		return fmt.Errorf("zinc production target must be non-negative, got %f t/h", op.ZnProductionTargetTPH)
	}
	if op.CokeLHVMJPerKg <= 0 {
		return fmt.Errorf("coke LHV must be positive, got %f MJ/kg", op.CokeLHVMJPerKg)
	}
	return nil
}

// Float64Ptr is a convenience for populating the optional measured fields.
func Float64Ptr(v float64) *float64 { return &v }
