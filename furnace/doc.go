// Package furnace provides a steady-state elemental mass-balance engine
// for a zinc/lead Imperial Smelting Furnace.
//
// # Reading Guide
//
// Start with these three files to understand the balance kernel:
//   - stream.go: element-wise mass flow streams (kg/h), the common currency
//   - furnace.go: the engine — combine feed and fuel, split per element
//   - result.go: the immutable result and its KPI derivations
//
// # Architecture
//
// The caller builds a Feed and an OperatingConditions, the Furnace turns
// them into a SimulationResult, and two independent read-only consumers
// derive summaries from it: the KPI methods on SimulationResult and
// EvaluateCompliance against an OperatingLimits table. Recommendations
// and CokeRateSweep are convenience layers over repeated simulation.
//
// Every entity is immutable after construction and every element-wise
// accumulation iterates in canonical order, so results are bit-identical
// across reruns and safe to share across goroutines.
//
// Scenario files (scenario.go) are the YAML front door: defaults plus
// per-field overrides for feed, operating point, recoveries, SOP limits,
// fuel composition, and sweep parameters.
package furnace
