package furnace

import "sort"

// Element is a chemical element symbol (or pseudo-component such as Ash)
// carried through the mass balance. The tracked set below gets explicit
// recovery splits; any other symbol routes through the gangue path, so
// arbitrary trace elements remain representable.
type Element string

const (
	Zn  Element = "Zn"
	Pb  Element = "Pb"
	Fe  Element = "Fe"
	S   Element = "S"
	C   Element = "C"
	O   Element = "O"
	Si  Element = "Si"
	Ca  Element = "Ca"
	Mg  Element = "Mg"
	Al  Element = "Al"
	Ash Element = "Ash"
)

// TrackedElements are the elements with explicit per-destination recovery
// fractions. Everything else (except C and O, which report wholly to gas)
// is treated as gangue.
var TrackedElements = []Element{Zn, Pb, Fe, S}

// combustionElements originate from fuel combustion and report entirely
// to the off-gas stream, unsplit.
var combustionElements = map[Element]bool{C: true, O: true}

func isTracked(el Element) bool {
	for _, t := range TrackedElements {
		if el == t {
			return true
		}
	}
	return false
}

// NormalizeFractions rescales a fraction map in place so it sums to 1,
// accumulating in canonical order for reproducibility. A zero or empty
// map is left untouched.
func NormalizeFractions(fractions map[Element]float64) {
	var sum float64
	for _, el := range canonicalOrder(fractions) {
		sum += fractions[el]
	}
	if sum <= 0 {
		return
	}
	for _, el := range canonicalOrder(fractions) {
		fractions[el] /= sum
	}
}

// canonicalOrder returns the element keys of m in sorted order so that
// every accumulation iterates in a fixed, reproducible sequence. Map
// iteration order in Go is randomized; floating-point accumulation must
// not be.
func canonicalOrder(m map[Element]float64) []Element {
	keys := make([]Element, 0, len(m))
	for el := range m {
		keys = append(keys, el)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
