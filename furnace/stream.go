package furnace

// Stream is a named material stream with element-wise mass flows in kg/h.
// A Stream is immutable after construction: NewStream copies the element
// map, and derived streams are always new instances.
type Stream struct {
	Name     string
	elements map[Element]float64
}

// NewStream builds a stream from a name and element mass flows (kg/h).
// The map is copied so later mutation by the caller cannot leak in.
func NewStream(name string, elements map[Element]float64) Stream {
	copied := make(map[Element]float64, len(elements))
	for el, kgph := range elements {
		copied[el] = kgph
	}
	return Stream{Name: name, elements: copied}
}

// Total returns the total mass flow of the stream in kg/h, accumulated
// in canonical element order.
func (s Stream) Total() float64 {
	var total float64
	for _, el := range canonicalOrder(s.elements) {
		total += s.elements[el]
	}
	return total
}

// Get returns the mass flow of one element in kg/h (0 if absent).
func (s Stream) Get(el Element) float64 {
	return s.elements[el]
}

// Elements returns a copy of the element mass flows.
func (s Stream) Elements() map[Element]float64 {
	copied := make(map[Element]float64, len(s.elements))
	for el, kgph := range s.elements {
		copied[el] = kgph
	}
	return copied
}

// ElementOrder returns the stream's element symbols in canonical order.
func (s Stream) ElementOrder() []Element {
	return canonicalOrder(s.elements)
}
