package furnace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStream_TotalAndGet(t *testing.T) {
	s := NewStream("Feed", map[Element]float64{Zn: 32000, Pb: 6400, Fe: 12000})
	assert.InDelta(t, 50400.0, s.Total(), 1e-9)
	assert.Equal(t, 32000.0, s.Get(Zn))
	assert.Equal(t, 0.0, s.Get(Ca), "absent element reads as zero")
}

func TestStream_EmptyTotalIsZero(t *testing.T) {
	s := NewStream("Empty", nil)
	assert.Equal(t, 0.0, s.Total())
}

func TestNewStream_CopiesElementMap(t *testing.T) {
	src := map[Element]float64{Zn: 100}
	s := NewStream("Feed", src)
	src[Zn] = 999
	assert.Equal(t, 100.0, s.Get(Zn), "later mutation of the source map must not leak in")
}

func TestStream_ElementsReturnsCopy(t *testing.T) {
	s := NewStream("Feed", map[Element]float64{Zn: 100})
	s.Elements()[Zn] = 999
	assert.Equal(t, 100.0, s.Get(Zn))
}

func TestStream_ElementOrderIsSorted(t *testing.T) {
	s := NewStream("Feed", map[Element]float64{Zn: 1, Ash: 1, C: 1, Pb: 1})
	assert.Equal(t, []Element{Ash, C, Pb, Zn}, s.ElementOrder())
}
