package rowdex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareValues_NumericDomain(t *testing.T) {
	// All numeric types compare within one domain.
	assert.Equal(t, 0, compareValues(2, 2.0))
	assert.Equal(t, 0, compareValues(uint8(7), int64(7)))
	assert.Equal(t, -1, compareValues(1, int32(2)))
	assert.Equal(t, 1, compareValues(3.5, 3))
	assert.Equal(t, -1, compareValues(-1, uint(0)))
}

func TestCompareValues_StringsAndBools(t *testing.T) {
	assert.Equal(t, -1, compareValues("a", "b"))
	assert.Equal(t, 0, compareValues("x", "x"))
	assert.Equal(t, 1, compareValues("b", "a"))

	assert.Equal(t, -1, compareValues(false, true))
	assert.Equal(t, 0, compareValues(true, true))
	assert.Equal(t, 1, compareValues(true, false))
}

func TestCompareValues_KindRank(t *testing.T) {
	// Mismatched kinds order by fixed rank so sorting stays total:
	// nil < bool < number < string.
	assert.Equal(t, -1, compareValues(nil, false))
	assert.Equal(t, -1, compareValues(true, 0))
	assert.Equal(t, -1, compareValues(99, "1"))
	assert.Equal(t, 1, compareValues("", nil))
	assert.Equal(t, 0, compareValues(nil, nil))
}
