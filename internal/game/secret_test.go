package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_ProducesDigits(t *testing.T) {
	g := NewGenerator(nil)
	for i := 0; i < 1000; i++ {
		c := g.Generate()
		require.True(t, c.Valid(), "generated %q", c)
	}
}

func TestGenerator_SeededIsReproducible(t *testing.T) {
	a := NewSeededGenerator(42)
	b := NewSeededGenerator(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestGenerator_DigitsRoughlyUniform(t *testing.T) {
	g := NewSeededGenerator(1)
	var counts [CodeLen][10]int
	const n = 20000
	repeats := 0
	for i := 0; i < n; i++ {
		c := g.Generate()
		seen := map[byte]bool{}
		repeated := false
		for pos := 0; pos < CodeLen; pos++ {
			counts[pos][c[pos]-'0']++
			repeated = repeated || seen[c[pos]]
			seen[c[pos]] = true
		}
		if repeated {
			repeats++
		}
	}
	for pos := 0; pos < CodeLen; pos++ {
		for d := 0; d < 10; d++ {
			// expected n/10 = 2000 per bucket
			assert.InDelta(t, n/10, counts[pos][d], 300, "position %d digit %d", pos, d)
		}
	}
	// about half of all codes repeat a digit (1 - 10*9*8*7/10^4 = 0.496)
	assert.Greater(t, repeats, n/3)
}
