package game

import "math/rand/v2"

// Generator draws secrets. Digits are independent, repeats allowed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator uses src when non-nil, otherwise a randomly seeded source.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator is reproducible for a given seed.
func NewSeededGenerator(seed uint64) *Generator {
	return NewGenerator(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func (g *Generator) Generate() Code {
	b := make([]byte, CodeLen)
	for i := range b {
		b[i] = byte('0' + g.rng.IntN(10))
	}
	return Code(b)
}
