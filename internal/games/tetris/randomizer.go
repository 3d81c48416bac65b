package tetris

import "math/rand"

// Randomizer names accepted by NewRandomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Randomizer chooses the kind of each new piece.
type Randomizer interface {
	Next() Kind
}

// NewRandomizer returns the named randomizer; unknown names fall back to uniform.
func NewRandomizer(name string, rng *rand.Rand) Randomizer {
	if name == RandomizerBag {
		return &bagRandomizer{rng: rng}
	}
	return &uniformRandomizer{rng: rng}
}

// uniformRandomizer picks every kind with equal probability on each draw.
type uniformRandomizer struct {
	rng *rand.Rand
}

func (u *uniformRandomizer) Next() Kind {
	return Kinds[u.rng.Intn(len(Kinds))]
}

// bagRandomizer deals all seven kinds in shuffled order before refilling.
type bagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

func (b *bagRandomizer) Next() Kind {
	if len(b.bag) == 0 {
		b.bag = append(b.bag[:0], Kinds[:]...)
		b.rng.Shuffle(len(b.bag), func(i, j int) {
			b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
		})
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}
