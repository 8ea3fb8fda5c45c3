package tetris

// Rand is the randomness the bag needs. *rand.Rand satisfies it; tests can
// pass a scripted source.
type Rand interface {
	Intn(n int) int
}

// Bag hands out kinds in shuffled runs of seven: every aligned window of
// seven draws is a permutation of all kinds, so a kind never waits more
// than twelve draws.
type Bag struct {
	rng    Rand
	kinds  [KindCount]Kind
	cursor int
}

// NewBag creates a bag and performs the first shuffle.
func NewBag(rng Rand) *Bag {
	b := &Bag{
		rng:   rng,
		kinds: Kinds,
	}
	b.shuffle()
	return b
}

// Next returns the next kind, reshuffling when the current run is spent.
func (b *Bag) Next() Kind {
	if b.cursor == KindCount {
		b.shuffle()
	}
	k := b.kinds[b.cursor]
	b.cursor++
	return k
}

// Remaining returns how many kinds are left in the current run.
func (b *Bag) Remaining() int {
	return KindCount - b.cursor
}

// shuffle is a Fisher-Yates pass over the whole run.
func (b *Bag) shuffle() {
	for i := KindCount - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.kinds[i], b.kinds[j] = b.kinds[j], b.kinds[i]
	}
	b.cursor = 0
}
