// Package idgen produces the placeholder identifiers offered by the forms:
// item names and receipt numbers.
package idgen

import (
	"math/rand/v2"
	"strconv"
	"sync"
)

// Generator supplies placeholder identifiers.
type Generator interface {
	// ItemName returns "0" followed by seven digits.
	ItemName() string
	// ReceiptNumber returns a six-digit number without leading zeros.
	ReceiptNumber() string
}

// Random draws identifiers from a pseudo-random source.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a generator seeded from the runtime's entropy.
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a reproducible generator.
func NewSeeded(seed1, seed2 uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (r *Random) ItemName() string {
	return "0" + strconv.Itoa(r.between(1000000, 9999999))
}

func (r *Random) ReceiptNumber() string {
	return strconv.Itoa(r.between(100000, 999999))
}

// between returns an integer in [lo, hi].
func (r *Random) between(lo, hi int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rng.IntN(hi-lo+1)
}

// Sequence replays fixed identifiers in order, cycling when exhausted.
// Tests use it to pin the generated values.
type Sequence struct {
	mu       sync.Mutex
	names    []string
	numbers  []string
	nextName int
	nextNum  int
}

// NewSequence creates a Sequence. Empty lists yield "".
func NewSequence(names, numbers []string) *Sequence {
	return &Sequence{names: names, numbers: numbers}
}

func (s *Sequence) ItemName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return next(s.names, &s.nextName)
}

func (s *Sequence) ReceiptNumber() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return next(s.numbers, &s.nextNum)
}

func next(values []string, pos *int) string {
	if len(values) == 0 {
		return ""
	}
	v := values[*pos%len(values)]
	*pos++
	return v
}
