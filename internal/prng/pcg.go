// SPDX-License-Identifier: MIT

// Package prng implements the 64-bit permuted congruential generator that
// drives shuffling. The generator has no state beyond a single uint64, so a
// run is fully reproducible from its seed on every platform.
package prng

const (
	multiplier uint64 = 0x9b60933458e17d7d
	increment  uint64 = 0xd737232eeccdf7ed
)

// Next advances state and returns the permuted 32-bit output together with
// the successor state. It is a pure function of its input.
//
// The output shift is 29 minus the top three bits of the new state, so the
// result window slides between bits 22..53 and 29..60.
func Next(state uint64) (uint32, uint64) {
	state = state*multiplier + increment
	shift := 29 - (state >> 61)
	return uint32(state >> shift), state
}

// PCG is a mutable wrapper around Next.
type PCG struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed uint64) *PCG {
	return &PCG{state: seed}
}

// Uint32 draws the next value.
func (p *PCG) Uint32() uint32 {
	var v uint32
	v, p.state = Next(p.state)
	return v
}

// Intn returns Uint32() % n. The modulo bias is kept so shuffles match
// previously recorded runs.
func (p *PCG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(p.Uint32() % uint32(n))
}

// State returns the current state.
func (p *PCG) State() uint64 {
	return p.state
}
