// SPDX-License-Identifier: MIT

/*
Package sorts implements the instrumented sorting algorithms.

Every algorithm mutates the working array only through Context.Exchange,
which keeps the per-index activity vector in step with the visible motion.
Frames are requested through Context.Frame at a cadence chosen per
algorithm, and the activity vector is cleared after every frame.

The package is single threaded: a Context must not be shared between
goroutines or used by two algorithms at once.
*/
package sorts

import "fmt"

// Emitter consumes the state of one frame. The slices are only valid for
// the duration of the call.
type Emitter interface {
	Emit(array, activity []int, message string) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(array, activity []int, message string) error

// Emit calls f.
func (f EmitterFunc) Emit(array, activity []int, message string) error {
	return f(array, activity, message)
}

// Stats counts work done through a Context.
type Stats struct {
	Exchanges int
	Frames    int
}

// Context is the frame context shared by the algorithms: the working array,
// the activity vector accumulated since the last frame, the overlay message
// and the sink that frames are emitted to.
type Context struct {
	Array    []int
	Activity []int
	Message  string

	emitter Emitter
	stats   Stats

	// stoogeSwaps throttles stoogesort to one frame per 32 exchanges and
	// persists across stoogesort runs on the same context.
	stoogeSwaps int
}

// NewContext allocates the working array as the identity permutation of
// 0..n-1 together with a zeroed activity vector. A nil emitter discards
// frames.
func NewContext(n int, emitter Emitter) *Context {
	if emitter == nil {
		emitter = EmitterFunc(func([]int, []int, string) error { return nil })
	}
	c := &Context{
		Array:    make([]int, n),
		Activity: make([]int, n),
		emitter:  emitter,
	}
	for i := range c.Array {
		c.Array[i] = i
	}
	return c
}

// Len returns the working set size.
func (c *Context) Len() int {
	return len(c.Array)
}

// Exchange swaps Array[i] and Array[j] and records one unit of activity at
// both indices. Exchanging an index with itself records two units at it.
func (c *Context) Exchange(i, j int) {
	c.Array[i], c.Array[j] = c.Array[j], c.Array[i]
	c.Activity[i]++
	c.Activity[j]++
	c.stats.Exchanges++
}

// Frame emits the current state and resets the activity vector. The vector
// is cleared even when the emitter fails.
func (c *Context) Frame() error {
	err := c.emitter.Emit(c.Array, c.Activity, c.Message)
	clear(c.Activity)
	c.stats.Frames++
	if err != nil {
		return fmt.Errorf("frame %d: %w", c.stats.Frames, err)
	}
	return nil
}

// Pause emits n idle frames.
func (c *Context) Pause(n int) error {
	for i := 0; i < n; i++ {
		if err := c.Frame(); err != nil {
			return err
		}
	}
	return nil
}

// Stats returns the counters accumulated so far.
func (c *Context) Stats() Stats {
	return c.stats
}

// IsSorted reports whether a is the ascending sequence 0..len(a)-1.
func IsSorted(a []int) bool {
	for i, v := range a {
		if v != i {
			return false
		}
	}
	return true
}

// IsPermutation reports whether a holds every value of 0..len(a)-1 once.
func IsPermutation(a []int) bool {
	seen := make([]bool, len(a))
	for _, v := range a {
		if v < 0 || v >= len(a) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
