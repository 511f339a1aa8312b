// SPDX-License-Identifier: MIT
package sorts

import (
	"fmt"
	"strings"
)

// ShuffleMessage is the overlay shown while shuffling.
const ShuffleMessage = "Fisher-Yates"

// ShuffleMode selects how much of the shuffle is rendered.
type ShuffleMode int

const (
	ShuffleFast  ShuffleMode = iota // render every other step
	ShuffleFull                     // render every step
	ShuffleQuiet                    // render nothing
)

// String returns the configuration name of the mode.
func (m ShuffleMode) String() string {
	switch m {
	case ShuffleFast:
		return "fast"
	case ShuffleFull:
		return "full"
	case ShuffleQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseShuffleMode converts a configuration name (case-insensitive) to a mode.
func ParseShuffleMode(s string) (ShuffleMode, error) {
	switch strings.ToLower(s) {
	case "", "fast":
		return ShuffleFast, nil
	case "full", "slow":
		return ShuffleFull, nil
	case "quiet", "silent", "none":
		return ShuffleQuiet, nil
	default:
		return ShuffleFast, fmt.Errorf("unknown shuffle mode %q", s)
	}
}

// Source yields uniformly drawn indices in [0, n).
type Source interface {
	Intn(n int) int
}

// Shuffle runs a Fisher-Yates shuffle from the last index down to 1, routing
// every swap through Exchange. In fast mode only odd steps render a frame.
func Shuffle(c *Context, rng Source, mode ShuffleMode) error {
	c.Message = ShuffleMessage
	for i := c.Len() - 1; i > 0; i-- {
		c.Exchange(i, rng.Intn(i+1))
		switch {
		case mode == ShuffleQuiet:
		case mode == ShuffleFast && i%2 == 0:
		default:
			if err := c.Frame(); err != nil {
				return err
			}
		}
	}
	return nil
}
