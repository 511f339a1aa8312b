// SPDX-License-Identifier: MIT
package pipeline

import (
	"context"

	applog "sortvis/internal/log"
	"sortvis/internal/sorts"
)

// Stage is one step of a run: optionally a lead frame, a shuffle, the sort
// with its closing frame, then idle frames.
type Stage struct {
	Algorithm sorts.Algorithm
	Lead      bool // render the current state before shuffling
	Pause     int  // idle frames after the sort
}

// Plan builds the stages for a run. Each selected algorithm becomes a stage
// with a lead frame followed by pauseFrames idle frames. With nothing
// selected every algorithm runs in id order followed by waitFrames idle
// frames. Unrecognized selections run the no-op sort.
func Plan(selected []string, pauseFrames, waitFrames int) []Stage {
	if len(selected) == 0 {
		all := sorts.All()
		stages := make([]Stage, len(all))
		for i, alg := range all {
			stages[i] = Stage{Algorithm: alg, Pause: waitFrames}
		}
		return stages
	}

	stages := make([]Stage, len(selected))
	for i, s := range selected {
		id, ok := sorts.Parse(s)
		alg, _ := sorts.Lookup(id)
		if !ok {
			applog.Warnf("Unknown sort %q, running no-op sort", s)
		}
		stages[i] = Stage{Algorithm: alg, Lead: true, Pause: pauseFrames}
	}
	return stages
}

// Runner executes stages on a single working array. The shuffle source is
// shared by all stages so consecutive shuffles continue one sequence.
type Runner struct {
	Emitter sorts.Emitter
	Points  int
	Rand    sorts.Source
	Shuffle sorts.ShuffleMode
}

// Run executes stages in order and returns the accumulated counters. A
// cancelled ctx stops the run at the next frame.
func (r *Runner) Run(ctx context.Context, stages []Stage) (sorts.Stats, error) {
	emit := sorts.EmitterFunc(func(array, activity []int, message string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return r.Emitter.Emit(array, activity, message)
	})
	c := sorts.NewContext(r.Points, emit)

	for _, stage := range stages {
		if stage.Lead {
			if err := c.Frame(); err != nil {
				return c.Stats(), err
			}
		}
		if err := sorts.Shuffle(c, r.Rand, r.Shuffle); err != nil {
			return c.Stats(), err
		}

		before := c.Stats()
		if err := sorts.Run(c, stage.Algorithm); err != nil {
			return c.Stats(), err
		}
		after := c.Stats()
		applog.Infof("%s: %d exchanges in %d frames", stageName(stage.Algorithm),
			after.Exchanges-before.Exchanges, after.Frames-before.Frames)
		if !sorts.IsSorted(c.Array) && stage.Algorithm.ID != sorts.Null {
			applog.Warnf("%s left the array unsorted", stageName(stage.Algorithm))
		}

		if err := c.Pause(stage.Pause); err != nil {
			return c.Stats(), err
		}
	}
	return c.Stats(), nil
}

func stageName(alg sorts.Algorithm) string {
	if alg.Name == "" {
		return "No-op"
	}
	return alg.Name
}
