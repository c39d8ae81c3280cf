package statespace

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/component"
	"github.com/sarchlab/gmt-dos/mode"
)

// Engine is the assembled discrete modal state-space simulator: an
// ordered set of input and output tags with their scalar widths, and the
// independent per-mode discrete solvers that back them. Every mode's B
// and C span the engine's full flattened input and output width; a
// mode's contribution to the output vector is zero outside the scalar
// indices it actually couples to.
type Engine struct {
	inputTags  []component.TagSchema
	outputTags []component.TagSchema

	u []float64
	y []float64

	modes []*mode.Discrete

	// Concurrency bounds how many goroutines map the per-mode step when
	// stepping; 0 or 1 means sequential (and bit-exact) reduction.
	// Greater values parallelize across modes at the cost of reduction
	// order, and therefore bit-exactness.
	Concurrency int
}

var (
	_ component.Component = (*Engine)(nil)
	_ component.IOTags    = (*Engine)(nil)
)

// InputTags returns the engine's declared input schema in build order.
func (e *Engine) InputTags() []component.TagSchema {
	return append([]component.TagSchema(nil), e.inputTags...)
}

// OutputTags returns the engine's declared output schema in build order.
func (e *Engine) OutputTags() []component.TagSchema {
	return append([]component.TagSchema(nil), e.outputTags...)
}

// Inputs concatenates payloads of signals whose tags appear in the
// engine's declared input list, in declaration order, not arrival order.
// Missing inputs are zero-filled; duplicates resolve last-writer-wins;
// a width mismatch is fatal.
func (e *Engine) Inputs(signals []catalog.Signal) error {
	byTag := make(map[catalog.Tag]catalog.Signal, len(signals))
	for _, s := range signals {
		byTag[s.Tag()] = s // last writer wins
	}

	offset := 0
	for _, schema := range e.inputTags {
		s, found := byTag[schema.Tag]
		if !found {
			for i := 0; i < schema.Width; i++ {
				e.u[offset+i] = 0
			}
			offset += schema.Width
			continue
		}
		payload, err := s.Payload()
		if err != nil {
			return fmt.Errorf("%w: tag %s has no payload", component.ErrPayload, schema.Tag)
		}
		if len(payload) != schema.Width {
			return fmt.Errorf("%w: tag %s payload length %d != declared width %d",
				component.ErrPayload, schema.Tag, len(payload), schema.Width)
		}
		copy(e.u[offset:offset+schema.Width], payload)
		offset += schema.Width
	}
	return nil
}

// Step evaluates y_k = sum_k C_k . state_k (read before advancing, per
// the no-feed-through ordering guarantee), then advances every mode's
// state using the buffered u. Modes are independent; their output
// contributions sum. When Concurrency > 1 the map across modes runs on a
// worker pool and the reduction order is not guaranteed, so results are
// exact only to floating-point addition order; Concurrency <= 1 reduces
// single-threaded, left to right, and is bit-exact reproducible.
func (e *Engine) Step() error {
	n := len(e.y)

	var combined []float64
	if e.Concurrency > 1 && len(e.modes) > 1 {
		var err error
		combined, err = e.stepParallel(n)
		if err != nil {
			return err
		}
	} else {
		combined = e.stepSequential(n)
	}

	for _, v := range combined {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite output", component.ErrStep)
		}
	}

	e.y = combined
	return nil
}

func (e *Engine) stepSequential(n int) []float64 {
	y := make([]float64, n)
	for _, m := range e.modes {
		contribution := m.Step(e.u)
		for i, v := range contribution {
			y[i] += v
		}
	}
	return y
}

// stepParallel splits the mode set into contiguous chunks, one per
// worker, each accumulating its own partial output buffer; partials are
// then summed together. No mode holds a lock and no mode depends on
// another's output. Chunks are assigned statically; a worker that
// finishes early does not take modes from another worker's chunk.
func (e *Engine) stepParallel(n int) ([]float64, error) {
	workers := e.Concurrency
	if workers > runtime.NumCPU() {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > len(e.modes) {
		workers = len(e.modes)
	}

	chunkSize := (len(e.modes) + workers - 1) / workers
	partials := make([][]float64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunkSize
		end := start + chunkSize
		if end > len(e.modes) {
			end = len(e.modes)
		}
		if start >= end {
			partials[w] = make([]float64, n)
			continue
		}
		g.Go(func() error {
			partial := make([]float64, n)
			for _, m := range e.modes[start:end] {
				contribution := m.Step(e.u)
				for i, v := range contribution {
					partial[i] += v
				}
			}
			partials[w] = partial
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	y := make([]float64, n)
	for _, partial := range partials {
		for i, v := range partial {
			y[i] += v
		}
	}
	return y, nil
}

// Outputs slices y in declaration order by the stored widths, returning a
// fresh copy per envelope so callers may mutate the result freely.
func (e *Engine) Outputs() []catalog.Signal {
	out := make([]catalog.Signal, len(e.outputTags))
	offset := 0
	for i, schema := range e.outputTags {
		payload := make([]float64, schema.Width)
		copy(payload, e.y[offset:offset+schema.Width])
		out[i] = catalog.NewSignal(schema.Tag, payload)
		offset += schema.Width
	}
	return out
}

// NInputs returns the total width of the flattened input buffer.
func (e *Engine) NInputs() int { return len(e.u) }

// NOutputs returns the total width of the flattened output buffer.
func (e *Engine) NOutputs() int { return len(e.y) }

// NModes returns the number of surviving per-mode solvers.
func (e *Engine) NModes() int { return len(e.modes) }
