package wind

import (
	"fmt"

	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/component"
)

// stream is one tagged body's cursor into a loaded Record.
type stream struct {
	tag    catalog.Tag
	body   string
	data   [][]float64
	cursor int
}

// Source streams pre-recorded wind loads onto the IO bus, one sample per
// Step call, in the order its builder selected them. It accepts no
// inputs: Inputs returns an error for any non-empty envelope list,
// mirroring the Rust original's WindLoads component which has no input
// ports.
type Source struct {
	streams []stream
}

var _ component.Component = (*Source)(nil)
var _ component.IOTags = (*Source)(nil)

// Inputs fails on any envelope, since a wind-load source has no input
// ports; an empty list is accepted as a no-op.
func (s *Source) Inputs(signals []catalog.Signal) error {
	if len(signals) == 0 {
		return nil
	}
	return fmt.Errorf("%w: wind source accepts no inputs", component.ErrSchema)
}

// Step advances every stream's cursor by one recorded sample. Streams
// are pre-decimated and pre-truncated at build time, so a step always
// moves exactly one sample forward regardless of the decimation factor
// the builder was given. It does not itself fail on exhaustion;
// exhaustion is reported by Outputs.
func (s *Source) Step() error {
	for i := range s.streams {
		s.streams[i].cursor++
	}
	return nil
}

// Outputs returns the current sample for every selected stream, in
// declaration order, or nil once any stream has run out of samples.
func (s *Source) Outputs() []catalog.Signal {
	for _, st := range s.streams {
		if st.cursor >= len(st.data) {
			return nil
		}
	}
	out := make([]catalog.Signal, len(s.streams))
	for i, st := range s.streams {
		out[i] = catalog.NewSignal(st.tag, st.data[st.cursor])
	}
	return out
}

// InputTags is empty: the source declares no inputs.
func (s *Source) InputTags() []component.TagSchema { return nil }

// OutputTags reports each selected stream's tag and fixed width of 6.
func (s *Source) OutputTags() []component.TagSchema {
	out := make([]component.TagSchema, len(s.streams))
	for i, st := range s.streams {
		out[i] = component.TagSchema{Tag: st.tag, Width: 6}
	}
	return out
}

// Exhausted reports whether any selected stream has run out of samples.
func (s *Source) Exhausted() bool {
	return s.Outputs() == nil
}
