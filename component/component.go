// Package component defines the uniform step protocol every stateful
// simulation component implements: buffer inputs, advance one sample,
// read outputs.
package component

import "github.com/sarchlab/gmt-dos/catalog"

// Component is the contract shared by the modal engine, the wind-load
// source, and every controller adapter. Inputs buffers data without
// advancing state; Step advances state by one sample using the buffered
// inputs; Outputs may be called repeatedly between steps and must return
// equal values each time. Step is idempotent only if preceded by an
// identical Inputs call.
type Component interface {
	// Inputs buffers envelopes for the next Step call. Missing inputs for
	// a declared tag are zero-filled; duplicate envelopes for the same
	// tag resolve last-writer-wins.
	Inputs(signals []catalog.Signal) error

	// Step advances the component's state by one sample.
	Step() error

	// Outputs returns the component's current output envelopes, one per
	// declared output tag, in declaration order. Returns nil when the
	// component has no more output to give (e.g. an exhausted source).
	Outputs() []catalog.Signal
}

// InStepOut composes Inputs, Step and Outputs, the convenience form used
// by simple drivers that don't need to separate the three phases.
func InStepOut(c Component, signals []catalog.Signal) ([]catalog.Signal, error) {
	if err := c.Inputs(signals); err != nil {
		return nil, err
	}
	if err := c.Step(); err != nil {
		return nil, err
	}
	return c.Outputs(), nil
}

// TagSchema describes a component's declared input or output tags and
// their scalar widths, used for schema round-trip checks and for wiring
// one component's declared outputs as another's declared inputs.
type TagSchema struct {
	Tag   catalog.Tag
	Width int
}

// IOTags is implemented by components that can report their declared
// schema without requiring a step cycle, enabling InputsFrom/OutputsTo
// style wiring between components.
type IOTags interface {
	InputTags() []TagSchema
	OutputTags() []TagSchema
}
