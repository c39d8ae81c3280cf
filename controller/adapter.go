package controller

import (
	"fmt"

	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/component"
)

// port maps one tag to a fixed-offset slice of the filter's dense
// input or output vector.
type port struct {
	tag    catalog.Tag
	offset int
	width  int
}

// Adapter wires a fixed-offset set of tagged input/output ports onto an
// externally generated Filter, implementing component.Component. Port
// offsets are static: the adapter does not infer layout, it is
// configured with it.
type Adapter struct {
	filter  Filter
	inputs  []port
	outputs []port
	in      []float64
	out     []float64
}

var _ component.Component = (*Adapter)(nil)
var _ component.IOTags = (*Adapter)(nil)

// NewAdapter builds an Adapter from a filter and its fixed port
// layouts. Input port widths must sum to filter.InputWidth() and
// output port widths must sum to filter.OutputWidth().
func NewAdapter(filter Filter, inputs, outputs []component.TagSchema) (*Adapter, error) {
	if filter == nil {
		return nil, fmt.Errorf("%w: controller: filter is required", component.ErrConfiguration)
	}

	inPorts, err := layout(inputs, filter.InputWidth())
	if err != nil {
		return nil, fmt.Errorf("controller: input ports: %w", err)
	}
	outPorts, err := layout(outputs, filter.OutputWidth())
	if err != nil {
		return nil, fmt.Errorf("controller: output ports: %w", err)
	}

	return &Adapter{
		filter:  filter,
		inputs:  inPorts,
		outputs: outPorts,
		in:      make([]float64, filter.InputWidth()),
		out:     make([]float64, filter.OutputWidth()),
	}, nil
}

func layout(schemas []component.TagSchema, total int) ([]port, error) {
	ports := make([]port, len(schemas))
	offset := 0
	for i, s := range schemas {
		if s.Width <= 0 {
			return nil, fmt.Errorf("%w: %s has non-positive width %d", component.ErrSchema, s.Tag, s.Width)
		}
		ports[i] = port{tag: s.Tag, offset: offset, width: s.Width}
		offset += s.Width
	}
	if offset != total {
		return nil, fmt.Errorf("%w: declared ports sum to width %d, filter expects %d", component.ErrSchema, offset, total)
	}
	return ports, nil
}

// Inputs buffers the filter's input vector from tagged envelopes.
// Missing declared tags are zero-filled; duplicate envelopes for the
// same tag resolve last-writer-wins.
func (a *Adapter) Inputs(signals []catalog.Signal) error {
	byTag := make(map[catalog.Tag]catalog.Signal, len(signals))
	for _, s := range signals {
		byTag[s.Tag()] = s
	}

	for _, p := range a.inputs {
		seg := a.in[p.offset : p.offset+p.width]
		s, ok := byTag[p.tag]
		if !ok {
			for i := range seg {
				seg[i] = 0
			}
			continue
		}
		payload, err := s.Payload()
		if err != nil {
			return fmt.Errorf("%w: %s: %w", component.ErrPayload, p.tag, err)
		}
		if len(payload) != p.width {
			return fmt.Errorf("%w: %s has payload width %d, want %d", component.ErrPayload, p.tag, len(payload), p.width)
		}
		copy(seg, payload)
	}
	return nil
}

// Step advances the wrapped filter by one sample.
func (a *Adapter) Step() error {
	out := a.filter.Step(a.in)
	if len(out) != len(a.out) {
		return fmt.Errorf("%w: controller: filter returned width %d, want %d", component.ErrStep, len(out), len(a.out))
	}
	copy(a.out, out)
	return nil
}

// Outputs returns the declared output envelopes, in declaration order.
func (a *Adapter) Outputs() []catalog.Signal {
	signals := make([]catalog.Signal, len(a.outputs))
	for i, p := range a.outputs {
		payload := append([]float64(nil), a.out[p.offset:p.offset+p.width]...)
		signals[i] = catalog.NewSignal(p.tag, payload)
	}
	return signals
}

// InputTags reports the adapter's declared input schema.
func (a *Adapter) InputTags() []component.TagSchema {
	return toSchema(a.inputs)
}

// OutputTags reports the adapter's declared output schema.
func (a *Adapter) OutputTags() []component.TagSchema {
	return toSchema(a.outputs)
}

func toSchema(ports []port) []component.TagSchema {
	out := make([]component.TagSchema, len(ports))
	for i, p := range ports {
		out[i] = component.TagSchema{Tag: p.tag, Width: p.width}
	}
	return out
}
