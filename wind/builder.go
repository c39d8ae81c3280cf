package wind

import (
	"fmt"

	"github.com/sarchlab/gmt-dos/catalog"
)

// bodyNames maps each wind-carrying tag to the body name it is recorded
// under in a Record. Grounded on wind_loads.rs's per-body builder methods.
var bodyNames = map[catalog.Tag]string{
	catalog.TagOSSTopEnd6F:  "OSSTopEnd6F",
	catalog.TagOSSTruss6F:   "OSSTruss6F",
	catalog.TagOSSGIR6F:     "OSSGIR6F",
	catalog.TagOSSCRING6F:   "OSSCRING6F",
	catalog.TagOSSCellLcl6F: "OSSCellLcl6F",
	catalog.TagOSSM1Lcl6F:   "OSSM1Lcl6F",
	catalog.TagMCM2Lcl6F:    "MCM2Lcl6F",
}

// Builder assembles a Source from a loaded Record by selecting which
// recorded bodies are exposed on the IO bus, and under which tag.
type Builder struct {
	record   *Record
	selected []stream
	decimate int
	nsamples int
	err      error
}

// NewBuilder starts a Source builder over a loaded wind-load record.
func NewBuilder(record *Record) *Builder {
	return &Builder{record: record, decimate: 1}
}

func (b *Builder) withBody(tag catalog.Tag) *Builder {
	if b.err != nil {
		return b
	}
	name, ok := bodyNames[tag]
	if !ok {
		b.err = fmt.Errorf("wind: %s is not a recordable body", tag)
		return b
	}
	data, ok := b.record.Stream(name)
	if !ok {
		b.err = fmt.Errorf("wind: record has no stream named %q", name)
		return b
	}
	b.selected = append(b.selected, stream{tag: tag, body: name, data: data})
	return b
}

// TopEnd selects the telescope top-end structure's wind load stream.
func (b *Builder) TopEnd() *Builder { return b.withBody(catalog.TagOSSTopEnd6F) }

// Truss selects the OSS truss wind load stream.
func (b *Builder) Truss() *Builder { return b.withBody(catalog.TagOSSTruss6F) }

// Gir selects the gravity invariant ring wind load stream.
func (b *Builder) Gir() *Builder { return b.withBody(catalog.TagOSSGIR6F) }

// Cring selects the C-ring wind load stream.
func (b *Builder) Cring() *Builder { return b.withBody(catalog.TagOSSCRING6F) }

// M1Cell selects the M1 cell wind load stream.
func (b *Builder) M1Cell() *Builder { return b.withBody(catalog.TagOSSCellLcl6F) }

// M1Segments selects the M1 segment wind load stream.
func (b *Builder) M1Segments() *Builder { return b.withBody(catalog.TagOSSM1Lcl6F) }

// M2Segments selects the M2 segment wind load stream.
func (b *Builder) M2Segments() *Builder { return b.withBody(catalog.TagMCM2Lcl6F) }

// M2ASMTopEnd exposes the top-end stream under the ASM wiring target
// MCM2TE6F instead of its recorded name. Mirrors wind_loads.rs's
// m2_asm_topend, which does not generalize to other bodies.
func (b *Builder) M2ASMTopEnd() *Builder {
	if b.err != nil {
		return b
	}
	data, ok := b.record.Stream(bodyNames[catalog.TagOSSTopEnd6F])
	if !ok {
		b.err = fmt.Errorf("wind: record has no stream named %q", bodyNames[catalog.TagOSSTopEnd6F])
		return b
	}
	b.selected = append(b.selected, stream{tag: catalog.TagMCM2TE6F, body: bodyNames[catalog.TagOSSTopEnd6F], data: data})
	return b
}

// M2ASMReferenceBodies exposes the M2 segment stream under the ASM
// wiring target MCM2RB6F instead of its recorded name. Mirrors
// wind_loads.rs's m2_asm_reference_bodies.
func (b *Builder) M2ASMReferenceBodies() *Builder {
	if b.err != nil {
		return b
	}
	data, ok := b.record.Stream(bodyNames[catalog.TagMCM2Lcl6F])
	if !ok {
		b.err = fmt.Errorf("wind: record has no stream named %q", bodyNames[catalog.TagMCM2Lcl6F])
		return b
	}
	b.selected = append(b.selected, stream{tag: catalog.TagMCM2RB6F, body: bodyNames[catalog.TagMCM2Lcl6F], data: data})
	return b
}

// SelectAll selects every recordable body under its own FEM-matching tag,
// without the ASM remap. Mirrors wind_loads.rs::select_all.
func (b *Builder) SelectAll() *Builder {
	return b.TopEnd().Truss().Gir().Cring().M1Cell().M1Segments().M2Segments()
}

// SelectAllWithASM selects every body SelectAll does, but replaces the
// top-end and M2 segment streams with their ASM-remapped targets.
// Mirrors wind_loads.rs::select_all_with_asm.
func (b *Builder) SelectAllWithASM() *Builder {
	return b.Truss().Gir().Cring().M1Cell().M1Segments().M2ASMTopEnd().M2ASMReferenceBodies()
}

// NSample truncates every selected stream to at most n samples, counted
// after decimation. An n of 0 leaves the streams untruncated.
func (b *Builder) NSample(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("wind: negative sample count %d", n)
		return b
	}
	b.nsamples = n
	return b
}

// Decimate keeps every nth sample of every selected stream, starting
// from the first. No anti-alias filtering is applied, per the open
// question on decimation semantics: this is a plain stride, not a
// resampling filter.
func (b *Builder) Decimate(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 1 {
		b.err = fmt.Errorf("wind: decimation factor must be >= 1, got %d", n)
		return b
	}
	b.decimate = n
	return b
}

// Build validates the selection and returns a Source.
func (b *Builder) Build() (*Source, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.record == nil {
		return nil, fmt.Errorf("wind: no record supplied to builder")
	}
	if len(b.selected) == 0 {
		return nil, fmt.Errorf("wind: no streams selected")
	}

	streams := make([]stream, len(b.selected))
	copy(streams, b.selected)

	for i, st := range streams {
		data := st.data
		if b.decimate > 1 {
			decimated := make([][]float64, 0, len(data)/b.decimate+1)
			for j := 0; j < len(data); j += b.decimate {
				decimated = append(decimated, data[j])
			}
			data = decimated
		}
		if b.nsamples > 0 && len(data) > b.nsamples {
			data = data[:b.nsamples]
		}
		streams[i].data = data
	}

	return &Source{streams: streams}, nil
}
