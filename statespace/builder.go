package statespace

import (
	"fmt"
	"log"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/component"
	"github.com/sarchlab/gmt-dos/fem"
	"github.com/sarchlab/gmt-dos/mode"
)

const hzToRadiansPerSecond = 2 * math.Pi

// EigenOverride replaces the eigenfrequency, in Hz, of the mode at Index.
type EigenOverride struct {
	Index int
	HzNew float64
}

// Builder assembles a discrete modal state-space Engine from a FEM
// descriptor and a selection of IO tags. It is single-shot: Build
// consumes it.
//
// Mandatory before Build: FEM descriptor, sampling frequency, input tags,
// output tags. Optional: proportional damping override, eigenfrequency
// overrides, a maximum eigenfrequency cutoff, a Hankel singular value
// threshold.
type Builder struct {
	femDesc        *fem.Descriptor
	samplingHz     float64
	hasSampling    bool
	inputs         []catalog.Tag
	outputs        []catalog.Tag
	zeta           float64
	hasZeta        bool
	eigenOverrides []EigenOverride
	maxEigenHz     float64
	hasMaxEigen    bool
	hsvThreshold   float64
	hasHSV         bool
}

// NewBuilder starts a builder from a parsed FEM descriptor.
func NewBuilder(desc *fem.Descriptor) Builder {
	return Builder{femDesc: desc}
}

// WithSampling sets the sampling frequency in Hz.
func (b Builder) WithSampling(hz float64) Builder {
	b.samplingHz = hz
	b.hasSampling = true
	return b
}

// WithInputs appends to the selected input tag list.
func (b Builder) WithInputs(tags ...catalog.Tag) Builder {
	b.inputs = append(append([]catalog.Tag(nil), b.inputs...), tags...)
	return b
}

// WithOutputs appends to the selected output tag list.
func (b Builder) WithOutputs(tags ...catalog.Tag) Builder {
	b.outputs = append(append([]catalog.Tag(nil), b.outputs...), tags...)
	return b
}

// WithInputsFrom selects as inputs whatever tags src declares as outputs,
// letting one component's schema drive another's without retyping it.
func (b Builder) WithInputsFrom(src component.IOTags) Builder {
	for _, schema := range src.OutputTags() {
		b = b.WithInputs(schema.Tag)
	}
	return b
}

// WithOutputsTo selects as outputs whatever tags dst declares as inputs.
func (b Builder) WithOutputsTo(dst component.IOTags) Builder {
	for _, schema := range dst.InputTags() {
		b = b.WithOutputs(schema.Tag)
	}
	return b
}

// WithProportionalDamping overrides the FEM's per-mode damping vector
// with a single uniform ratio applied to every surviving mode.
func (b Builder) WithProportionalDamping(zeta float64) Builder {
	b.zeta = zeta
	b.hasZeta = true
	return b
}

// WithEigenFrequencies replaces the eigenfrequencies, in Hz, at the given
// mode indices.
func (b Builder) WithEigenFrequencies(overrides ...EigenOverride) Builder {
	b.eigenOverrides = append(append([]EigenOverride(nil), b.eigenOverrides...), overrides...)
	return b
}

// WithMaxEigenFrequency truncates the mode set to the first K modes whose
// eigenfrequency is <= maxHz.
func (b Builder) WithMaxEigenFrequency(maxHz float64) Builder {
	b.maxEigenHz = maxHz
	b.hasMaxEigen = true
	return b
}

// WithHankelThreshold keeps only modes whose Hankel singular value
// exceeds threshold, without reordering the survivors.
func (b Builder) WithHankelThreshold(threshold float64) Builder {
	b.hsvThreshold = threshold
	b.hasHSV = true
	return b
}

// Build performs IO filtering, projection extraction, eigenvalue
// adjustment, damping selection, optional Hankel pruning, and per-mode
// discretization, in that order, and returns the assembled Engine.
func (b Builder) Build() (*Engine, error) {
	if !b.hasSampling || b.samplingHz <= 0 {
		return nil, fmt.Errorf("%w: missing or invalid sampling frequency", component.ErrConfiguration)
	}
	if b.femDesc == nil {
		return nil, fmt.Errorf("%w: missing FEM descriptor", component.ErrConfiguration)
	}
	if len(b.inputs) == 0 {
		return nil, fmt.Errorf("%w: no inputs selected", component.ErrConfiguration)
	}
	if len(b.outputs) == 0 {
		return nil, fmt.Errorf("%w: no outputs selected", component.ErrConfiguration)
	}

	desc := *b.femDesc // shallow copy: KeepInputs/KeepOutputs mutate desc, not the caller's original
	tau := 1 / b.samplingHz

	inIdx, inputSchema, err := filterIO(b.inputs, desc.Inputs, true)
	if err != nil {
		return nil, err
	}
	desc.KeepInputs(inIdx)

	outIdx, outputSchema, err := filterIO(b.outputs, desc.Outputs, false)
	if err != nil {
		return nil, err
	}
	desc.KeepOutputs(outIdx)

	b0, c0, err := projectionMatrices(&desc, b.inputs, b.outputs)
	if err != nil {
		return nil, err
	}

	w := make([]float64, desc.NModes())
	for i, hz := range desc.EigenFrequencies {
		w[i] = hz * hzToRadiansPerSecond
	}
	for _, ov := range b.eigenOverrides {
		if ov.Index < 0 || ov.Index >= len(w) {
			return nil, fmt.Errorf("%w: eigenfrequency override index %d out of range", component.ErrConfiguration, ov.Index)
		}
		w[ov.Index] = ov.HzNew * hzToRadiansPerSecond
	}

	k := len(w)
	if b.hasMaxEigen {
		k = 0
		for _, hz := range desc.EigenFrequencies {
			if hz <= b.maxEigenHz {
				k++
			} else {
				break
			}
		}
		log.Printf("statespace: eigenfrequencies truncated to %.3fHz, modes %d -> %d", b.maxEigenHz, len(w), k)
	}
	w = w[:k]

	zeta := make([]float64, k)
	if b.hasZeta {
		for i := range zeta {
			zeta[i] = b.zeta
		}
	} else {
		copy(zeta, desc.ProportionalDamping[:k])
	}

	discretes := make([]*mode.Discrete, 0, k)
	for i := 0; i < k; i++ {
		bi := mat.Row(nil, i, b0)
		ci := mat.Col(nil, i, c0)

		if b.hasHSV {
			hsv := HankelSingularValue(w[i], zeta[i], bi, ci)
			if hsv <= b.hsvThreshold {
				continue
			}
		}

		discretes = append(discretes, mode.NewDiscrete(tau, mode.Mode{
			Omega: w[i], Zeta: zeta[i], B: bi, C: ci,
		}))
	}

	return &Engine{
		inputTags:  inputSchema,
		outputTags: outputSchema,
		u:          make([]float64, totalWidth(inputSchema)),
		y:          make([]float64, totalWidth(outputSchema)),
		modes:      discretes,
	}, nil
}

func totalWidth(schemas []component.TagSchema) int {
	n := 0
	for _, s := range schemas {
		n += s.Width
	}
	return n
}

// filterIO retains only the FEM entries any selected tag matches,
// building the tag schema (declared tag order, concatenated index-list
// widths) along the way. isInput distinguishes which matching rule
// (MatchInputs vs MatchOutputs) to use.
func filterIO(tags []catalog.Tag, defs []catalog.PortDef, isInput bool) (keptDefIdx []int, schema []component.TagSchema, err error) {
	keptSet := make(map[int]bool)
	schema = make([]component.TagSchema, 0, len(tags))

	for _, tag := range tags {
		var indices []int
		var ok bool
		if isInput {
			indices, ok = catalog.MatchInputs(tag, defs)
		} else {
			indices, ok = catalog.MatchOutputs(tag, defs)
		}
		if !ok {
			return nil, nil, fmt.Errorf("%w: tag %s matches no FEM entry", component.ErrSchema, tag)
		}
		schema = append(schema, component.TagSchema{Tag: tag, Width: len(indices)})

		for i, d := range defs {
			if d.Name == tag.String() {
				keptSet[i] = true
			}
		}
	}

	for i := range defs {
		if keptSet[i] {
			keptDefIdx = append(keptDefIdx, i)
		}
	}
	sort.Ints(keptDefIdx)
	return keptDefIdx, schema, nil
}

// projectionMatrices builds B0 (n_modes x n_scalar_inputs) and C0
// (n_scalar_outputs x n_modes) by selecting, in declared-tag order, the
// columns/rows of the FEM's (already IO-filtered) projection matrices
// that correspond to each tag's matched index list.
func projectionMatrices(desc *fem.Descriptor, inputs, outputs []catalog.Tag) (b0, c0 *mat.Dense, err error) {
	n := desc.NModes()

	var inCols []int
	for _, tag := range inputs {
		cols, convErr := toGlobalInputColumns(desc, tag)
		if convErr != nil {
			return nil, nil, convErr
		}
		inCols = append(inCols, cols...)
	}

	var outRows []int
	for _, tag := range outputs {
		rows, convErr := toGlobalOutputRows(desc, tag)
		if convErr != nil {
			return nil, nil, convErr
		}
		outRows = append(outRows, rows...)
	}

	b0 = mat.NewDense(n, len(inCols), nil)
	for j, c := range inCols {
		col := mat.Col(nil, c, desc.InputsToModalForces)
		b0.SetCol(j, col)
	}

	c0 = mat.NewDense(len(outRows), n, nil)
	for i, r := range outRows {
		row := mat.Row(nil, r, desc.ModalDisplacementsToOutputs)
		c0.SetRow(i, row)
	}

	return b0, c0, nil
}

// toGlobalInputColumns resolves a tag's matched FEM input entries into
// 0-based column offsets into the (already IO-filtered)
// InputsToModalForces matrix.
func toGlobalInputColumns(desc *fem.Descriptor, tag catalog.Tag) ([]int, error) {
	offsets := fem.ColumnOffsets(desc.Inputs)
	var cols []int
	found := false
	for i, d := range desc.Inputs {
		if d.Name != tag.String() {
			continue
		}
		found = true
		for localOffset := 0; localOffset < len(d.Indices); localOffset++ {
			cols = append(cols, offsets[i]+localOffset)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: tag %s matches no FEM input after filtering", component.ErrSchema, tag)
	}
	return cols, nil
}

func toGlobalOutputRows(desc *fem.Descriptor, tag catalog.Tag) ([]int, error) {
	offsets := fem.ColumnOffsets(desc.Outputs)
	var rows []int
	found := false
	for i, d := range desc.Outputs {
		if d.Name != tag.String() {
			continue
		}
		found = true
		for localOffset := 0; localOffset < len(d.Indices); localOffset++ {
			rows = append(rows, offsets[i]+localOffset)
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: tag %s matches no FEM output after filtering", component.ErrSchema, tag)
	}
	return rows, nil
}
