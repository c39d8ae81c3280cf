// Package fem holds the modal finite-element descriptor produced
// off-line by the FEM tool: input/output port definitions, the
// projection matrices between scalar ports and modal coordinates, and
// the per-mode eigenfrequency and damping vectors.
package fem

import (
	"fmt"

	"github.com/sarchlab/gmt-dos/catalog"
	"gonum.org/v1/gonum/mat"
)

// Descriptor is the parsed FEM modal decomposition.
type Descriptor struct {
	// Inputs and Outputs are the FEM's ordered port lists. A port may be
	// absent from the list, representing a port the FEM producer did not
	// wire; that is not an error.
	Inputs  []catalog.PortDef
	Outputs []catalog.PortDef

	// InputsToModalForces is n_modes x total_input_indices, row-major.
	InputsToModalForces *mat.Dense

	// ModalDisplacementsToOutputs is total_output_indices x n_modes,
	// row-major.
	ModalDisplacementsToOutputs *mat.Dense

	// EigenFrequencies is in Hz, one entry per mode.
	EigenFrequencies []float64

	// ProportionalDamping is the FEM's per-mode damping ratio vector,
	// used unless the builder overrides it with a uniform value.
	ProportionalDamping []float64
}

// NModes returns the number of modes in the decomposition.
func (d *Descriptor) NModes() int {
	return len(d.EigenFrequencies)
}

// NInputIndices returns the total number of selected scalar input
// indices across all declared input ports.
func (d *Descriptor) NInputIndices() int {
	n := 0
	for _, p := range d.Inputs {
		n += len(p.Indices)
	}
	return n
}

// NOutputIndices returns the total number of selected scalar output
// indices across all declared output ports.
func (d *Descriptor) NOutputIndices() int {
	n := 0
	for _, p := range d.Outputs {
		n += len(p.Indices)
	}
	return n
}

// Validate checks the descriptor's internal shape consistency.
func (d *Descriptor) Validate() error {
	n := d.NModes()
	if n == 0 {
		return fmt.Errorf("fem: descriptor has zero modes")
	}
	if len(d.ProportionalDamping) != n {
		return fmt.Errorf("fem: proportional damping length %d != n_modes %d",
			len(d.ProportionalDamping), n)
	}
	if d.InputsToModalForces != nil {
		r, c := d.InputsToModalForces.Dims()
		if r != n || c != d.NInputIndices() {
			return fmt.Errorf("fem: inputs_to_modal_forces shape (%d,%d) != (%d,%d)",
				r, c, n, d.NInputIndices())
		}
	}
	if d.ModalDisplacementsToOutputs != nil {
		r, c := d.ModalDisplacementsToOutputs.Dims()
		if r != d.NOutputIndices() || c != n {
			return fmt.Errorf("fem: modal_displacements_to_outputs shape (%d,%d) != (%d,%d)",
				r, c, d.NOutputIndices(), n)
		}
	}
	return nil
}

// KeepInputs restricts the descriptor's input list (and the
// corresponding columns of InputsToModalForces) to the entries at idx, in
// the order given. Used by the builder's IO filtering step.
func (d *Descriptor) KeepInputs(idx []int) {
	kept := make([]catalog.PortDef, len(idx))
	for i, k := range idx {
		kept[i] = d.Inputs[k]
	}

	oldCols := columnOffsets(d.Inputs)
	var newCols []int
	for _, k := range idx {
		start, end := oldCols[k], oldCols[k+1]
		for c := start; c < end; c++ {
			newCols = append(newCols, c)
		}
	}
	d.Inputs = kept
	if d.InputsToModalForces != nil {
		d.InputsToModalForces = selectColumns(d.InputsToModalForces, newCols)
	}
}

// KeepOutputs restricts the descriptor's output list (and the
// corresponding rows of ModalDisplacementsToOutputs) to the entries at
// idx, in the order given.
func (d *Descriptor) KeepOutputs(idx []int) {
	kept := make([]catalog.PortDef, len(idx))
	for i, k := range idx {
		kept[i] = d.Outputs[k]
	}

	oldRows := columnOffsets(d.Outputs)
	var newRows []int
	for _, k := range idx {
		start, end := oldRows[k], oldRows[k+1]
		for r := start; r < end; r++ {
			newRows = append(newRows, r)
		}
	}
	d.Outputs = kept
	if d.ModalDisplacementsToOutputs != nil {
		d.ModalDisplacementsToOutputs = selectRows(d.ModalDisplacementsToOutputs, newRows)
	}
}

// ColumnOffsets returns, for a port list, the cumulative scalar-index
// offset at which each port's block starts, with a trailing sentinel
// equal to the total width. Exposed so callers building projection
// matrices can translate a tag's matched port entry into the global
// column/row range it occupies.
func ColumnOffsets(ports []catalog.PortDef) []int {
	return columnOffsets(ports)
}

func columnOffsets(ports []catalog.PortDef) []int {
	offsets := make([]int, len(ports)+1)
	for i, p := range ports {
		offsets[i+1] = offsets[i] + len(p.Indices)
	}
	return offsets
}

func selectColumns(m *mat.Dense, cols []int) *mat.Dense {
	r, _ := m.Dims()
	out := mat.NewDense(r, len(cols), nil)
	for j, c := range cols {
		col := mat.Col(nil, c, m)
		out.SetCol(j, col)
	}
	return out
}

func selectRows(m *mat.Dense, rows []int) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(rows), c, nil)
	for i, r := range rows {
		row := mat.Row(nil, r, m)
		out.SetRow(i, row)
	}
	return out
}
