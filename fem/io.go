package fem

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sarchlab/gmt-dos/catalog"
	"gonum.org/v1/gonum/mat"
)

// wirePortDef and wireDescriptor are the on-disk JSON shapes produced by
// the off-line FEM tool. The exact on-disk format is out of scope per the
// spec; JSON with row-major flattened matrices is used here because it
// needs no domain-specific codec and keeps the loader a thin boundary.
type wirePortDef struct {
	Name    string `json:"name"`
	Indices []int  `json:"indices"`
}

type wireDescriptor struct {
	Inputs                      []wirePortDef `json:"inputs"`
	Outputs                     []wirePortDef `json:"outputs"`
	InputsToModalForces         []float64     `json:"inputs_to_modal_forces"`
	ModalDisplacementsToOutputs []float64     `json:"modal_displacements_to_outputs"`
	EigenFrequenciesHz          []float64     `json:"eigen_frequencies_hz"`
	ProportionalDamping         []float64     `json:"proportional_damping"`
}

// Load reads and parses a FEM descriptor from path.
func Load(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fem: open %s: %w", path, err)
	}
	defer f.Close()

	var w wireDescriptor
	if err := json.NewDecoder(f).Decode(&w); err != nil {
		return nil, fmt.Errorf("fem: decode %s: %w", path, err)
	}
	return fromWire(&w)
}

func fromWire(w *wireDescriptor) (*Descriptor, error) {
	d := &Descriptor{
		Inputs:              make([]catalog.PortDef, len(w.Inputs)),
		Outputs:             make([]catalog.PortDef, len(w.Outputs)),
		EigenFrequencies:    w.EigenFrequenciesHz,
		ProportionalDamping: w.ProportionalDamping,
	}
	for i, p := range w.Inputs {
		d.Inputs[i] = catalog.PortDef{Name: p.Name, Indices: p.Indices}
	}
	for i, p := range w.Outputs {
		d.Outputs[i] = catalog.PortDef{Name: p.Name, Indices: p.Indices}
	}

	nModes := len(w.EigenFrequenciesHz)
	nIn := d.NInputIndices()
	nOut := d.NOutputIndices()

	if nModes > 0 && nIn > 0 {
		if len(w.InputsToModalForces) != nModes*nIn {
			return nil, fmt.Errorf("fem: inputs_to_modal_forces has %d entries, want %d",
				len(w.InputsToModalForces), nModes*nIn)
		}
		d.InputsToModalForces = mat.NewDense(nModes, nIn, append([]float64(nil), w.InputsToModalForces...))
	}
	if nModes > 0 && nOut > 0 {
		if len(w.ModalDisplacementsToOutputs) != nOut*nModes {
			return nil, fmt.Errorf("fem: modal_displacements_to_outputs has %d entries, want %d",
				len(w.ModalDisplacementsToOutputs), nOut*nModes)
		}
		d.ModalDisplacementsToOutputs = mat.NewDense(nOut, nModes, append([]float64(nil), w.ModalDisplacementsToOutputs...))
	}

	return d, d.Validate()
}
