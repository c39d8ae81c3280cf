package catalog

// PortDef is one FEM input or output entry: a name and an ordered list of
// 1-based scalar indices into the global modal projection matrices.
type PortDef struct {
	Name    string
	Indices []int
}

// MatchInputs matches tag against a FEM's ordered input list. Multiple
// entries sharing the tag's name concatenate their index lists in
// encounter order. Returns ok=false (not an error) when nothing matches,
// or when the tag is not declared as a FEM-input-matching tag at all.
func MatchInputs(tag Tag, inputs []PortDef) (indices []int, ok bool) {
	if !tag.MatchesFEMInputs() {
		return nil, false
	}
	return matchByName(tag.String(), inputs)
}

// MatchOutputs matches tag against a FEM's ordered output list, following
// the same concatenation rule as MatchInputs.
func MatchOutputs(tag Tag, outputs []PortDef) (indices []int, ok bool) {
	if !tag.MatchesFEMOutputs() {
		return nil, false
	}
	return matchByName(tag.String(), outputs)
}

func matchByName(name string, defs []PortDef) (indices []int, ok bool) {
	for _, d := range defs {
		if d.Name == name {
			indices = append(indices, d.Indices...)
			ok = true
		}
	}
	return indices, ok
}
