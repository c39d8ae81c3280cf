// Package controller adapts externally generated, fixed-dimension
// single-rate linear filters (e.g. Simulink-exported mount and M1
// hardpoint controllers) onto the IO bus's tagged Component protocol.
package controller

//go:generate mockgen -destination=mock_filter_test.go -package=controller_test github.com/sarchlab/gmt-dos/controller Filter

// Filter is the externally generated, fixed-dimension, single-rate
// linear controller a concrete Adapter wraps. Its internals (state
// matrices, discretization) are out of scope here; the adapter only
// needs its fixed input/output widths and its step function.
type Filter interface {
	// Step advances the filter by one sample given a dense input vector
	// of length InputWidth, returning a dense output vector of length
	// OutputWidth.
	Step(in []float64) []float64

	// InputWidth is the filter's fixed input vector length.
	InputWidth() int

	// OutputWidth is the filter's fixed output vector length.
	OutputWidth() int
}
