package main

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"

	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/controller"
	"github.com/sarchlab/gmt-dos/diagnostics"
	"github.com/sarchlab/gmt-dos/fem"
	"github.com/sarchlab/gmt-dos/statespace"
	"github.com/sarchlab/gmt-dos/wind"
)

func TestGmtdosSim(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gmtdos-Sim Suite")
}

// countingFilter is a fake controller.Filter that records how many times
// it was stepped, standing in for the mount adapter's externally
// generated filter.
type countingFilter struct {
	calls int
}

func (f *countingFilter) Step(in []float64) []float64 {
	f.calls++
	return make([]float64, 3)
}

func (f *countingFilter) InputWidth() int  { return 60 }
func (f *countingFilter) OutputWidth() int { return 3 }

var _ controller.Filter = (*countingFilter)(nil)

// oneModeFEM is a minimal synthetic FEM descriptor: one mode, one input
// port and one output port, sized to match the wind stream this test
// drives it with.
func oneModeFEM() *fem.Descriptor {
	return &fem.Descriptor{
		Inputs:                      []catalog.PortDef{{Name: "OSSM1Lcl6F", Indices: []int{1, 2, 3, 4, 5, 6}}},
		Outputs:                     []catalog.PortDef{{Name: "OSSM1Lcl", Indices: []int{1, 2, 3}}},
		InputsToModalForces:         mat.NewDense(1, 6, []float64{1, 0, 0, 0, 0, 0}),
		ModalDisplacementsToOutputs: mat.NewDense(3, 1, []float64{1, 1, 1}),
		EigenFrequencies:            []float64{10},
		ProportionalDamping:         []float64{0.02},
	}
}

func sixSampleRecord() *wind.Record {
	bodies := make([][]float64, 6)
	for i := range bodies {
		bodies[i] = []float64{1, 2, 3, 4, 5, 6}
	}
	return &wind.Record{
		Time: []float64{0, 0.1, 0.2, 0.3, 0.4, 0.5},
		Bodies: map[string][][]float64{
			"OSSM1Lcl6F": bodies,
		},
	}
}

func newEngineSourceMount(filter controller.Filter) (*statespace.Engine, *wind.Source, *controller.Adapter) {
	engine, err := statespace.NewBuilder(oneModeFEM()).
		WithSampling(1000).
		WithInputs(catalog.TagOSSM1Lcl6F).
		WithOutputs(catalog.TagOSSM1Lcl).
		Build()
	Expect(err).NotTo(HaveOccurred())

	source, err := wind.NewBuilder(sixSampleRecord()).M1Segments().Build()
	Expect(err).NotTo(HaveOccurred())

	mount, err := controller.NewMountAdapter(filter)
	Expect(err).NotTo(HaveOccurred())

	return engine, source, mount
}

var _ = Describe("shouldStepController", func() {
	It("steps every sample when the divider is 0", func() {
		for sample := 0; sample < 5; sample++ {
			Expect(shouldStepController(sample, 0)).To(BeTrue())
		}
	})

	It("steps every sample when the divider is 1", func() {
		for sample := 0; sample < 5; sample++ {
			Expect(shouldStepController(sample, 1)).To(BeTrue())
		}
	})

	It("steps only on sample 0 and its multiples for a divider of 2", func() {
		got := make([]bool, 6)
		for sample := range got {
			got[sample] = shouldStepController(sample, 2)
		}
		Expect(got).To(Equal([]bool{true, false, true, false, true, false}))
	})
})

var _ = Describe("run", func() {
	It("steps the controller every sample when the divider is 0", func() {
		filter := &countingFilter{}
		engine, source, mount := newEngineSourceMount(filter)
		run(engine, source, mount, 0, diagnostics.NewReport())
		Expect(filter.calls).To(Equal(6))
	})

	It("steps the controller only at sample 0 and every divider-th sample after", func() {
		filter := &countingFilter{}
		engine, source, mount := newEngineSourceMount(filter)
		run(engine, source, mount, 2, diagnostics.NewReport())
		Expect(filter.calls).To(Equal(3))
	})
})
