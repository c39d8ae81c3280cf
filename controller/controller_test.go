//go:generate mockgen -write_package_comment=false -package=controller_test -destination=mock_filter_test.go github.com/sarchlab/gmt-dos/controller Filter
package controller_test

import (
	"testing"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/component"
	"github.com/sarchlab/gmt-dos/controller"
)

func TestController(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Controller Suite")
}

var _ = Describe("Adapter", func() {
	var (
		mockCtrl *gomock.Controller
		filter   *MockFilter
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		filter = NewMockFilter(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("rejects a port layout whose widths don't sum to the filter's width", func() {
		filter.EXPECT().InputWidth().Return(4).AnyTimes()
		filter.EXPECT().OutputWidth().Return(1).AnyTimes()

		_, err := controller.NewAdapter(filter,
			[]component.TagSchema{{Tag: catalog.TagOSSAzDriveD, Width: 2}},
			[]component.TagSchema{{Tag: catalog.TagMountCmd, Width: 1}},
		)
		Expect(err).To(HaveOccurred())
	})

	It("zero-fills a missing declared input and forwards the filter's output", func() {
		filter.EXPECT().InputWidth().Return(2).AnyTimes()
		filter.EXPECT().OutputWidth().Return(1).AnyTimes()
		filter.EXPECT().Step([]float64{0, 0}).Return([]float64{42})

		adapter, err := controller.NewAdapter(filter,
			[]component.TagSchema{{Tag: catalog.TagOSSAzDriveD, Width: 2}},
			[]component.TagSchema{{Tag: catalog.TagMountCmd, Width: 1}},
		)
		Expect(err).NotTo(HaveOccurred())

		Expect(adapter.Inputs(nil)).To(Succeed())
		Expect(adapter.Step()).To(Succeed())

		outs := adapter.Outputs()
		Expect(outs).To(HaveLen(1))
		payload, _ := outs[0].Payload()
		Expect(payload).To(Equal([]float64{42}))
	})

	It("copies tagged input payloads into their fixed offsets", func() {
		filter.EXPECT().InputWidth().Return(4).AnyTimes()
		filter.EXPECT().OutputWidth().Return(1).AnyTimes()
		filter.EXPECT().Step([]float64{1, 2, 3, 4}).Return([]float64{0})

		adapter, err := controller.NewAdapter(filter,
			[]component.TagSchema{
				{Tag: catalog.TagOSSAzDriveD, Width: 2},
				{Tag: catalog.TagOSSElDriveD, Width: 2},
			},
			[]component.TagSchema{{Tag: catalog.TagMountCmd, Width: 1}},
		)
		Expect(err).NotTo(HaveOccurred())

		Expect(adapter.Inputs([]catalog.Signal{
			catalog.NewSignal(catalog.TagOSSAzDriveD, []float64{1, 2}),
			catalog.NewSignal(catalog.TagOSSElDriveD, []float64{3, 4}),
		})).To(Succeed())
		Expect(adapter.Step()).To(Succeed())
	})

	It("fails when the filter returns an unexpected output width", func() {
		filter.EXPECT().InputWidth().Return(1).AnyTimes()
		filter.EXPECT().OutputWidth().Return(1).AnyTimes()
		filter.EXPECT().Step(gomock.Any()).Return([]float64{1, 2})

		adapter, err := controller.NewAdapter(filter,
			[]component.TagSchema{{Tag: catalog.TagOSSAzDriveD, Width: 1}},
			[]component.TagSchema{{Tag: catalog.TagMountCmd, Width: 1}},
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(adapter.Inputs(nil)).To(Succeed())
		Expect(adapter.Step()).To(HaveOccurred())
	})
})

var _ = Describe("NewMountAdapter", func() {
	It("builds the mount adapter's fixed port layout", func() {
		mockCtrl := gomock.NewController(GinkgoT())
		defer mockCtrl.Finish()
		filter := NewMockFilter(mockCtrl)
		filter.EXPECT().InputWidth().Return(60).AnyTimes()
		filter.EXPECT().OutputWidth().Return(3).AnyTimes()

		adapter, err := controller.NewMountAdapter(filter)
		Expect(err).NotTo(HaveOccurred())
		Expect(adapter.InputTags()).To(HaveLen(3))
		Expect(adapter.OutputTags()).To(HaveLen(1))
	})
})
