package config_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/gmt-dos/config"
)

func TestConfig(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Config Suite")
}

var _ = Describe("RunConfigBuilder", func() {
	It("builds a valid config with the minimum required fields", func() {
		cfg, err := config.NewRunConfigBuilder().
			WithSamplingHz(1000).
			WithFEMPath("fem.json").
			WithWindLoadPath("wind.json").
			WithInputs("OSSM1Lcl6F").
			WithOutputs("OSSM1Lcl").
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.SamplingHz).To(BeNumerically("==", 1000))
	})

	It("rejects a config missing sampling rate", func() {
		_, err := config.NewRunConfigBuilder().
			WithFEMPath("fem.json").
			WithWindLoadPath("wind.json").
			WithInputs("OSSM1Lcl6F").
			WithOutputs("OSSM1Lcl").
			Build()
		Expect(err).To(HaveOccurred())
	})

	It("resolves tag names against the catalog", func() {
		cfg, err := config.NewRunConfigBuilder().
			WithSamplingHz(1000).
			WithFEMPath("fem.json").
			WithWindLoadPath("wind.json").
			WithInputs("OSSM1Lcl6F").
			WithOutputs("OSSM1Lcl").
			Build()
		Expect(err).NotTo(HaveOccurred())

		tags, err := cfg.InputTags()
		Expect(err).NotTo(HaveOccurred())
		Expect(tags).To(HaveLen(1))
	})

	It("fails to resolve an unknown tag name", func() {
		cfg, err := config.NewRunConfigBuilder().
			WithSamplingHz(1000).
			WithFEMPath("fem.json").
			WithWindLoadPath("wind.json").
			WithInputs("NotARealTag").
			WithOutputs("OSSM1Lcl").
			Build()
		Expect(err).NotTo(HaveOccurred())
		_, err = cfg.InputTags()
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Load", func() {
	It("loads and validates a YAML run configuration", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "run.yaml")
		contents := `
sampling_hz: 1000
fem_path: fem.json
wind_load_path: wind.json
wind_load_case: baseline
inputs: ["OSSM1Lcl6F"]
outputs: ["OSSM1Lcl"]
proportional_damping: 0.02
max_eigen_hz: 75
controller_divider: 4
`
		Expect(os.WriteFile(path, []byte(contents), 0o600)).To(Succeed())

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.HasDamping).To(BeTrue())
		Expect(cfg.HasMaxEigen).To(BeTrue())
		Expect(cfg.HasHankel).To(BeFalse())
		Expect(cfg.ControllerDivider).To(Equal(4))
	})

	It("fails validation when required fields are missing", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "run.yaml")
		Expect(os.WriteFile(path, []byte("sampling_hz: 1000\n"), 0o600)).To(Succeed())

		_, err := config.Load(path)
		Expect(err).To(HaveOccurred())
	})
})
