package config

// RunConfigBuilder assembles a RunConfig through a value-receiver
// With... chain, mirroring the teacher's DeviceBuilder.
type RunConfigBuilder struct {
	cfg RunConfig
}

// NewRunConfigBuilder starts an empty RunConfigBuilder.
func NewRunConfigBuilder() RunConfigBuilder {
	return RunConfigBuilder{}
}

// WithSamplingHz sets the run's sampling frequency.
func (b RunConfigBuilder) WithSamplingHz(hz float64) RunConfigBuilder {
	b.cfg.SamplingHz = hz
	return b
}

// WithFEMPath sets the path to the FEM descriptor file.
func (b RunConfigBuilder) WithFEMPath(path string) RunConfigBuilder {
	b.cfg.FEMPath = path
	return b
}

// WithWindLoadPath sets the directory holding the wind-load record
// files, one "<case>.json" file per wind-load case.
func (b RunConfigBuilder) WithWindLoadPath(path string) RunConfigBuilder {
	b.cfg.WindLoadPath = path
	return b
}

// WithWindLoadCase selects which named wind-load case to drive with.
func (b RunConfigBuilder) WithWindLoadCase(name string) RunConfigBuilder {
	b.cfg.WindLoadCase = name
	return b
}

// WithInputs sets the selected FEM input tag names.
func (b RunConfigBuilder) WithInputs(names ...string) RunConfigBuilder {
	b.cfg.Inputs = names
	return b
}

// WithOutputs sets the selected FEM output tag names.
func (b RunConfigBuilder) WithOutputs(names ...string) RunConfigBuilder {
	b.cfg.Outputs = names
	return b
}

// WithProportionalDamping overrides every mode's damping ratio uniformly.
func (b RunConfigBuilder) WithProportionalDamping(zeta float64) RunConfigBuilder {
	b.cfg.ProportionalDamping = zeta
	b.cfg.HasDamping = true
	return b
}

// WithEigenOverrides pins individual modes' eigenfrequencies.
func (b RunConfigBuilder) WithEigenOverrides(overrides ...EigenOverride) RunConfigBuilder {
	b.cfg.EigenOverrides = overrides
	return b
}

// WithMaxEigenHz truncates modes above the given eigenfrequency cutoff.
func (b RunConfigBuilder) WithMaxEigenHz(hz float64) RunConfigBuilder {
	b.cfg.MaxEigenHz = hz
	b.cfg.HasMaxEigen = true
	return b
}

// WithHankelThreshold prunes modes whose Hankel singular value is at or
// below the given threshold.
func (b RunConfigBuilder) WithHankelThreshold(threshold float64) RunConfigBuilder {
	b.cfg.HankelThreshold = threshold
	b.cfg.HasHankel = true
	return b
}

// WithControllerDivider sets how many engine samples elapse between
// controller steps; 0 means the controller steps every sample.
func (b RunConfigBuilder) WithControllerDivider(n int) RunConfigBuilder {
	b.cfg.ControllerDivider = n
	return b
}

// Build validates and returns the assembled RunConfig.
func (b RunConfigBuilder) Build() (*RunConfig, error) {
	cfg := b.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
