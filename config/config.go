// Package config assembles a run's configuration: sampling rate,
// selected FEM input/output tags, modal-truncation parameters, and the
// wind-load case to drive the simulation with. Mirrors the teacher's
// fluent DeviceBuilder: value-receiver With... chains terminated by a
// single Build call, loadable from YAML the way the teacher loads
// programs via core.LoadProgramFileFromYAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/gmt-dos/catalog"
)

// EigenOverride pins a single mode's eigenfrequency to a new value,
// identified by its position in the FEM's ascending-sorted list.
type EigenOverride struct {
	Index int     `yaml:"index"`
	HzNew float64 `yaml:"hz_new"`
}

// RunConfig is the fully resolved configuration for one simulation run.
type RunConfig struct {
	SamplingHz          float64
	FEMPath             string
	WindLoadPath        string
	WindLoadCase        string
	Inputs              []string
	Outputs             []string
	ProportionalDamping float64
	HasDamping          bool
	EigenOverrides      []EigenOverride
	MaxEigenHz          float64
	HasMaxEigen         bool
	HankelThreshold     float64
	HasHankel           bool
	ControllerDivider   int
}

// wireRunConfig distinguishes an absent optional field from an explicit
// zero value using pointer fields, the way yaml.v3 leaves unset pointer
// fields nil.
type wireRunConfig struct {
	SamplingHz          float64         `yaml:"sampling_hz"`
	FEMPath             string          `yaml:"fem_path"`
	WindLoadPath        string          `yaml:"wind_load_path"`
	WindLoadCase        string          `yaml:"wind_load_case"`
	Inputs              []string        `yaml:"inputs"`
	Outputs             []string        `yaml:"outputs"`
	ProportionalDamping *float64        `yaml:"proportional_damping"`
	EigenOverrides      []EigenOverride `yaml:"eigen_overrides"`
	MaxEigenHz          *float64        `yaml:"max_eigen_hz"`
	HankelThreshold     *float64        `yaml:"hankel_threshold"`
	ControllerDivider   int             `yaml:"controller_divider"`
}

// Load reads and validates a RunConfig from a YAML file.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var w wireRunConfig
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	rc := &RunConfig{
		SamplingHz:        w.SamplingHz,
		FEMPath:           w.FEMPath,
		WindLoadPath:      w.WindLoadPath,
		WindLoadCase:      w.WindLoadCase,
		Inputs:            w.Inputs,
		Outputs:           w.Outputs,
		EigenOverrides:    w.EigenOverrides,
		ControllerDivider: w.ControllerDivider,
	}
	if w.ProportionalDamping != nil {
		rc.ProportionalDamping = *w.ProportionalDamping
		rc.HasDamping = true
	}
	if w.MaxEigenHz != nil {
		rc.MaxEigenHz = *w.MaxEigenHz
		rc.HasMaxEigen = true
	}
	if w.HankelThreshold != nil {
		rc.HankelThreshold = *w.HankelThreshold
		rc.HasHankel = true
	}

	if err := rc.Validate(); err != nil {
		return nil, err
	}
	return rc, nil
}

// Validate checks the minimal set of fields a run cannot proceed
// without: sampling rate, FEM and wind-load sources, and at least one
// input and output tag.
func (c *RunConfig) Validate() error {
	if c.SamplingHz <= 0 {
		return fmt.Errorf("config: sampling_hz must be positive")
	}
	if c.FEMPath == "" {
		return fmt.Errorf("config: fem_path is required")
	}
	if c.WindLoadPath == "" {
		return fmt.Errorf("config: wind_load_path is required")
	}
	if len(c.Inputs) == 0 {
		return fmt.Errorf("config: at least one input tag is required")
	}
	if len(c.Outputs) == 0 {
		return fmt.Errorf("config: at least one output tag is required")
	}
	if c.ControllerDivider < 0 {
		return fmt.Errorf("config: controller_divider cannot be negative")
	}
	return nil
}

// InputTags resolves the configured input tag names against the
// catalog, failing on any name the catalog doesn't recognize.
func (c *RunConfig) InputTags() ([]catalog.Tag, error) {
	return resolveTags(c.Inputs)
}

// OutputTags resolves the configured output tag names against the
// catalog.
func (c *RunConfig) OutputTags() ([]catalog.Tag, error) {
	return resolveTags(c.Outputs)
}

func resolveTags(names []string) ([]catalog.Tag, error) {
	tags := make([]catalog.Tag, 0, len(names))
	for _, n := range names {
		t, ok := catalog.TagByName(n)
		if !ok {
			return nil, fmt.Errorf("config: unknown tag %q", n)
		}
		tags = append(tags, t)
	}
	return tags, nil
}
