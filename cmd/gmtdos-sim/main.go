// Command gmtdos-sim drives a single simulation run: it wires a wind-load
// source through the modal engine and a mount controller adapter, steps
// them in strict per-sample order, and reports diagnostics at exit.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/component"
	"github.com/sarchlab/gmt-dos/config"
	"github.com/sarchlab/gmt-dos/controller"
	"github.com/sarchlab/gmt-dos/diagnostics"
	"github.com/sarchlab/gmt-dos/fem"
	"github.com/sarchlab/gmt-dos/statespace"
	"github.com/sarchlab/gmt-dos/wind"
)

// windLoadCases is the fixed list of named wind-load cases a run selects
// from by job index, per spec section 6.
var windLoadCases = []string{"baseline", "gusty", "quiescent"}

func main() {
	configPath := flag.String("config", "run.yaml", "path to the run configuration YAML file")
	flag.Parse()

	rc, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("gmtdos-sim: %v", err)
	}

	caseName := selectWindLoadCase(rc)
	log.Printf("gmtdos-sim: wind-load case %q", caseName)

	engine, source, mount, err := build(rc, caseName)
	if err != nil {
		log.Fatalf("gmtdos-sim: %v", err)
	}

	report := diagnostics.NewReport()
	run(engine, source, mount, rc.ControllerDivider, report)

	report.WriteReport(os.Stdout)
	if !report.OK() {
		log.Printf("gmtdos-sim: run completed with %d diagnostics issues", len(report.Issues))
	}
	atexit.Exit(0)
}

// selectWindLoadCase reads the job-index environment variable and
// resolves it against the fixed case list, per spec section 6.
func selectWindLoadCase(rc *config.RunConfig) string {
	if rc.WindLoadCase != "" {
		return rc.WindLoadCase
	}
	idxStr := os.Getenv("GMTDOS_JOB_INDEX")
	if idxStr == "" {
		return windLoadCases[0]
	}
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(windLoadCases) {
		log.Printf("gmtdos-sim: invalid GMTDOS_JOB_INDEX %q, defaulting to case 0", idxStr)
		return windLoadCases[0]
	}
	return windLoadCases[idx]
}

// windLoadRecordPath resolves the job-index case selection to the actual
// wind-load record loaded for the run: rc.WindLoadPath names the
// directory holding one record file per case, named "<case>.json", per
// spec section 6.
func windLoadRecordPath(rc *config.RunConfig, caseName string) string {
	return filepath.Join(rc.WindLoadPath, caseName+".json")
}

func build(rc *config.RunConfig, caseName string) (*statespace.Engine, *wind.Source, *controller.Adapter, error) {
	desc, err := fem.Load(rc.FEMPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: loading FEM: %v", component.ErrIO, err)
	}

	inputs, err := rc.InputTags()
	if err != nil {
		return nil, nil, nil, err
	}
	outputs, err := rc.OutputTags()
	if err != nil {
		return nil, nil, nil, err
	}

	b := statespace.NewBuilder(desc).
		WithSampling(rc.SamplingHz).
		WithInputs(inputs...).
		WithOutputs(outputs...)
	if rc.HasDamping {
		b = b.WithProportionalDamping(rc.ProportionalDamping)
	}
	if rc.HasMaxEigen {
		b = b.WithMaxEigenFrequency(rc.MaxEigenHz)
	}
	if rc.HasHankel {
		b = b.WithHankelThreshold(rc.HankelThreshold)
	}
	for _, ov := range rc.EigenOverrides {
		b = b.WithEigenFrequencies(statespace.EigenOverride{Index: ov.Index, HzNew: ov.HzNew})
	}

	engine, err := b.Build()
	if err != nil {
		return nil, nil, nil, err
	}

	record, err := wind.Load(windLoadRecordPath(rc, caseName))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: loading wind record: %v", component.ErrIO, err)
	}
	source, err := wind.NewBuilder(record).SelectAllWithASM().Build()
	if err != nil {
		return nil, nil, nil, err
	}

	mount, err := controller.NewMountAdapter(identityFilter{})
	if err != nil {
		return nil, nil, nil, err
	}

	return engine, source, mount, nil
}

// shouldStepController reports whether sample is one of the divider's
// step samples. A divider of 0 or 1 means the controller steps every
// sample; otherwise it steps on sample 0 and every multiple of divider
// after that (0, divider, 2*divider, ...), per spec sections 4.6 and 5.
func shouldStepController(sample, divider int) bool {
	if divider <= 1 {
		return true
	}
	return sample%divider == 0
}

// run executes the strict per-sample order from spec section 5: fetch
// wind loads, fold in controller feedback from the previous sample, step
// the engine, step the controller when shouldStepController admits the
// sample (leaving feedback at its last emitted value on skipped
// samples), observe diagnostics, advance.
func run(engine *statespace.Engine, source *wind.Source, mount *controller.Adapter, divider int, report *diagnostics.Report) {
	var feedback []catalog.Signal
	sample := 0

	for {
		windLoads := source.Outputs()
		if windLoads == nil {
			break
		}

		engineInputs := append(append([]catalog.Signal(nil), windLoads...), feedback...)
		if err := engine.Inputs(engineInputs); err != nil {
			log.Printf("gmtdos-sim: sample %d: engine inputs: %v", sample, err)
			break
		}
		if err := engine.Step(); err != nil {
			log.Printf("gmtdos-sim: sample %d: engine step: %v", sample, err)
			break
		}
		outputs := engine.Outputs()
		report.Observe(diagnostics.CheckFinite(sample, outputs))

		if shouldStepController(sample, divider) {
			if err := mount.Inputs(outputs); err != nil {
				log.Printf("gmtdos-sim: sample %d: controller inputs: %v", sample, err)
				break
			}
			if err := mount.Step(); err != nil {
				log.Printf("gmtdos-sim: sample %d: controller step: %v", sample, err)
				break
			}
			feedback = mount.Outputs()
		}

		if err := source.Step(); err != nil {
			log.Printf("gmtdos-sim: sample %d: wind source step: %v", sample, err)
			break
		}
		sample++
	}

	log.Printf("gmtdos-sim: completed %d samples", sample)
}

// identityFilter is a placeholder Filter matching the mount adapter's
// fixed port widths, standing in for the externally code-generated
// Simulink filter this binary would otherwise link against.
type identityFilter struct{}

func (identityFilter) Step(in []float64) []float64 {
	return make([]float64, 3)
}

func (identityFilter) InputWidth() int  { return 60 }
func (identityFilter) OutputWidth() int { return 3 }
