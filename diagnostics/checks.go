// Package diagnostics validates the simulator's testable runtime
// properties — finite outputs, bounded command envelopes, schema
// round-trip equality — the way the teacher's verify package lints a
// compiled program, reporting a list of issues rather than failing on
// the first one.
package diagnostics

import (
	"fmt"
	"math"

	"github.com/sarchlab/gmt-dos/catalog"
	"github.com/sarchlab/gmt-dos/component"
)

// IssueType classifies a diagnostics finding.
type IssueType int

const (
	// IssueNonFinite marks an output payload containing NaN or Inf.
	IssueNonFinite IssueType = iota
	// IssueOutOfBounds marks a command envelope outside its configured range.
	IssueOutOfBounds
	// IssueSchemaMismatch marks an output set that doesn't match a
	// component's declared schema.
	IssueSchemaMismatch
)

// Issue is a single diagnostics finding.
type Issue struct {
	Type    IssueType
	Sample  int
	Tag     catalog.Tag
	Message string
}

// CheckFinite reports an Issue for every signal in the batch whose
// payload contains a NaN or infinite value, per spec section 8's
// finite-output property.
func CheckFinite(sample int, signals []catalog.Signal) []Issue {
	var issues []Issue
	for _, s := range signals {
		payload, err := s.Payload()
		if err != nil {
			continue
		}
		for _, v := range payload {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				issues = append(issues, Issue{
					Type:    IssueNonFinite,
					Sample:  sample,
					Tag:     s.Tag(),
					Message: fmt.Sprintf("%s has a non-finite value: %v", s.Tag(), v),
				})
				break
			}
		}
	}
	return issues
}

// Bound is an inclusive scalar range a tagged envelope's payload must
// stay within.
type Bound struct {
	Min, Max float64
}

// CheckBounds reports an Issue for every signal whose payload contains
// a value outside its configured bound, per spec section 8's
// bounded-command-envelope property. Tags without a configured bound
// are not checked.
func CheckBounds(sample int, signals []catalog.Signal, bounds map[catalog.Tag]Bound) []Issue {
	var issues []Issue
	for _, s := range signals {
		b, ok := bounds[s.Tag()]
		if !ok {
			continue
		}
		payload, err := s.Payload()
		if err != nil {
			continue
		}
		for _, v := range payload {
			if v < b.Min || v > b.Max {
				issues = append(issues, Issue{
					Type:    IssueOutOfBounds,
					Sample:  sample,
					Tag:     s.Tag(),
					Message: fmt.Sprintf("%s value %v outside bound [%v, %v]", s.Tag(), v, b.Min, b.Max),
				})
				break
			}
		}
	}
	return issues
}

// CheckSchemaRoundTrip reports an Issue for every declared tag missing
// from the observed signal set, and for every observed signal whose
// payload width doesn't match its declared width, per spec section 8's
// schema round-trip property.
func CheckSchemaRoundTrip(sample int, declared []component.TagSchema, signals []catalog.Signal) []Issue {
	var issues []Issue

	byTag := make(map[catalog.Tag]catalog.Signal, len(signals))
	for _, s := range signals {
		byTag[s.Tag()] = s
	}

	for _, want := range declared {
		got, ok := byTag[want.Tag]
		if !ok {
			issues = append(issues, Issue{
				Type:    IssueSchemaMismatch,
				Sample:  sample,
				Tag:     want.Tag,
				Message: fmt.Sprintf("%s declared but not present in output", want.Tag),
			})
			continue
		}
		payload, err := got.Payload()
		if err != nil || len(payload) != want.Width {
			issues = append(issues, Issue{
				Type:    IssueSchemaMismatch,
				Sample:  sample,
				Tag:     want.Tag,
				Message: fmt.Sprintf("%s expected width %d", want.Tag, want.Width),
			})
		}
	}
	return issues
}
