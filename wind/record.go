// Package wind streams pre-recorded 6-DOF wind load vectors per tagged
// structural body into the IO bus.
package wind

import (
	"encoding/json"
	"fmt"
	"os"
)

// Record is a wind-load time series as read from disk: a time vector and
// a named mapping to per-sample 6-DOF load vectors, all bodies sharing
// the same sample count.
type Record struct {
	Time   []float64
	Bodies map[string][][]float64
}

type wireRecord struct {
	Time   []float64              `json:"time"`
	Bodies map[string][][]float64 `json:"bodies"`
}

// Load reads a wind-load record from path.
func Load(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wind: open %s: %w", path, err)
	}
	defer f.Close()

	var w wireRecord
	if err := json.NewDecoder(f).Decode(&w); err != nil {
		return nil, fmt.Errorf("wind: decode %s: %w", path, err)
	}

	r := &Record{Time: w.Time, Bodies: w.Bodies}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks that every body's sample count matches the time
// vector and every sample is a 6-DOF load vector.
func (r *Record) Validate() error {
	n := len(r.Time)
	for name, stream := range r.Bodies {
		if len(stream) != n {
			return fmt.Errorf("wind: body %q has %d samples, time vector has %d", name, len(stream), n)
		}
		for i, sample := range stream {
			if len(sample) != 6 {
				return fmt.Errorf("wind: body %q sample %d has width %d, want 6", name, i, len(sample))
			}
		}
	}
	return nil
}

// NSamples returns the number of samples in the record's time vector.
func (r *Record) NSamples() int { return len(r.Time) }

// Stream returns the named body's raw load stream, or nil, false if the
// record carries no such body.
func (r *Record) Stream(body string) ([][]float64, bool) {
	s, ok := r.Bodies[body]
	return s, ok
}
