package catalog

import "errors"

// ErrNoPayload is returned by Signal.Payload when the envelope carries no
// vector, either because it is a bare identity/type envelope or a
// schema-negotiation length-only envelope.
var ErrNoPayload = errors.New("catalog: signal has no payload")

// Signal is the run-time envelope that is the only currency on the IO bus:
// a tag paired with an optional payload. Two envelopes with the same tag
// compare equal regardless of payload (identity equality).
type Signal struct {
	tag     Tag
	payload []float64
	length  int
	hasLen  bool
}

// NewTag builds an empty, tag-only envelope (a pure identity/type value).
func NewTag(tag Tag) Signal {
	return Signal{tag: tag}
}

// NewLength builds a length-only envelope used for schema negotiation: it
// carries no data, only the vector length a future payload would have.
func NewLength(tag Tag, n int) Signal {
	return Signal{tag: tag, length: n, hasLen: true}
}

// NewSignal builds a filled envelope from a vector of doubles. The
// envelope takes ownership of payload; callers that need to keep using
// their slice should pass a copy.
func NewSignal(tag Tag, payload []float64) Signal {
	return Signal{tag: tag, payload: payload}
}

// Tag returns the envelope's identity.
func (s Signal) Tag() Tag { return s.tag }

// HasPayload reports whether the envelope carries a vector.
func (s Signal) HasPayload() bool { return s.payload != nil }

// Payload returns the envelope's vector, or ErrNoPayload if it has none.
func (s Signal) Payload() ([]float64, error) {
	if s.payload == nil {
		return nil, ErrNoPayload
	}
	return s.payload, nil
}

// Length returns the envelope's declared length: the payload length if
// filled, the negotiated length if length-only, or 0 otherwise.
func (s Signal) Length() int {
	if s.payload != nil {
		return len(s.payload)
	}
	if s.hasLen {
		return s.length
	}
	return 0
}

// SameTag reports identity equality independent of payload: two
// envelopes with the same tag are the same signal on the bus.
func (s Signal) SameTag(other Signal) bool {
	return s.tag == other.tag
}

// Clone returns an envelope carrying a fresh copy of the payload, so that
// callers may mutate the result freely without aliasing the source.
func (s Signal) Clone() Signal {
	if s.payload == nil {
		return s
	}
	cp := make([]float64, len(s.payload))
	copy(cp, s.payload)
	return Signal{tag: s.tag, payload: cp}
}
