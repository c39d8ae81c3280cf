package component

import "errors"

// Error kinds per spec section 7. Components wrap these with fmt.Errorf
// and %w so callers can errors.Is against them.
var (
	// ErrConfiguration covers missing required builder input: no
	// sampling rate, no FEM, no inputs/outputs selected.
	ErrConfiguration = errors.New("component: configuration error")

	// ErrSchema covers a selected tag that matches nothing in the FEM,
	// or a controller input port left unmapped.
	ErrSchema = errors.New("component: schema error")

	// ErrPayload covers an envelope whose payload length doesn't match
	// its declared port width, or a required envelope that is absent.
	ErrPayload = errors.New("component: payload error")

	// ErrIO covers failure to read a FEM or wind-load file.
	ErrIO = errors.New("component: i/o error")

	// ErrStep covers an underlying solver producing non-finite state.
	ErrStep = errors.New("component: step error")

	// ErrExhausted names a source whose streams have run out of samples;
	// it is not a failure. No component in this module returns it:
	// Component.Outputs reports exhaustion by returning nil.
	ErrExhausted = errors.New("component: source exhausted")
)
