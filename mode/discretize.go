// Package mode discretizes one continuous-time damped modal oscillator
// into a 2-state discrete-time solver, and advances it one sample at a
// time.
package mode

import "math"

// Mode is one entry of the modal decomposition: a damped harmonic
// oscillator with an input influence row and an output influence column.
type Mode struct {
	// Omega is the angular eigenfrequency in rad/s, >= 0.
	Omega float64
	// Zeta is the modal damping ratio, > 0 in practice.
	Zeta float64
	// B is the input influence row, length n_in.
	B []float64
	// C is the output influence column, length n_out.
	C []float64
}

// Discrete is a discretized 2-state oscillator ready to step forward one
// sample at a time. It holds its own copy of B and C so that advancing
// many modes in parallel touches no shared mutable state.
type Discrete struct {
	b []float64
	c []float64

	// phi is the 2x2 state transition matrix, row-major: [phi00 phi01; phi10 phi11].
	phi [4]float64
	// gamma is the 2-vector input gain.
	gamma [2]float64

	x, xdot float64
}

// NewDiscrete builds the discrete solver for one mode, sampled at period
// tau seconds. Per spec 4.2, the discretization is derived in closed form
// from the 2x2 matrix exponential of the damped oscillator; zero-frequency
// modes are handled as a pure double integrator to avoid division by the
// eigenfrequency.
func NewDiscrete(tau float64, m Mode) *Discrete {
	d := &Discrete{
		b: append([]float64(nil), m.B...),
		c: append([]float64(nil), m.C...),
	}

	if m.Omega == 0 {
		// Pure double integrator: Phi = [[1, tau], [0, 1]], Gamma = [tau^2/2, tau].
		d.phi = [4]float64{1, tau, 0, 1}
		d.gamma = [2]float64{tau * tau / 2, tau}
		return d
	}

	w, z := m.Omega, m.Zeta
	e := math.Exp(-z * w * tau)

	var phi11, phi12, phi21, phi22 float64
	switch {
	case z < 1:
		wd := w * math.Sqrt(1-z*z)
		cosd, sind := math.Cos(wd*tau), math.Sin(wd*tau)
		phi11 = e * (cosd + (z*w/wd)*sind)
		phi12 = e * (sind / wd)
		phi21 = -e * (w * w / wd) * sind
		phi22 = e * (cosd - (z*w/wd)*sind)
	case z == 1:
		phi11 = e * (1 + w*tau)
		phi12 = e * tau
		phi21 = -e * w * w * tau
		phi22 = e * (1 - w*tau)
	default: // z > 1, overdamped
		wh := w * math.Sqrt(z*z-1)
		coshd, sinhd := math.Cosh(wh*tau), math.Sinh(wh*tau)
		phi11 = e * (coshd + (z*w/wh)*sinhd)
		phi12 = e * (sinhd / wh)
		phi21 = -e * (w * w / wh) * sinhd
		phi22 = e * (coshd - (z*w/wh)*sinhd)
	}

	d.phi = [4]float64{phi11, phi12, phi21, phi22}

	// Gamma = A^-1 (Phi - I) B, with B = [0; 1] and A^-1 = (1/w^2)[[-2zw,-1],[w^2,0]],
	// derived algebraically from Phi so it holds in every damping regime.
	d.gamma[0] = (-2*z*w*phi12 - phi22 + 1) / (w * w)
	d.gamma[1] = phi12

	return d
}

// Step advances the mode by one sample. It reads u (length n_in), forms
// the scalar modal force f = b.u, evaluates the output y = c * x_k (no
// input feed-through, per the spec's ordering guarantee), then advances
// the state scalars using the buffered force.
func (d *Discrete) Step(u []float64) []float64 {
	f := dot(d.b, u)

	y := make([]float64, len(d.c))
	for i, ci := range d.c {
		y[i] = ci * d.x
	}

	nx := d.phi[0]*d.x + d.phi[1]*d.xdot + d.gamma[0]*f
	nxdot := d.phi[2]*d.x + d.phi[3]*d.xdot + d.gamma[1]*f
	d.x, d.xdot = nx, nxdot

	return y
}

// State returns the mode's current (x, xdot), mainly for diagnostics and
// tests.
func (d *Discrete) State() (x, xdot float64) { return d.x, d.xdot }

// OutputWidth reports the width of the mode's contribution to the output
// vector.
func (d *Discrete) OutputWidth() int { return len(d.c) }

// InputWidth reports the width of the mode's expected input vector.
func (d *Discrete) InputWidth() int { return len(d.b) }

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var s float64
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}
