package vg

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Default tessellation policy values.
const (
	// DefaultTolerance is the maximum distance in device pixels between a
	// curve and its polygonal approximation.
	DefaultTolerance = 0.25

	// DefaultMinSegments is the smallest segment count for a full turn.
	DefaultMinSegments = 8

	// DefaultMaxSegments caps the segment count for a full turn.
	DefaultMaxSegments = 1024

	// minTolerance keeps Segments finite for absurdly small tolerances.
	minTolerance = 1e-3
)

// Policy decides how finely curved outlines are tessellated.
//
// The segment count of an arc is derived from its apparent on-screen radius
// so that the chord error stays below Tolerance device pixels whatever the
// zoom level. MinSegments and MaxSegments bound the count for a full turn;
// partial arcs get a proportional share.
type Policy struct {
	Tolerance   float64 `yaml:"tolerance"`
	MinSegments int     `yaml:"min_segments"`
	MaxSegments int     `yaml:"max_segments"`
}

// DefaultPolicy returns the policy used by NewContext.
func DefaultPolicy() Policy {
	return Policy{
		Tolerance:   DefaultTolerance,
		MinSegments: DefaultMinSegments,
		MaxSegments: DefaultMaxSegments,
	}
}

// Validate returns p with out-of-range fields clamped. Zero fields take
// their defaults, a non-positive or NaN tolerance becomes the default,
// MinSegments is at least 3 and MaxSegments at least MinSegments.
func (p Policy) Validate() Policy {
	if !(p.Tolerance > 0) || math.IsInf(p.Tolerance, 0) {
		p.Tolerance = DefaultTolerance
	}
	p.Tolerance = math.Max(p.Tolerance, minTolerance)
	if p.MinSegments == 0 {
		p.MinSegments = DefaultMinSegments
	}
	if p.MinSegments < 3 {
		p.MinSegments = 3
	}
	if p.MaxSegments == 0 {
		p.MaxSegments = max(DefaultMaxSegments, p.MinSegments)
	}
	if p.MaxSegments < p.MinSegments {
		p.MaxSegments = p.MinSegments
	}
	return p
}

// Segments returns the number of straight edges used for an arc of the given
// model-space radius, transform scale factor and angular sweep (radians).
// The result is always at least 1. Bad inputs clamp to the minimum.
func (p Policy) Segments(radius, scale, sweep float64) int {
	p = p.Validate()
	sweep = math.Abs(sweep)
	if !(sweep > 0) || math.IsInf(sweep, 0) {
		sweep = 2 * math.Pi
	}
	sweep = math.Min(sweep, 2*math.Pi)
	frac := sweep / (2 * math.Pi)

	lo := max(1, int(math.Ceil(float64(p.MinSegments)*frac)))
	hi := max(lo, int(math.Ceil(float64(p.MaxSegments)*frac)))

	r := radius * scale
	if !(r > 0) || math.IsInf(r, 0) {
		if math.IsInf(r, 1) {
			return hi
		}
		Logger().Debug("vg: clamping segment count", "radius", radius, "scale", scale)
		return lo
	}
	if r <= p.Tolerance {
		return lo
	}
	// Chord error of a segment spanning angle theta on radius r is
	// r*(1-cos(theta/2)); solve for theta at the tolerance.
	theta := 2 * math.Acos(1-p.Tolerance/r)
	n := math.Ceil(sweep / theta)
	// Past about 4.5e15 the cosine term rounds to 1 and theta collapses to 0.
	if !(theta > 0) || math.IsInf(n, 0) || math.IsNaN(n) || n >= float64(hi) {
		return hi
	}
	return max(int(n), lo)
}

// ResolutionFor returns the full-turn segment count for a circle of the given
// model-space radius drawn under m.
func ResolutionFor(radius float64, m Matrix, p Policy) int {
	return p.Segments(radius, m.MaxScaleFactor(), 2*math.Pi)
}

// ParsePolicy reads a YAML policy document. Missing fields keep their
// defaults and the result is validated.
//
//	tolerance: 0.1
//	min_segments: 12
//	max_segments: 512
func ParsePolicy(data []byte) (Policy, error) {
	p := DefaultPolicy()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPolicy(), fmt.Errorf("vg: parse policy: %w", err)
	}
	v := p.Validate()
	if v != p {
		Logger().Warn("vg: policy normalised", "parsed", p, "used", v)
	}
	return v, nil
}
