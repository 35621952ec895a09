package vg

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func TestPolicyValidate(t *testing.T) {
	tests := []struct {
		name string
		in   Policy
		want Policy
	}{
		{"zero takes defaults", Policy{}, DefaultPolicy()},
		{"valid unchanged", Policy{Tolerance: 0.5, MinSegments: 12, MaxSegments: 64}, Policy{Tolerance: 0.5, MinSegments: 12, MaxSegments: 64}},
		{"negative tolerance", Policy{Tolerance: -1, MinSegments: 8, MaxSegments: 16}, Policy{Tolerance: DefaultTolerance, MinSegments: 8, MaxSegments: 16}},
		{"nan tolerance", Policy{Tolerance: math.NaN()}, DefaultPolicy()},
		{"tiny tolerance", Policy{Tolerance: 1e-9}, Policy{Tolerance: minTolerance, MinSegments: DefaultMinSegments, MaxSegments: DefaultMaxSegments}},
		{"min below three", Policy{Tolerance: 1, MinSegments: 1, MaxSegments: 2}, Policy{Tolerance: 1, MinSegments: 3, MaxSegments: 3}},
		{"max below min", Policy{Tolerance: 1, MinSegments: 20, MaxSegments: 10}, Policy{Tolerance: 1, MinSegments: 20, MaxSegments: 20}},
		{"large min raises default max", Policy{MinSegments: 2000}, Policy{Tolerance: DefaultTolerance, MinSegments: 2000, MaxSegments: 2000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Validate(); got != tt.want {
				t.Errorf("Validate(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSegmentsChordError(t *testing.T) {
	p := DefaultPolicy()
	for _, r := range []float64{2, 10, 50, 200, 1000} {
		n := p.Segments(r, 1, 2*math.Pi)
		if n < p.MinSegments || n > p.MaxSegments {
			t.Errorf("Segments(%v) = %d, outside [%d, %d]", r, n, p.MinSegments, p.MaxSegments)
		}
		if n < p.MaxSegments {
			if chord := r * (1 - math.Cos(math.Pi/float64(n))); chord > p.Tolerance+1e-12 {
				t.Errorf("Segments(%v) = %d gives chord error %v > %v", r, n, chord, p.Tolerance)
			}
		}
	}
}

func TestSegmentsMonotonic(t *testing.T) {
	p := DefaultPolicy()
	prev := 0
	for r := 0.5; r < 1e21; r *= 1.7 {
		n := p.Segments(r, 1, 2*math.Pi)
		if n < prev {
			t.Errorf("Segments(%v) = %d < %d for a smaller radius", r, n, prev)
		}
		prev = n
	}
	if zoomed, plain := p.Segments(10, 10, 2*math.Pi), p.Segments(10, 1, 2*math.Pi); zoomed <= plain {
		t.Errorf("10x zoom gave %d segments, 1x gave %d", zoomed, plain)
	}
}

func TestSegmentsBounds(t *testing.T) {
	p := Policy{Tolerance: 0.25, MinSegments: 8, MaxSegments: 64}
	tests := []struct {
		name          string
		radius, scale float64
		sweep         float64
		want          int
	}{
		{"tiny radius", 0.1, 1, 2 * math.Pi, 8},
		{"zero radius", 0, 1, 2 * math.Pi, 8},
		{"negative radius", -5, 1, 2 * math.Pi, 8},
		{"nan scale", 10, math.NaN(), 2 * math.Pi, 8},
		{"infinite radius", math.Inf(1), 1, 2 * math.Pi, 64},
		{"huge radius", 1e9, 1, 2 * math.Pi, 64},
		{"radius beyond cosine precision", 1e16, 1, 2 * math.Pi, 64},
		{"huge scale", 5, 1e20, 2 * math.Pi, 64},
		{"beyond precision quarter", 1e20, 1, math.Pi / 2, 16},
		{"quarter of min", 0.1, 1, math.Pi / 2, 2},
		{"quarter of max", 1e9, 1, math.Pi / 2, 16},
		{"zero sweep is full turn", 0.1, 1, 0, 8},
		{"sweep clamped", 1e9, 1, 10 * math.Pi, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Segments(tt.radius, tt.scale, tt.sweep); got != tt.want {
				t.Errorf("Segments(%v, %v, %v) = %d, want %d", tt.radius, tt.scale, tt.sweep, got, tt.want)
			}
		})
	}
}

func TestResolutionFor(t *testing.T) {
	p := DefaultPolicy()
	if got, want := ResolutionFor(10, Scale(3, 1), p), p.Segments(30, 1, 2*math.Pi); got != want {
		t.Errorf("ResolutionFor() = %d, want %d", got, want)
	}
}

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Policy
	}{
		{"empty", "", DefaultPolicy()},
		{"partial", "tolerance: 0.1\nmin_segments: 12\n", Policy{Tolerance: 0.1, MinSegments: 12, MaxSegments: DefaultMaxSegments}},
		{"full", "tolerance: 1\nmin_segments: 4\nmax_segments: 32\n", Policy{Tolerance: 1, MinSegments: 4, MaxSegments: 32}},
		{"normalised", "min_segments: 12\nmax_segments: 2\n", Policy{Tolerance: DefaultTolerance, MinSegments: 12, MaxSegments: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePolicy([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParsePolicy() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePolicyErrors(t *testing.T) {
	got, err := ParsePolicy([]byte("tolerance: [1, 2"))
	if err == nil {
		t.Fatal("ParsePolicy() of malformed YAML should fail")
	}
	if got != DefaultPolicy() {
		t.Errorf("ParsePolicy() on error = %+v, want defaults", got)
	}
	if _, err := ParsePolicy([]byte("min_segments: lots")); err == nil {
		t.Error("ParsePolicy() with a string segment count should fail")
	}
}

func TestParsePolicyWarnsWhenNormalised(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if _, err := ParsePolicy([]byte("tolerance: 0.5\n")); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("valid policy logged: %s", buf.String())
	}
	if _, err := ParsePolicy([]byte("tolerance: -3\n")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "policy normalised") {
		t.Errorf("expected a normalisation warning, got %q", buf.String())
	}
}
