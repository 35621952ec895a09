package text

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vg"
)

func loadFont(t *testing.T) *Font {
	t.Helper()
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		t.Fatalf("ParseFont() error = %v", err)
	}
	return f
}

func TestParseFontErrors(t *testing.T) {
	if _, err := ParseFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("ParseFont(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := ParseFont([]byte("not a font")); err == nil {
		t.Error("ParseFont(garbage) error = nil")
	}
}

func TestShapeLatin(t *testing.T) {
	line := NewShaper().Shape("Hello", loadFont(t), 16)
	if len(line.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(line.Runs))
	}
	if line.Runs[0].Direction != LeftToRight {
		t.Errorf("direction = %v, want ltr", line.Runs[0].Direction)
	}
	glyphs := line.Glyphs()
	if len(glyphs) != 5 {
		t.Fatalf("glyphs = %d, want 5", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d X = %v, not after %v", i, glyphs[i].X, glyphs[i-1].X)
		}
		if glyphs[i].ID == 0 {
			t.Errorf("glyph %d is .notdef", i)
		}
	}
	if line.Advance <= 0 || line.Advance > 5*16 {
		t.Errorf("advance = %v, want in (0, 80]", line.Advance)
	}
}

func TestShapeScalesWithSize(t *testing.T) {
	s := NewShaper()
	f := loadFont(t)
	small := s.Shape("Hello", f, 10).Advance
	large := s.Shape("Hello", f, 20).Advance
	if ratio := large / small; ratio < 1.9 || ratio > 2.1 {
		t.Errorf("advance ratio = %v, want about 2", ratio)
	}
}

func TestShapeMixedDirection(t *testing.T) {
	line := NewShaper().Shape("Hello שלום world", loadFont(t), 16)
	if len(line.Runs) < 2 {
		t.Fatalf("runs = %d, want at least 2", len(line.Runs))
	}
	var rtl bool
	for _, r := range line.Runs {
		if r.Direction == RightToLeft {
			rtl = true
		}
	}
	if !rtl {
		t.Error("no right-to-left run found")
	}
	// Pen positions continue across runs.
	glyphs := line.Glyphs()
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X < glyphs[i-1].X {
			t.Errorf("glyph %d X = %v goes backwards from %v", i, glyphs[i].X, glyphs[i-1].X)
		}
	}
}

func TestShapeDegenerate(t *testing.T) {
	s := NewShaper()
	f := loadFont(t)
	for _, tt := range []struct {
		name string
		str  string
		f    *Font
		size float64
	}{
		{"empty", "", f, 16},
		{"nil font", "a", nil, 16},
		{"zero size", "a", f, 0},
	} {
		if got := s.Shape(tt.str, tt.f, tt.size); len(got.Runs) != 0 {
			t.Errorf("%s: runs = %d, want 0", tt.name, len(got.Runs))
		}
	}
}

func TestLayout(t *testing.T) {
	line := Line{Runs: []Run{{Glyphs: []PositionedGlyph{
		{ID: 1, X: 0, Advance: 10},
		{ID: 2, X: 10, Advance: 4},
		{ID: 3, X: 14, Advance: 10},
	}}}}
	atlas := MapAtlas{
		1: {Src: vg.NewRect(0, 0, 8, 12), Bearing: vg.Pt(1, -10)},
		2: {}, // space
	}
	glyphs, missing := Layout(line, atlas, vg.Pt(100, 50))
	if missing != 1 {
		t.Errorf("missing = %d, want 1", missing)
	}
	if len(glyphs) != 1 {
		t.Fatalf("glyphs = %d, want 1", len(glyphs))
	}
	want := vg.NewRect(101, 40, 8, 12)
	if glyphs[0].Dst != want {
		t.Errorf("Dst = %+v, want %+v", glyphs[0].Dst, want)
	}
	if glyphs[0].Src != atlas[1].Src {
		t.Errorf("Src = %+v, want %+v", glyphs[0].Src, atlas[1].Src)
	}

	if g, m := Layout(line, nil, vg.Point{}); g != nil || m != 3 {
		t.Errorf("Layout(nil atlas) = %v, %d; want nil, 3", g, m)
	}
}

func TestDirectionString(t *testing.T) {
	if LeftToRight.String() != "ltr" || RightToLeft.String() != "rtl" {
		t.Error("unexpected Direction strings")
	}
}
