package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/vg"
)

// GlyphID identifies a glyph within a font.
type GlyphID uint32

// Direction is the writing direction of a run.
type Direction uint8

const (
	// LeftToRight is the reading order of Latin and most other scripts.
	LeftToRight Direction = iota
	// RightToLeft is the reading order of Arabic and Hebrew. Glyphs of such
	// runs are still stored and positioned in visual order.
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// PositionedGlyph is a shaped glyph. X and Y are the pen position relative
// to the start of the line in pixels, with Y pointing down like device
// space.
type PositionedGlyph struct {
	ID      GlyphID
	Cluster int // rune index of the first character the glyph came from
	X, Y    float64
	Advance float64
}

// Run is a sequence of glyphs sharing one direction.
type Run struct {
	Direction Direction
	Glyphs    []PositionedGlyph
}

// Line is a shaped single line of text. Runs are in visual order and glyph
// positions are continuous across them.
type Line struct {
	Runs    []Run
	Advance float64
}

// Glyphs returns every glyph of the line in visual order.
func (l Line) Glyphs() []PositionedGlyph {
	var n int
	for _, r := range l.Runs {
		n += len(r.Glyphs)
	}
	out := make([]PositionedGlyph, 0, n)
	for _, r := range l.Runs {
		out = append(out, r.Glyphs...)
	}
	return out
}

// Shaper shapes text with HarfBuzz. It is safe for concurrent use.
type Shaper struct {
	// HarfbuzzShaper keeps scratch buffers and is not safe for concurrent
	// use, so instances are pooled.
	pool sync.Pool
}

// NewShaper creates a Shaper.
func NewShaper() *Shaper {
	return &Shaper{
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
	}
}

// Shape lays str out as a single line at the given size in pixels.
func (s *Shaper) Shape(str string, f *Font, size float64) Line {
	if str == "" || f == nil || !(size > 0) {
		return Line{}
	}
	runes := []rune(str)
	face := f.face()
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	var line Line
	for _, sp := range directionalRuns(str, len(runes)) {
		dir := di.DirectionLTR
		if sp.dir == RightToLeft {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  sp.start,
			RunEnd:    sp.end,
			Direction: dir,
			Face:      face,
			Size:      fixed.Int26_6(size * 64),
			Script:    detectScript(runes[sp.start:sp.end]),
			Language:  language.NewLanguage("en"),
		})
		run := Run{Direction: sp.dir, Glyphs: make([]PositionedGlyph, len(out.Glyphs))}
		for i, g := range out.Glyphs {
			adv := fixedToFloat(g.Advance)
			run.Glyphs[i] = PositionedGlyph{
				ID:      GlyphID(g.GlyphID),
				Cluster: g.TextIndex(),
				X:       line.Advance + fixedToFloat(g.XOffset),
				Y:       -fixedToFloat(g.YOffset),
				Advance: adv,
			}
			line.Advance += adv
		}
		line.Runs = append(line.Runs, run)
	}
	vg.Logger().Debug("text: shaped line", "runes", len(runes), "runs", len(line.Runs), "advance", line.Advance)
	return line
}

// span is a directional run as rune indices [start, end).
type span struct {
	start, end int
	dir        Direction
}

// directionalRuns splits s into bidi runs in visual order. If the bidi
// algorithm fails the whole string is one left-to-right run.
func directionalRuns(s string, n int) []span {
	whole := []span{{start: 0, end: n, dir: LeftToRight}}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}
	spans := make([]span, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos is inclusive.
		start, end := run.Pos()
		end++
		if start < 0 || end > n || start >= end {
			continue
		}
		sp := span{start: start, end: end, dir: LeftToRight}
		if run.Direction() == bidi.RightToLeft {
			sp.dir = RightToLeft
		}
		spans = append(spans, sp)
	}
	if len(spans) == 0 {
		return whole
	}
	return spans
}

// detectScript returns the script of the first character that has one.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
