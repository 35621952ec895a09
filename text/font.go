package text

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
)

// ErrEmptyFontData is returned by ParseFont for empty input.
var ErrEmptyFontData = errors.New("text: empty font data")

// Font is a parsed TrueType or OpenType font. It is read-only and safe for
// concurrent use.
type Font struct {
	f *font.Font
}

// ParseFont parses TTF or OTF data.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Font{f: face.Font}, nil
}

// face returns a new go-text face. Faces are not safe for concurrent use,
// so every shaping call gets its own.
func (f *Font) face() *font.Face {
	return font.NewFace(f.f)
}
