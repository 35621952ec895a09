package vg

import (
	"fmt"
	"image"
)

// StencilOp selects how a draw call interacts with the stencil buffer.
type StencilOp uint8

const (
	// StencilNone ignores the stencil buffer.
	StencilNone StencilOp = iota
	// StencilClip writes Value into the stencil buffer and draws no color.
	StencilClip
	// StencilInside draws only where the stencil buffer equals Value.
	StencilInside
	// StencilOutside draws only where the stencil buffer differs from Value.
	StencilOutside
	// StencilIncrement adds one to the stencil buffer and draws no color.
	StencilIncrement
)

func (op StencilOp) String() string {
	switch op {
	case StencilNone:
		return "none"
	case StencilClip:
		return "clip"
	case StencilInside:
		return "inside"
	case StencilOutside:
		return "outside"
	case StencilIncrement:
		return "increment"
	default:
		return fmt.Sprintf("StencilOp(%d)", uint8(op))
	}
}

// Stencil is the stencil region operation of a DrawState.
type Stencil struct {
	Op    StencilOp
	Value uint8
}

// WritesColor reports whether draws under this stencil produce color.
func (s Stencil) WritesColor() bool {
	return s.Op != StencilClip && s.Op != StencilIncrement
}

// Test reports whether a pixel with the given stencil value passes.
func (s Stencil) Test(stored uint8) bool {
	switch s.Op {
	case StencilInside:
		return stored == s.Value
	case StencilOutside:
		return stored != s.Value
	default:
		return true
	}
}

// DrawState holds the rendering modifiers applied to a draw call: scissor
// rectangle, blend mode and stencil operation.
//
// DrawState is a comparable value. Narrowing the scissor returns a new
// value; restoring the previous scissor is done by keeping the old value.
type DrawState struct {
	scissor    image.Rectangle
	hasScissor bool

	// Blend is the blend mode used to composite the draw.
	Blend BlendMode

	// Stencil is the stencil operation of the draw.
	Stencil Stencil
}

// DefaultDrawState returns a state with no scissor, alpha blending and no
// stencil. It equals the zero DrawState.
func DefaultDrawState() DrawState {
	return DrawState{Blend: BlendAlpha}
}

// PushScissor returns a state whose scissor is the intersection of the
// current scissor (if any) and r, in device pixels.
// An empty intersection stays empty: draws under it submit nothing.
func (ds DrawState) PushScissor(r image.Rectangle) DrawState {
	r = r.Canon()
	if ds.hasScissor {
		r = ds.scissor.Intersect(r)
	}
	if r.Empty() {
		r = image.Rectangle{}
	}
	ds.scissor = r
	ds.hasScissor = true
	return ds
}

// ScissorRect returns the scissor rectangle and whether one is set.
func (ds DrawState) ScissorRect() (image.Rectangle, bool) {
	return ds.scissor, ds.hasScissor
}

// Culled reports whether the scissor is set and empty, in which case
// nothing drawn under ds can be visible.
func (ds DrawState) Culled() bool {
	return ds.hasScissor && ds.scissor.Empty()
}

// WithoutScissor returns ds with the scissor removed.
func (ds DrawState) WithoutScissor() DrawState {
	ds.scissor = image.Rectangle{}
	ds.hasScissor = false
	return ds
}

// WithBlend returns ds with the blend mode replaced.
func (ds DrawState) WithBlend(mode BlendMode) DrawState {
	ds.Blend = mode
	return ds
}

// WithStencil returns ds with the stencil operation replaced.
func (ds DrawState) WithStencil(s Stencil) DrawState {
	ds.Stencil = s
	return ds
}

func (ds DrawState) String() string {
	sc := "none"
	if ds.hasScissor {
		sc = ds.scissor.String()
	}
	return fmt.Sprintf("DrawState{scissor: %s, blend: %s, stencil: %s(%d)}",
		sc, ds.Blend, ds.Stencil.Op, ds.Stencil.Value)
}
