package gpu

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/vg"
)

// VertexStride is the size in bytes of one packed vg.Vertex.
const VertexStride = 16

// BlendState returns the color target blend state for mode. The shaders
// output premultiplied color; see PackUniforms for the color BlendInvert
// needs.
func BlendState(mode vg.BlendMode) gputypes.BlendState {
	add := gputypes.BlendOperationAdd
	switch mode {
	case vg.BlendAdd:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: add},
			Alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: add},
		}
	case vg.BlendMultiply:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorDst, DstFactor: gputypes.BlendFactorZero, Operation: add},
			Alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorDstAlpha, DstFactor: gputypes.BlendFactorZero, Operation: add},
		}
	case vg.BlendInvert:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOneMinusDst, DstFactor: gputypes.BlendFactorOneMinusSrcAlpha, Operation: add},
			Alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorZero, DstFactor: gputypes.BlendFactorOne, Operation: add},
		}
	case vg.BlendLighter:
		maxOp := gputypes.BlendOperationMax
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: maxOp},
			Alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorOne, Operation: maxOp},
		}
	case vg.BlendReplace:
		return gputypes.BlendState{
			Color: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorZero, Operation: add},
			Alpha: gputypes.BlendComponent{SrcFactor: gputypes.BlendFactorOne, DstFactor: gputypes.BlendFactorZero, Operation: add},
		}
	default:
		return gputypes.BlendStatePremultiplied()
	}
}

// VertexLayout returns the vertex buffer layout for the solid or textured
// pipeline. Both read the same packed vertex; the solid pipeline ignores
// the texture coordinate.
func VertexLayout(textured bool) []gputypes.VertexBufferLayout {
	attrs := []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
	}
	if textured {
		attrs = append(attrs, gputypes.VertexAttribute{
			Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1, // uv
		})
	}
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  attrs,
		},
	}
}

// Primitive returns the primitive state shared by both pipelines: a
// triangle list without culling, since transforms may flip winding.
func Primitive() gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
}

// StencilTest describes how a draw uses the stencil attachment.
type StencilTest struct {
	// Compare is the stencil comparison against Reference.
	Compare gputypes.CompareFunction
	// Reference is the stencil reference value.
	Reference uint32
	// Write is set when the pass writes the stencil buffer.
	Write bool
	// WriteMask is the color write mask.
	WriteMask gputypes.ColorWriteMask
}

// StencilState maps a vg stencil operation to the stencil test and color
// write mask of a pipeline. Clip passes replace the stored value with the
// reference and increment passes increment it; a backend picks the matching
// stencil operation when Write is set.
func StencilState(s vg.Stencil) StencilTest {
	t := StencilTest{
		Compare:   gputypes.CompareFunctionAlways,
		Reference: uint32(s.Value),
		WriteMask: gputypes.ColorWriteMaskAll,
	}
	switch s.Op {
	case vg.StencilClip, vg.StencilIncrement:
		t.Write = true
		t.WriteMask = gputypes.ColorWriteMaskNone
	case vg.StencilInside:
		t.Compare = gputypes.CompareFunctionEqual
	case vg.StencilOutside:
		t.Compare = gputypes.CompareFunctionNotEqual
	}
	return t
}

// ScissorRect returns the scissor rectangle for a draw into a target of
// the given size, as (x, y, width, height). ok is false when the draw is
// fully clipped and should be skipped.
func ScissorRect(ds vg.DrawState, target image.Point) (x, y, w, h uint32, ok bool) {
	r := image.Rectangle{Max: target}
	if s, has := ds.ScissorRect(); has {
		r = r.Intersect(s)
	}
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	return uint32(r.Min.X), uint32(r.Min.Y), uint32(r.Dx()), uint32(r.Dy()), true
}
