package gpu

import (
	"encoding/binary"
	"image"
	"math"

	"github.com/gogpu/vg"
)

// UniformSize is the size in bytes of the per-draw uniform block.
const UniformSize = 32

// PackVertices lays vertices out as little-endian float32 x, y, u, v.
func PackVertices(vs []vg.Vertex) []byte {
	buf := make([]byte, len(vs)*VertexStride)
	for i, v := range vs {
		o := i * VertexStride
		putFloat(buf[o:], v.X)
		putFloat(buf[o+4:], v.Y)
		putFloat(buf[o+8:], v.U)
		putFloat(buf[o+12:], v.V)
	}
	return buf
}

// PackUniforms builds the uniform block for one draw: viewport size,
// padding, then the straight-alpha color. BlendInvert draws replace the
// color with white so the blend state sees the coverage alpha in every
// channel.
func PackUniforms(viewport image.Point, c vg.RGBA, mode vg.BlendMode) []byte {
	if mode == vg.BlendInvert {
		c = vg.RGBA{R: 1, G: 1, B: 1, A: c.A}
	}
	c = c.Clamp()
	buf := make([]byte, UniformSize)
	putFloat(buf[0:], float32(viewport.X))
	putFloat(buf[4:], float32(viewport.Y))
	putFloat(buf[16:], float32(c.R))
	putFloat(buf[20:], float32(c.G))
	putFloat(buf[24:], float32(c.B))
	putFloat(buf[28:], float32(c.A))
	return buf
}

func putFloat(b []byte, f float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(f))
}
