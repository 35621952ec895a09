package vg

import "github.com/gogpu/vg/internal/cache"

// DefaultVertexCacheSize is the soft entry limit used by NewVertexCache when
// given a non-positive size.
const DefaultVertexCacheSize = 512

// shapeKind tags a vertex cache key.
type shapeKind uint8

const (
	kindRectangle shapeKind = iota
	kindEllipse
)

// vertexKey identifies a tessellation result. Tessellators are pure, so the
// shape, the full transform and the policy determine the output.
type vertexKey struct {
	kind   shapeKind
	rect   Rectangle
	center Point
	rx, ry float64
	arc    Arc
	hasArc bool
	m      Matrix
	p      Policy
}

// VertexCache memoises tessellated rectangles and ellipses, which repeat
// from frame to frame in most scenes. The returned slices are shared
// between callers and must not be modified.
//
// VertexCache is safe for concurrent use.
type VertexCache struct {
	c *cache.Cache[vertexKey, []Vertex]
}

// NewVertexCache creates a cache holding about size tessellations.
func NewVertexCache(size int) *VertexCache {
	if size <= 0 {
		size = DefaultVertexCacheSize
	}
	return &VertexCache{c: cache.New[vertexKey, []Vertex](size)}
}

// CachedRectangle returns TessellateRectangle(r, ctx), reusing an earlier
// result when possible.
func (vc *VertexCache) CachedRectangle(r Rectangle, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	key := vertexKey{kind: kindRectangle, rect: r, m: ctx.Full(), p: ctx.Resolution}
	return vc.c.GetOrCreate(key, func() []Vertex {
		return TessellateRectangle(r, ctx)
	})
}

// CachedEllipse returns TessellateEllipse(e, ctx), reusing an earlier result
// when possible.
func (vc *VertexCache) CachedEllipse(e Ellipse, ctx Context) []Vertex {
	if ctx.DrawState.Culled() {
		return nil
	}
	key := vertexKey{
		kind:   kindEllipse,
		center: e.Center,
		rx:     e.RX,
		ry:     e.RY,
		m:      ctx.Full(),
		p:      ctx.Resolution,
	}
	if e.Arc != nil {
		key.arc, key.hasArc = *e.Arc, true
	}
	return vc.c.GetOrCreate(key, func() []Vertex {
		return TessellateEllipse(e, ctx)
	})
}

// Len returns the number of cached tessellations.
func (vc *VertexCache) Len() int {
	return vc.c.Len()
}

// HitRate returns the fraction of lookups served from the cache.
func (vc *VertexCache) HitRate() float64 {
	return vc.c.Stats().HitRate
}

// Reset drops every cached tessellation.
func (vc *VertexCache) Reset() {
	vc.c.Clear()
}
