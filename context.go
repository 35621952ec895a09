package vg

import (
	"image"
	"math"
)

// Context is the immutable per-draw state every drawing call reads: the
// model transform, the view transform and the draw state, plus the
// tessellation policy.
//
// Transform maps model space to view space and View maps view space to
// device pixels; tessellators apply Full, the two composed. Every method
// that changes the transform returns a new Context, so a Context can be
// threaded by value through a draw call tree and shared freely between
// goroutines.
//
// Device space has its origin at the top-left corner, X pointing right and
// Y pointing down.
type Context struct {
	// Transform maps model space to view space.
	Transform Matrix

	// View maps view space to device space.
	View Matrix

	// DrawState is merged into every submission.
	DrawState DrawState

	// Resolution controls curve tessellation.
	Resolution Policy

	viewport image.Point
}

// NewContext creates a context for a viewport of the given size in model
// units. With the default options one model unit is one device pixel.
func NewContext(width, height float64, opts ...ContextOption) Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return Context{
		Transform:  Identity(),
		View:       options.view,
		DrawState:  options.drawState,
		Resolution: options.resolution,
		viewport: image.Pt(
			int(math.Ceil(width*options.ratio)),
			int(math.Ceil(height*options.ratio)),
		),
	}
}

// Full returns the model-to-device transform: Transform, then View.
func (c Context) Full() Matrix {
	return Compose(c.Transform, c.View)
}

// Viewport returns the device viewport size in pixels.
func (c Context) Viewport() image.Point {
	return c.viewport
}

// DeviceBounds returns the viewport as a device-space rectangle.
func (c Context) DeviceBounds() image.Rectangle {
	return image.Rectangle{Max: c.viewport}
}

// Append returns a context whose transform applies m before the current one.
func (c Context) Append(m Matrix) Context {
	c.Transform = Compose(m, c.Transform)
	return c
}

// Trans returns a context translated by (dx, dy) in model space.
func (c Context) Trans(dx, dy float64) Context {
	return c.Append(Translate(dx, dy))
}

// RotRad returns a context rotated by angle radians around the model origin.
func (c Context) RotRad(angle float64) Context {
	return c.Append(Rotate(angle))
}

// RotDeg returns a context rotated by angle degrees around the model origin.
func (c Context) RotDeg(angle float64) Context {
	return c.Append(RotateDeg(angle))
}

// Scale returns a context scaled by (sx, sy).
func (c Context) Scale(sx, sy float64) Context {
	return c.Append(Scale(sx, sy))
}

// Zoom returns a context scaled uniformly by s.
func (c Context) Zoom(s float64) Context {
	return c.Scale(s, s)
}

// Shear returns a context sheared by (sx, sy).
func (c Context) Shear(sx, sy float64) Context {
	return c.Append(Shear(sx, sy))
}

// FlipH returns a context mirrored along the X axis.
func (c Context) FlipH() Context {
	return c.Append(FlipH())
}

// FlipV returns a context mirrored along the Y axis.
func (c Context) FlipV() Context {
	return c.Append(FlipV())
}

// Reset returns a context with the identity model transform.
func (c Context) Reset() Context {
	c.Transform = Identity()
	return c
}

// WithDrawState returns a context with the draw state replaced.
func (c Context) WithDrawState(ds DrawState) Context {
	c.DrawState = ds
	return c
}

// WithBlend returns a context with the blend mode replaced.
func (c Context) WithBlend(mode BlendMode) Context {
	c.DrawState = c.DrawState.WithBlend(mode)
	return c
}

// WithStencil returns a context with the stencil operation replaced.
func (c Context) WithStencil(s Stencil) Context {
	c.DrawState = c.DrawState.WithStencil(s)
	return c
}

// WithResolution returns a context with the tessellation policy replaced.
func (c Context) WithResolution(p Policy) Context {
	c.Resolution = p.Validate()
	return c
}

// ClipDevice returns a context whose scissor is narrowed to r, given in
// device pixels.
func (c Context) ClipDevice(r image.Rectangle) Context {
	c.DrawState = c.DrawState.PushScissor(r)
	return c
}

// Clip returns a context whose scissor is narrowed to the device-space
// bounding box of r, given in model space. The box is rounded outwards to
// whole pixels.
func (c Context) Clip(r Rect) Context {
	if r.IsEmpty() {
		c.DrawState = c.DrawState.PushScissor(image.Rectangle{})
		return c
	}
	m := c.Full()
	corners := r.Corners()
	p := m.TransformPoint(corners[0])
	minX, minY, maxX, maxY := p.X, p.Y, p.X, p.Y
	for _, q := range corners[1:] {
		p = m.TransformPoint(q)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for _, v := range [...]float64{minX, minY, maxX, maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			Logger().Debug("vg: non-finite clip bounds", "rect", r)
			c.DrawState = c.DrawState.PushScissor(image.Rectangle{})
			return c
		}
	}
	dev := image.Rect(
		deviceCoord(math.Floor(minX)), deviceCoord(math.Floor(minY)),
		deviceCoord(math.Ceil(maxX)), deviceCoord(math.Ceil(maxY)),
	)
	return c.ClipDevice(dev)
}

// maxDeviceCoord bounds scissor coordinates so huge finite values convert
// to int without overflow.
const maxDeviceCoord = 1 << 30

func deviceCoord(v float64) int {
	return int(math.Max(-maxDeviceCoord, math.Min(maxDeviceCoord, v)))
}

// ModelToDevice maps a model-space point to device pixels.
func (c Context) ModelToDevice(p Point) Point {
	return c.Full().TransformPoint(p)
}

// DeviceToModel maps a device pixel back to model space.
// It returns ErrSingular if the combined transform is not invertible.
func (c Context) DeviceToModel(p Point) (Point, error) {
	inv, err := c.Full().Invert()
	if err != nil {
		return Point{}, err
	}
	return inv.TransformPoint(p), nil
}
