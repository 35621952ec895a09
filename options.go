package vg

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// One model unit per device pixel
//	ctx := vg.NewContext(800, 600)
//
//	// HiDPI surface with a finer tessellation tolerance
//	ctx := vg.NewContext(800, 600,
//		vg.WithPixelRatio(2),
//		vg.WithResolution(vg.Policy{Tolerance: 0.1}))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	view       Matrix
	ratio      float64
	drawState  DrawState
	resolution Policy
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		view:       Identity(),
		ratio:      1,
		drawState:  DefaultDrawState(),
		resolution: DefaultPolicy(),
	}
}

// WithPixelRatio sets the number of device pixels per model unit. The view
// transform becomes Scale(r, r) and the device viewport grows accordingly.
// Non-positive ratios are ignored.
func WithPixelRatio(r float64) ContextOption {
	return func(o *contextOptions) {
		if r > 0 {
			o.ratio = r
			o.view = Scale(r, r)
		}
	}
}

// WithView replaces the view transform (view space to device space).
func WithView(m Matrix) ContextOption {
	return func(o *contextOptions) {
		o.view = m
	}
}

// WithDrawState sets the initial draw state.
func WithDrawState(ds DrawState) ContextOption {
	return func(o *contextOptions) {
		o.drawState = ds
	}
}

// WithResolution sets the tessellation policy. The policy is validated.
func WithResolution(p Policy) ContextOption {
	return func(o *contextOptions) {
		o.resolution = p.Validate()
	}
}
