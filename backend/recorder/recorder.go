// Package recorder provides a vg.Backend that captures submissions as typed
// commands instead of drawing them.
//
// A Recorder is useful as a mock in tests, for counting the triangles a
// scene produces, and for replaying a frame into another backend later:
//
//	rec := recorder.New(800, 600)
//	vg.FillCircle(rec, ctx, vg.Red, vg.Pt(400, 300), 50)
//	fmt.Println(rec.TriangleCount())
//
//	err := rec.Replay(softwareBackend)
//
// Importing the package registers it with vg as "recorder".
package recorder

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/vg"
)

// ErrVertexCount is returned for vertex lists that are not whole triangles.
var ErrVertexCount = errors.New("recorder: vertex count is not a multiple of 3")

func init() {
	vg.RegisterBackend("recorder", func(w, h int) (vg.Backend, error) {
		return New(w, h), nil
	})
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithColorSpace makes the recorder declare the given color space, so the
// draw calls convert colors for it.
func WithColorSpace(space vg.ColorSpace) Option {
	return func(r *Recorder) {
		r.space = space
	}
}

// Recorder records every submission it receives. It is safe for concurrent
// use; commands are kept in arrival order.
type Recorder struct {
	mu       sync.Mutex
	width    int
	height   int
	space    vg.ColorSpace
	commands []Command
	failWith error
}

var (
	_ vg.Backend            = (*Recorder)(nil)
	_ vg.ColorSpaceDeclarer = (*Recorder)(nil)
)

// New creates a recorder for a target of the given size.
func New(width, height int, opts ...Option) *Recorder {
	r := &Recorder{width: width, height: height, space: vg.ColorSpaceLinear}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the target size given to New.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// ColorSpace implements vg.ColorSpaceDeclarer.
func (r *Recorder) ColorSpace() vg.ColorSpace {
	return r.space
}

// FailWith makes every later submission return err without recording it.
// Pass nil to resume recording.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failWith = err
}

// Clear implements vg.Backend.
func (r *Recorder) Clear(c vg.RGBA) error {
	return r.record(ClearCommand{Color: c})
}

// SubmitTriangles implements vg.Backend. The vertices are copied.
func (r *Recorder) SubmitTriangles(c vg.RGBA, vertices []vg.Vertex, ds vg.DrawState) error {
	if len(vertices)%3 != 0 {
		return fmt.Errorf("%w: got %d", ErrVertexCount, len(vertices))
	}
	return r.record(TrianglesCommand{Color: c, Vertices: slices.Clone(vertices), State: ds})
}

// SubmitTexturedTriangles implements vg.Backend. The vertices are copied;
// the texture is kept by reference.
func (r *Recorder) SubmitTexturedTriangles(tex vg.Texture, vertices []vg.Vertex, tint vg.RGBA, ds vg.DrawState) error {
	if tex == nil {
		return vg.ErrNilTexture
	}
	if len(vertices)%3 != 0 {
		return fmt.Errorf("%w: got %d", ErrVertexCount, len(vertices))
	}
	return r.record(TexturedCommand{Texture: tex, Vertices: slices.Clone(vertices), Tint: tint, State: ds})
}

func (r *Recorder) record(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.commands = append(r.commands, cmd)
	return nil
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.commands)
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.commands)
}

// DrawCalls returns the number of triangle submissions, colored or
// textured.
func (r *Recorder) DrawCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() != CmdClear {
			n++
		}
	}
	return n
}

// TriangleCount returns the total number of triangles submitted.
func (r *Recorder) TriangleCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case TrianglesCommand:
			n += vg.TriangleCount(c.Vertices)
		case TexturedCommand:
			n += vg.TriangleCount(c.Vertices)
		}
	}
	return n
}

// Reset drops every recorded command.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = nil
}

// Replay submits the recorded commands, in order, to b. It stops at the
// first error.
func (r *Recorder) Replay(b vg.Backend) error {
	if b == nil {
		return vg.ErrNilBackend
	}
	for i, cmd := range r.Commands() {
		var err error
		switch c := cmd.(type) {
		case ClearCommand:
			err = b.Clear(c.Color)
		case TrianglesCommand:
			err = b.SubmitTriangles(c.Color, c.Vertices, c.State)
		case TexturedCommand:
			err = b.SubmitTexturedTriangles(c.Texture, c.Vertices, c.Tint, c.State)
		}
		if err != nil {
			return fmt.Errorf("recorder: replay command %d (%s): %w", i, cmd.Type(), err)
		}
	}
	return nil
}
