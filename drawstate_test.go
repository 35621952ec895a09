package vg

import (
	"image"
	"strings"
	"testing"
)

func TestDefaultDrawState(t *testing.T) {
	ds := DefaultDrawState()
	if ds != (DrawState{}) {
		t.Errorf("DefaultDrawState() = %v, want zero value", ds)
	}
	if _, ok := ds.ScissorRect(); ok {
		t.Error("default state has a scissor")
	}
	if ds.Culled() {
		t.Error("default state is culled")
	}
}

func TestPushScissor(t *testing.T) {
	a := image.Rect(0, 0, 100, 100)
	b := image.Rect(50, 20, 200, 80)
	want := image.Rect(50, 20, 100, 80)

	ab, _ := DefaultDrawState().PushScissor(a).PushScissor(b).ScissorRect()
	ba, _ := DefaultDrawState().PushScissor(b).PushScissor(a).ScissorRect()
	if ab != want || ba != want {
		t.Errorf("scissor = %v / %v, want %v", ab, ba, want)
	}

	once := DefaultDrawState().PushScissor(a)
	if twice := once.PushScissor(a); twice != once {
		t.Errorf("pushing the same scissor twice changed state: %v vs %v", twice, once)
	}
}

func TestPushScissorDoesNotMutate(t *testing.T) {
	outer := DefaultDrawState().PushScissor(image.Rect(0, 0, 100, 100))
	_ = outer.PushScissor(image.Rect(10, 10, 20, 20))
	if r, _ := outer.ScissorRect(); r != image.Rect(0, 0, 100, 100) {
		t.Errorf("outer scissor changed to %v", r)
	}
}

func TestScissorCulled(t *testing.T) {
	tests := []struct {
		name string
		ds   DrawState
		want bool
	}{
		{"none", DefaultDrawState(), false},
		{"inside", DefaultDrawState().PushScissor(image.Rect(0, 0, 10, 10)), false},
		{"disjoint", DefaultDrawState().PushScissor(image.Rect(0, 0, 10, 10)).PushScissor(image.Rect(20, 20, 30, 30)), true},
		{"empty", DefaultDrawState().PushScissor(image.Rectangle{}), true},
		{"cleared", DefaultDrawState().PushScissor(image.Rectangle{}).WithoutScissor(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ds.Culled(); got != tt.want {
				t.Errorf("%v.Culled() = %v, want %v", tt.ds, got, tt.want)
			}
		})
	}
}

func TestStencil(t *testing.T) {
	tests := []struct {
		op          StencilOp
		stored      uint8
		pass, color bool
	}{
		{StencilNone, 0, true, true},
		{StencilClip, 5, true, false},
		{StencilInside, 1, true, true},
		{StencilInside, 0, false, true},
		{StencilOutside, 1, false, true},
		{StencilOutside, 2, true, true},
		{StencilIncrement, 9, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			s := Stencil{Op: tt.op, Value: 1}
			if got := s.Test(tt.stored); got != tt.pass {
				t.Errorf("Test(%d) = %v, want %v", tt.stored, got, tt.pass)
			}
			if got := s.WritesColor(); got != tt.color {
				t.Errorf("WritesColor() = %v, want %v", got, tt.color)
			}
		})
	}
}

func TestDrawStateString(t *testing.T) {
	ds := DefaultDrawState().
		PushScissor(image.Rect(1, 2, 3, 4)).
		WithBlend(BlendAdd).
		WithStencil(Stencil{Op: StencilInside, Value: 3})
	s := ds.String()
	for _, part := range []string{"(1,2)-(3,4)", "add", "inside(3)"} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}
}
