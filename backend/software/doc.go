// Package software is a CPU implementation of vg.Backend.
//
// Triangle lists are turned into anti-aliased coverage with
// golang.org/x/image/vector and blended per pixel in linear light, honouring
// the scissor rectangle, blend mode and stencil operation of each
// submission. The result is available as an *image.RGBA or as PNG.
//
//	b := software.New(640, 480)
//	ctx := vg.NewContext(640, 480)
//	vg.Clear(b, vg.White)
//	vg.FillCircle(b, ctx, vg.Blue, vg.Pt(320, 240), 100)
//	b.WritePNG(w)
//
// Importing the package registers it with vg as "software".
package software
