// Command vgdemo renders a demonstration scene with the vg drawing core.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/vg"
	"github.com/gogpu/vg/backend/recorder"
	"github.com/gogpu/vg/backend/software"
	"github.com/gogpu/vg/text"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width in model units")
		height  = flag.Int("height", 600, "image height in model units")
		output  = flag.String("output", "demo.png", "output file")
		policy  = flag.String("policy", "", "YAML tessellation policy file")
		ratio   = flag.Float64("ratio", 1, "device pixels per model unit")
		backend = flag.String("backend", "software", "backend name: software or recorder")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		vg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []vg.ContextOption{vg.WithPixelRatio(*ratio)}
	if *policy != "" {
		data, err := os.ReadFile(*policy)
		if err != nil {
			log.Fatalf("Failed to read policy: %v", err)
		}
		p, err := vg.ParsePolicy(data)
		if err != nil {
			log.Fatalf("Failed to parse policy: %v", err)
		}
		opts = append(opts, vg.WithResolution(p))
	}

	ctx := vg.NewContext(float64(*width), float64(*height), opts...)
	vp := ctx.Viewport()

	b, err := vg.NewBackend(*backend, vp.X, vp.Y)
	if err != nil {
		log.Fatalf("Failed to create backend: %v (available: %v)", err, vg.Backends())
	}

	if err := drawScene(b, ctx, *width, *height); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	out, err := toSoftware(b, vp)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := out.WritePNG(f); err != nil {
		_ = f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d device pixels)\n", *output, vp.X, vp.Y)
}

// toSoftware returns a software backend holding the rendered scene,
// replaying recorded commands when the scene was recorded.
func toSoftware(b vg.Backend, vp image.Point) (*software.Backend, error) {
	switch b := b.(type) {
	case *software.Backend:
		return b, nil
	case *recorder.Recorder:
		log.Printf("Recorded %d draw calls, %d triangles", b.DrawCalls(), b.TriangleCount())
		sw := software.New(vp.X, vp.Y)
		if err := b.Replay(sw); err != nil {
			return nil, err
		}
		return sw, nil
	default:
		return nil, fmt.Errorf("backend %T cannot produce an image", b)
	}
}

func drawScene(b vg.Backend, ctx vg.Context, w, h int) error {
	steps := []func(vg.Backend, vg.Context) error{
		func(b vg.Backend, ctx vg.Context) error { return drawBackground(b, ctx, w, h) },
		drawShapes,
		drawTransforms,
		drawClipping,
		drawBlendModes,
		drawStencil,
		drawTexture,
		drawText,
	}
	for _, step := range steps {
		if err := step(b, ctx); err != nil {
			return err
		}
	}
	return nil
}

func drawBackground(b vg.Backend, ctx vg.Context, w, h int) error {
	if err := vg.Clear(b, vg.Black); err != nil {
		return err
	}
	const steps = 100
	for i := 0; i < steps; i++ {
		t := float64(i) / steps
		c := vg.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2).Linear()
		y := float64(h) * t
		if err := vg.FillRect(b, ctx, c, vg.NewRect(0, y, float64(w), float64(h)/steps+1)); err != nil {
			return err
		}
	}
	return nil
}

func drawShapes(b vg.Backend, ctx vg.Context) error {
	for i, c := range []vg.RGBA{
		vg.RGBA2(1, 0.3, 0.3, 0.8),
		vg.RGBA2(0.3, 1, 0.3, 0.8),
		vg.RGBA2(0.3, 0.3, 1, 0.8),
	} {
		center := vg.Pt(150+50*float64(i%2), 150+50*float64(i/2))
		if err := vg.FillCircle(b, ctx, c.Linear(), center, 60); err != nil {
			return err
		}
	}

	rounded := vg.Rectangle{Rect: vg.NewRect(350, 100, 120, 80), CornerRadius: 15}
	if err := vg.DrawRectangle(b, ctx, vg.RGB(1, 0.8, 0).Linear(), rounded); err != nil {
		return err
	}
	if err := vg.DrawRectangleBorder(b, ctx, vg.White, rounded, vg.Border{Width: 4}); err != nil {
		return err
	}

	bevel := vg.Rectangle{Rect: vg.NewRect(500, 100, 100, 80), CornerRadius: 20, Corner: vg.CornerBevel}
	if err := vg.DrawRectangle(b, ctx, vg.Cyan, bevel); err != nil {
		return err
	}

	pie := vg.Circle(vg.Pt(680, 140), 50)
	if err := vg.DrawArc(b, ctx, vg.Magenta, pie, vg.Arc{Start: 0, End: 1.5 * math.Pi}); err != nil {
		return err
	}
	if err := vg.DrawEllipseBorder(b, ctx, vg.White, vg.EllipseInRect(vg.NewRect(620, 200, 120, 60)), vg.Border{Width: 3}); err != nil {
		return err
	}

	star := make([]vg.Point, 10)
	for i := range star {
		r := 50.0
		if i%2 == 1 {
			r = 20
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		star[i] = vg.Pt(150+r*math.Cos(a), 330+r*math.Sin(a))
	}
	if err := vg.DrawPolygon(b, ctx, vg.Yellow, vg.Polygon{Points: star, Triangulate: true}); err != nil {
		return err
	}

	for i, lc := range []vg.LineCap{vg.CapButt, vg.CapSquare, vg.CapRound} {
		y := 300 + float64(i)*25
		l := vg.Line{P0: vg.Pt(260, y), P1: vg.Pt(420, y), Width: 12, Cap: lc}
		if err := vg.DrawLine(b, ctx, vg.White, l); err != nil {
			return err
		}
	}
	return nil
}

func drawTransforms(b vg.Backend, ctx vg.Context) error {
	base := ctx.Trans(600, 350)
	for i := 0; i < 8; i++ {
		t := float64(i) / 8
		c := vg.RGBA2(t, 0.5, 1-t, 0.6).Linear()
		local := base.Zoom(1 - t*0.6)
		// A 40x40 square centred on the origin.
		if err := vg.FillRect(b, local, c, vg.NewRect(0, 0, 20, 20).Centered()); err != nil {
			return err
		}
		base = base.RotDeg(11.25)
	}
	return nil
}

func drawClipping(b vg.Backend, ctx vg.Context) error {
	clip := vg.NewRect(40, 420, 120, 120)
	if err := vg.DrawRectangleBorder(b, ctx, vg.White, vg.Rectangle{Rect: clip.Margin(-2)}, vg.Border{Width: 2}); err != nil {
		return err
	}
	clipped := ctx.Clip(clip)
	return vg.FillCircle(b, clipped, vg.RGB(0.9, 0.4, 0.1), vg.Pt(160, 540), 90)
}

func drawBlendModes(b vg.Backend, ctx vg.Context) error {
	modes := []vg.BlendMode{vg.BlendAlpha, vg.BlendAdd, vg.BlendMultiply, vg.BlendInvert, vg.BlendLighter, vg.BlendReplace}
	for i, m := range modes {
		x := 200 + float64(i)*55
		if err := vg.FillRect(b, ctx, vg.RGB(0.2, 0.6, 0.9), vg.NewRect(x, 440, 45, 45)); err != nil {
			return err
		}
		top := ctx.WithBlend(m)
		if err := vg.FillCircle(b, top, vg.RGBA2(1, 0.5, 0.2, 0.7), vg.Pt(x+30, 475), 20); err != nil {
			return err
		}
	}
	return nil
}

func drawStencil(b vg.Backend, ctx vg.Context) error {
	mask := ctx.WithStencil(vg.Stencil{Op: vg.StencilClip, Value: 1})
	if err := vg.FillCircle(b, mask, vg.White, vg.Pt(620, 500), 60); err != nil {
		return err
	}
	inside := ctx.WithStencil(vg.Stencil{Op: vg.StencilInside, Value: 1})
	for i := 0; i < 12; i++ {
		y := 440 + float64(i)*10
		c := vg.Red
		if i%2 == 1 {
			c = vg.White
		}
		if err := vg.FillRect(b, inside, c, vg.NewRect(560, y, 120, 10)); err != nil {
			return err
		}
	}
	return nil
}

func drawTexture(b vg.Backend, ctx vg.Context) error {
	checker := image.NewGray(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				checker.Pix[y*8+x] = 255
			}
		}
	}
	tex := software.NewTexture(checker)
	q := vg.ImageQuad{Dst: vg.NewRect(700, 420, 80, 80)}
	return vg.DrawImage(b, ctx.Trans(740, 460).RotDeg(15).Trans(-740, -460), tex, q, vg.RGBA2(1, 1, 1, 0.9))
}

func drawText(b vg.Backend, ctx vg.Context) error {
	f, err := text.ParseFont(goregular.TTF)
	if err != nil {
		return err
	}
	line := text.NewShaper().Shape("vg draws glyph runs", f, 24)
	origin := vg.Pt(260, 560)
	// Without a rasteriser, show each glyph's advance box.
	for _, g := range line.Glyphs() {
		cell := vg.Rectangle{Rect: vg.NewRect(origin.X+g.X, origin.Y-18+g.Y, g.Advance, 22)}
		if err := vg.DrawRectangleBorder(b, ctx, vg.RGBA2(1, 1, 1, 0.8), cell, vg.Border{Width: 1}); err != nil {
			return err
		}
	}
	return vg.StrokeLine(b, ctx, vg.Yellow, 1, origin, vg.Pt(origin.X+line.Advance, origin.Y))
}
