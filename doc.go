// Package vg is a backend-agnostic 2D vector drawing core.
//
// # Overview
//
// vg turns shape descriptors (lines, rectangles, polygons, ellipses and
// arcs, image quads and glyph runs) into triangle lists in device space and
// hands them to a Backend. A backend only has to draw colored or textured
// triangles; everything else, including transforms, clipping and curve
// tessellation, happens here.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/vg"
//		_ "github.com/gogpu/vg/backend/software"
//	)
//
//	b, _ := vg.NewBackend("software", 512, 512)
//	ctx := vg.NewContext(512, 512)
//
//	vg.Clear(b, vg.White)
//	vg.FillCircle(b, ctx.Trans(256, 256), vg.Red, vg.Pt(0, 0), 100)
//
// # Context
//
// A Context is a value: Trans, RotDeg, Clip and friends return a new one, so
// nested drawing code receives its context by value and nothing has to be
// restored afterwards. Transform maps model space to view space, View maps
// view space to device pixels.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing towards +Y
//
// # Colors
//
// RGBA components are linear light with straight alpha. Backends that want
// sRGB-encoded colors implement ColorSpaceDeclarer and the conversion is
// done on the way out.
//
// # Backends
//
// Backends register themselves by name with RegisterBackend. The
// backend/software package rasterises on the CPU, backend/recorder captures
// submissions for tests and replay, and package gpu describes the pipeline
// state a WebGPU backend needs.
package vg

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
