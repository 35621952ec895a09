// Package gpu describes the render pipeline a WebGPU backend for vg needs.
//
// It holds the WGSL shaders for solid and textured triangle lists and
// compiles them to SPIR-V with naga, maps vg blend modes, stencil
// operations and scissor rectangles to gputypes pipeline state, and packs
// vertices and per-draw uniforms into the byte layout the shaders expect.
// A device shared by a host application is taken from its
// gpucontext.DeviceProvider. Creating buffers and passes is left to the
// backend.
//
//	shaders, err := gpu.CompileShaders()
//	device, err := gpu.DeviceFromProvider(provider)
//	modules, err := shaders.CreateModules(device)
//	defer modules.Destroy(device)
//
//	blend := gpu.BlendState(ds.Blend)
//	layout := gpu.VertexLayout(true)
//	verts := gpu.PackVertices(vertices)
//	uniforms := gpu.PackUniforms(viewport, color, ds.Blend)
package gpu
