package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/vg"
)

// Shader entry points.
const (
	VertexEntryPoint   = "vs_main"
	FragmentEntryPoint = "fs_main"
)

// Uniform and texture bindings, all in group 0.
const (
	UniformBinding = 0
	TextureBinding = 1
	SamplerBinding = 2
)

// solidShaderWGSL draws device-space triangles in a single color. The
// fragment output is premultiplied.
const solidShaderWGSL = `
struct Uniforms {
    viewport: vec2<f32>,
    pad: vec2<f32>,
    color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
}

@vertex
fn vs_main(@location(0) pos: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    let ndc = vec2<f32>(pos.x / u.viewport.x * 2.0 - 1.0, 1.0 - pos.y / u.viewport.y * 2.0);
    out.position = vec4<f32>(ndc, 0.0, 1.0);
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return vec4<f32>(u.color.rgb * u.color.a, u.color.a);
}
`

// texturedShaderWGSL samples a premultiplied texture and multiplies it by
// the tint in the uniform color.
const texturedShaderWGSL = `
struct Uniforms {
    viewport: vec2<f32>,
    pad: vec2<f32>,
    color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;
@group(0) @binding(1) var tex: texture_2d<f32>;
@group(0) @binding(2) var samp: sampler;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@location(0) pos: vec2<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    let ndc = vec2<f32>(pos.x / u.viewport.x * 2.0 - 1.0, 1.0 - pos.y / u.viewport.y * 2.0);
    out.position = vec4<f32>(ndc, 0.0, 1.0);
    out.uv = uv;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    let t = textureSample(tex, samp, in.uv);
    return t * vec4<f32>(u.color.rgb * u.color.a, u.color.a);
}
`

// Shaders holds the SPIR-V for both pipelines.
type Shaders struct {
	Solid    []byte
	Textured []byte
}

// CompileShaders compiles the solid and textured WGSL shaders to SPIR-V.
func CompileShaders() (Shaders, error) {
	solid, err := naga.Compile(solidShaderWGSL)
	if err != nil {
		return Shaders{}, fmt.Errorf("gpu: compile solid shader: %w", err)
	}
	textured, err := naga.Compile(texturedShaderWGSL)
	if err != nil {
		return Shaders{}, fmt.Errorf("gpu: compile textured shader: %w", err)
	}
	return Shaders{Solid: solid, Textured: textured}, nil
}

// Modules are the shader modules created on a device.
type Modules struct {
	Solid    hal.ShaderModule
	Textured hal.ShaderModule
}

// CreateModules uploads the compiled shaders to device. On error nothing
// is left allocated.
func (s Shaders) CreateModules(device hal.Device) (Modules, error) {
	solid, err := createModule(device, "vg_solid", s.Solid)
	if err != nil {
		return Modules{}, err
	}
	textured, err := createModule(device, "vg_textured", s.Textured)
	if err != nil {
		device.DestroyShaderModule(solid)
		return Modules{}, err
	}
	vg.Logger().Debug("gpu: shader modules created", "solid", len(s.Solid), "textured", len(s.Textured))
	return Modules{Solid: solid, Textured: textured}, nil
}

// Destroy releases the modules.
func (m Modules) Destroy(device hal.Device) {
	if m.Solid != nil {
		device.DestroyShaderModule(m.Solid)
	}
	if m.Textured != nil {
		device.DestroyShaderModule(m.Textured)
	}
}

func createModule(device hal.Device, label string, spirv []byte) (hal.ShaderModule, error) {
	if len(spirv)%4 != 0 {
		return nil, fmt.Errorf("gpu: %s: SPIR-V length %d is not word aligned", label, len(spirv))
	}
	m, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirvWords(spirv)},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s module: %w", label, err)
	}
	return m, nil
}

// spirvWords converts little-endian SPIR-V bytes to words.
func spirvWords(b []byte) []uint32 {
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words
}
