package shapes

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/shape.wgsl
var shapeShaderSource string

// shapePipeline holds the GPU objects shared by every shape: the compiled
// shader, the color bind-group layout and the render pipeline.
//
// The vertex interface is one vec2<f32> at location 0 with an 8-byte stride.
// The fragment interface is one uniform vec4<f32> at group 0, binding 0.
type shapePipeline struct {
	device hal.Device
	format gputypes.TextureFormat

	shader      hal.ShaderModule
	colorLayout hal.BindGroupLayout
	pipeLayout  hal.PipelineLayout
	pipeline    hal.RenderPipeline
}

// compileShapeShader compiles the embedded WGSL program to SPIR-V words.
func compileShapeShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(shapeShaderSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrShaderCompile, err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("%w: SPIR-V length %d is not word aligned", ErrShaderCompile, len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	spirv := make([]uint32, len(spirvBytes)/4)
	for i := range spirv {
		spirv[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirv, nil
}

// newShapePipeline builds the shared pipeline targeting format.
// On failure everything created so far is released.
func newShapePipeline(device hal.Device, format gputypes.TextureFormat) (*shapePipeline, error) {
	p := &shapePipeline{device: device, format: format}
	if err := p.create(); err != nil {
		p.destroy()
		return nil, err
	}
	slogger().Debug("shape pipeline created", "format", format, "vertex_stride", vertexStride)
	return p, nil
}

func (p *shapePipeline) create() error {
	spirv, err := compileShapeShader()
	if err != nil {
		return err
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "shape_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("create shape shader: %w", err)
	}
	p.shader = shader

	colorLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "shape_color_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create shape color layout: %w", err)
	}
	p.colorLayout = colorLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "shape_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.colorLayout},
	})
	if err != nil {
		return fmt.Errorf("create shape pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	blend := alphaOverBlend()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "shape_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers:    shapeVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create shape pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// destroy releases all pipeline resources in reverse creation order.
func (p *shapePipeline) destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.colorLayout != nil {
		p.device.DestroyBindGroupLayout(p.colorLayout)
		p.colorLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// alphaOverBlend is straight-alpha "over" compositing:
// color = src*srcA + dst*(1-srcA), alpha = src + dst*(1-srcA).
func alphaOverBlend() gputypes.BlendState {
	return gputypes.BlendState{
		Color: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
		Alpha: gputypes.BlendComponent{
			SrcFactor: gputypes.BlendFactorOne,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
			Operation: gputypes.BlendOperationAdd,
		},
	}
}

func shapeVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			},
		},
	}
}
