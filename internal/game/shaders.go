package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Flat vertex shader: local vertex -> scale -> rotate -> translate -> view.
// World Y points up, so unlike screen space there is no flip.
const flatVertSrc = `#version 410 core

layout(location = 0) in vec2 aPos;

uniform vec2 uOffset;
uniform vec2 uScale;
uniform float uRotation;
uniform vec2 uCamera;
uniform float uZoom;
uniform vec2 uResolution;

void main() {
    vec2 local = aPos * uScale;
    float c = cos(uRotation);
    float s = sin(uRotation);
    vec2 rot = vec2(c * local.x - s * local.y, s * local.x + c * local.y);
    vec2 worldPos = uOffset + rot;
    vec2 ndc = (worldPos - uCamera) * uZoom / (uResolution * 0.5);
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

const flatFragSrc = `#version 410 core

uniform vec4 uColor;

out vec4 FragColor;

void main() {
    FragColor = uColor;
}
` + "\x00"

// flatProgram is the single program used for both the grid and the vehicle.
type flatProgram struct {
	id uint32

	uOffset     int32
	uScale      int32
	uRotation   int32
	uCamera     int32
	uZoom       int32
	uResolution int32
	uColor      int32
}

func newFlatProgram() (*flatProgram, error) {
	id, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}
	p := &flatProgram{id: id}
	p.uOffset = p.uniform("uOffset")
	p.uScale = p.uniform("uScale")
	p.uRotation = p.uniform("uRotation")
	p.uCamera = p.uniform("uCamera")
	p.uZoom = p.uniform("uZoom")
	p.uResolution = p.uniform("uResolution")
	p.uColor = p.uniform("uColor")
	return p, nil
}

func (p *flatProgram) uniform(name string) int32 {
	return gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
}

// use binds the program and loads the per-frame view uniforms.
func (p *flatProgram) use(v View) {
	gl.UseProgram(p.id)
	gl.Uniform2f(p.uCamera, float32(v.Center.X), float32(v.Center.Y))
	gl.Uniform1f(p.uZoom, float32(v.Zoom))
	gl.Uniform2f(p.uResolution, float32(v.W), float32(v.H))
}

func (p *flatProgram) delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(shader, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", log)
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", log)
	}
	return program, nil
}

// infoLog reads a shader or program log through the matching getters.
func infoLog(
	obj uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	buf := strings.Repeat("\x00", int(n+1))
	getLog(obj, n, nil, gl.Str(buf))
	return strings.TrimRight(buf, "\x00")
}
