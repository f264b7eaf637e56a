package particles

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TimeScale converts elapsed seconds into shader time.
const TimeScale = 0.1

// Material is the procedural glow applied to each particle.
type Material struct {
	Base mgl32.Vec3
	time float32
}

func NewMaterial(base mgl32.Vec3) *Material {
	return &Material{Base: base}
}

// Advance sets shader time from elapsed seconds. Time never moves backwards.
func (m *Material) Advance(elapsed float32) float32 {
	if t := elapsed * TimeScale; t > m.time {
		m.time = t
	}
	return m.time
}

// Time is the current shader time.
func (m *Material) Time() float32 {
	return m.time
}

// Shade is the fragment function the particle shader runs, evaluated on the
// CPU. It returns the color and alpha at uv.
func Shade(uv mgl32.Vec2, time float32, base mgl32.Vec3) (mgl32.Vec3, float32) {
	u, v := uv[0], uv[1]
	gradient := (1 - math32.Abs(u-0.5)*2) * (1 - math32.Abs(v-0.5)*2)

	p := uv.Mul(10).Add(mgl32.Vec2{time, time})
	noise := fract(math32.Sin(p.Dot(mgl32.Vec2{12.9898, 78.233})) * 43758.5453)

	distortion := math32.Sin(time+u*10)*0.1 + math32.Cos(time+v*8)*0.1

	color := base.Mul(gradient + noise*0.1 + distortion)
	glow := base.Mul(gradient * gradient * gradient * 0.5)
	return color.Add(glow), 0.7 * gradient
}

func fract(x float32) float32 {
	return x - math32.Floor(x)
}

// Uniform names the particle shader reads.
const (
	UniformTime  = "uTime"
	UniformColor = "uColor"
)

// VertexShader passes uv through to the fragment stage.
const VertexShader = `#version 330 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec2 inTexCoord;
layout(location = 2) in vec3 inNormal;

uniform mat4 model;
uniform mat4 viewProjection;

out vec2 vUv;

void main() {
    vUv = inTexCoord;
    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
}
` + "\x00"

// FragmentShader implements Shade.
const FragmentShader = `#version 330 core

uniform float uTime;
uniform vec3 uColor;

in vec2 vUv;
out vec4 FragColor;

float random(vec2 st) {
    return fract(sin(dot(st.xy, vec2(12.9898, 78.233))) * 43758.5453123);
}

void main() {
    vec2 uv = vUv;
    float gradient = (1.0 - abs(uv.x - 0.5) * 2.0) * (1.0 - abs(uv.y - 0.5) * 2.0);
    float noise = random(uv * 10.0 + uTime);
    float distortion = sin(uTime + uv.x * 10.0) * 0.1 + cos(uTime + uv.y * 8.0) * 0.1;

    vec3 color = uColor * (gradient + noise * 0.1 + distortion);
    float glow = pow(gradient, 3.0) * 0.5;
    color += uColor * glow;

    FragColor = vec4(color, 0.7 * gradient);
}
` + "\x00"
