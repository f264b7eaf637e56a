package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Folio3D/internal/logger"
	"Folio3D/internal/particles"
	"Folio3D/internal/scene"
)

// ErrShaderCompile is returned when a stage fails to compile or link.
var ErrShaderCompile = errors.New("shader compile failed")

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	Name           string
	vertexSource   string
	fragmentSource string
	program        uint32
	isCompiled     bool
	uniforms       *UniformCache
}

// NewShader returns an uncompiled program from NUL-terminated sources.
func NewShader(name, vertexSource, fragmentSource string) *Shader {
	return &Shader{Name: name, vertexSource: vertexSource, fragmentSource: fragmentSource}
}

// ShaderFor returns the built-in program for kind.
func ShaderFor(kind scene.ShaderKind) *Shader {
	switch kind {
	case scene.ShaderUnlit:
		return NewShader("unlit", vertexShaderSource, unlitFragmentShaderSource)
	case scene.ShaderParticle:
		return NewShader("particle", particles.VertexShader, particles.FragmentShader)
	default:
		return NewShader("lit", vertexShaderSource, litFragmentShaderSource)
	}
}

// Compile builds and links the program. It is a no-op once it has succeeded.
func (shader *Shader) Compile() error {
	if shader.isCompiled {
		return nil
	}
	vs, err := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	fs, err := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	program, err := GenShaderProgram(vs, fs)
	if err != nil {
		return fmt.Errorf("%s: %w", shader.Name, err)
	}
	shader.program = program
	shader.uniforms = NewUniformCache(program)
	shader.isCompiled = true
	logger.Log.Debug("Shader compiled", zap.String("name", shader.Name), zap.Uint32("program", program))
	return nil
}

func (shader *Shader) IsCompiled() bool {
	return shader.isCompiled
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	shader.uniforms.SetVec3(name, value.X(), value.Y(), value.Z())
}

func (shader *Shader) SetFloat(name string, value float32) {
	shader.uniforms.SetFloat(name, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	shader.uniforms.SetInt(name, value)
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	shader.uniforms.SetMat4(name, value)
}

// SetUniform sets a value of any type the custom uniform path supports.
func (shader *Shader) SetUniform(name string, value interface{}) {
	switch v := value.(type) {
	case float32:
		shader.SetFloat(name, v)
	case float64:
		shader.SetFloat(name, float32(v))
	case int:
		shader.SetInt(name, int32(v))
	case int32:
		shader.SetInt(name, v)
	case bool:
		if v {
			shader.SetInt(name, 1)
		} else {
			shader.SetInt(name, 0)
		}
	case mgl32.Vec3:
		shader.SetVec3(name, v)
	case mgl32.Mat4:
		shader.SetMat4(name, v)
	default:
		logger.Log.Warn("Unsupported uniform type", zap.String("name", name), zap.String("type", fmt.Sprintf("%T", value)))
	}
}

func (shader *Shader) Delete() {
	if shader.isCompiled {
		gl.DeleteProgram(shader.program)
		shader.isCompiled = false
	}
}

// GenShader compiles one stage.
func GenShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		logger.Log.Error("Failed to compile", zap.Uint32("shaderType", shaderType), zap.String("log", log))
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// GenShaderProgram links two compiled stages and deletes them.
func GenShaderProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		logger.Log.Error("Failed to link program", zap.String("log", log))
		return 0, fmt.Errorf("%w: link: %s", ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return program, nil
}

var vertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture Coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal

uniform mat4 model;
uniform mat4 viewProjection;

out vec2 fragTexCoord;
out vec3 Normal;
out vec3 FragPos;

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = mat3(transpose(inverse(model))) * inNormal;
    fragTexCoord = inTexCoord;
    gl_Position = viewProjection * vec4(FragPos, 1.0);
}
` + "\x00"

// Ambient term plus one point light; roughness is folded into a fixed
// specular exponent.
var litFragmentShaderSource = `#version 330 core
in vec2 fragTexCoord;
in vec3 Normal;
in vec3 FragPos;

uniform sampler2D textureSampler;
uniform bool useTexture;
uniform struct Light {
    vec3 position;
    float intensity;
} light;
uniform float ambient;
uniform vec3 viewPos;
uniform vec3 diffuseColor;
uniform float opacity;
uniform float shininess;

out vec4 FragColor;

void main() {
    vec3 base = diffuseColor;
    if (useTexture) {
        base *= texture(textureSampler, fragTexCoord).rgb;
    }

    vec3 norm = normalize(Normal);
    vec3 lightDir = normalize(light.position - FragPos);
    float diff = max(dot(norm, lightDir), 0.0);

    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 halfDir = normalize(lightDir + viewDir);
    float spec = pow(max(dot(norm, halfDir), 0.0), shininess) * 0.25;

    vec3 result = base * (ambient + diff * light.intensity) + vec3(spec * light.intensity);
    FragColor = vec4(result, opacity);
}
` + "\x00"

// Flat color, optionally modulated by a texture. Text quads sample a white
// glyph raster so diffuseColor sets the ink.
var unlitFragmentShaderSource = `#version 330 core
in vec2 fragTexCoord;

uniform sampler2D textureSampler;
uniform bool useTexture;
uniform vec3 diffuseColor;
uniform float opacity;

out vec4 FragColor;

void main() {
    vec4 color = vec4(diffuseColor, opacity);
    if (useTexture) {
        color *= texture(textureSampler, fragTexCoord);
    }
    if (color.a < 0.01) {
        discard;
    }
    FragColor = color;
}
` + "\x00"
