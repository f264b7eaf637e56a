package renderer

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Folio3D/internal/logger"
	"Folio3D/internal/scene"
)

type OpenGLRenderer struct {
	Config   RenderConfig
	Textures *TextureManager

	ctx                  context.Context
	shaders              map[scene.ShaderKind]*Shader
	currentShaderProgram uint32 // Track currently bound shader to avoid unnecessary switches
	currentTextureID     uint32
	width, height        int32
	drawList             []*Model
}

func NewOpenGLRenderer(cfg RenderConfig) *OpenGLRenderer {
	return &OpenGLRenderer{
		Config:   cfg,
		Textures: NewTextureManager(),
		shaders:  make(map[scene.ShaderKind]*Shader),
	}
}

// Init loads GL entry points and compiles every built-in shader. ctx bounds
// asynchronous image fetches.
func (rend *OpenGLRenderer) Init(ctx context.Context, width, height int32) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("OpenGL initialization failed: %w", err)
	}
	rend.ctx = ctx

	for _, kind := range []scene.ShaderKind{scene.ShaderLit, scene.ShaderUnlit, scene.ShaderParticle} {
		shader := ShaderFor(kind)
		if err := shader.Compile(); err != nil {
			return err
		}
		rend.shaders[kind] = shader
	}

	if rend.Config.MSAASamples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.Enable(gl.BLEND)
	rend.Textures.Placeholder()
	rend.UpdateViewport(width, height)
	logger.Log.Info("OpenGL render initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int("msaa", rend.Config.MSAASamples))
	return nil
}

// AddModel uploads a model's buffers and starts resolving its texture.
func (rend *OpenGLRenderer) AddModel(model *Model) error {
	if model.Mesh == nil || len(model.Mesh.Indices) == 0 {
		return fmt.Errorf("model %s has no geometry", model.Name)
	}
	usage := uint32(gl.STATIC_DRAW)
	if model.Deform != nil {
		usage = gl.DYNAMIC_DRAW
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(model.Mesh.Vertices)*4, gl.Ptr(model.Mesh.Vertices), usage)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(model.Mesh.Indices)*4, gl.Ptr(model.Mesh.Indices), gl.STATIC_DRAW)

	stride := int32(VertexStride * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	model.VAO = vao
	model.VBO = vbo
	model.EBO = ebo

	switch {
	case model.Image != nil:
		id, err := rend.Textures.CreateTextureFromImage(model.Image, model.TextureRef)
		if err != nil {
			return fmt.Errorf("model %s: %w", model.Name, err)
		}
		model.TextureID = id
	case model.TextureRef != "":
		rend.Textures.LoadImageAsync(rend.ctx, model.TextureRef)
		model.TextureID = rend.Textures.Lookup(model.TextureRef)
	}
	return nil
}

// RemoveModel frees the model's buffers. Raster textures are owned by the
// model and released with it; fetched images stay cached.
func (rend *OpenGLRenderer) RemoveModel(model *Model) {
	if model.VAO != 0 {
		gl.DeleteVertexArrays(1, &model.VAO)
		gl.DeleteBuffers(1, &model.VBO)
		gl.DeleteBuffers(1, &model.EBO)
		model.VAO, model.VBO, model.EBO = 0, 0, 0
	}
	if model.Image != nil {
		rend.Textures.ReleaseTexture(model.TextureID)
		model.TextureID = 0
	}
}

// UpdateModel re-uploads the model's rest-pose vertices.
func (rend *OpenGLRenderer) UpdateModel(model *Model) {
	if model.VBO == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, model.VBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(model.Mesh.Vertices)*4, gl.Ptr(model.Mesh.Vertices))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// BeginFrame uploads images fetched since the last frame and clears the window.
func (rend *OpenGLRenderer) BeginFrame() {
	if n := rend.Textures.Upload(); n > 0 {
		logger.Log.Debug("Textures uploaded", zap.Int("count", n))
	}
	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, rend.width, rend.height)
	c := rend.Config.ClearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Render draws models into viewport: opaque models first, then transparent
// ones back to front with depth writes off.
func (rend *OpenGLRenderer) Render(camera *Camera, viewport Viewport, models []*Model, lighting scene.Lighting, t float32) {
	if viewport.Empty() {
		return
	}
	camera.Resize(viewport.Width, viewport.Height)
	gl.Viewport(viewport.X, viewport.Y, viewport.Width, viewport.Height)
	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(viewport.X, viewport.Y, viewport.Width, viewport.Height)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)

	// Culling : https://learnopengl.com/Advanced-OpenGL/Face-culling
	if rend.Config.EnableFaceCulling {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}

	viewProjection := camera.GetViewProjection()
	rend.drawList = drawOrder(models, camera.Position, rend.drawList[:0])

	for _, model := range rend.drawList {
		shader := rend.shaders[model.Shader]
		if shader == nil {
			shader = rend.shaders[scene.ShaderLit]
		}
		if rend.currentShaderProgram != shader.program {
			shader.Use()
			rend.currentShaderProgram = shader.program
		}

		rend.setCommonUniforms(shader, viewProjection, model, lighting, camera)
		for name, value := range model.CustomUniforms {
			shader.SetUniform(name, value)
		}

		if model.Textured() {
			if model.Image == nil {
				model.TextureID = rend.Textures.Lookup(model.TextureRef)
			}
			if model.TextureID != rend.currentTextureID {
				gl.ActiveTexture(gl.TEXTURE0)
				gl.BindTexture(gl.TEXTURE_2D, model.TextureID)
				rend.currentTextureID = model.TextureID
			}
		}

		if model.Transparent() {
			gl.DepthMask(false)
			if model.Additive {
				gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
			} else {
				gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
			}
		} else {
			gl.DepthMask(true)
			gl.BlendFunc(gl.ONE, gl.ZERO)
		}

		gl.BindVertexArray(model.VAO)
		if rend.Config.EnableDeformation {
			if buf := model.DeformAt(t); buf != nil {
				gl.BindBuffer(gl.ARRAY_BUFFER, model.VBO)
				gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(buf)*4, gl.Ptr(buf))
			}
		}
		gl.DrawElements(gl.TRIANGLES, int32(len(model.Mesh.Indices)), gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}
	gl.DepthMask(true)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.SCISSOR_TEST)
}

// setCommonUniforms sets uniforms that are common to most shaders
func (rend *OpenGLRenderer) setCommonUniforms(shader *Shader, viewProjection mgl32.Mat4, model *Model, lighting scene.Lighting, camera *Camera) {
	shader.SetMat4("viewProjection", viewProjection)
	shader.SetMat4("model", model.ModelMatrix)
	shader.SetVec3("diffuseColor", model.Color)
	shader.SetFloat("opacity", model.Opacity)
	shader.SetUniform("useTexture", model.Textured())
	shader.SetInt("textureSampler", 0)
	shader.SetVec3("light.position", lighting.PointPosition)
	shader.SetFloat("light.intensity", lighting.PointStrength)
	shader.SetFloat("ambient", lighting.Ambient*rend.Config.AmbientScale)
	shader.SetVec3("viewPos", camera.Position)
	shader.SetFloat("shininess", rend.Config.Shininess)
}

// drawOrder appends the visible models to dst, opaque ones first in input
// order, then transparent ones farthest from eye first.
func drawOrder(models []*Model, eye mgl32.Vec3, dst []*Model) []*Model {
	for _, m := range models {
		if m.Visible && m.Opacity > 0 && !m.Transparent() {
			dst = append(dst, m)
		}
	}
	opaque := len(dst)
	for _, m := range models {
		if m.Visible && m.Opacity > 0 && m.Transparent() {
			dst = append(dst, m)
		}
	}
	transparent := dst[opaque:]
	sort.SliceStable(transparent, func(i, j int) bool {
		di := transparent[i].Position().Sub(eye).LenSqr()
		dj := transparent[j].Position().Sub(eye).LenSqr()
		return di > dj
	})
	return dst
}

func (rend *OpenGLRenderer) Cleanup() {
	rend.Textures.Clear()
	for _, shader := range rend.shaders {
		shader.Delete()
	}
	rend.currentShaderProgram = 0
	rend.currentTextureID = 0
}

func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	rend.width, rend.height = width, height
	gl.Viewport(0, 0, width, height)
}
