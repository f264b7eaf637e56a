package engine

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"Folio3D/internal/behaviour"
	"Folio3D/internal/logger"
	"Folio3D/internal/renderer"
	"Folio3D/internal/scene"
)

// Mount is a scene bound to the renderer: one model per drawable, a
// component manager driving its objects, and its own camera.
type Mount struct {
	Scene   *scene.Scene
	Camera  *renderer.Camera
	Manager *behaviour.ComponentManager
	Models  []*renderer.Model

	mountedAt float64
	lastTime  float64
	base      map[*renderer.Model]float32 // shape opacity before fading
}

// mount uploads every drawable of sc and registers its objects. now is the
// host clock in seconds; frames report time since this call.
func mount(rend renderer.Render, text *renderer.TextRenderer, sc *scene.Scene, width, height int32, now float64) (*Mount, error) {
	m := &Mount{
		Scene:     sc,
		Camera:    renderer.NewCamera(sc.Camera, width, height),
		Manager:   behaviour.NewComponentManager(),
		mountedAt: now,
		lastTime:  now,
		base:      make(map[*renderer.Model]float32, len(sc.Drawables)),
	}
	m.Camera.Name = sc.Name
	for _, d := range sc.Drawables {
		model, err := renderer.ModelFromShape(d.Object.Name, d.Shape, text)
		if err != nil {
			m.release(rend)
			return nil, fmt.Errorf("mount %s: %w", sc.Name, err)
		}
		if err := rend.AddModel(model); err != nil {
			m.release(rend)
			return nil, fmt.Errorf("mount %s: %w", sc.Name, err)
		}
		model.SetWorldMatrix(d.Object.Transform.WorldMatrix())
		d.Object.SetModel(model)
		m.Models = append(m.Models, model)
		m.base[model] = model.Opacity
	}
	m.Manager.RegisterGameObject(sc.Root)
	logger.Log.Debug("Scene mounted", zap.String("scene", sc.Name), zap.Int("models", len(m.Models)))
	return m, nil
}

// Update runs one frame of the scene's components.
func (m *Mount) Update(now float64, frame behaviour.Frame) {
	frame.Elapsed = float32(now - m.mountedAt)
	frame.Delta = float32(now - m.lastTime)
	m.lastTime = now
	m.Manager.UpdateAll(&frame)
}

// Elapsed is the scene clock at now.
func (m *Mount) Elapsed(now float64) float32 {
	return float32(now - m.mountedAt)
}

// Fade scales the opacity of every model under obj by alpha.
func (m *Mount) Fade(obj *behaviour.GameObject, alpha float32) {
	obj.Walk(func(o *behaviour.GameObject) {
		if model, ok := o.GetModel().(*renderer.Model); ok {
			model.SetOpacity(m.base[model] * alpha)
		}
	})
}

// Scale sets a uniform scale on obj.
func (m *Mount) Scale(obj *behaviour.GameObject, s float32) {
	obj.Transform.SetScale(mgl32.Vec3{s, s, s})
}

// Reset restores rest-pose vertex data, e.g. after deformation is disabled.
func (m *Mount) Reset(rend renderer.Render) {
	for _, model := range m.Models {
		if model.Deform != nil {
			rend.UpdateModel(model)
		}
	}
}

func (m *Mount) release(rend renderer.Render) {
	m.Manager.Clear()
	for _, model := range m.Models {
		rend.RemoveModel(model)
	}
	m.Models = nil
}
