package behaviour

import "github.com/go-gl/mathgl/mgl32"

// ComponentManager owns the GameObjects of one mounted scene and drives
// their components once per frame
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
	}
}

// ModelInterface is implemented by drawables that follow a GameObject
type ModelInterface interface {
	SetWorldMatrix(mgl32.Mat4)
}

// RegisterGameObject adds obj and its whole subtree, parents first
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	obj.Walk(func(o *GameObject) {
		cm.gameObjects = append(cm.gameObjects, o)
		o.internalStart()
	})
}

// UnregisterGameObject removes obj and its subtree and destroys them
func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	obj.Walk(func(o *GameObject) {
		for i, g := range cm.gameObjects {
			if g == o {
				cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
				o.Destroy()
				return
			}
		}
	})
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindGameObjectsWithTag finds all GameObjects with a specific tag
func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// UpdateAll runs Update on every active object, then pushes world matrices
// to bound models. Matrices are pushed after all updates so children see
// their parents' transforms from the same frame.
func (cm *ComponentManager) UpdateAll(frame *Frame) {
	if len(cm.toDestroy) > 0 {
		for _, obj := range cm.toDestroy {
			cm.UnregisterGameObject(obj)
		}
		cm.toDestroy = cm.toDestroy[:0]
	}

	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalUpdate(frame)
		}
	}

	for _, obj := range cm.gameObjects {
		if !obj.Active || obj.GetModel() == nil {
			continue
		}
		if model, ok := obj.GetModel().(ModelInterface); ok {
			model.SetWorldMatrix(obj.Transform.WorldMatrix())
		}
	}
}

// DestroyGameObject marks a GameObject for destruction (will be removed next frame)
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear destroys and removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = cm.gameObjects[:0]
	cm.toDestroy = cm.toDestroy[:0]
}
