package behaviour

import (
	"testing"

	"Folio3D/internal/anim"

	"github.com/go-gl/mathgl/mgl32"
)

type recordingModel struct {
	world mgl32.Mat4
	calls int
}

func (r *recordingModel) SetWorldMatrix(m mgl32.Mat4) {
	r.world = m
	r.calls++
}

func TestComponentManagerRegister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 1 {
		t.Errorf("Expected 1 registered object, got %d", len(all))
	}
}

func TestComponentManagerRegisterSubtree(t *testing.T) {
	cm := NewComponentManager()
	root := NewGameObject("Root")
	root.AddChild(NewGameObject("A"))
	root.AddChild(NewGameObject("B"))

	cm.RegisterGameObject(root)

	all := cm.GetAllGameObjects()
	if len(all) != 3 {
		t.Fatalf("Expected 3 registered objects, got %d", len(all))
	}
	if all[0] != root {
		t.Error("Parent should be registered before its children")
	}
}

func TestComponentManagerUnregister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)
	cm.UnregisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Expected 0 objects after unregister, got %d", len(all))
	}
	if obj.Active {
		t.Error("Unregistered object should be destroyed")
	}
}

func TestComponentManagerUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(&Frame{Elapsed: 1.5})

	if !comp.startCalled {
		t.Error("Start() was not called on registration")
	}
	if !comp.updateCalled {
		t.Error("Update() was not called on component")
	}
	if comp.lastElapsed != 1.5 {
		t.Errorf("Expected elapsed 1.5, got %f", comp.lastElapsed)
	}
}

func TestComponentManagerInactiveObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	obj.Active = false
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(&Frame{})

	if comp.updateCalled {
		t.Error("Update() should not be called on inactive object")
	}
}

func TestComponentManagerPushesWorldMatrix(t *testing.T) {
	cm := NewComponentManager()
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")
	parent.AddChild(child)
	model := &recordingModel{}
	child.SetModel(model)

	parent.AddComponent(NewUpdateFunc(func(obj *GameObject, f *Frame) {
		obj.Transform.SetPosition(mgl32.Vec3{f.Elapsed, 0, 0})
	}))
	cm.RegisterGameObject(parent)

	cm.UpdateAll(&Frame{Elapsed: 3})

	if model.calls != 1 {
		t.Fatalf("Expected 1 matrix push, got %d", model.calls)
	}
	got := model.world.Col(3).Vec3()
	if !got.ApproxEqual(mgl32.Vec3{3, 0, 0}) {
		t.Errorf("Expected child to follow parent moved this frame, got %v", got)
	}
}

func TestFloatingDoesNotAccumulate(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Badge")
	obj.Transform.SetPosition(mgl32.Vec3{2, 1, 0})
	obj.AddComponent(NewFloating(anim.Float{Speed: 2, RotationIntensity: 0.2, FloatIntensity: 0.5}, mgl32.Vec3{}))
	cm.RegisterGameObject(obj)

	cm.UpdateAll(&Frame{Elapsed: 4})
	first := obj.Transform.Position
	cm.UpdateAll(&Frame{Elapsed: 9})
	cm.UpdateAll(&Frame{Elapsed: 4})

	if !obj.Transform.Position.ApproxEqual(first) {
		t.Errorf("Expected same pose for same time, got %v and %v", first, obj.Transform.Position)
	}
}

func TestComponentManagerFindGameObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("FindMe")
	cm.RegisterGameObject(obj)

	found := cm.FindGameObject("FindMe")

	if found == nil {
		t.Error("FindGameObject should find registered object")
	}
	if found != obj {
		t.Error("FindGameObject returned wrong object")
	}
}

func TestComponentManagerFindGameObjectNotFound(t *testing.T) {
	cm := NewComponentManager()

	found := cm.FindGameObject("NotHere")

	if found != nil {
		t.Error("FindGameObject should return nil for non-existent object")
	}
}

func TestComponentManagerDeferredDestroy(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Doomed")
	cm.RegisterGameObject(obj)

	cm.DestroyGameObject(obj)
	if len(cm.GetAllGameObjects()) != 1 {
		t.Error("Destroy should be deferred until the next update")
	}

	cm.UpdateAll(&Frame{})
	if len(cm.GetAllGameObjects()) != 0 {
		t.Error("Object should be removed on the next update")
	}
}

func TestComponentManagerClear(t *testing.T) {
	cm := NewComponentManager()
	cm.RegisterGameObject(NewGameObject("A"))
	cm.RegisterGameObject(NewGameObject("B"))

	cm.Clear()

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Clear should remove all objects, got %d", len(all))
	}
}
