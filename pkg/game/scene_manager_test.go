package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	exits        int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// OnExit records that the scene was left.
func (m *MockScene) OnExit() {
	m.exits++
}

func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Fatal("Expected no scene initially")
	}

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()

	// 没有场景时不会 panic
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(16, 16))

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(16, 16))

	if !mockScene.updateCalled || !mockScene.drawCalled {
		t.Error("Scene's Update/Draw were not called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("Expected deltaTime 0.016, got %.3f", mockScene.deltaTime)
	}
}

func TestSceneManagerSwitchCallsExit(t *testing.T) {
	sm := NewSceneManager()
	scene1 := &MockScene{}
	scene2 := &MockScene{}

	sm.SwitchTo(scene1)
	sm.SwitchTo(scene1)
	if scene1.exits != 0 {
		t.Errorf("switching to the same scene should not exit it, exits=%d", scene1.exits)
	}

	sm.SwitchTo(scene2)
	if scene1.exits != 1 {
		t.Errorf("scene1 exits = %d, want 1", scene1.exits)
	}

	sm.Shutdown()
	if scene2.exits != 1 {
		t.Errorf("scene2 exits = %d, want 1", scene2.exits)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Shutdown should clear the current scene")
	}
}

func TestSceneManagerReload(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Reload(); err != nil {
		t.Fatalf("Reload without factory should be a no-op, got %v", err)
	}

	created := 0
	sm.SetSceneFactory(func() (Scene, error) {
		created++
		return &MockScene{}, nil
	})

	first := &MockScene{}
	sm.SwitchTo(first)
	if err := sm.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if created != 1 || sm.GetCurrentScene() == first {
		t.Error("Reload should replace the current scene")
	}
	if first.exits != 1 {
		t.Errorf("old scene exits = %d, want 1", first.exits)
	}

	failing := errors.New("boom")
	current := sm.GetCurrentScene()
	sm.SetSceneFactory(func() (Scene, error) { return nil, failing })
	if err := sm.Reload(); !errors.Is(err, failing) {
		t.Errorf("Reload error = %v, want %v", err, failing)
	}
	if sm.GetCurrentScene() != current {
		t.Error("failed reload should keep the current scene")
	}
}
