package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于重新创建场景（如 F5 重开），避免 game 包依赖 scenes 包
type SceneFactory func() (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// 旧场景实现了 Exiter 时先调用 OnExit
func (sm *SceneManager) SwitchTo(scene Scene) {
	if scene == sm.currentScene {
		return
	}
	sm.exitCurrent()
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Reload 使用工厂函数重新创建当前场景
// 创建失败时保留当前场景
func (sm *SceneManager) Reload() error {
	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return nil
	}

	scene, err := sm.sceneFactory()
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %v", err)
		return err
	}

	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 场景已重新创建")
	return nil
}

// Shutdown 程序关闭时调用，通知当前场景退出
func (sm *SceneManager) Shutdown() {
	sm.exitCurrent()
	sm.currentScene = nil
}

func (sm *SceneManager) exitCurrent() {
	if exiter, ok := sm.currentScene.(Exiter); ok {
		exiter.OnExit()
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
