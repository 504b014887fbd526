package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 按名称创建页面，返回 nil 表示名称未知
// 工厂由调用方提供，game 包因此不依赖具体页面实现
type SceneFactory func(name string) Scene

// SceneManager 持有当前页面，只转发 Update/Draw 给它
type SceneManager struct {
	factory SceneFactory
	current Scene
	name    string
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置 Load 使用的工厂
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.factory = factory
}

// SwitchTo 直接切换到给定页面（名称清空）
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.current, sm.name = scene, ""
}

// Load 用工厂创建并切换到 name；已经是该页面时不重建。
// 返回是否切换了页面。
func (sm *SceneManager) Load(name string) bool {
	if sm.current != nil && sm.name == name {
		return false
	}
	if sm.factory == nil {
		log.Printf("[SceneManager] no factory, cannot load %q", name)
		return false
	}
	scene := sm.factory(name)
	if scene == nil {
		log.Printf("[SceneManager] unknown scene %q", name)
		return false
	}
	sm.current, sm.name = scene, name
	log.Printf("[SceneManager] -> %s", name)
	return true
}

// GetCurrentScene returns the active scene, or nil.
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.current
}

// CurrentName returns the name passed to the last successful Load.
func (sm *SceneManager) CurrentName() string {
	return sm.name
}

func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
