package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/ownrisk/pkg/utils"
)

// UserSettings 显示和声音偏好
// 页面流程状态（拒绝次数、当前页面）不属于这里，也从不写盘
type UserSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"` // 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"` // 启动时是否全屏
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() *UserSettings {
	return &UserSettings{SoundVolume: 0.6, SoundEnabled: true}
}

// gdata 中的位置：settings/user
const (
	settingsObject   = "settings"
	settingsProperty = "user"
)

// settingsStore 是 SettingsManager 用到的 gdata.Manager 方法子集
type settingsStore interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// SettingsManager 在内存中持有 UserSettings，并通过 gdata 读写
// store 为 nil 时只在内存中工作（例如存储目录不可用）
type SettingsManager struct {
	store    settingsStore
	settings *UserSettings
}

// OpenSettingsStorage 打开 appName 对应的 gdata 存储
// 出错时调用方可以把 nil 交给 NewSettingsManager
func OpenSettingsStorage(appName string) (*gdata.Manager, error) {
	dir, err := utils.EnsureSettingsDir()
	if err != nil {
		return nil, fmt.Errorf("failed to prepare settings storage: %w", err)
	}
	if dir != "" {
		log.Printf("[SettingsManager] settings dir: %s", dir)
	}

	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open settings storage: %w", err)
	}
	return m, nil
}

// NewSettingsManager 创建管理器并尝试加载已保存的设置
// 读取失败只记日志并使用默认值；error 返回值目前总是 nil
func NewSettingsManager(m *gdata.Manager) (*SettingsManager, error) {
	var store settingsStore
	if m != nil {
		store = m
	}
	return newSettingsManager(store), nil
}

func newSettingsManager(store settingsStore) *SettingsManager {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm
}

// Load 重新读取存档。没有存储或没有存档时恢复默认值；
// 存档损坏时同样恢复默认值并返回错误。
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	loaded, err := decodeSettings(data)
	if err != nil {
		return err
	}

	sm.settings = loaded
	log.Printf("[SettingsManager] loaded %+v", *loaded)
	return nil
}

// decodeSettings 在默认值之上解码，缺失字段保留默认值
func decodeSettings(data []byte) (*UserSettings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	s.SoundVolume = clampVolume(s.SoundVolume)
	return s, nil
}

// Save 写回存储；没有存储时什么也不做
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// GetSettings returns the live settings; callers must not keep it across Load.
func (sm *SettingsManager) GetSettings() *UserSettings {
	return sm.settings
}

// 以下 setter 只改内存，持久化需要再调用 Save

func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// ToggleSound flips the sound switch and returns the new value.
func (sm *SettingsManager) ToggleSound() bool {
	sm.settings.SoundEnabled = !sm.settings.SoundEnabled
	return sm.settings.SoundEnabled
}

func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

func clampVolume(v float64) float64 {
	return max(0, min(v, 1))
}
