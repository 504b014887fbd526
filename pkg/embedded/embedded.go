// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）或 mobile/embed.go。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/ownrisk/pkg/config"
)

// ConfigPath 嵌入的默认配置文件
const ConfigPath = "data/config.yaml"

// ErrNotInitialized 在 Init() 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var dataFS fs.FS

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return dataFS != nil
}

// cleanPath 标准化路径：正斜杠，去掉 "./" 前缀，必须以 "data/" 开头
func cleanPath(path string) (string, error) {
	path = strings.TrimPrefix(filepath.ToSlash(path), "./")
	if !strings.HasPrefix(path, "data/") {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", path)
	}
	return path, nil
}

// ReadFile 读取嵌入文件内容
func ReadFile(path string) ([]byte, error) {
	if dataFS == nil {
		return nil, ErrNotInitialized
	}
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, path)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	if dataFS == nil {
		return false
	}
	path, err := cleanPath(path)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, path)
	return err == nil
}

// LoadAppConfig 加载应用配置
//
// 先读取嵌入的 data/config.yaml，再叠加 overridePath 指定的文件（可为空）。
// 未初始化时退回 config.DefaultAppConfig()。
func LoadAppConfig(overridePath string) (*config.AppConfig, error) {
	cfg := config.DefaultAppConfig()

	data, err := ReadFile(ConfigPath)
	switch {
	case err == nil:
		if err := cfg.Overlay(data); err != nil {
			return nil, fmt.Errorf("embedded %s: %w", ConfigPath, err)
		}
	case errors.Is(err, ErrNotInitialized):
		log.Printf("[Embedded] not initialized, using built-in defaults")
	default:
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}

	if overridePath == "" {
		return cfg, nil
	}
	override, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config override: %w", err)
	}
	if err := cfg.Overlay(override); err != nil {
		return nil, fmt.Errorf("%s: %w", overridePath, err)
	}
	log.Printf("[Embedded] config override applied: %s", overridePath)
	return cfg, nil
}
