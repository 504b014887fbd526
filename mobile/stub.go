//go:build !mobile

// Package mobile 是 gomobile/ebitenmobile bind 的入口，只在 -tags mobile 时有内容。
// 这个文件让 go build ./... 在桌面端不会因为包内没有可编译文件而报错。
package mobile
