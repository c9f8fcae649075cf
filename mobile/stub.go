//go:build !mobile

// Package mobile 是 shroom 的 ebitenmobile 绑定入口。
//
// 普通构建（go build ./...）只编译本文件；
// make build-android / build-ios 使用 -tags mobile 编译 mobile.go 和 embed.go。
package mobile

// Dummy 与 mobile.go 中的同名导出保持一致，使两种构建的包 API 相同
func Dummy() {}
