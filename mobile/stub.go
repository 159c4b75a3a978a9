//go:build !mobile

// Package mobile 是 gomobile bind 的入口
//
// 普通构建只编译本文件；init 中创建 App 并调用 mobile.SetGame 的代码
// 位于 mobile.go，需要 -tags mobile。
package mobile

// Dummy 让桌面构建也能引用本包
func Dummy() {}
