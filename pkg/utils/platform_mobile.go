//go:build mobile

package utils

// IsMobile 移动端构建总是返回 true，启用触摸输入和屏幕按钮
func IsMobile() bool {
	return true
}
