//go:build !android

package utils

// EnsureStorageDir 确保设置存储目录存在
// 桌面平台上 gdata 会自行创建目录，这里什么都不做
func EnsureStorageDir() error {
	return nil
}
