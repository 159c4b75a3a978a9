package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/devilish/pkg/embedded"
)

// readDataFile 读取配置数据文件
//
// "data/" 开头的路径在 embedded 包已初始化时从嵌入资源读取，
// 其余情况（工具、测试、磁盘上的自定义文件）直接读磁盘。
func readDataFile(path string) ([]byte, error) {
	slashed := strings.TrimPrefix(filepath.ToSlash(path), "./")
	if embedded.IsInitialized() && strings.HasPrefix(slashed, "data/") {
		return embedded.ReadFile(slashed)
	}
	return os.ReadFile(path)
}
