//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译（先复制 data/，见 embed.go）：
//
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.devilish -o build/android/devilish.aar -v ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Devilish.xcframework -v ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/rs/zerolog/log"

	"github.com/decker502/devilish/pkg/app"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	// 移动端没有命令行，使用默认启动配置
	cfg := &config.LaunchConfig{
		Rules:   config.DefaultRulesPath,
		Level:   config.DefaultLevelPath,
		Verbose: true,
		TPS:     config.DefaultTPS,
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("游戏初始化失败")
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
