package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/decker502/devilish/pkg/app"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/embedded"
)

func main() {
	cfg, err := config.LoadLaunchConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "启动参数错误: %v\n", err)
		os.Exit(2)
	}

	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("游戏初始化失败")
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Devilish Platformer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal().Err(err).Msg("game loop exited with error")
	}
}
