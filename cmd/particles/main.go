// Package main provides a particle preset viewer for tuning data/particles.yaml.
//
// Usage:
//
//	go run ./cmd/particles [flags]
//
// Flags:
//
//	--presets <path>      Preset file (default data/particles.yaml)
//	--rules <path>        Rules file used for the particle pool limits
//	--filter <keyword>    Initial filter by name (e.g., --filter=wall)
//	--effect <name>       Start with specific preset (e.g., --effect=death)
//	--auto-play           Automatically cycle through presets every 2 seconds
//
// Controls:
//
//	Mouse Click       - Spawn preset at cursor position
//	Left/Right Arrow  - Switch to previous/next preset
//	Space             - Spawn preset at screen center
//	D                 - Spawn run dust at screen center
//	P                 - Toggle auto-play pause
//	R                 - Reload presets from disk and clear particles
//	Q/Escape          - Quit
package main

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/decker502/devilish/internal/particle"
	"github.com/decker502/devilish/pkg/app"
	"github.com/decker502/devilish/pkg/config"
	"github.com/decker502/devilish/pkg/systems"
	"github.com/decker502/devilish/pkg/utils"
)

const (
	screenWidth  = config.GameWindowWidth
	screenHeight = config.GameWindowHeight

	autoPlayInterval = 2.0
	dustCount        = 6
)

var backgroundColor = color.RGBA{R: 26, G: 26, B: 46, A: 255}

type viewerOptions struct {
	presetsPath string
	rulesPath   string
	filter      string
	effect      string
	autoPlay    bool
	verbose     bool
}

// ParticleViewer implements ebiten.Game for browsing particle presets
type ParticleViewer struct {
	opts    viewerOptions
	rules   *config.Rules
	rng     *rand.Rand
	render  *systems.RenderSystem
	system  *systems.ParticleSystem
	names   []string
	current int

	autoPlay  bool
	paused    bool
	sinceLast float64
	status    string
}

// filterPresets returns preset names containing query (case-insensitive)
func filterPresets(names []string, query string) []string {
	if query == "" {
		return names
	}
	query = strings.ToLower(query)
	var filtered []string
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), query) {
			filtered = append(filtered, name)
		}
	}
	return filtered
}

// indexOf returns the position of name in names, or 0 when absent
func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return 0
}

func newParticleViewer(opts viewerOptions) (*ParticleViewer, error) {
	rulesFile, err := config.LoadRules(opts.rulesPath)
	if err != nil {
		return nil, err
	}
	rules, err := rulesFile.Variant("")
	if err != nil {
		return nil, err
	}

	v := &ParticleViewer{
		opts:     opts,
		rules:    rules,
		rng:      rand.New(rand.NewSource(1)),
		render:   systems.NewRenderSystem(rules.Render),
		autoPlay: opts.autoPlay,
	}
	if err := v.reload(); err != nil {
		return nil, err
	}
	v.current = indexOf(v.names, opts.effect)
	v.spawnCurrent(screenWidth/2, screenHeight/2)
	return v, nil
}

// reload 重新读取预设文件并清空粒子池
func (v *ParticleViewer) reload() error {
	presets, err := config.LoadParticlePresets(v.opts.presetsPath)
	if err != nil {
		return err
	}
	names := filterPresets(particle.Names(presets), v.opts.filter)
	if len(names) == 0 {
		log.Warn().Str("component", "ParticleViewer").Str("filter", v.opts.filter).Msg("no presets match filter, showing all")
		names = particle.Names(presets)
	}
	if len(names) == 0 {
		return fmt.Errorf("no particle presets in %s", v.opts.presetsPath)
	}

	v.system = systems.NewParticleSystem(presets, v.rules.Particles, v.rules.Player.Gravity, v.rng)
	v.names = names
	if v.current >= len(names) {
		v.current = 0
	}
	v.status = fmt.Sprintf("Loaded %d presets", len(names))
	log.Info().Str("component", "ParticleViewer").Int("presets", len(names)).Msg("presets loaded")
	return nil
}

func (v *ParticleViewer) spawnCurrent(x, y float64) {
	name := v.names[v.current]
	n := v.system.Burst(name, utils.Vec2{X: x, Y: y})
	v.status = fmt.Sprintf("Spawned %s (%d particles)", name, n)
	v.sinceLast = 0
}

func (v *ParticleViewer) step(delta int) {
	v.current = (v.current + delta + len(v.names)) % len(v.names)
	v.system.Clear()
	v.spawnCurrent(screenWidth/2, screenHeight/2)
}

// Update handles viewer input
func (v *ParticleViewer) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := v.reload(); err != nil {
			v.status = fmt.Sprintf("Reload failed: %v", err)
			log.Error().Str("component", "ParticleViewer").Err(err).Msg("reload failed")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		v.paused = !v.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		v.step(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.spawnCurrent(screenWidth/2, screenHeight/2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		n := v.system.Dust(utils.Vec2{X: screenWidth / 2, Y: screenHeight / 2}, dustCount)
		v.status = fmt.Sprintf("Spawned dust (%d particles)", n)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		v.spawnCurrent(float64(x), float64(y))
	}

	if v.autoPlay && !v.paused {
		v.sinceLast += dt
		if v.sinceLast >= autoPlayInterval {
			v.step(1)
		}
	}

	v.system.Update(dt)
	return nil
}

// Draw renders particles and the status overlay
func (v *ParticleViewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	v.render.DrawParticles(screen, v.system.Particles(), 0, 0)

	autoPlay := "off"
	if v.autoPlay {
		autoPlay = "on"
		if v.paused {
			autoPlay = "paused"
		}
	}
	info := fmt.Sprintf("Preset %d/%d: %s\nActive particles: %d\nAuto-play: %s\n%s\n\n"+
		"Click: spawn  Left/Right: switch  Space: center  D: dust  P: pause  R: reload  Q: quit",
		v.current+1, len(v.names), v.names[v.current], v.system.Len(), autoPlay, v.status)
	ebitenutil.DebugPrint(screen, info)
}

// Layout returns the logical screen size
func (v *ParticleViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	var opts viewerOptions
	fs := pflag.NewFlagSet("particles", pflag.ContinueOnError)
	fs.StringVar(&opts.presetsPath, "presets", config.DefaultParticlesPath, "particle preset file")
	fs.StringVar(&opts.rulesPath, "rules", config.DefaultRulesPath, "rules file (particle pool limits)")
	fs.StringVar(&opts.filter, "filter", "", "initial filter by name keyword")
	fs.StringVar(&opts.effect, "effect", "", "start with specific preset name")
	fs.BoolVar(&opts.autoPlay, "auto-play", false, "auto cycle through presets")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	app.SetupLogging(nil, "", opts.verbose)

	viewer, err := newParticleViewer(opts)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start particle viewer")
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Particle Preset Viewer")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal().Err(err).Msg("viewer exited with error")
	}
}
