package game

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/devilish/pkg/config"
)

// 字号
const (
	FontSizeBig   = 48.0
	FontSizeBody  = 28.0
	FontSizeSmall = 20.0
)

// ResourceManager 管理字体和合成音效
//
// 游戏不使用图片和音频素材：字体来自 Go 字体家族，
// 音效在加载时按 sounds.yaml 合成为 16 位立体声 PCM。
type ResourceManager struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource

	fontFaceCache map[string]*text.GoTextFace

	sampleRate   int
	soundBuffers map[string][]byte
}

// NewResourceManager 加载内置字体
func NewResourceManager() (*ResourceManager, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &ResourceManager{
		regular:       regular,
		bold:          bold,
		fontFaceCache: make(map[string]*text.GoTextFace),
		soundBuffers:  make(map[string][]byte),
	}, nil
}

// Font 返回指定字号的常规字体，结果按字号缓存
func (rm *ResourceManager) Font(size float64) *text.GoTextFace {
	return rm.face("regular", rm.regular, size)
}

// BoldFont 返回指定字号的粗体字体
func (rm *ResourceManager) BoldFont(size float64) *text.GoTextFace {
	return rm.face("bold", rm.bold, size)
}

func (rm *ResourceManager) face(family string, source *text.GoTextFaceSource, size float64) *text.GoTextFace {
	key := fmt.Sprintf("%s:%.1f", family, size)
	if face, ok := rm.fontFaceCache[key]; ok {
		return face
	}
	face := &text.GoTextFace{Source: source, Size: size}
	rm.fontFaceCache[key] = face
	return face
}

// LoadSounds 按配置合成全部音效
//
// rng 用于噪声波形，nil 时使用固定种子，保证同一配置合成结果一致。
func (rm *ResourceManager) LoadSounds(cfg *config.SoundConfig, rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	rm.sampleRate = cfg.SampleRate
	for _, name := range cfg.Names() {
		rm.soundBuffers[name] = Synthesize(cfg.Sounds[name], cfg.SampleRate, rng)
	}
	log.Debug().Str("component", "ResourceManager").Int("sounds", len(rm.soundBuffers)).Msg("sounds synthesized")
}

// SoundBuffer 返回合成好的 PCM 数据，不存在时返回 nil
func (rm *ResourceManager) SoundBuffer(name string) []byte {
	return rm.soundBuffers[name]
}

// SampleRate 音效的采样率（LoadSounds 之前为 0）
func (rm *ResourceManager) SampleRate() int {
	return rm.sampleRate
}

// Synthesize 把一个音效定义合成为 16 位小端立体声 PCM
//
// 频率从 Freq 线性滑到 EndFreq（EndFreq 为 0 时不滑动），
// 音量从 Volume 线性衰减到 0。
func Synthesize(def config.SoundDef, sampleRate int, rng *rand.Rand) []byte {
	n := int(def.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := def.Freq
		if def.EndFreq > 0 {
			freq += (def.EndFreq - def.Freq) * t
		}
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		v := waveSample(def.Wave, phase, rng) * def.Volume * (1 - t)
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}

// waveSample 返回 phase（0-1）处的波形值，范围 [-1, 1]
func waveSample(wave string, phase float64, rng *rand.Rand) float64 {
	switch wave {
	case config.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case config.WaveTriangle:
		return 4*math.Abs(phase-math.Floor(phase+0.5)) - 1
	case config.WaveNoise:
		return rng.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * phase)
}
