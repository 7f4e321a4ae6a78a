package game

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gonewx/exhibit/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ResourceManager is responsible for centralized management of embedded
// assets. It provides loading and caching for audio players and text faces,
// ensuring that each asset is decoded only once and reused afterwards.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard
// Go maps. All loading happens on the single game-loop goroutine.
type ResourceManager struct {
	audioCache    map[string]*audio.Player    // path -> player
	fontFaceCache map[string]*text.GoTextFace // path:size -> face
	audioContext  *audio.Context

	// 预加载队列：开场进度环按 PreloadFraction 汇报加载进度
	preloadQueue []string
	preloadTotal int
}

// NewResourceManager creates and initializes a new ResourceManager.
// The audioContext is required for audio decoding and playback; it should be
// created once at startup (48000 Hz).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioCache:    make(map[string]*audio.Player),
		fontFaceCache: make(map[string]*text.GoTextFace),
		audioContext:  audioContext,
	}
}

// LoadAudio 加载循环音频（环境声），解码后缓存
// 支持 .wav 和 .ogg；流被包装为无限循环
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cached, exists := rm.audioCache[path]; exists {
		return cached, nil
	}

	stream, err := rm.decode(path)
	if err != nil {
		return nil, err
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect 加载单次播放的音效，解码后缓存
// 与 LoadAudio 不同，不做循环包装
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cached, exists := rm.audioCache[path]; exists {
		return cached, nil
	}

	stream, err := rm.decode(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// decode 读取嵌入音频并按扩展名解码
func (rm *ResourceManager) decode(path string) (interface {
	io.ReadSeeker
	Length() int64
}, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .ogg)", ext)
	}
}

// LoadFont loads a TrueType/OpenType font and creates a text face with the
// given size. The face is cached with a key combining path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cached, exists := rm.fontFaceCache[cacheKey]; exists {
		return cached, nil
	}

	fontData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// QueuePreload 设置预加载队列
// 队列在随后的帧里由 PreloadStep 逐个消化
func (rm *ResourceManager) QueuePreload(paths []string) {
	rm.preloadQueue = append([]string(nil), paths...)
	rm.preloadTotal = len(paths)
}

// PreloadStep 消化预加载队列中的一项
// 加载失败只是出队（缺失资源在使用处降级），返回队列是否已清空
func (rm *ResourceManager) PreloadStep() bool {
	if len(rm.preloadQueue) == 0 {
		return true
	}
	path := rm.preloadQueue[0]
	rm.preloadQueue = rm.preloadQueue[1:]

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".ogg":
		_, _ = rm.LoadSoundEffect(path)
	}
	return len(rm.preloadQueue) == 0
}

// PreloadFraction 返回预加载进度 [0,1]
// 空队列视为已完成
func (rm *ResourceManager) PreloadFraction() float64 {
	if rm.preloadTotal == 0 {
		return 1
	}
	done := rm.preloadTotal - len(rm.preloadQueue)
	return float64(done) / float64(rm.preloadTotal)
}
