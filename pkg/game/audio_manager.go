package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音频资源路径
const (
	audioHumPath      = "assets/audio/hum.wav"
	audioWhooshPath   = "assets/audio/whoosh.wav"
	audioDoorOpenPath = "assets/audio/door_open.wav"
	audioChimePath    = "assets/audio/chime.wav"
)

// AudioManager coordinates all audio playback: the looping ambience hum and
// the one-shot cue effects used by the walkthrough scenes. Every trigger is a
// named method so call sites never deal with file paths or players directly.
//
// Missing audio assets degrade to logged no-ops: the walkthrough must stay
// fully usable without sound.
type AudioManager struct {
	resources *ResourceManager
	settings  *SettingsManager

	humPlayer *audio.Player
	humFailed bool
}

// NewAudioManager creates the audio manager. Both dependencies are required;
// settings provide the ambience and cue volumes.
func NewAudioManager(resources *ResourceManager, settings *SettingsManager) *AudioManager {
	return &AudioManager{
		resources: resources,
		settings:  settings,
	}
}

// PlayHumStart 启动环境低鸣循环
// 重复调用不会叠加：已在播放时只刷新音量
func (am *AudioManager) PlayHumStart() {
	if !am.settings.GetSettings().AmbienceEnabled {
		return
	}
	if am.humPlayer == nil && !am.humFailed {
		player, err := am.resources.LoadAudio(audioHumPath)
		if err != nil {
			log.Printf("[AudioManager] Ambience hum unavailable: %v", err)
			am.humFailed = true
			return
		}
		am.humPlayer = player
	}
	if am.humPlayer == nil {
		return
	}
	am.humPlayer.SetVolume(am.settings.GetSettings().AmbienceVolume)
	if !am.humPlayer.IsPlaying() {
		am.humPlayer.Play()
	}
}

// PlayHumStop 停止环境低鸣并回绕到起点
func (am *AudioManager) PlayHumStop() {
	if am.humPlayer == nil {
		return
	}
	am.humPlayer.Pause()
	if err := am.humPlayer.Rewind(); err != nil {
		log.Printf("[AudioManager] Failed to rewind ambience hum: %v", err)
	}
}

// PlayWhoosh 播放粒子爆发音效
func (am *AudioManager) PlayWhoosh() {
	am.playCue(audioWhooshPath)
}

// PlayDoorOpen 播放石门滑动音效
func (am *AudioManager) PlayDoorOpen() {
	am.playCue(audioDoorOpenPath)
}

// PlayChime 播放阶段切换提示音
func (am *AudioManager) PlayChime() {
	am.playCue(audioChimePath)
}

// playCue 播放一次性音效，回绕后从头播放
func (am *AudioManager) playCue(path string) {
	if !am.settings.GetSettings().CueEnabled {
		return
	}
	player, err := am.resources.LoadSoundEffect(path)
	if err != nil {
		log.Printf("[AudioManager] Cue unavailable (%s): %v", path, err)
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Failed to rewind cue %s: %v", path, err)
		return
	}
	player.SetVolume(am.settings.GetSettings().CueVolume)
	player.Play()
}
