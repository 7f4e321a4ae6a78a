package scenes

import (
	"testing"

	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/game"
	"github.com/gonewx/exhibit/pkg/types"
)

func testPanelConfig() config.PanelStageConfig {
	cfg := config.PanelStageConfig{
		Name:    "gallery",
		Title:   "The Long Gallery",
		Caption: "Portraits along the east wall",
		Accent:  "#caa94e",
		FadeIn:  0.8,
	}
	return cfg
}

// TestPanelSceneFadeIn 测试淡入走完后进入常驻态
func TestPanelSceneFadeIn(t *testing.T) {
	_, _, _, resources := newTestCollaborators()
	s := NewPanelScene(testPanelConfig(), resources)

	if s.tracker.Phase() != panelPhaseFadeIn {
		t.Fatalf("Expected fadeIn phase at start, got %d", s.tracker.Phase())
	}
	if s.alpha() != 0 {
		t.Errorf("Expected alpha 0 at start, got %v", s.alpha())
	}

	const dt = 1.0 / 60
	frames := int(0.8/dt) + 2
	for i := 0; i < frames; i++ {
		s.Update(float64(i)*dt, dt)
	}

	if s.tracker.Phase() != panelPhaseIdle {
		t.Errorf("Expected idle phase after fade-in, got %d", s.tracker.Phase())
	}
	if s.alpha() != 1 {
		t.Errorf("Expected alpha 1 in idle, got %v", s.alpha())
	}
}

// TestPanelSceneUsesAccentColor 测试主题色贯通到粒子场
func TestPanelSceneUsesAccentColor(t *testing.T) {
	_, _, _, resources := newTestCollaborators()
	s := NewPanelScene(testPanelConfig(), resources)

	cfg := testPanelConfig()
	want := cfg.AccentColor()
	if s.accent != want {
		t.Errorf("Expected accent %v, got %v", want, s.accent)
	}
}

// TestFactoryStageMapping 测试工厂的舞台到场景映射
func TestFactoryStageMapping(t *testing.T) {
	store, input, audio, resources := newTestCollaborators()

	stagesYAML := []byte(`
panels:
  - name: atrium
    title: Atrium
  - name: gallery
    title: Gallery
`)
	stages, err := config.ParseStagesConfig(stagesYAML)
	if err != nil {
		t.Fatalf("ParseStagesConfig failed: %v", err)
	}

	factory := NewFactory(Deps{
		Store:     store,
		Input:     input,
		Audio:     audio,
		Resources: resources,
		Stages:    stages,
	})

	if _, ok := factory(types.StageLoading).(*IntroScene); !ok {
		t.Error("Expected IntroScene for loading stage")
	}
	input.Enable() // IntroScene 构建时抑制了输入，恢复以免影响后续断言

	if _, ok := factory(types.StagePassage).(*PassageScene); !ok {
		t.Error("Expected PassageScene for passage stage")
	}
	if _, ok := factory(types.StageAtrium).(*PanelScene); !ok {
		t.Error("Expected PanelScene for configured atrium stage")
	}

	// 未配置的面板舞台降级为空白
	if got := factory(types.StageTerrace); got != nil {
		t.Errorf("Expected nil scene for unconfigured stage, got %T", got)
	}
}

// TestFactoryWithoutStagesConfig 测试无配置时面板舞台全部降级
func TestFactoryWithoutStagesConfig(t *testing.T) {
	store, input, audio, resources := newTestCollaborators()
	factory := NewFactory(Deps{
		Store:     store,
		Input:     input,
		Audio:     audio,
		Resources: resources,
	})

	if got := factory(types.StageGallery); got != nil {
		t.Errorf("Expected nil scene without stages config, got %T", got)
	}
	if factory(types.StageLoading) == nil {
		t.Error("Intro scene must not depend on stages config")
	}
}

var _ game.Scene = (*IntroScene)(nil)
var _ game.Scene = (*PassageScene)(nil)
var _ game.Scene = (*PanelScene)(nil)
var _ game.Disposable = (*IntroScene)(nil)
var _ game.Disposable = (*PassageScene)(nil)
var _ game.Disposable = (*PanelScene)(nil)
