package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/entities"
	"github.com/gonewx/exhibit/pkg/game"
	"github.com/gonewx/exhibit/pkg/timeline"
	"github.com/gonewx/exhibit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Panel 时间线阶段
const (
	panelPhaseFadeIn timeline.Phase = iota
	panelPhaseIdle
)

const (
	panelTitleFontSize   = 44.0
	panelCaptionFontSize = 18.0
	panelTitleY          = 320.0
	panelCaptionY        = 560.0
)

// PanelScene 配置驱动的展板舞台
//
// 中庭、展廊、档案厅等舞台共用这一实现，差异全部来自
// stages.yaml 里的 PanelStageConfig：标题、说明文字、主题色、
// 淡入时长、粒子数量和环绕半径。
//
// 展板舞台没有自己的退出条件，推进只由 HUD 的前进按钮触发。
type PanelScene struct {
	cfg     config.PanelStageConfig
	tracker *timeline.Tracker

	particles *entities.ParticleField
	accent    color.RGBA

	titleFace   *text.GoTextFace
	captionFace *text.GoTextFace
}

// NewPanelScene 按舞台配置创建展板场景
func NewPanelScene(cfg config.PanelStageConfig, resources *game.ResourceManager) *PanelScene {
	accent := cfg.AccentColor()
	s := &PanelScene{
		cfg:     cfg,
		tracker: timeline.NewTracker(panelPhaseFadeIn),
		accent:  accent,
		particles: entities.NewParticleField(
			cfg.ParticleCount,
			config.WindowWidth/2, config.WindowHeight/2,
			cfg.OrbitRadius,
			accent,
		),
	}
	s.particles.SetSpin(0.3)
	s.particles.SetAlpha(0)

	titleFace, err := resources.LoadFont("assets/fonts/display.ttf", panelTitleFontSize)
	if err != nil {
		log.Printf("[PanelScene] Title font unavailable for %q, using fallback text: %v", cfg.Name, err)
	} else {
		s.titleFace = titleFace
	}
	captionFace, err := resources.LoadFont("assets/fonts/display.ttf", panelCaptionFontSize)
	if err == nil {
		s.captionFace = captionFace
	}

	return s
}

// Update 推进一帧：淡入走完后进入常驻漂浮
func (s *PanelScene) Update(elapsed, deltaTime float64) {
	s.tracker.Tick(deltaTime)

	switch s.tracker.Phase() {
	case panelPhaseFadeIn:
		p := utils.Clamp01(s.tracker.Elapsed() / s.cfg.FadeIn)
		s.particles.SetAlpha(utils.EaseOutQuad(p))
		if p >= 1 {
			s.tracker.Advance(panelPhaseIdle)
		}
	case panelPhaseIdle:
		s.particles.SetAlpha(1)
	}

	s.particles.Update(deltaTime)
}

// Dispose 释放场景持有的运行态
func (s *PanelScene) Dispose() {
	s.particles.SetAlpha(0)
}

// alpha 返回当前整体透明度（标题与粒子同步淡入）
func (s *PanelScene) alpha() float64 {
	if s.tracker.Phase() == panelPhaseIdle {
		return 1
	}
	return utils.EaseOutQuad(utils.Clamp01(s.tracker.Elapsed() / s.cfg.FadeIn))
}

// Draw 渲染展板：环绕粒子、漂浮标题、底部说明
func (s *PanelScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x0e, G: 0x10, B: 0x15, A: 0xff})
	s.particles.Draw(screen)

	alpha := s.alpha()
	floatY := math.Sin(s.tracker.Elapsed()*s.cfg.FloatFreq) * 5

	s.drawText(screen, s.cfg.Title, s.titleFace, panelTitleY+floatY, alpha, s.accent)
	if s.cfg.Caption != "" {
		dim := color.RGBA{R: 0xb8, G: 0xb4, B: 0xa6, A: 0xff}
		s.drawText(screen, s.cfg.Caption, s.captionFace, panelCaptionY, alpha, dim)
	}
}

// drawText 居中绘制一行文字，字体缺失时降级为调试字体
func (s *PanelScene) drawText(screen *ebiten.Image, str string, face *text.GoTextFace, y, alpha float64, clr color.RGBA) {
	if alpha <= 0 || str == "" {
		return
	}
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, config.WindowWidth/2-len(str)*3, int(y))
		return
	}

	w, _ := text.Measure(str, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.WindowWidth/2-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, str, face, op)
}
