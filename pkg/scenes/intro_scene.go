// Package scenes 实现漫游的全部舞台场景：
// 开场时间线（IntroScene）、闸门走廊（PassageScene）和
// 配置驱动的展板舞台（PanelScene），以及把舞台索引映射到
// 场景实例的工厂。
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
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Intro 时间线阶段
const (
	introPhaseLoading timeline.Phase = iota
	introPhaseRingFade
	introPhaseDotExplode
	introPhaseTextPulse
	introPhaseExitBurst
	introPhaseDone
)

const introTitle = "EXHIBIT"

// IntroScene 开场时间线场景
//
// 阶段顺序：loading → ringFade → dotExplode → textPulse → exitBurst → done。
// 每个阶段的退出条件互不相同：进度走满、定时、振荡器周期计数、
// 呼吸峰值电平、再定时。done 是幂等尾态：置位推进标志并恢复输入
// 各只发生一次，之后每帧只渲染终态画面，等待编排器接走。
type IntroScene struct {
	store     *game.ProgressStore
	input     *game.InputManager
	audio     *game.AudioManager
	resources *game.ResourceManager

	tracker *timeline.Tracker

	// 进度环：取"时间走满"和"资源就绪"里更慢的一方
	progress float64

	// 标记点脉冲振荡器：dotExplode 阶段靠它的周期计数决定起爆时机
	pulse *timeline.Oscillator
	// 标题呼吸振荡器：textPulse 阶段靠它的峰值电平决定退出时机
	breath *timeline.Oscillator

	// 爆散计时与阶段内一次性动作
	explodeStarted timeline.Once
	explodeTimer   float64
	exploding      bool

	// 峰值等待的兜底计时（见 config.IntroBreathPeakMaxWait）
	peakWait float64

	finished timeline.Once

	particles *entities.ParticleField
	titleFace *text.GoTextFace
}

// NewIntroScene 创建开场场景并抑制输入
// 字体加载失败降级为调试字体渲染，不阻断时间线
func NewIntroScene(store *game.ProgressStore, input *game.InputManager, audio *game.AudioManager, resources *game.ResourceManager) *IntroScene {
	s := &IntroScene{
		store:     store,
		input:     input,
		audio:     audio,
		resources: resources,
		tracker:   timeline.NewTracker(introPhaseLoading),
		pulse:     timeline.NewOscillator(config.IntroPulseFreq, config.IntroPulseAmp),
		breath:    timeline.NewOscillator(config.IntroBreathFreq, config.IntroBreathAmp),
		particles: entities.NewParticleField(
			config.IntroParticleCount,
			config.IntroMarkerX, config.IntroMarkerY,
			config.IntroParticleBaseRadius,
			color.RGBA{R: 0xd8, G: 0xce, B: 0xa8, A: 0xff},
		),
	}
	s.particles.SetAlpha(0)

	face, err := resources.LoadFont("assets/fonts/display.ttf", config.IntroTitleFontSize)
	if err != nil {
		log.Printf("[IntroScene] Title font unavailable, using fallback text: %v", err)
	} else {
		s.titleFace = face
	}

	// 时间线期间不接受操作，完成时恢复
	input.Disable()
	return s
}

// Update 推进时间线一帧
func (s *IntroScene) Update(elapsed, deltaTime float64) {
	s.tracker.Tick(deltaTime)

	switch s.tracker.Phase() {
	case introPhaseLoading:
		s.updateLoading(deltaTime)
	case introPhaseRingFade:
		s.updateRingFade(deltaTime)
	case introPhaseDotExplode:
		s.updateDotExplode(deltaTime)
	case introPhaseTextPulse:
		s.updateTextPulse(deltaTime)
	case introPhaseExitBurst:
		s.updateExitBurst()
	case introPhaseDone:
		s.finished.Do(func() {
			s.input.Enable()
			s.store.SetCanAdvance(true)
		})
	}

	s.particles.Update(deltaTime)
}

// updateLoading 进度环走满才放行
// 进度是"最短时长"和"预加载比例"的最小值，两者都满才算就绪
func (s *IntroScene) updateLoading(deltaTime float64) {
	s.pulse.Tick(deltaTime)
	s.resources.PreloadStep()

	timed := utils.Clamp01(s.tracker.Elapsed() / config.IntroLoadDuration)
	s.progress = math.Min(timed, s.resources.PreloadFraction())

	if s.progress >= 1 {
		s.tracker.Advance(introPhaseRingFade)
	}
}

// updateRingFade 双环定时淡出，标记点脉冲照常
func (s *IntroScene) updateRingFade(deltaTime float64) {
	s.pulse.Tick(deltaTime)
	if s.tracker.Elapsed() >= config.IntroRingFadeDuration {
		// 进入爆散等待：周期计数从脉冲信号的当前符号起算，
		// 避免把进行到一半的周期多数一次
		s.pulse.SeedSign()
		s.tracker.Advance(introPhaseDotExplode)
	}
}

// updateDotExplode 脉冲等待 + 爆散本体
//
// 等待段：振荡器数满 IntroExplodeWaitCycles 个完整周期后起爆，
// 起爆瞬间触发一次 whoosh 音效。爆散段用独立计时器推进，
// 不复用阶段计时——等待段的长短不应影响爆散节奏。
func (s *IntroScene) updateDotExplode(deltaTime float64) {
	s.pulse.Tick(deltaTime)

	if !s.exploding {
		if s.pulse.Cycles() >= config.IntroExplodeWaitCycles {
			s.explodeStarted.Do(func() {
				s.exploding = true
				s.explodeTimer = 0
				s.audio.PlayWhoosh()
			})
		}
		return
	}

	s.explodeTimer += deltaTime
	p := utils.Clamp01(s.explodeTimer / config.IntroExplodeDuration)

	// 粒子从爆散进度 20% 起随缩放同曲线扩张
	if p >= config.IntroParticleExpandStart {
		span := (p - config.IntroParticleExpandStart) / (1 - config.IntroParticleExpandStart)
		factor := 1 + utils.EaseInOutCubic(span)*(config.IntroParticleLockMultiple-1)
		s.particles.SetExpansion(factor)
		s.particles.SetAlpha(utils.EaseOutQuad(span))
	}

	if p >= 1 {
		// 锁定粒子半径：后续呼吸以此为新基线
		s.particles.LockRadii(config.IntroParticleLockMultiple)
		s.breath.SeedSign()
		s.tracker.Advance(introPhaseTextPulse)
	}
}

// updateTextPulse 标题呼吸与峰值退出
//
// 停留时长满足后，等呼吸信号越过峰值阈值再切出，
// 避免在呼吸中途硬切。峰值等待有兜底上限，超时强制退出。
func (s *IntroScene) updateTextPulse(deltaTime float64) {
	s.breath.Tick(deltaTime)

	if s.tracker.Elapsed() < config.IntroTextHoldDuration {
		return
	}

	s.peakWait += deltaTime
	if s.breath.Sample() >= config.IntroBreathPeakThreshold ||
		s.peakWait >= config.IntroBreathPeakMaxWait {
		s.audio.PlayChime()
		s.particles.CaptureBaseline()
		s.tracker.Advance(introPhaseExitBurst)
	}
}

// updateExitBurst 退场冲刺：标题放大淡出、粒子二次扩张
func (s *IntroScene) updateExitBurst() {
	p := utils.Clamp01(s.tracker.Elapsed() / config.IntroExitDuration)
	eased := utils.EaseInQuart(p)

	s.particles.SetExpansion(1 + eased*(config.IntroExitParticleMultiple-1))
	s.particles.SetAlpha(1 - eased)

	if p >= 1 {
		s.tracker.Advance(introPhaseDone)
	}
}

// Dispose 释放场景持有的运行态
func (s *IntroScene) Dispose() {
	s.particles.SetAlpha(0)
}

// Draw 渲染当前阶段画面
func (s *IntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x0b, G: 0x0d, B: 0x12, A: 0xff})

	switch s.tracker.Phase() {
	case introPhaseLoading:
		s.drawRings(screen, 1)
		s.drawMarker(screen, s.markerScale(), 1)
	case introPhaseRingFade:
		fade := 1 - utils.EaseOutQuad(utils.Clamp01(s.tracker.Elapsed()/config.IntroRingFadeDuration))
		s.drawRings(screen, fade)
		s.drawMarker(screen, s.markerScale(), 1)
	case introPhaseDotExplode:
		s.drawExplode(screen)
	case introPhaseTextPulse:
		s.particles.Draw(screen)
		s.drawTitle(screen, s.titleAlphaBreath(), 1)
	case introPhaseExitBurst:
		p := utils.Clamp01(s.tracker.Elapsed() / config.IntroExitDuration)
		eased := utils.EaseInQuart(p)
		s.particles.Draw(screen)
		s.drawTitle(screen, 1-eased, 1+eased*(config.IntroExitTextScaleMax-1))
	case introPhaseDone:
		s.particles.Draw(screen)
	}
}

// drawRings 绘制装饰外环与进度内环
func (s *IntroScene) drawRings(screen *ebiten.Image, alpha float64) {
	cx := float32(config.IntroMarkerX)
	cy := float32(config.IntroMarkerY)

	outer := color.RGBA{R: 0x3a, G: 0x41, B: 0x52, A: uint8(alpha * 255)}
	vector.StrokeCircle(screen, cx, cy, float32(config.IntroRingOuterRadius), 2, outer, true)

	if s.progress <= 0 {
		return
	}
	// 进度环：从顶部起按进度扫过的圆弧，用短线段逼近
	inner := color.RGBA{R: 0xe8, G: 0xdc, B: 0xb0, A: uint8(alpha * 255)}
	const segments = 96
	steps := int(s.progress * segments)
	r := config.IntroRingInnerRadius
	for i := 0; i < steps; i++ {
		a0 := -math.Pi/2 + float64(i)/segments*2*math.Pi
		a1 := -math.Pi/2 + float64(i+1)/segments*2*math.Pi
		vector.StrokeLine(screen,
			cx+float32(math.Cos(a0)*r), cy+float32(math.Sin(a0)*r),
			cx+float32(math.Cos(a1)*r), cy+float32(math.Sin(a1)*r),
			3, inner, true)
	}
}

// drawMarker 绘制中心标记点与它的光晕
// 光晕强度跟随脉冲：基线强度 + 脉冲增益
func (s *IntroScene) drawMarker(screen *ebiten.Image, scale, alpha float64) {
	cx := float32(config.IntroMarkerX)
	cy := float32(config.IntroMarkerY)
	radius := float32(config.IntroMarkerRadius * scale)

	glow := config.IntroLightBaseIntensity + (s.pulse.Pulse()-1)*config.IntroLightPulseGain
	glowAlpha := utils.Clamp01(glow) * alpha
	halo := color.RGBA{R: 0xe8, G: 0xdc, B: 0xb0, A: uint8(glowAlpha * 90)}
	vector.DrawFilledCircle(screen, cx, cy, radius*2.6, halo, true)

	dot := color.RGBA{R: 0xf2, G: 0xea, B: 0xd0, A: uint8(alpha * 255)}
	vector.DrawFilledCircle(screen, cx, cy, radius, dot, true)
}

// drawExplode 绘制爆散阶段：等待段脉冲、爆散段缩放与交叉淡入
func (s *IntroScene) drawExplode(screen *ebiten.Image) {
	if !s.exploding {
		s.drawMarker(screen, s.markerScale(), 1)
		return
	}

	p := utils.Clamp01(s.explodeTimer / config.IntroExplodeDuration)
	eased := utils.EaseInOutCubic(p)
	scale := 1 + eased*(config.IntroExplodeScaleMax-1)
	s.drawMarker(screen, scale, 1-eased)
	s.particles.Draw(screen)

	// 标题交叉淡入与标记点淡出刻意重叠
	if p >= config.IntroTextFadeStart {
		span := (p - config.IntroTextFadeStart) / (config.IntroTextFadeEnd - config.IntroTextFadeStart)
		s.drawTitle(screen, utils.Clamp01(span), 1)
	}
}

// markerScale 起爆前的标记点缩放
// 三个前置阶段共用同一个脉冲信号，阶段边界上缩放连续无跳变
func (s *IntroScene) markerScale() float64 {
	return s.pulse.Pulse()
}

// titleAlphaBreath 呼吸阶段的标题透明度
func (s *IntroScene) titleAlphaBreath() float64 {
	return utils.Clamp01(1 - config.IntroBreathAmp + s.breath.Sample()*config.IntroBreathAmp)
}

// drawTitle 绘制标题，字体缺失时降级为调试字体
func (s *IntroScene) drawTitle(screen *ebiten.Image, alpha, scale float64) {
	if alpha <= 0 {
		return
	}
	if s.titleFace == nil {
		ebitenutil.DebugPrintAt(screen, introTitle,
			int(config.IntroMarkerX)-len(introTitle)*3, int(config.IntroTitleY))
		return
	}

	w, h := text.Measure(introTitle, s.titleFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(config.IntroMarkerX, config.IntroTitleY)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, introTitle, s.titleFace, op)
}
