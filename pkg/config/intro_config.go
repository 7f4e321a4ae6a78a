package config

import "math"

// Intro Scene (loading 舞台) 时间线配置常量
//
// 阶段顺序：loading → ringFade → dotExplode → textPulse → exitBurst → done

const (
	// IntroLoadDuration 加载进度的最短播放时长（秒）
	// 即使资源瞬间就绪，进度环也按此时长匀速走满，避免一闪而过
	IntroLoadDuration = 2.2

	// IntroRingFadeDuration 双环淡出时长（秒）
	IntroRingFadeDuration = 0.3

	// IntroPulseFreq 标记点脉冲角频率 ω（弧度/秒）
	IntroPulseFreq = 4.2
	// IntroPulseAmp 标记点脉冲振幅 A（缩放系数 = 1 + sin(t·ω)·A）
	IntroPulseAmp = 0.16

	// IntroExplodeWaitCycles 爆散前等待的完整脉冲周期数（≥1）
	IntroExplodeWaitCycles = 1
	// IntroExplodeDuration 爆散本体时长（秒，独立于等待脉冲的计时）
	IntroExplodeDuration = 1.5
	// IntroExplodeScaleMax 爆散终点的缩放倍数（撑满屏幕）
	IntroExplodeScaleMax = 42.0

	// IntroTextFadeStart 标题交叉淡入的起点（爆散进度比例）
	IntroTextFadeStart = 0.25
	// IntroTextFadeEnd 标题完全不透明的终点（爆散进度比例）
	// 与爆散淡出刻意重叠，衔接无缝
	IntroTextFadeEnd = 0.75

	// IntroParticleExpandStart 粒子半径扩张的起点（爆散进度比例）
	IntroParticleExpandStart = 0.20
	// IntroParticleLockMultiple 爆散结束时粒子半径锁定的倍数
	IntroParticleLockMultiple = 3.0

	// IntroBreathFreq 标题呼吸脉冲角频率（弧度/秒，比标记点慢）
	IntroBreathFreq = 1.6
	// IntroBreathAmp 标题呼吸的透明度/光晕摆幅
	IntroBreathAmp = 0.25
	// IntroTextHoldDuration 标题阶段的最短停留时长（秒）
	IntroTextHoldDuration = 2.4
	// IntroBreathPeakThreshold 退出前等待的呼吸信号峰值阈值
	// 停留时长满足后还要等信号越过峰值，避免在呼吸中途切断
	IntroBreathPeakThreshold = 0.85

	// IntroExitDuration 退场冲刺时长（秒）
	IntroExitDuration = 0.9
	// IntroExitTextScaleMax 退场时标题放大的终点倍数
	IntroExitTextScaleMax = 2.6
	// IntroExitParticleMultiple 退场时粒子半径相对基线的扩张倍数
	IntroExitParticleMultiple = 2.0
)

// IntroBreathPeakMaxWait 峰值等待的兜底上限（秒）
//
// 峰值等待是电平触发的：如果停留时长恰好在峰值之后越界，
// 最坏要再等一个完整呼吸周期。超过一个周期仍未见峰值时强制退出。
var IntroBreathPeakMaxWait = 2 * math.Pi / IntroBreathFreq

// Intro 布局

const (
	// IntroMarkerX 标记点 X 坐标
	IntroMarkerX = 640.0
	// IntroMarkerY 标记点 Y 坐标
	IntroMarkerY = 340.0
	// IntroMarkerRadius 标记点基准半径（像素）
	IntroMarkerRadius = 10.0

	// IntroRingInnerRadius 内环半径（进度环）
	IntroRingInnerRadius = 48.0
	// IntroRingOuterRadius 外环半径（装饰环）
	IntroRingOuterRadius = 64.0

	// IntroParticleCount 粒子数量
	IntroParticleCount = 96
	// IntroParticleBaseRadius 粒子环基准半径（像素）
	IntroParticleBaseRadius = 120.0

	// IntroTitleY 标题 Y 坐标
	IntroTitleY = 330.0
	// IntroTitleFontSize 标题字号
	IntroTitleFontSize = 56.0

	// IntroLightBaseIntensity 标记点光源的基线强度
	IntroLightBaseIntensity = 0.35
	// IntroLightPulseGain 脉冲对光源强度的增益
	IntroLightPulseGain = 0.5
)
