package timeline

import "math"

// Oscillator 共享脉冲振荡器
//
// 为时间线提供一个连续采样的正弦信号，用于：
//   - 标记点的呼吸脉冲（1 + sin(t·ω)·A）
//   - 以"完成 N 个周期"作为阶段退出条件（独立于墙钟时长）
//
// 周期完成通过符号变化计数：采样值从正变为非正记一次过零。
// 计数必须在阶段进入时用 SeedSign 播种当前符号，
// 避免把已经进行到一半的周期多算一次。
type Oscillator struct {
	// Freq 角频率 ω（弧度/秒）
	Freq float64
	// Amp 振幅 A
	Amp float64

	time     float64
	lastSign int // +1 / -1，0 表示尚未播种
	cycles   int
}

// NewOscillator 创建振荡器
// freq 为角频率（弧度/秒），amp 为振幅
func NewOscillator(freq, amp float64) *Oscillator {
	return &Oscillator{Freq: freq, Amp: amp}
}

// Tick 推进振荡器时间并更新过零计数
// 每帧调用一次，deltaTime 为秒
func (o *Oscillator) Tick(deltaTime float64) {
	o.time += deltaTime

	sign := o.sampleSign()
	if o.lastSign > 0 && sign < 0 {
		o.cycles++
	}
	o.lastSign = sign
}

// Sample 返回当前的原始正弦采样值 sin(t·ω)
func (o *Oscillator) Sample() float64 {
	return math.Sin(o.time * o.Freq)
}

// Pulse 返回脉冲缩放系数 1 + sin(t·ω)·A
func (o *Oscillator) Pulse() float64 {
	return 1 + o.Sample()*o.Amp
}

// Time 返回振荡器累计时间（秒）
func (o *Oscillator) Time() float64 {
	return o.time
}

// Cycles 返回自上次播种以来完成的周期数（正→非正过零次数）
func (o *Oscillator) Cycles() int {
	return o.cycles
}

// SeedSign 用当前采样符号播种过零检测并清零周期计数
//
// 在进入以周期数为退出条件的阶段时调用：如果进入时信号已经为负，
// 不播种会把紧接着的回正误判为一个完整周期。
func (o *Oscillator) SeedSign() {
	o.cycles = 0
	o.lastSign = o.sampleSign()
}

// sampleSign 返回当前采样的符号：正为 +1，非正为 -1
// 采样值恰好为 0 视作非正（过零已发生）
func (o *Oscillator) sampleSign() int {
	if o.Sample() > 0 {
		return 1
	}
	return -1
}
