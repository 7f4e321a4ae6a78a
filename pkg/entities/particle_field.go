// Package entities 提供场景拥有的可视实体
package entities

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ParticleField 环形粒子场
//
// 固定容量的数值缓冲（角度/半径/基线半径/相位），每帧原地改写，
// 不做任何逐帧分配。缓冲归场景独占所有：场景销毁时一起丢弃。
//
// 半径的三段生命周期：
//  1. 自由态：围绕基线半径缓慢呼吸
//  2. 扩张态：时间线按缓动曲线改写半径（SetExpansion）
//  3. 锁定态：时间线把当前半径固化为新的基线（LockRadii / CaptureBaseline）
type ParticleField struct {
	angles   []float64 // 当前极角（弧度）
	radii    []float64 // 当前半径（像素）
	baseline []float64 // 基线半径（扩张的参照原点）
	phases   []float64 // 呼吸相位偏移，打散粒子的同步感

	centerX float64
	centerY float64
	spin    float64 // 公转角速度（弧度/秒）
	clr     color.RGBA
	alpha   float64
	time    float64
}

// NewParticleField 创建围绕 (cx, cy) 的环形粒子场
// count 为粒子数量，baseRadius 为基准环半径
func NewParticleField(count int, cx, cy, baseRadius float64, clr color.RGBA) *ParticleField {
	f := &ParticleField{
		angles:   make([]float64, count),
		radii:    make([]float64, count),
		baseline: make([]float64, count),
		phases:   make([]float64, count),
		centerX:  cx,
		centerY:  cy,
		spin:     0.25,
		clr:      clr,
		alpha:    1.0,
	}
	for i := 0; i < count; i++ {
		f.angles[i] = float64(i) / float64(count) * 2 * math.Pi
		// 半径加入少量噪声，避免完美圆环的机械感
		r := baseRadius * (0.9 + rand.Float64()*0.2)
		f.radii[i] = r
		f.baseline[i] = r
		f.phases[i] = rand.Float64() * 2 * math.Pi
	}
	return f
}

// Update 推进公转和呼吸
// 每帧调用一次，deltaTime 为秒
func (f *ParticleField) Update(deltaTime float64) {
	f.time += deltaTime
	for i := range f.angles {
		f.angles[i] += f.spin * deltaTime
	}
}

// SetExpansion 按扩张系数改写全部半径
// factor=1 回到基线，factor=3 为基线的三倍；用于爆散/退场的缓动扩张
func (f *ParticleField) SetExpansion(factor float64) {
	for i := range f.radii {
		f.radii[i] = f.baseline[i] * factor
	}
}

// LockRadii 把半径固化为基线的 multiple 倍，并把结果设为新基线
// 爆散结束时调用一次，之后的呼吸与扩张都以锁定值为原点
func (f *ParticleField) LockRadii(multiple float64) {
	for i := range f.radii {
		f.baseline[i] *= multiple
		f.radii[i] = f.baseline[i]
	}
}

// CaptureBaseline 把当前半径捕获为新基线
// 阶段移交时调用，下一阶段的扩张以当前视觉状态为起点
func (f *ParticleField) CaptureBaseline() {
	copy(f.baseline, f.radii)
}

// SetAlpha 设置整场粒子的透明度 [0,1]
func (f *ParticleField) SetAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	f.alpha = alpha
}

// SetSpin 设置公转角速度（弧度/秒）
func (f *ParticleField) SetSpin(spin float64) {
	f.spin = spin
}

// Radius 返回第 i 个粒子的当前半径（测试与时间线断言用）
func (f *ParticleField) Radius(i int) float64 {
	return f.radii[i]
}

// BaselineRadius 返回第 i 个粒子的基线半径
func (f *ParticleField) BaselineRadius(i int) float64 {
	return f.baseline[i]
}

// Count 返回粒子数量
func (f *ParticleField) Count() int {
	return len(f.angles)
}

// Draw 绘制粒子场
// 呼吸只影响绘制尺寸，不污染半径缓冲
func (f *ParticleField) Draw(screen *ebiten.Image) {
	if f.alpha <= 0 {
		return
	}
	a := uint8(f.alpha * 255)
	clr := color.RGBA{R: f.clr.R, G: f.clr.G, B: f.clr.B, A: a}
	for i := range f.angles {
		x := f.centerX + math.Cos(f.angles[i])*f.radii[i]
		y := f.centerY + math.Sin(f.angles[i])*f.radii[i]
		size := 1.4 + 0.6*math.Sin(f.time*1.8+f.phases[i])
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(size), clr, true)
	}
}
