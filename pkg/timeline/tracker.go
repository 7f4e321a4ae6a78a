// Package timeline 提供场景内部时间线的基础构件
//
// 每个场景的动画时间线是一个有限状态机：状态是命名的动画阶段（Phase），
// 每个阶段有自己的进入动作、逐帧更新和退出条件。本包提供：
//   - Tracker: 阶段计时器（进入新阶段时归零）
//   - Once: 单次触发保护（防止副作用每帧重复触发）
//   - Oscillator: 共享脉冲振荡器（正弦采样 + 过零计数）
//   - Delay: 可取消的一次性延时（帧驱动，无 goroutine）
package timeline

// Phase 场景局部的阶段标识
// 每个场景定义自己的封闭阶段枚举，类型别名仅用于签名可读性
type Phase int

// Tracker 阶段状态机的计时核心
//
// 职责：
//   - 记录当前阶段和进入该阶段以来经过的秒数
//   - Advance 切换阶段时将计时器归零
//
// 生命周期与场景实例绑定：场景销毁时一起丢弃，不跨场景复用。
type Tracker struct {
	phase   Phase
	elapsed float64
}

// NewTracker 创建处于初始阶段的 Tracker
func NewTracker(initial Phase) *Tracker {
	return &Tracker{phase: initial}
}

// Phase 返回当前阶段
func (t *Tracker) Phase() Phase {
	return t.phase
}

// Elapsed 返回进入当前阶段以来经过的秒数
func (t *Tracker) Elapsed() float64 {
	return t.elapsed
}

// Tick 累加阶段内经过时间
// 每帧调用一次，deltaTime 为秒
func (t *Tracker) Tick(deltaTime float64) {
	t.elapsed += deltaTime
}

// Advance 切换到下一个阶段并将阶段计时器归零
func (t *Tracker) Advance(next Phase) {
	t.phase = next
	t.elapsed = 0
}

// Once 单次触发保护
//
// 时间线里的副作用（播放音效、锁定数值）会在每帧被求值，
// Once 保证它们在一个阶段实例内最多执行一次。
type Once struct {
	fired bool
}

// Do 如果尚未触发过则执行 fn 并标记已触发
// 返回本次调用是否真正执行了 fn
func (o *Once) Do(fn func()) bool {
	if o.fired {
		return false
	}
	o.fired = true
	if fn != nil {
		fn()
	}
	return true
}

// Fired 返回是否已触发
func (o *Once) Fired() bool {
	return o.fired
}

// Reset 复位触发标记（进入新阶段时由场景显式调用）
func (o *Once) Reset() {
	o.fired = false
}
