package timeline

// Delay 可取消的一次性延时
//
// 用于帧驱动模型下的"稍后执行一次"副作用（触发后复位输入向量、
// 场景切换后解除推进防抖）。不使用 goroutine 或 time.AfterFunc：
// 回调只会在所有者的 Update 里触发，取消后永远不会触发。
//
// 所有者负责：
//   - 每帧调用 Update(deltaTime)
//   - 在 Dispose 时调用 Cancel，保证已销毁场景的挂起延时不会改写状态
type Delay struct {
	remaining float64
	fn        func()
	active    bool
}

// Start 启动延时：seconds 秒后调用 fn
// 已有挂起的延时会被新的覆盖（旧回调不再触发）
func (d *Delay) Start(seconds float64, fn func()) {
	d.remaining = seconds
	d.fn = fn
	d.active = true
}

// Update 推进延时，到期时触发回调（恰好一次）
// 每帧调用一次，deltaTime 为秒
func (d *Delay) Update(deltaTime float64) {
	if !d.active {
		return
	}
	d.remaining -= deltaTime
	if d.remaining > 0 {
		return
	}
	fn := d.fn
	d.active = false
	d.fn = nil
	if fn != nil {
		fn()
	}
}

// Cancel 取消挂起的延时，回调不会再触发
func (d *Delay) Cancel() {
	d.active = false
	d.fn = nil
}

// Pending 返回是否有延时在等待触发
func (d *Delay) Pending() bool {
	return d.active
}
