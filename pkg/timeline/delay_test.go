package timeline

import "testing"

// TestDelayFiresOnce 测试延时到期后恰好触发一次
func TestDelayFiresOnce(t *testing.T) {
	var d Delay
	count := 0
	d.Start(0.5, func() { count++ })

	for i := 0; i < 60; i++ {
		d.Update(0.1)
	}

	if count != 1 {
		t.Errorf("回调触发了 %d 次, 期望 1 次", count)
	}
	if d.Pending() {
		t.Error("触发后 Pending() = true, 期望 false")
	}
}

// TestDelayNotFiredEarly 测试延时未到期不触发
func TestDelayNotFiredEarly(t *testing.T) {
	var d Delay
	fired := false
	d.Start(1.0, func() { fired = true })

	d.Update(0.4)
	d.Update(0.4)

	if fired {
		t.Error("延时未到期就触发了")
	}
	if !d.Pending() {
		t.Error("Pending() = false, 期望 true")
	}
}

// TestDelayCancel 测试取消后的延时永远不会触发
//
// 这是场景销毁安全性的关键：场景 Dispose 时取消所有挂起延时，
// 之后无论推进多久都不能再改写状态。
func TestDelayCancel(t *testing.T) {
	var d Delay
	fired := false
	d.Start(0.2, func() { fired = true })

	d.Cancel()
	for i := 0; i < 100; i++ {
		d.Update(0.1)
	}

	if fired {
		t.Error("取消后的延时仍然触发了")
	}
}

// TestDelayRestartOverridesPending 测试重新 Start 覆盖旧的挂起回调
func TestDelayRestartOverridesPending(t *testing.T) {
	var d Delay
	var firedOld, firedNew bool

	d.Start(0.2, func() { firedOld = true })
	d.Start(0.3, func() { firedNew = true })

	for i := 0; i < 10; i++ {
		d.Update(0.1)
	}

	if firedOld {
		t.Error("被覆盖的旧回调不应触发")
	}
	if !firedNew {
		t.Error("新回调应该触发")
	}
}
