package entities

import (
	"image/color"
	"math"
	"testing"
)

func newTestField(count int) *ParticleField {
	return NewParticleField(count, 640, 360, 100, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

// TestParticleFieldExpansion 测试扩张系数相对基线生效
func TestParticleFieldExpansion(t *testing.T) {
	f := newTestField(16)

	base := f.BaselineRadius(0)
	f.SetExpansion(3.0)
	if got := f.Radius(0); math.Abs(got-base*3) > 1e-9 {
		t.Errorf("SetExpansion(3) 后 Radius(0) = %v, 期望 %v", got, base*3)
	}

	// 回到 1 倍应恢复基线
	f.SetExpansion(1.0)
	if got := f.Radius(0); math.Abs(got-base) > 1e-9 {
		t.Errorf("SetExpansion(1) 后 Radius(0) = %v, 期望基线 %v", got, base)
	}
}

// TestParticleFieldLockRadii 测试锁定后基线被固化为指定倍数
func TestParticleFieldLockRadii(t *testing.T) {
	f := newTestField(8)

	base := f.BaselineRadius(2)
	f.LockRadii(3.0)

	if got := f.BaselineRadius(2); math.Abs(got-base*3) > 1e-9 {
		t.Errorf("LockRadii(3) 后基线 = %v, 期望 %v", got, base*3)
	}
	// 锁定之后的扩张以新基线为原点
	f.SetExpansion(2.0)
	if got := f.Radius(2); math.Abs(got-base*6) > 1e-9 {
		t.Errorf("锁定后 SetExpansion(2) = %v, 期望 %v", got, base*6)
	}
}

// TestParticleFieldCaptureBaseline 测试捕获当前半径为新基线
func TestParticleFieldCaptureBaseline(t *testing.T) {
	f := newTestField(8)

	f.SetExpansion(1.5)
	captured := f.Radius(0)
	f.CaptureBaseline()

	if got := f.BaselineRadius(0); math.Abs(got-captured) > 1e-9 {
		t.Errorf("CaptureBaseline 后基线 = %v, 期望 %v", got, captured)
	}
}

// TestParticleFieldBuffersFixedSize 测试缓冲容量固定，更新不改变数量
func TestParticleFieldBuffersFixedSize(t *testing.T) {
	f := newTestField(32)
	for i := 0; i < 300; i++ {
		f.Update(1.0 / 60.0)
	}
	if f.Count() != 32 {
		t.Errorf("Count() = %d, 期望 32", f.Count())
	}
}
