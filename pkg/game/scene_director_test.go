package game

import (
	"math"
	"testing"

	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 用于测试的场景实现
type MockScene struct {
	updateCount  int
	disposeCount int
	lastElapsed  float64
	onUpdate     func()
}

func (m *MockScene) Update(elapsed, deltaTime float64) {
	m.updateCount++
	m.lastElapsed = elapsed
	if m.onUpdate != nil {
		m.onUpdate()
	}
}

func (m *MockScene) Draw(screen *ebiten.Image) {}

func (m *MockScene) Dispose() {
	m.disposeCount++
}

// newTestDirector 创建不带输入和 HUD 的编排器（测试只关心切换协议）
func newTestDirector(store *ProgressStore) *SceneDirector {
	return NewSceneDirector(store, nil, nil)
}

// TestSceneDirectorSwitchTo 测试基本切换：索引更新、场景更换
func TestSceneDirectorSwitchTo(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)

	atrium := &MockScene{}
	sd.Register(types.StageAtrium, atrium)

	sd.SwitchTo(types.StageAtrium)

	if store.CurrentStage() != types.StageAtrium {
		t.Errorf("Expected stage %v, got %v", types.StageAtrium, store.CurrentStage())
	}
	if sd.CurrentScene() != Scene(atrium) {
		t.Error("Expected atrium scene to be active")
	}
}

// TestSceneDirectorDisposeOnSwitch 测试切换时旧场景被销毁
func TestSceneDirectorDisposeOnSwitch(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)

	first := &MockScene{}
	second := &MockScene{}
	sd.Register(types.StageAtrium, first)
	sd.Register(types.StagePassage, second)

	sd.SwitchTo(types.StageAtrium)
	sd.SwitchTo(types.StagePassage)

	if first.disposeCount != 1 {
		t.Errorf("Expected old scene disposed once, got %d", first.disposeCount)
	}
	if second.disposeCount != 0 {
		t.Errorf("New scene should not be disposed, got %d", second.disposeCount)
	}
	if sd.CurrentScene() != Scene(second) {
		t.Error("Expected passage scene to be active")
	}
}

// TestSceneDirectorDegradedSwitch 测试未注册舞台的降级切换
// 索引照常更新，活动场景为空白
func TestSceneDirectorDegradedSwitch(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)

	old := &MockScene{}
	sd.Register(types.StageAtrium, old)
	sd.SwitchTo(types.StageAtrium)

	sd.SwitchTo(types.StageGallery)

	if store.CurrentStage() != types.StageGallery {
		t.Errorf("Stage index must update even without a scene, got %v", store.CurrentStage())
	}
	if sd.CurrentScene() != nil {
		t.Error("Expected blank (nil) scene in degraded mode")
	}
	if old.disposeCount != 1 {
		t.Errorf("Old scene must still be disposed, got %d", old.disposeCount)
	}

	// 降级后的帧更新不应崩溃
	sd.Update(1.0/60)
}

// TestSceneDirectorFactoryBuildsLazily 测试工厂按需构建：
// 切换时才构建目标舞台，未访问的舞台不构建
func TestSceneDirectorFactoryBuildsLazily(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)

	built := 0
	sd.SetSceneFactory(func(stage types.StageID) Scene {
		built++
		return &MockScene{}
	})

	sd.SwitchTo(types.StageTerrace)
	if built != 1 {
		t.Fatalf("Expected factory called once, got %d", built)
	}
}

// TestSceneDirectorRevisitRebuildsScene 测试重访舞台时构建全新实例
// 外出场景已销毁，阶段状态（一次性标志、计时）不得跨实例复用
func TestSceneDirectorRevisitRebuildsScene(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)

	instances := []*MockScene{}
	sd.SetSceneFactory(func(stage types.StageID) Scene {
		m := &MockScene{}
		instances = append(instances, m)
		return m
	})

	sd.SwitchTo(types.StageTerrace)
	first := sd.CurrentScene()
	sd.SwitchTo(types.StageObservatory)
	sd.SwitchTo(types.StageTerrace)

	if len(instances) != 3 {
		t.Fatalf("Expected 3 factory builds (terrace, observatory, terrace), got %d", len(instances))
	}
	if sd.CurrentScene() == first {
		t.Error("Revisit must not reinstall the disposed instance")
	}
	if instances[0].disposeCount != 1 {
		t.Errorf("First terrace instance should be disposed once, got %d", instances[0].disposeCount)
	}
}

// TestSceneDirectorProgressGuard 测试推进防抖：快速重复触发只消费一次
func TestSceneDirectorProgressGuard(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)
	sd.SetSceneFactory(func(stage types.StageID) Scene { return &MockScene{} })

	store.SetStage(types.StageAtrium)
	sd.SwitchTo(types.StageAtrium)

	const dt = 1.0 / 60

	// 连续多帧保持 canAdvance 为真：防抖应保证只前进一个舞台
	for i := 0; i < 10; i++ {
		store.SetCanAdvance(true)
		sd.Update(dt)
	}
	if store.CurrentStage() != types.StagePassage {
		t.Errorf("Guard must allow exactly one advance, got stage %v", store.CurrentStage())
	}

	// 防抖解除前的触发依旧被拒绝
	store.SetCanAdvance(true)
	sd.Update(dt)
	if store.CurrentStage() != types.StagePassage {
		t.Errorf("Advance before settle delay must be rejected, got %v", store.CurrentStage())
	}

	// 走完安定延时后恢复接受推进
	frames := int(config.ProgressGuardSettleDelay/dt) + 2
	for i := 0; i < frames; i++ {
		sd.Update(dt)
	}
	store.SetCanAdvance(true)
	sd.Update(dt)
	if store.CurrentStage() != types.StageGallery {
		t.Errorf("Expected advance after settle delay, got %v", store.CurrentStage())
	}
}

// TestSceneDirectorFlagConsumedNextFrame 测试场景在自身更新中置位
// 推进标志时，本帧不换场景——终态画面还要被渲染一次，
// 标志到下一帧帧首才被消费
func TestSceneDirectorFlagConsumedNextFrame(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)
	sd.SetSceneFactory(func(stage types.StageID) Scene { return &MockScene{} })

	atrium := &MockScene{onUpdate: func() { store.SetCanAdvance(true) }}
	sd.Register(types.StageAtrium, atrium)
	sd.SwitchTo(types.StageAtrium)

	const dt = 1.0 / 60

	// 本帧：场景置位标志，帧内不得发生切换
	sd.Update(dt)
	if sd.CurrentScene() != Scene(atrium) {
		t.Fatal("Scene must stay active for its terminal frame after arming the flag")
	}
	if store.CurrentStage() != types.StageAtrium {
		t.Fatalf("Stage must not change in the arming frame, got %v", store.CurrentStage())
	}

	// 下一帧帧首消费标志并切换
	sd.Update(dt)
	if store.CurrentStage() != types.StagePassage {
		t.Errorf("Expected advance on the next frame, got %v", store.CurrentStage())
	}
	if sd.CurrentScene() == Scene(atrium) {
		t.Error("Expected the next stage's scene after consumption")
	}
}

// TestSceneDirectorLoadingResume 测试 loading 舞台的推进走续播分支
func TestSceneDirectorLoadingResume(t *testing.T) {
	manager := newTestGdataManager(t, "director_resume")

	// 预写入续播记录：上次走到 observatory
	seed := NewProgressStore(manager)
	seed.SetStage(types.StageObservatory)

	store := NewProgressStore(manager)
	sd := newTestDirector(store)
	sd.SetSceneFactory(func(stage types.StageID) Scene { return &MockScene{} })

	store.SetCanAdvance(true)
	sd.Update(1.0/60)

	if store.CurrentStage() != types.StageObservatory {
		t.Errorf("Expected resume to %v from loading, got %v", types.StageObservatory, store.CurrentStage())
	}
}

// TestSceneDirectorLoadingResumeDefault 测试无记录时从 loading 进入第一个内容舞台
func TestSceneDirectorLoadingResumeDefault(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)
	sd.SetSceneFactory(func(stage types.StageID) Scene { return &MockScene{} })

	store.SetCanAdvance(true)
	sd.Update(1.0/60)

	if store.CurrentStage() != types.FirstContentStage {
		t.Errorf("Expected default resume to %v, got %v", types.FirstContentStage, store.CurrentStage())
	}
}

// TestSceneDirectorLastStageAdvance 测试最后一个舞台上的推进被消费但不切换
func TestSceneDirectorLastStageAdvance(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)

	finale := &MockScene{}
	sd.Register(types.StageFinale, finale)
	sd.SwitchTo(types.StageFinale)

	store.SetCanAdvance(true)
	sd.Update(1.0/60)

	if store.CurrentStage() != types.StageFinale {
		t.Errorf("Stage should stay at finale, got %v", store.CurrentStage())
	}
	if store.CanAdvance() {
		t.Error("Advance flag must be consumed even at last stage")
	}
	if finale.disposeCount != 0 {
		t.Errorf("Finale scene must not be disposed, got %d", finale.disposeCount)
	}
}

// TestSceneDirectorUpdateOrder 测试活动场景收到帧更新
func TestSceneDirectorUpdateOrder(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)

	scene := &MockScene{}
	sd.Register(types.StageAtrium, scene)
	sd.SwitchTo(types.StageAtrium)

	const dt = 1.0 / 60
	sd.Update(dt)
	sd.Update(dt)

	if scene.updateCount != 2 {
		t.Errorf("Expected 2 scene updates, got %d", scene.updateCount)
	}
	if math.Abs(scene.lastElapsed-2*dt) > 1e-9 {
		t.Errorf("Expected scene-local elapsed %v, got %v", 2*dt, scene.lastElapsed)
	}
}

// TestSceneDirectorSceneClockResets 测试场景本地时钟在切换时归零
func TestSceneDirectorSceneClockResets(t *testing.T) {
	store := NewProgressStore(nil)
	sd := newTestDirector(store)

	first := &MockScene{}
	second := &MockScene{}
	sd.Register(types.StageAtrium, first)
	sd.Register(types.StagePassage, second)

	sd.SwitchTo(types.StageAtrium)
	for i := 0; i < 60; i++ {
		sd.Update(1.0 / 60)
	}
	if first.lastElapsed < 0.9 {
		t.Fatalf("Expected ~1s on first scene clock, got %v", first.lastElapsed)
	}

	sd.SwitchTo(types.StagePassage)
	sd.Update(1.0 / 60)
	if second.lastElapsed > 0.1 {
		t.Errorf("Expected scene clock reset after switch, got %v", second.lastElapsed)
	}
}
