package game

import (
	"image/color"
	"log"

	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/timeline"
	"github.com/gonewx/exhibit/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneFactory 场景工厂函数类型
// 按舞台索引惰性构建场景，避免启动时构建全部舞台
type SceneFactory func(stage types.StageID) Scene

// SceneDirector 漫游的顶层编排器
//
// 职责：
//   - 持有场景注册表和当前活动场景
//   - 执行切换协议：销毁旧场景 → 安装新场景 → 更新 ProgressStore → 淡场遮罩
//   - 每帧轮询推进标志，带防抖地消费一次推进意图
//
// 帧内顺序（承载正确性，不可调换）：
// 推进检查 → 输入采样 → 场景更新。场景在本帧置位的 canAdvance
// 要等到下一帧帧首才会被消费，保证终态画面先被渲染一次。
type SceneDirector struct {
	store *ProgressStore
	input *InputManager
	hud   *HUD

	scenes       map[types.StageID]Scene
	sceneFactory SceneFactory
	currentScene Scene
	currentStage types.StageID

	// 推进防抖：退出条件和帧轮询是解耦的，场景置位 canAdvance 后
	// 可能还会渲染若干帧；没有防抖，一次慢切换会被触发两次
	guardEngaged bool
	guardDelay   timeline.Delay

	// 淡场遮罩：切换瞬间压黑再放开，掩盖内容替换的突变
	fadeTimer float64

	// 场景本地时钟：安装时归零，场景拿到的 elapsed 从进场起算
	sceneElapsed float64
}

// NewSceneDirector 创建场景编排器
// store、input、hud 由应用装配层显式注入，不使用全局单例
func NewSceneDirector(store *ProgressStore, input *InputManager, hud *HUD) *SceneDirector {
	return &SceneDirector{
		store:  store,
		input:  input,
		hud:    hud,
		scenes: make(map[types.StageID]Scene),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sd *SceneDirector) SetSceneFactory(factory SceneFactory) {
	sd.sceneFactory = factory
}

// Register 预注册一个已构建的场景实例
func (sd *SceneDirector) Register(stage types.StageID, scene Scene) {
	sd.scenes[stage] = scene
}

// CurrentScene 返回当前活动的场景，没有则返回 nil
func (sd *SceneDirector) CurrentScene() Scene {
	return sd.currentScene
}

// SwitchTo 切换到指定舞台
// 越界索引静默忽略；未注册舞台进入降级模式（见 install）
func (sd *SceneDirector) SwitchTo(stage types.StageID) {
	if !stage.Valid() {
		return
	}
	sd.store.SetStage(stage)
	sd.install(stage)
}

// install 执行切换协议：销毁旧场景、安装新场景、启动淡场遮罩
//
// 目标场景未注册且工厂无法构建时进入降级模式：
// 记日志、活动场景置空，索引已照常更新（指示器保持正确）。
// 这是刻意的降级，不是错误。
func (sd *SceneDirector) install(stage types.StageID) {
	// 外出场景销毁后同时从注册表移除：阶段状态不跨场景实例复用，
	// 重访同一舞台时由工厂构建全新实例
	if old, isDisposable := sd.currentScene.(Disposable); isDisposable {
		old.Dispose()
	}
	if sd.currentScene != nil {
		delete(sd.scenes, sd.currentStage)
	}

	next, ok := sd.scenes[stage]
	if !ok && sd.sceneFactory != nil {
		if built := sd.sceneFactory(stage); built != nil {
			sd.scenes[stage] = built
			next, ok = built, true
		}
	}

	if !ok {
		log.Printf("[SceneDirector] no scene built for stage %q, showing blank", stage)
		sd.currentScene = nil
	} else {
		sd.currentScene = next
	}

	sd.currentStage = stage
	sd.fadeTimer = config.FadeGuardDuration
	sd.sceneElapsed = 0
	log.Printf("[SceneDirector] now on stage %d (%s)", stage, stage)
}

// EvictInactiveScenes 丢弃除当前舞台外的全部场景缓存
// 配置热加载后调用：旧参数构建的场景作废，下次进入时按新配置重建
func (sd *SceneDirector) EvictInactiveScenes() {
	current := sd.store.CurrentStage()
	for stage, scene := range sd.scenes {
		if stage == current {
			continue
		}
		if d, ok := scene.(Disposable); ok {
			d.Dispose()
		}
		delete(sd.scenes, stage)
	}
}

// Update 推进一帧
// 顺序：挂起延时 → 推进检查 → 输入 → 活动场景
//
// 推进检查放在帧首：Ebitengine 的 Draw 在同一 tick 的 Update 之后，
// 场景在第 N 帧置位的标志要先让第 N 帧渲染过终态画面，
// 到第 N+1 帧的帧首才被消费。帧尾消费会在终态渲染前就换掉场景。
func (sd *SceneDirector) Update(deltaTime float64) {
	sd.guardDelay.Update(deltaTime)
	sd.checkProgress()

	if sd.input != nil {
		sd.input.Update(deltaTime)
	}
	if sd.hud != nil {
		sd.hud.Update(deltaTime)
	}

	sd.sceneElapsed += deltaTime
	if sd.currentScene != nil {
		sd.currentScene.Update(sd.sceneElapsed, deltaTime)
	}

	if sd.fadeTimer > 0 {
		sd.fadeTimer -= deltaTime
		if sd.fadeTimer < 0 {
			sd.fadeTimer = 0
		}
	}
}

// checkProgress 每帧消费一次推进意图
//
// canAdvance 为真且防抖空闲时：
//   - 还在 loading 舞台 → 解析续播索引并跳转（开场结束回到上次位置）
//   - 其他舞台 → 前进到下一个舞台
//
// 防抖在固定的安定延时后解除，之后才会接受新的推进。
func (sd *SceneDirector) checkProgress() {
	if !sd.store.CanAdvance() || sd.guardEngaged {
		return
	}

	sd.guardEngaged = true
	sd.store.SetCanAdvance(false)

	if sd.store.CurrentStage() == types.StageLoading {
		sd.SwitchTo(sd.store.ResumeStage())
	} else if sd.store.AdvanceToNext() {
		// 索引已由 AdvanceToNext 更新，这里只装载对应场景
		sd.install(sd.store.CurrentStage())
	}

	sd.guardDelay.Start(config.ProgressGuardSettleDelay, func() {
		sd.guardEngaged = false
	})
}

// Draw 渲染当前帧：活动场景 → HUD → 淡场遮罩
func (sd *SceneDirector) Draw(screen *ebiten.Image) {
	if sd.currentScene != nil {
		sd.currentScene.Draw(screen)
	}
	if sd.hud != nil {
		sd.hud.Draw(screen)
	}
	sd.drawFadeGuard(screen)
}

// drawFadeGuard 绘制淡场遮罩
// 纯副作用：alpha 随剩余时间线性衰减，无返回值
func (sd *SceneDirector) drawFadeGuard(screen *ebiten.Image) {
	if sd.fadeTimer <= 0 {
		return
	}
	alpha := sd.fadeTimer / config.FadeGuardDuration
	clr := color.RGBA{A: uint8(alpha * 255)}
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.WindowHeight, clr, false)
}
