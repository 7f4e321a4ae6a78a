package game

import (
	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/timeline"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputManager 漫游输入采集器
//
// 把键盘状态折算成持续刷新的运动意图：前进强度 (-1..1) 和
// 水平/垂直转向意图。场景只读这些值，不直接碰设备。
//
// 场景可以临时抑制输入（Disable/Enable），用于开场等不接受
// 操作的阶段。抑制期间所有读数为零。
//
// TapForward 支持离散触发（HUD 箭头点按）：注入一个前进脉冲，
// 并用可取消的延时在短时间后归零——延时挂在管理器自身上，
// 不随场景销毁，无失效回调风险。
type InputManager struct {
	forward float64
	yaw     float64
	pitch   float64

	enabled    bool
	tapImpulse float64
	tapReset   timeline.Delay
}

// NewInputManager 创建输入采集器（默认启用）
func NewInputManager() *InputManager {
	return &InputManager{enabled: true}
}

// Update 采样设备状态并刷新运动意图
// 必须在活动场景更新之前调用，场景在同一帧消费本帧的输入
func (im *InputManager) Update(deltaTime float64) {
	im.tapReset.Update(deltaTime)

	if !im.enabled {
		im.forward, im.yaw, im.pitch = 0, 0, 0
		return
	}

	im.forward = im.tapImpulse
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		im.forward = 1
	} else if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		im.forward = -1
	}

	im.yaw = 0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		im.yaw = -1
	} else if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		im.yaw = 1
	}

	im.pitch = 0
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		im.pitch = 1
	} else if ebiten.IsKeyPressed(ebiten.KeyE) {
		im.pitch = -1
	}
}

// Forward 返回前进强度 (-1..1)
func (im *InputManager) Forward() float64 {
	return im.forward
}

// Yaw 返回水平转向意图 (-1..1)
func (im *InputManager) Yaw() float64 {
	return im.yaw
}

// Pitch 返回垂直转向意图 (-1..1)
func (im *InputManager) Pitch() float64 {
	return im.pitch
}

// TapForward 注入一个离散的前进脉冲
// 脉冲在固定延时后自动归零，模拟"点一下走一步"
func (im *InputManager) TapForward() {
	if !im.enabled {
		return
	}
	im.tapImpulse = config.InputTapImpulse
	im.tapReset.Start(config.InputTapResetDelay, func() {
		im.tapImpulse = 0
	})
}

// Disable 抑制输入，所有读数归零
func (im *InputManager) Disable() {
	im.enabled = false
	im.forward, im.yaw, im.pitch = 0, 0, 0
	im.tapImpulse = 0
	im.tapReset.Cancel()
}

// Enable 恢复输入
func (im *InputManager) Enable() {
	im.enabled = true
}

// Enabled 返回输入是否处于启用状态
func (im *InputManager) Enabled() bool {
	return im.enabled
}
