package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one stage of the walkthrough (intro, passage, panel...).
// Each scene owns its visual content and an internal phase timeline.
type Scene interface {
	// Update advances the scene's timeline.
	// elapsed is the time since this scene became active, deltaTime the
	// time since the previous update, both in seconds.
	Update(elapsed, deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Disposable 是一个可选接口，场景切换时用于释放资源
//
// 实现此接口的场景会在被替换前收到 Dispose() 调用。
// Dispose 必须：
//   - 取消所有挂起的一次性延时（保证已销毁场景不再改写状态）
//   - 释放场景创建的缓冲和覆盖元素
//   - 停止场景启动的持续音效（如环境低鸣）
type Disposable interface {
	Dispose()
}
