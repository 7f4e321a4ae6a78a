package game

import (
	"image/color"
	"math"

	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/types"
	"github.com/gonewx/exhibit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HUD draws the persistent overlay: one indicator dot per content stage plus
// the "next" arrow button in the lower right corner. Clicking the arrow arms
// the advance flag on the progress store; holding the dots row is purely
// informational.
//
// The HUD stays hidden during the loading stage.
type HUD struct {
	store *ProgressStore
	input *InputManager

	arrowPulse float64
}

// NewHUD creates the overlay bound to the given progress store and input
// manager. The input manager receives a forward tap when the arrow is
// clicked so the camera also nudges ahead in walking stages.
func NewHUD(store *ProgressStore, input *InputManager) *HUD {
	return &HUD{
		store: store,
		input: input,
	}
}

// Update 处理箭头按钮点击并推进脉动动画
func (h *HUD) Update(deltaTime float64) {
	h.arrowPulse += deltaTime
	if h.store.CurrentStage() == types.StageLoading {
		return
	}
	pressed, mx, my := utils.IsJustTouchedOrClicked()
	if !pressed {
		return
	}
	// 触摸设备上扩大点按判定半径
	hitRadius := float64(config.HUDNextButtonRadius)
	if utils.IsMobile() {
		hitRadius *= 1.4
	}
	dx := float64(mx) - config.HUDNextButtonX
	dy := float64(my) - config.HUDNextButtonY
	if dx*dx+dy*dy > hitRadius*hitRadius {
		return
	}
	h.store.SetCanAdvance(true)
	h.input.TapForward()
}

// Draw 绘制阶段指示点与下一步按钮
func (h *HUD) Draw(screen *ebiten.Image) {
	current := h.store.CurrentStage()
	if current == types.StageLoading {
		return
	}

	// 指示点行：第一个内容阶段到最终阶段，各一个点
	count := int(types.StageCount) - int(types.FirstContentStage)
	rowWidth := float64(count-1) * config.HUDIndicatorSpacing
	startX := config.WindowWidth/2 - rowWidth/2
	for i := 0; i < count; i++ {
		stage := types.FirstContentStage + types.StageID(i)
		x := startX + float64(i)*config.HUDIndicatorSpacing
		clr := color.RGBA{R: 0x50, G: 0x58, B: 0x66, A: 0xff}
		radius := config.HUDIndicatorRadius
		switch {
		case stage == current:
			clr = color.RGBA{R: 0xe8, G: 0xdc, B: 0xb0, A: 0xff}
			radius += 1.5
		case h.store.Visited(stage):
			clr = color.RGBA{R: 0x9a, G: 0x96, B: 0x88, A: 0xff}
		}
		vector.DrawFilledCircle(screen, float32(x), float32(config.HUDIndicatorY), float32(radius), clr, true)
	}

	h.drawNextButton(screen, current)
}

// drawNextButton 绘制右下角的前进箭头
// 最后一个阶段不再绘制（没有下一步可走）
func (h *HUD) drawNextButton(screen *ebiten.Image, current types.StageID) {
	if current >= types.StageCount-1 {
		return
	}

	cx := float32(config.HUDNextButtonX)
	cy := float32(config.HUDNextButtonY)
	pulse := 1 + 0.08*math.Sin(h.arrowPulse*2.4)
	radius := float32(config.HUDNextButtonRadius * pulse)

	ring := color.RGBA{R: 0xe8, G: 0xdc, B: 0xb0, A: 0xc0}
	vector.StrokeCircle(screen, cx, cy, radius, 2, ring, true)

	// 箭头本体：三条短线段组成的右向箭
	arm := float32(config.HUDNextButtonRadius * 0.45)
	arrow := color.RGBA{R: 0xf2, G: 0xea, B: 0xd0, A: 0xff}
	vector.StrokeLine(screen, cx-arm, cy, cx+arm, cy, 2.5, arrow, true)
	vector.StrokeLine(screen, cx+arm, cy, cx+arm*0.2, cy-arm*0.7, 2.5, arrow, true)
	vector.StrokeLine(screen, cx+arm, cy, cx+arm*0.2, cy+arm*0.7, 2.5, arrow, true)
}
