package scenes

import (
	"image/color"
	"log"
	"math"

	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/game"
	"github.com/gonewx/exhibit/pkg/timeline"
	"github.com/gonewx/exhibit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const passageTitle = "THE GATED PASSAGE"

// PassageScene 闸门走廊舞台
//
// 三条并行的时间轴，互不依赖：
//   - 闸门：延时后按缓动滑开，滑动起步的小窗口内触发一次开门音效
//   - 标题：延时后线性淡入，叠加正弦漂浮
//   - 闸门判定：摄像机深度越过阈值即置位推进标志（一次性）
//
// 环境低鸣在场景创建时启动，Dispose 时停止。
type PassageScene struct {
	store *game.ProgressStore
	input *game.InputManager
	audio *game.AudioManager

	camera *game.Camera

	// Draw 读取 Update 留下的帧快照，不自己推时间
	elapsed float64

	doorSoundPlayed timeline.Once
	gateCrossed     timeline.Once

	titleFace *text.GoTextFace
}

// NewPassageScene 创建闸门走廊场景
func NewPassageScene(store *game.ProgressStore, input *game.InputManager, audio *game.AudioManager, resources *game.ResourceManager) *PassageScene {
	s := &PassageScene{
		store:  store,
		input:  input,
		audio:  audio,
		camera: game.NewCamera(),
	}

	face, err := resources.LoadFont("assets/fonts/display.ttf", config.PassageTitleFontSize)
	if err != nil {
		log.Printf("[PassageScene] Title font unavailable, using fallback text: %v", err)
	} else {
		s.titleFace = face
	}

	audio.PlayHumStart()
	return s
}

// doorProgress 返回闸门滑动进度 [0,1]（延时未到为 0）
func (s *PassageScene) doorProgress() float64 {
	return utils.Clamp01((s.elapsed - config.PassageDoorDelay) / config.PassageDoorDuration)
}

// titleAlpha 返回标题透明度 [0,1]（延时未到为 0）
func (s *PassageScene) titleAlpha() float64 {
	return utils.Clamp01((s.elapsed - config.PassageTitleDelay) / config.PassageTitleFadeDuration)
}

// Update 推进一帧：闸门音效窗口、摄像机行走、深度闸门判定
func (s *PassageScene) Update(elapsed, deltaTime float64) {
	s.elapsed = elapsed

	// 开门音效不在滑动入口触发，而在起步后的小窗口内，
	// 与可感知的声音起振对齐
	p := s.doorProgress()
	if p >= config.PassageDoorSoundWindowStart && p <= config.PassageDoorSoundWindowEnd {
		s.doorSoundPlayed.Do(s.audio.PlayDoorOpen)
	}

	s.camera.Advance(s.input.Forward(), config.PassageWalkSpeed, deltaTime)
	s.camera.Turn(s.input.Yaw(), s.input.Pitch(), 1.2, deltaTime)

	if s.camera.Depth >= config.PassageDepthThreshold {
		s.gateCrossed.Do(func() {
			s.store.SetCanAdvance(true)
		})
	}
}

// Dispose 停止环境低鸣
func (s *PassageScene) Dispose() {
	s.audio.PlayHumStop()
}

// Camera 返回漫游视点（闸门判定和测试读取深度）
func (s *PassageScene) Camera() *game.Camera {
	return s.camera
}

// GateCrossed 返回深度闸门是否已经触发过
func (s *PassageScene) GateCrossed() bool {
	return s.gateCrossed.Fired()
}

// Draw 渲染走廊、闸门与标题
func (s *PassageScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x12, B: 0x17, A: 0xff})

	s.drawCorridor(screen)
	s.drawDoors(screen)
	s.drawTitle(screen)
}

// drawCorridor 绘制走廊透视线
// 深度推进表现为透视线间隔的相位滚动，转向表现为灭点偏移
func (s *PassageScene) drawCorridor(screen *ebiten.Image) {
	vanishX := float32(config.WindowWidth/2 + s.camera.Yaw*160)
	vanishY := float32(config.WindowHeight/2 + s.camera.Pitch*90)
	lineColor := color.RGBA{R: 0x2a, G: 0x2f, B: 0x3c, A: 0xff}

	// 四角到灭点的棱线
	corners := [][2]float32{
		{0, 0}, {config.WindowWidth, 0},
		{0, config.WindowHeight}, {config.WindowWidth, config.WindowHeight},
	}
	for _, c := range corners {
		vector.StrokeLine(screen, c[0], c[1], vanishX, vanishY, 1.5, lineColor, true)
	}

	// 沿深度滚动的门框截面：深度相位决定各截面离灭点的远近
	phase := math.Mod(s.camera.Depth, 8) / 8
	for i := 0; i < 6; i++ {
		t := (float64(i) + 1 - phase) / 6
		if t <= 0.05 {
			continue
		}
		halfW := float32(t * config.WindowWidth / 2)
		halfH := float32(t * config.WindowHeight / 2)
		frame := color.RGBA{R: 0x2a, G: 0x2f, B: 0x3c, A: uint8(80 + 140*t)}
		vector.StrokeRect(screen, vanishX-halfW, vanishY-halfH, halfW*2, halfH*2, 1.5, frame, true)
	}
}

// drawDoors 绘制对开闸门
// 两扇门板从中缝向两侧滑开，位移按 EaseOutCubic 缓动
func (s *PassageScene) drawDoors(screen *ebiten.Image) {
	slide := utils.EaseOutCubic(s.doorProgress()) * config.PassageDoorSlideDistance

	doorColor := color.RGBA{R: 0x3c, G: 0x38, B: 0x32, A: 0xff}
	edgeColor := color.RGBA{R: 0xe8, G: 0xdc, B: 0xb0, A: 0x60}
	top := float32(config.WindowHeight/2 - config.PassageDoorHeight/2)

	// 左门板
	leftX := float32(config.WindowWidth/2 - config.PassageDoorWidth - slide)
	vector.DrawFilledRect(screen, leftX, top,
		config.PassageDoorWidth, config.PassageDoorHeight, doorColor, false)
	vector.StrokeLine(screen, leftX+config.PassageDoorWidth, top,
		leftX+config.PassageDoorWidth, top+config.PassageDoorHeight, 2, edgeColor, true)

	// 右门板
	rightX := float32(config.WindowWidth/2 + slide)
	vector.DrawFilledRect(screen, rightX, top,
		config.PassageDoorWidth, config.PassageDoorHeight, doorColor, false)
	vector.StrokeLine(screen, rightX, top,
		rightX, top+config.PassageDoorHeight, 2, edgeColor, true)
}

// drawTitle 绘制漂浮标题，字体缺失时降级为调试字体
func (s *PassageScene) drawTitle(screen *ebiten.Image) {
	alpha := s.titleAlpha()
	if alpha <= 0 {
		return
	}
	floatY := math.Sin(s.elapsed*config.PassageTitleFloatFreq) * config.PassageTitleFloatAmp

	if s.titleFace == nil {
		ebitenutil.DebugPrintAt(screen, passageTitle,
			config.WindowWidth/2-len(passageTitle)*3, int(config.PassageTitleY+floatY))
		return
	}

	w, _ := text.Measure(passageTitle, s.titleFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.WindowWidth/2-w/2, config.PassageTitleY+floatY)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, passageTitle, s.titleFace, op)
}
