// Package app 提供漫游应用的核心包装器
//
// 该包将装配逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/embedded"
	"github.com/gonewx/exhibit/pkg/game"
	"github.com/gonewx/exhibit/pkg/scenes"
	"github.com/gonewx/exhibit/pkg/types"
	"github.com/gonewx/exhibit/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 开发期可热改的舞台配置：嵌入资源是权威来源，
// 工作目录下存在同名文件时它优先并参与热加载
const stagesConfigPath = "assets/config/stages.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Stage 指定启动舞台名称（如 "gallery"），为空则走正常开场
	Stage string
	// SkipIntro 跳过开场时间线，直接进入续播舞台
	SkipIntro bool
}

// App 是漫游应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	director *game.SceneDirector
	settings *game.SettingsManager
	stages   *config.StagesConfig

	verbose bool

	// 配置热加载：watcher goroutine 只置位标志，
	// 重新解析和场景淘汰都发生在帧循环内
	watcher       *config.Watcher
	reloadPending atomic.Bool

	// 退出全屏后需要等待几帧才能正确恢复窗口大小
	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 创建并装配漫游应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 初始化持久化存储：失败不是致命错误，进入降级内存模式
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: "exhibit"})
	if err != nil {
		log.Printf("[App] Warning: persistent storage unavailable: %v (progress will not survive restarts)", err)
		gdataManager = nil
	}

	audioContext := audio.NewContext(48000)
	resourceManager := game.NewResourceManager(audioContext)

	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: failed to load settings: %v", err)
	}
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	// 舞台配置：嵌入的 stages.yaml 是权威来源
	stagesConfig, err := loadStagesConfig()
	if err != nil {
		// 面板舞台会降级为空白，开场和走廊不受影响
		log.Printf("[App] Warning: stages config unavailable: %v", err)
	}

	store := game.NewProgressStore(gdataManager)
	input := game.NewInputManager()
	hud := game.NewHUD(store, input)

	director := game.NewSceneDirector(store, input, hud)
	director.SetSceneFactory(scenes.NewFactory(scenes.Deps{
		Store:     store,
		Input:     input,
		Audio:     audioManager,
		Resources: resourceManager,
		Stages:    stagesConfig,
	}))

	// 舞台切换提示音；开场自身不提示
	store.SetStageChangedFunc(func(stage types.StageID) {
		if stage != types.StageLoading {
			audioManager.PlayChime()
		}
	})

	// 开场进度环汇报的就是这份队列的消化进度
	resourceManager.QueuePreload([]string{
		"assets/audio/hum.wav",
		"assets/audio/whoosh.wav",
		"assets/audio/door_open.wav",
		"assets/audio/chime.wav",
	})

	app := &App{
		director: director,
		settings: settingsManager,
		stages:   stagesConfig,
		verbose:  cfg.Verbose,
	}

	// 决定启动舞台
	switch {
	case cfg.Stage != "":
		stage, ok := types.StageByName(cfg.Stage)
		if !ok {
			return nil, fmt.Errorf("unknown stage %q", cfg.Stage)
		}
		log.Printf("[App] Starting directly at stage %s", stage)
		director.SwitchTo(stage)
	case cfg.SkipIntro:
		resume := store.ResumeStage()
		log.Printf("[App] Skipping intro, resuming at stage %s", resume)
		director.SwitchTo(resume)
	default:
		director.SwitchTo(types.StageLoading)
	}

	app.startConfigWatcher()
	return app, nil
}

// loadStagesConfig 读取并解析嵌入的舞台配置
func loadStagesConfig() (*config.StagesConfig, error) {
	data, err := embedded.ReadFile(stagesConfigPath)
	if err != nil {
		return nil, err
	}
	return config.ParseStagesConfig(data)
}

// startConfigWatcher 启动开发期的配置热加载
// 工作目录下没有配置目录时静默跳过（发布构建只有嵌入资源）
func (a *App) startConfigWatcher() {
	if _, err := os.Stat("assets/config"); err != nil {
		return
	}
	watcher, err := config.NewWatcher("assets/config")
	if err != nil {
		log.Printf("[App] Config watcher unavailable: %v", err)
		return
	}
	a.watcher = watcher

	go func() {
		for range watcher.Events {
			a.reloadPending.Store(true)
		}
	}()
	go func() {
		for err := range watcher.Errors {
			log.Printf("[App] Config watcher error: %v", err)
		}
	}()
	log.Printf("[App] Watching assets/config for stage config changes")
}

// applyConfigReload 在帧循环内执行热加载
// 重新解析磁盘上的 stages.yaml，并淘汰按旧参数构建的场景
func (a *App) applyConfigReload() {
	data, err := os.ReadFile(stagesConfigPath)
	if err != nil {
		log.Printf("[App] Config reload skipped: %v", err)
		return
	}
	parsed, err := config.ParseStagesConfig(data)
	if err != nil {
		log.Printf("[App] Config reload rejected: %v", err)
		return
	}

	if a.stages == nil {
		// 启动时配置缺失，工厂持有的是 nil，热加载无处生效
		log.Printf("[App] Config reload ignored: no stages config at startup")
		return
	}

	// 工厂持有同一个 StagesConfig 指针，原地替换面板列表即可生效
	a.stages.Panels = parsed.Panels
	a.director.EvictInactiveScenes()
	log.Printf("[App] Stages config reloaded (%d panels)", len(parsed.Panels))
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次），使用固定帧步长
func (a *App) Update() error {
	if a.reloadPending.Swap(false) {
		a.applyConfigReload()
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			a.settings.GetSettings().Fullscreen = false
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			a.settings.GetSettings().Fullscreen = true
			ebiten.SetFullscreen(true)
		}
	}

	a.director.Update(1.0 / 60.0)
	return nil
}

// Draw 绘制当前帧
func (a *App) Draw(screen *ebiten.Image) {
	a.director.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 控制全屏时的缩放质量和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Shutdown 释放应用持有的系统资源
func (a *App) Shutdown() {
	if a.watcher != nil {
		_ = a.watcher.Close()
	}
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Director 返回场景编排器
func (a *App) Director() *game.SceneDirector {
	return a.director
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
