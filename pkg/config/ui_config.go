package config

// 应用窗口与全局 UI 配置常量

const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 1280
	// WindowHeight 逻辑屏幕高度
	WindowHeight = 720
)

const (
	// FadeGuardDuration 场景切换遮罩的单边时长（秒）
	// 切换时遮罩先压黑再放开，掩盖场景内容替换的突变
	FadeGuardDuration = 0.3

	// ProgressGuardSettleDelay 推进防抖的解除延时（秒）
	// 一次推进被消费后，防抖在此延时内拒绝新的推进
	ProgressGuardSettleDelay = 0.5
)

// HUD 布局

const (
	// HUDIndicatorRadius 舞台指示点半径（像素）
	HUDIndicatorRadius = 5.0
	// HUDIndicatorSpacing 指示点间距（像素）
	HUDIndicatorSpacing = 22.0
	// HUDIndicatorY 指示点行的 Y 坐标
	HUDIndicatorY = 690.0

	// HUDNextButtonX 前进按钮中心 X 坐标
	HUDNextButtonX = 1216.0
	// HUDNextButtonY 前进按钮中心 Y 坐标
	HUDNextButtonY = 656.0
	// HUDNextButtonRadius 前进按钮点击半径（像素）
	HUDNextButtonRadius = 26.0
)

const (
	// InputTapImpulse 点按前进按钮注入的前进强度
	InputTapImpulse = 1.0
	// InputTapResetDelay 点按后前进强度归零的延时（秒）
	InputTapResetDelay = 0.35
)
