package config

// Passage Scene (passage 舞台) 时间线配置常量
//
// 不按命名阶段组织，而是按固定时间阈值驱动：
// 闸门延时滑开、标题延时显现、前进由摄像机深度越过阈值解锁。

const (
	// PassageDoorDelay 闸门开始滑开前的延时（秒）
	PassageDoorDelay = 1.2
	// PassageDoorDuration 闸门滑开时长（秒，EaseOutCubic）
	PassageDoorDuration = 2.4

	// PassageDoorSoundWindowStart 闸门音效触发窗口起点（滑动进度比例）
	// 音效不在滑动入口触发，而是在起步后的小窗口内，
	// 与可感知的声音起振对齐
	PassageDoorSoundWindowStart = 0.02
	// PassageDoorSoundWindowEnd 闸门音效触发窗口终点（滑动进度比例）
	PassageDoorSoundWindowEnd = 0.12

	// PassageTitleDelay 标题开始显现前的延时（秒）
	PassageTitleDelay = 2.0
	// PassageTitleFadeDuration 标题线性淡入时长（秒）
	PassageTitleFadeDuration = 1.0
	// PassageTitleFloatFreq 标题漂浮角频率（弧度/秒）
	PassageTitleFloatFreq = 1.2
	// PassageTitleFloatAmp 标题漂浮振幅（像素）
	PassageTitleFloatAmp = 6.0

	// PassageDepthThreshold 解锁前进的摄像机深度阈值
	// 摄像机 Z 越过此值即认为穿过闸门，设置 canAdvance
	PassageDepthThreshold = 40.0

	// PassageWalkSpeed 满强度前进时的深度推进速度（单位/秒）
	PassageWalkSpeed = 9.0
)

// Passage 布局

const (
	// PassageDoorWidth 单扇门板宽度（像素）
	PassageDoorWidth = 280.0
	// PassageDoorHeight 门板高度（像素）
	PassageDoorHeight = 520.0
	// PassageDoorSlideDistance 门板滑开的总位移（像素）
	PassageDoorSlideDistance = 300.0

	// PassageTitleY 标题 Y 坐标
	PassageTitleY = 120.0
	// PassageTitleFontSize 标题字号
	PassageTitleFontSize = 40.0
)
