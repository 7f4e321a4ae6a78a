// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// StageID 定义展台在线性序列中的索引
//
// 索引 0 是加载/开场舞台，1..N-1 是内容舞台。
// 舞台顺序是严格线性的，不允许跳跃。
type StageID int

const (
	// StageLoading 加载/开场舞台（索引 0，永远不会作为续播目标）
	StageLoading StageID = iota
	// StageAtrium 中庭（第一个内容舞台，默认续播目标）
	StageAtrium
	// StagePassage 闸门走廊
	StagePassage
	// StageGallery 展廊
	StageGallery
	// StageArchive 档案厅
	StageArchive
	// StageObservatory 观景台
	StageObservatory
	// StageTerrace 露台
	StageTerrace
	// StageFinale 终幕
	StageFinale

	// StageCount 舞台总数
	StageCount
)

// FirstContentStage 第一个内容舞台，作为续播索引的兜底默认值
const FirstContentStage = StageAtrium

// String 返回舞台的名称
func (s StageID) String() string {
	switch s {
	case StageLoading:
		return "loading"
	case StageAtrium:
		return "atrium"
	case StagePassage:
		return "passage"
	case StageGallery:
		return "gallery"
	case StageArchive:
		return "archive"
	case StageObservatory:
		return "observatory"
	case StageTerrace:
		return "terrace"
	case StageFinale:
		return "finale"
	default:
		return "unknown"
	}
}

// Valid 返回索引是否落在合法的舞台枚举范围内
func (s StageID) Valid() bool {
	return s >= StageLoading && s < StageCount
}

// StageByName 根据名称查找舞台索引
// 未知名称返回 (0, false)
func StageByName(name string) (StageID, bool) {
	for s := StageLoading; s < StageCount; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return StageLoading, false
}
