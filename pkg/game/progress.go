package game

import (
	"log"
	"strconv"

	"github.com/gonewx/exhibit/pkg/types"
	"github.com/quasilyte/gdata/v2"
)

// 持久化存储路径常量
const (
	progressObject     = "progress"
	progressResumeProp = "resume_stage"
)

// ProgressStore 漫游进度的唯一事实来源
//
// 职责：
//   - 记录当前舞台索引和已访问舞台集合
//   - 记录"允许推进"标志（由场景或 HUD 置位，由 SceneDirector 消费）
//   - 把续播索引持久化到 gdata（跨进程重启存活）
//
// 写入者划分（必须保持）：
//   - 舞台索引只由 SceneDirector 写入
//   - canAdvance 只由活动场景和 HUD 写入、由 SceneDirector 清除
//
// 单线程帧循环内使用，无需加锁。
type ProgressStore struct {
	currentStage types.StageID
	visited      map[types.StageID]bool
	canAdvance   bool

	gdataManager *gdata.Manager // 可为 nil（降级模式，续播索引不持久化）

	stageChangedFunc func(types.StageID) // 舞台指示器回调，可为 nil
}

// NewProgressStore 创建进度存储
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
//
// 初始状态：当前舞台为 loading(0)，已访问集合只含 0。
func NewProgressStore(gdataManager *gdata.Manager) *ProgressStore {
	return &ProgressStore{
		currentStage: types.StageLoading,
		visited:      map[types.StageID]bool{types.StageLoading: true},
		gdataManager: gdataManager,
	}
}

// SetStageChangedFunc 注册舞台变更回调（用于 HUD 指示器刷新）
// 显式回调注册，不走事件广播，依赖关系在类型图里可见
func (ps *ProgressStore) SetStageChangedFunc(fn func(types.StageID)) {
	ps.stageChangedFunc = fn
}

// SetStage 切换当前舞台索引
//
// 越界索引静默忽略（容忍防御式调用方，不报错）。
// 成功时更新已访问集合；索引 > 0 时持久化为续播索引，
// 保证 loading 舞台永远不会被记录为续播目标。
func (ps *ProgressStore) SetStage(stage types.StageID) {
	if !stage.Valid() {
		return
	}

	ps.currentStage = stage
	ps.visited[stage] = true

	if stage > types.StageLoading {
		ps.persistResumeStage(stage)
	}

	if ps.stageChangedFunc != nil {
		ps.stageChangedFunc(stage)
	}
}

// AdvanceToNext 前进到下一个舞台
//
// 返回：
//   - bool: 已经在最后一个舞台时返回 false（状态不变），否则 true
func (ps *ProgressStore) AdvanceToNext() bool {
	if ps.currentStage >= types.StageCount-1 {
		return false
	}
	ps.SetStage(ps.currentStage + 1)
	return true
}

// CurrentStage 返回当前舞台索引
func (ps *ProgressStore) CurrentStage() types.StageID {
	return ps.currentStage
}

// Visited 返回舞台是否已被访问过
func (ps *ProgressStore) Visited(stage types.StageID) bool {
	return ps.visited[stage]
}

// ResumeStage 读取持久化的续播舞台索引
//
// 任何异常（存储不可用、记录缺失、内容非法、索引越界或为 0）
// 都回退到第一个内容舞台。续播目标永远 ≥ 1 且在枚举范围内。
func (ps *ProgressStore) ResumeStage() types.StageID {
	if ps.gdataManager == nil {
		return types.FirstContentStage
	}
	if !ps.gdataManager.ObjectPropExists(progressObject, progressResumeProp) {
		return types.FirstContentStage
	}

	data, err := ps.gdataManager.LoadObjectProp(progressObject, progressResumeProp)
	if err != nil {
		log.Printf("[ProgressStore] Warning: failed to load resume stage: %v (using default)", err)
		return types.FirstContentStage
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		log.Printf("[ProgressStore] Warning: malformed resume stage %q (using default)", data)
		return types.FirstContentStage
	}

	stage := types.StageID(n)
	if stage < types.FirstContentStage || !stage.Valid() {
		return types.FirstContentStage
	}
	return stage
}

// SetCanAdvance 设置"允许推进"标志
// 场景的退出条件和 HUD 的前进按钮是等权的两个置位来源
func (ps *ProgressStore) SetCanAdvance(v bool) {
	ps.canAdvance = v
}

// CanAdvance 返回"允许推进"标志
func (ps *ProgressStore) CanAdvance() bool {
	return ps.canAdvance
}

// persistResumeStage 把续播索引写入 gdata
// 存储不可用或写入失败只记日志，不向上传播
func (ps *ProgressStore) persistResumeStage(stage types.StageID) {
	if ps.gdataManager == nil {
		return
	}
	data := []byte(strconv.Itoa(int(stage)))
	if err := ps.gdataManager.SaveObjectProp(progressObject, progressResumeProp, data); err != nil {
		log.Printf("[ProgressStore] Warning: failed to persist resume stage: %v", err)
	}
}
