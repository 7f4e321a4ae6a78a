package scenes

import (
	"github.com/gonewx/exhibit/pkg/config"
	"github.com/gonewx/exhibit/pkg/game"
	"github.com/gonewx/exhibit/pkg/types"
)

// Deps 场景构建所需的协作者集合
// 由应用装配层填充并注入，场景不自行创建协作者
type Deps struct {
	Store     *game.ProgressStore
	Input     *game.InputManager
	Audio     *game.AudioManager
	Resources *game.ResourceManager
	Stages    *config.StagesConfig // 可为 nil（面板舞台全部降级为空白）
}

// NewFactory 返回舞台索引到场景实例的工厂函数
//
// loading 和 passage 是定制场景；其余舞台按名称查 stages.yaml，
// 未配置的舞台返回 nil，编排器进入降级空白模式。
func NewFactory(deps Deps) game.SceneFactory {
	return func(stage types.StageID) game.Scene {
		switch stage {
		case types.StageLoading:
			return NewIntroScene(deps.Store, deps.Input, deps.Audio, deps.Resources)
		case types.StagePassage:
			return NewPassageScene(deps.Store, deps.Input, deps.Audio, deps.Resources)
		default:
			if deps.Stages == nil {
				return nil
			}
			panel, ok := deps.Stages.Panel(stage.String())
			if !ok {
				return nil
			}
			return NewPanelScene(*panel, deps.Resources)
		}
	}
}
