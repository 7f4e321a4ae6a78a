package config

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// PanelStageConfig 单个面板舞台的可调参数
//
// 面板舞台（atrium/gallery/archive/...）共用同一个场景实现，
// 仅靠这里的配置区分标题、配色和节奏。
type PanelStageConfig struct {
	Name          string  `yaml:"name"`          // 舞台名称，必须与舞台枚举一致
	Title         string  `yaml:"title"`         // 主标题
	Caption       string  `yaml:"caption"`       // 副标题/说明
	Accent        string  `yaml:"accent"`        // 主色调，#RRGGBB
	FadeIn        float64 `yaml:"fadeIn"`        // 淡入时长（秒）
	FloatFreq     float64 `yaml:"floatFreq"`     // 标题漂浮角频率（弧度/秒）
	ParticleCount int     `yaml:"particleCount"` // 背景粒子数量
	OrbitRadius   float64 `yaml:"orbitRadius"`   // 粒子环半径（像素）
}

// StagesConfig 全部面板舞台的配置集合
type StagesConfig struct {
	Panels []PanelStageConfig `yaml:"panels"`
}

// ParseStagesConfig 解析 stages.yaml 内容
//
// 返回：
//   - *StagesConfig: 解析后的配置
//   - error: YAML 非法或配置为空时返回错误
func ParseStagesConfig(data []byte) (*StagesConfig, error) {
	var cfg StagesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stages config: %w", err)
	}
	if len(cfg.Panels) == 0 {
		return nil, fmt.Errorf("stages config contains no panels")
	}
	for i := range cfg.Panels {
		cfg.Panels[i].applyDefaults()
	}
	return &cfg, nil
}

// Panel 按舞台名称查找面板配置
// 未配置的名称返回 (nil, false)
func (c *StagesConfig) Panel(name string) (*PanelStageConfig, bool) {
	for i := range c.Panels {
		if c.Panels[i].Name == name {
			return &c.Panels[i], true
		}
	}
	return nil, false
}

// applyDefaults 为缺省字段填入可用的默认值
// 配置残缺不是错误，面板场景必须总能渲染出东西
func (p *PanelStageConfig) applyDefaults() {
	if p.Title == "" {
		p.Title = p.Name
	}
	if p.FadeIn <= 0 {
		p.FadeIn = 1.0
	}
	if p.FloatFreq <= 0 {
		p.FloatFreq = 1.1
	}
	if p.ParticleCount <= 0 {
		p.ParticleCount = 48
	}
	if p.OrbitRadius <= 0 {
		p.OrbitRadius = 180.0
	}
}

// AccentColor 解析主色调的 #RRGGBB 表示
// 非法或缺省时返回默认的冷白色
func (p *PanelStageConfig) AccentColor() color.RGBA {
	fallback := color.RGBA{R: 0xd0, G: 0xe0, B: 0xf0, A: 0xff}
	if len(p.Accent) != 7 || p.Accent[0] != '#' {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(p.Accent[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
