package config

import "testing"

// TestParseStagesConfig 测试正常解析 stages.yaml
func TestParseStagesConfig(t *testing.T) {
	data := []byte(`
panels:
  - name: atrium
    title: "The Atrium"
    caption: "where the walk begins"
    accent: "#4fc3f7"
    fadeIn: 1.5
    floatFreq: 0.9
    particleCount: 64
    orbitRadius: 200
  - name: gallery
`)
	cfg, err := ParseStagesConfig(data)
	if err != nil {
		t.Fatalf("ParseStagesConfig() error: %v", err)
	}

	panel, ok := cfg.Panel("atrium")
	if !ok {
		t.Fatal("Panel(\"atrium\") not found")
	}
	if panel.Title != "The Atrium" {
		t.Errorf("Title = %q, 期望 \"The Atrium\"", panel.Title)
	}
	if panel.FadeIn != 1.5 {
		t.Errorf("FadeIn = %v, 期望 1.5", panel.FadeIn)
	}

	accent := panel.AccentColor()
	if accent.R != 0x4f || accent.G != 0xc3 || accent.B != 0xf7 {
		t.Errorf("AccentColor() = %+v, 期望 #4fc3f7", accent)
	}
}

// TestParseStagesConfigDefaults 测试缺省字段填入默认值
func TestParseStagesConfigDefaults(t *testing.T) {
	cfg, err := ParseStagesConfig([]byte("panels:\n  - name: gallery\n"))
	if err != nil {
		t.Fatalf("ParseStagesConfig() error: %v", err)
	}

	panel, ok := cfg.Panel("gallery")
	if !ok {
		t.Fatal("Panel(\"gallery\") not found")
	}
	if panel.Title != "gallery" {
		t.Errorf("缺省标题 = %q, 期望舞台名", panel.Title)
	}
	if panel.FadeIn != 1.0 {
		t.Errorf("缺省 FadeIn = %v, 期望 1.0", panel.FadeIn)
	}
	if panel.ParticleCount != 48 {
		t.Errorf("缺省 ParticleCount = %v, 期望 48", panel.ParticleCount)
	}
}

// TestParseStagesConfigInvalid 测试非法 YAML 和空配置返回错误
func TestParseStagesConfigInvalid(t *testing.T) {
	if _, err := ParseStagesConfig([]byte("panels: [")); err == nil {
		t.Error("非法 YAML 应返回错误")
	}
	if _, err := ParseStagesConfig([]byte("panels: []")); err == nil {
		t.Error("空配置应返回错误")
	}
}

// TestAccentColorFallback 测试非法色值回退到默认色
func TestAccentColorFallback(t *testing.T) {
	tests := []string{"", "#12345", "red", "#gggggg"}
	for _, accent := range tests {
		p := PanelStageConfig{Accent: accent}
		got := p.AccentColor()
		if got.R != 0xd0 || got.G != 0xe0 || got.B != 0xf0 {
			t.Errorf("AccentColor(%q) = %+v, 期望默认色", accent, got)
		}
	}
}

// TestPanelNotFound 测试未配置的舞台名返回 false
func TestPanelNotFound(t *testing.T) {
	cfg, err := ParseStagesConfig([]byte("panels:\n  - name: gallery\n"))
	if err != nil {
		t.Fatalf("ParseStagesConfig() error: %v", err)
	}
	if _, ok := cfg.Panel("observatory"); ok {
		t.Error("未配置的舞台名不应命中")
	}
}
