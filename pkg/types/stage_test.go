package types

import "testing"

// TestStageIDString 测试舞台名称映射
func TestStageIDString(t *testing.T) {
	tests := []struct {
		stage StageID
		want  string
	}{
		{StageLoading, "loading"},
		{StageAtrium, "atrium"},
		{StagePassage, "passage"},
		{StageFinale, "finale"},
		{StageID(99), "unknown"},
		{StageID(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("StageID(%d).String(): expected %q, got %q", tt.stage, tt.want, got)
		}
	}
}

// TestStageIDValid 测试枚举范围校验
func TestStageIDValid(t *testing.T) {
	if !StageLoading.Valid() || !StageFinale.Valid() {
		t.Error("Boundary stages must be valid")
	}
	if StageCount.Valid() {
		t.Error("StageCount itself is not a stage")
	}
	if StageID(-1).Valid() {
		t.Error("Negative index must be invalid")
	}
}

// TestStageByName 测试名称到索引的往返
func TestStageByName(t *testing.T) {
	for s := StageLoading; s < StageCount; s++ {
		got, ok := StageByName(s.String())
		if !ok || got != s {
			t.Errorf("StageByName(%q): expected (%v, true), got (%v, %v)", s.String(), s, got, ok)
		}
	}
	if _, ok := StageByName("cellar"); ok {
		t.Error("Unknown name must not resolve")
	}
}
