package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestWatcherDeliversYamlWrites 测试 yaml 写入事件被投递
func TestWatcherDeliversYamlWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	target := filepath.Join(dir, "stages.yaml")
	if err := os.WriteFile(target, []byte("panels:\n  - name: atrium\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	select {
	case path := <-w.Events:
		if filepath.Base(path) != "stages.yaml" {
			t.Errorf("投递的路径 = %q, 期望 stages.yaml", path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("yaml 写入事件未被投递")
	}
}

// TestWatcherIgnoresNonConfigFiles 测试非 yaml 文件的写入被过滤
func TestWatcherIgnoresNonConfigFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	select {
	case path := <-w.Events:
		t.Errorf("非配置文件 %q 不应被投递", path)
	case <-time.After(200 * time.Millisecond):
	}
}

// TestWatcherCloseWhileDelivering 测试关停与投递并发时不 panic、通道收敛
//
// Close 只发停止信号；Events/Errors 由 run goroutine 在退出时关闭。
// 反复创建、写入、立刻关停，之后通道必须正常收敛（range 终止）。
func TestWatcherCloseWhileDelivering(t *testing.T) {
	for i := 0; i < 20; i++ {
		dir := t.TempDir()
		w, err := NewWatcher(dir)
		if err != nil {
			t.Fatalf("NewWatcher() error: %v", err)
		}

		_ = os.WriteFile(filepath.Join(dir, "stages.yaml"), []byte("panels: []\n"), 0644)

		if err := w.Close(); err != nil {
			t.Errorf("Close() error: %v", err)
		}
		// 关停后通道由发送方关闭，排空循环必须终止
		for range w.Events {
		}
		for range w.Errors {
		}

		// 重复关停是幂等的
		if err := w.Close(); err != nil {
			t.Errorf("重复 Close() error: %v", err)
		}
	}
}
