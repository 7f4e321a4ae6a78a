//go:build android

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureStorageDir 确保 Android 上的持久化目录存在并可写
//
// gdata 在 Android 上以 /data/data/{package}/ 为根读写进度与设置，
// 但不会预先创建 saves 子目录。应用装配时在 gdata.Open 之前调用；
// 失败只会让存储退入降级内存模式（续播索引不跨重启存活），
// 不阻断漫游本身。
func EnsureStorageDir() error {
	pkg, err := androidPackageName()
	if err != nil {
		return fmt.Errorf("failed to resolve android package name: %w", err)
	}

	dir := filepath.Join("/data/data", pkg, "saves")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}

	// 目录存在不代表可写，写一个标记文件确认
	marker := filepath.Join(dir, ".write_check")
	if err := os.WriteFile(marker, []byte("ok"), 0644); err != nil {
		return fmt.Errorf("storage directory %s is not writable: %w", dir, err)
	}
	os.Remove(marker)

	return nil
}

// androidPackageName 从 /proc/self/cmdline 解析应用包名
// ebitenmobile 绑定的进程名即 javapkg 包名（com.gonewx.exhibit）
func androidPackageName() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}

	name := make([]byte, 0, len(data))
	for _, ch := range data {
		if ch == 0 || ch == '\n' {
			continue
		}
		name = append(name, ch)
	}
	if len(name) == 0 {
		return "", fmt.Errorf("empty /proc/self/cmdline")
	}

	return string(name), nil
}
