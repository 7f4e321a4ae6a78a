//go:build !android

package utils

// EnsureStorageDir 确保持久化目录可用（非 Android 平台的空实现）
// 桌面平台上 gdata 会自行创建进度与设置的存储目录
func EnsureStorageDir() error {
	return nil
}
