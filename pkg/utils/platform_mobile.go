//go:build mobile

package utils

// IsMobile 移动端构建恒为真
// HUD 据此放大前进按钮的点按判定半径
func IsMobile() bool {
	return true
}
