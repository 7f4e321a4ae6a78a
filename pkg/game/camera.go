package game

// Camera 漫游视点
//
// Depth 是沿走廊前进方向的深度坐标，从 0 开始单调受控于前进输入；
// Yaw/Pitch 是视线偏转（弧度）。渲染层把它们映射成画面变换，
// 编排层只关心 Depth 是否越过闸门阈值。
type Camera struct {
	Depth float64
	Yaw   float64
	Pitch float64
}

// NewCamera 创建位于走廊起点的视点
func NewCamera() *Camera {
	return &Camera{}
}

// Advance 按前进强度推进深度
// intensity ∈ (-1..1)，speed 为满强度速度（单位/秒）
func (c *Camera) Advance(intensity, speed, deltaTime float64) {
	c.Depth += intensity * speed * deltaTime
	if c.Depth < 0 {
		c.Depth = 0
	}
}

// Turn 按转向意图累计视线偏转
func (c *Camera) Turn(yawIntent, pitchIntent, rate, deltaTime float64) {
	c.Yaw += yawIntent * rate * deltaTime
	c.Pitch += pitchIntent * rate * deltaTime
}
