package game

// TapEvent 一次经过去重的有效点击
// 只携带点击位置，输入设备类型在分类阶段已经处理完毕
type TapEvent struct {
	Pos Point
}

// InputClassifier 区分鼠标与触摸输入，保证一次物理交互最多产生一次点击
//
// 规则：
//   - 非触摸设备：每个点击事件都产生一次 TapEvent
//   - 触摸设备：只有最近一次触摸开始时的同时触摸数恰好为 1 才产生 TapEvent
//     （多指手势被忽略）
//
// 单指判定只使用"同时触摸数 == 1"，不使用触摸 ID 判定。
// 记录的触摸数在被点击事件读取后清零，因此一次触摸开始最多放行一次点击。
type InputClassifier struct {
	touchCapable bool // 是否为触摸设备，构造时确定
	touchCount   int  // 最近一次触摸开始时的同时触摸数
}

// NewInputClassifier 创建输入分类器
//
// 参数：
//   - touchCapable: 当前设备是否支持触摸（只在启动时查询一次）
func NewInputClassifier(touchCapable bool) *InputClassifier {
	return &InputClassifier{touchCapable: touchCapable}
}

// TouchCapable 是否按触摸设备处理输入
func (c *InputClassifier) TouchCapable() bool {
	return c.touchCapable
}

// OnTouchStart 记录触摸开始时的同时触摸数
func (c *InputClassifier) OnTouchStart(activeTouches int) {
	c.touchCount = activeTouches
}

// OnClick 处理点击类事件
//
// 返回：
//   - TapEvent: 有效点击
//   - bool: 是否产生了有效点击
func (c *InputClassifier) OnClick(x, y float64) (TapEvent, bool) {
	tap := TapEvent{Pos: Point{X: x, Y: y}}

	if !c.touchCapable {
		return tap, true
	}

	single := c.touchCount == 1
	c.touchCount = 0
	if !single {
		return TapEvent{}, false
	}
	return tap, true
}
