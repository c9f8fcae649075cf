package game

import (
	"fmt"
	"math/rand"
	"testing"
)

// recorder 按顺序记录所有协作者调用，便于断言副作用顺序
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...interface{}) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakeStage 记录阶段精灵的创建与销毁，并维护存活集合
type fakeStage struct {
	rec    *recorder
	next   Handle
	alive  map[Handle]StageSpec
	spawns int
}

func newFakeStage(rec *recorder) *fakeStage {
	return &fakeStage{rec: rec, alive: make(map[Handle]StageSpec)}
}

func (f *fakeStage) SpawnStage(spec StageSpec) Handle {
	f.next++
	f.spawns++
	f.alive[f.next] = spec
	f.rec.add("stage:%s", spec.Stage)
	return f.next
}

func (f *fakeStage) DestroyStage(h Handle) {
	if _, ok := f.alive[h]; !ok {
		panic(fmt.Sprintf("destroying unknown stage handle %d", h))
	}
	delete(f.alive, h)
}

type fakeScore struct {
	rec  *recorder
	last int
}

func (f *fakeScore) UpdateScore(v int) {
	f.last = v
	f.rec.add("score:%d", v)
}

type fakeEffects struct {
	rec     *recorder
	symbols []Point
}

func (f *fakeEffects) PlayScatter(pos Point) {
	f.rec.add("scatter")
}

func (f *fakeEffects) PlayFloatingSymbol(symbol string, pos Point) {
	f.symbols = append(f.symbols, pos)
	f.rec.add("symbol:%s", symbol)
}

type fakeSound struct {
	rec *recorder
}

func (f *fakeSound) PlayCue(cue SoundCue) {
	f.rec.add("cue:%s", cue)
}

type fakeHaptic struct {
	rec *recorder
}

func (f *fakeHaptic) Trigger(pattern []int) {
	f.rec.add("haptic")
}

// fakeView 记录提示面板与关闭按钮，保存关闭回调供测试激活
type fakeView struct {
	rec       *recorder
	next      Handle
	panels    map[Handle]string
	controls  map[Handle]func()
	onDismiss func()
}

func newFakeView(rec *recorder) *fakeView {
	return &fakeView{
		rec:      rec,
		panels:   make(map[Handle]string),
		controls: make(map[Handle]func()),
	}
}

func (f *fakeView) ShowNotificationPanel(text string) Handle {
	f.next++
	f.panels[f.next] = text
	f.rec.add("panel:show")
	return f.next
}

func (f *fakeView) HideNotificationPanel(h Handle) {
	delete(f.panels, h)
	f.rec.add("panel:hide")
}

func (f *fakeView) ShowDismissControl(onActivate func()) Handle {
	f.next++
	f.controls[f.next] = onActivate
	f.onDismiss = onActivate
	f.rec.add("control:show")
	return f.next
}

func (f *fakeView) HideDismissControl(h Handle) {
	delete(f.controls, h)
	f.rec.add("control:hide")
}

// activate 模拟点击关闭按钮
func (f *fakeView) activate(t *testing.T) {
	t.Helper()
	if f.onDismiss == nil {
		t.Fatal("dismiss control was never shown")
	}
	f.onDismiss()
}

// harness 组装一套完整的核心对象
type harness struct {
	rec     *recorder
	stage   *fakeStage
	score   *fakeScore
	effects *fakeEffects
	view    *fakeView
	win     *WinFlow
	ctrl    *ProgressionController
}

func newHarness(t *testing.T, limit int, growPoints []int) *harness {
	t.Helper()

	rec := &recorder{}
	h := &harness{
		rec:     rec,
		stage:   newFakeStage(rec),
		score:   &fakeScore{rec: rec},
		effects: &fakeEffects{rec: rec},
		view:    newFakeView(rec),
	}
	sound := &fakeSound{rec: rec}

	rng := rand.New(rand.NewSource(1))
	win, err := NewWinFlow(h.view, sound, []string{"YOU WIN", "Grown!"}, rng)
	if err != nil {
		t.Fatalf("NewWinFlow failed: %v", err)
	}
	h.win = win

	cfg := ControllerConfig{
		Limit:        limit,
		GrowPoints:   growPoints,
		Symbol:       "+1",
		SymbolJitter: 10,
		Vibration:    []int{100, 30, 100},
	}
	for i := range cfg.Stages {
		cfg.Stages[i] = StageSpec{Stage: GrowthStage(i), Sprite: fmt.Sprintf("sprite%d", i), Scale: 1}
	}
	cfg.Stages[StageFinal].Scale = 1.5

	ctrl, err := NewProgressionController(cfg, Collaborators{
		Stage:   h.stage,
		Score:   h.score,
		Effects: h.effects,
		Sound:   sound,
		Haptic:  &fakeHaptic{rec: rec},
	}, win, rng)
	if err != nil {
		t.Fatalf("NewProgressionController failed: %v", err)
	}
	h.ctrl = ctrl

	ctrl.Start()
	rec.reset()
	return h
}

func (h *harness) tap() bool {
	return h.ctrl.OnTap(TapEvent{Pos: Point{X: 180, Y: 320}})
}

func (h *harness) tapN(n int) {
	for i := 0; i < n; i++ {
		h.tap()
	}
}
