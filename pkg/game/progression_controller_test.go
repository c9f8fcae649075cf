package game

import (
	"reflect"
	"testing"
)

func TestStartShowsSeedStage(t *testing.T) {
	h := newHarness(t, 5, []int{2, 3, 4})

	if len(h.stage.alive) != 1 {
		t.Fatalf("expected exactly one stage visual after Start, got %d", len(h.stage.alive))
	}
	for _, spec := range h.stage.alive {
		if spec.Stage != StageSeed {
			t.Errorf("initial stage = %s, want seed", spec.Stage)
		}
	}
	if h.score.last != 0 {
		t.Errorf("initial score = %d, want 0", h.score.last)
	}
}

func TestOnTapBaseEffectsOrder(t *testing.T) {
	h := newHarness(t, 100, []int{25, 50, 75})

	if !h.tap() {
		t.Fatal("first tap should be accepted")
	}

	want := []string{"cue:click", "score:1", "scatter", "symbol:+1"}
	if !reflect.DeepEqual(h.rec.calls, want) {
		t.Errorf("side effects = %v, want %v", h.rec.calls, want)
	}
}

func TestGrowPointEffects(t *testing.T) {
	h := newHarness(t, 100, []int{25, 50, 75})

	for i := 1; i <= 24; i++ {
		h.rec.reset()
		h.tap()
		if len(h.rec.calls) != 4 {
			t.Fatalf("tap %d: expected only base effects, got %v", i, h.rec.calls)
		}
	}

	h.rec.reset()
	h.tap()
	want := []string{"cue:click", "score:25", "scatter", "symbol:+1", "cue:up", "stage:small", "haptic"}
	if !reflect.DeepEqual(h.rec.calls, want) {
		t.Errorf("tap 25 effects = %v, want %v", h.rec.calls, want)
	}
	if h.ctrl.Stage() != StageSmall {
		t.Errorf("stage after tap 25 = %s, want small", h.ctrl.Stage())
	}
}

func TestWinAtLimitFreezesCounting(t *testing.T) {
	h := newHarness(t, 100, []int{25, 50, 75})

	h.tapN(99)
	h.rec.reset()
	h.tap()

	want := []string{
		"cue:click", "score:100", "scatter", "symbol:+1",
		"cue:winner", "stage:final", "haptic",
		"panel:show", "control:show",
	}
	if !reflect.DeepEqual(h.rec.calls, want) {
		t.Errorf("tap 100 effects = %v, want %v", h.rec.calls, want)
	}
	if h.win.State() != FlowWon {
		t.Errorf("win flow state = %s, want won", h.win.State())
	}

	// 上限后的点击：无状态变化、无副作用
	h.rec.reset()
	for i := 0; i < 10; i++ {
		if h.tap() {
			t.Fatal("tap at limit should be ignored")
		}
	}
	if len(h.rec.calls) != 0 {
		t.Errorf("taps at limit produced side effects: %v", h.rec.calls)
	}
	if h.ctrl.Count() != 100 {
		t.Errorf("count = %d, want 100", h.ctrl.Count())
	}
}

func TestThresholdEffectsFireOnlyAtThresholds(t *testing.T) {
	limit := 10
	points := []int{3, 6, 8}
	h := newHarness(t, limit, points)

	thresholds := map[int]bool{3: true, 6: true, 8: true, 10: true}
	for i := 1; i <= limit; i++ {
		h.rec.reset()
		h.tap()
		fired := h.rec.count("haptic")
		if thresholds[i] && fired != 1 {
			t.Errorf("tap %d: haptic fired %d times, want 1", i, fired)
		}
		if !thresholds[i] && fired != 0 {
			t.Errorf("tap %d: haptic fired unexpectedly", i)
		}
		grow := h.rec.count("cue:up")
		if i != limit && thresholds[i] != (grow == 1) {
			t.Errorf("tap %d: grow cue count %d", i, grow)
		}
	}
}

func TestExactlyOneStageVisual(t *testing.T) {
	h := newHarness(t, 5, []int{2, 3, 4})

	for i := 0; i < 5; i++ {
		h.tap()
		if len(h.stage.alive) != 1 {
			t.Fatalf("after tap %d: %d stage visuals alive, want 1", i+1, len(h.stage.alive))
		}
	}

	h.view.activate(t)
	if len(h.stage.alive) != 1 {
		t.Fatalf("after reset: %d stage visuals alive, want 1", len(h.stage.alive))
	}
	// Start + 3 成长 + 胜利 + 重置
	if h.stage.spawns != 6 {
		t.Errorf("stage spawns = %d, want 6", h.stage.spawns)
	}
}

func TestTouchSessionWinAndDismiss(t *testing.T) {
	h := newHarness(t, 5, []int{2, 3, 4})
	classifier := NewInputClassifier(true)

	for i := 0; i < 5; i++ {
		classifier.OnTouchStart(1)
		tap, ok := classifier.OnClick(180, 320)
		if !ok {
			t.Fatalf("single-finger tap %d rejected", i+1)
		}
		h.ctrl.OnTap(tap)
	}
	wins := h.rec.count("panel:show")

	if h.ctrl.Count() != 5 {
		t.Fatalf("count = %d, want 5", h.ctrl.Count())
	}
	if wins != 1 {
		t.Errorf("win sequence triggered %d times, want 1", wins)
	}

	h.view.activate(t)

	if h.ctrl.Count() != 0 {
		t.Errorf("count after dismiss = %d, want 0", h.ctrl.Count())
	}
	if h.ctrl.Stage() != StageSeed {
		t.Errorf("stage after dismiss = %s, want seed", h.ctrl.Stage())
	}
	for _, spec := range h.stage.alive {
		if spec.Stage != StageSeed {
			t.Errorf("visible stage after dismiss = %s, want seed", spec.Stage)
		}
	}
	if h.score.last != 0 {
		t.Errorf("score after dismiss = %d, want 0", h.score.last)
	}
}

func TestRepeatedSessions(t *testing.T) {
	h := newHarness(t, 5, []int{2, 3, 4})

	for round := 1; round <= 3; round++ {
		h.tapN(5)
		if h.win.State() != FlowWon {
			t.Fatalf("round %d: expected won state", round)
		}
		h.view.activate(t)
		if h.ctrl.Count() != 0 || h.ctrl.Stage() != StageSeed {
			t.Fatalf("round %d: reset failed (count=%d stage=%s)", round, h.ctrl.Count(), h.ctrl.Stage())
		}
		if h.win.Rounds() != round {
			t.Errorf("rounds = %d, want %d", h.win.Rounds(), round)
		}
	}
}

func TestCountNeverExceedsLimitOrDecreases(t *testing.T) {
	h := newHarness(t, 7, []int{1, 2, 3})

	prev := 0
	for i := 0; i < 50; i++ {
		h.tap()
		c := h.ctrl.Count()
		if c > h.ctrl.Limit() {
			t.Fatalf("count %d exceeds limit %d", c, h.ctrl.Limit())
		}
		if c < prev {
			t.Fatalf("count decreased from %d to %d without reset", prev, c)
		}
		prev = c
	}
}

func TestFloatingSymbolJitter(t *testing.T) {
	h := newHarness(t, 100, []int{25, 50, 75})

	h.tapN(20)
	for _, pos := range h.effects.symbols {
		if pos.X < 170 || pos.X > 190 {
			t.Errorf("symbol x %v outside jitter range [170, 190]", pos.X)
		}
		if pos.Y != 320 {
			t.Errorf("symbol y = %v, want 320", pos.Y)
		}
	}
}

func TestNewProgressionControllerValidation(t *testing.T) {
	rec := &recorder{}
	sound := &fakeSound{rec: rec}
	h := newHarness(t, 5, []int{2, 3, 4})

	deps := Collaborators{
		Stage:   newFakeStage(rec),
		Score:   &fakeScore{rec: rec},
		Effects: &fakeEffects{rec: rec},
		Sound:   sound,
		Haptic:  &fakeHaptic{rec: rec},
	}

	if _, err := NewProgressionController(ControllerConfig{Limit: 5, GrowPoints: []int{2, 2, 4}}, deps, h.win, h.ctrl.rng); err == nil {
		t.Error("expected error for invalid grow points")
	}

	missing := deps
	missing.Haptic = nil
	if _, err := NewProgressionController(ControllerConfig{Limit: 5, GrowPoints: []int{2, 3, 4}}, missing, h.win, h.ctrl.rng); err == nil {
		t.Error("expected error for missing collaborator")
	}

	if _, err := NewProgressionController(ControllerConfig{Limit: 5, GrowPoints: []int{2, 3, 4}}, deps, nil, h.ctrl.rng); err == nil {
		t.Error("expected error for missing win flow")
	}
}
