package game

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/decker502/shroom/pkg/config"
)

type countingResetter struct {
	rec   *recorder
	calls int
}

func (r *countingResetter) ResetProgress() {
	r.calls++
	r.rec.add("reset")
}

func newTestWinFlow(t *testing.T, notices []string) (*WinFlow, *fakeView, *recorder) {
	t.Helper()
	rec := &recorder{}
	view := newFakeView(rec)
	w, err := NewWinFlow(view, &fakeSound{rec: rec}, notices, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("NewWinFlow failed: %v", err)
	}
	return w, view, rec
}

func TestNewWinFlowRequiresNotices(t *testing.T) {
	rec := &recorder{}
	_, err := NewWinFlow(newFakeView(rec), &fakeSound{rec: rec}, nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, config.ErrEmptyNotices) {
		t.Errorf("expected ErrEmptyNotices, got %v", err)
	}
}

func TestWinFlowRunAndDismiss(t *testing.T) {
	w, view, rec := newTestWinFlow(t, []string{"YOU WIN"})
	r := &countingResetter{rec: rec}

	if w.State() != FlowPlaying {
		t.Fatalf("initial state = %s, want playing", w.State())
	}

	w.Run(r)
	if w.State() != FlowWon {
		t.Fatalf("state after Run = %s, want won", w.State())
	}
	if len(view.panels) != 1 || len(view.controls) != 1 {
		t.Fatalf("expected one panel and one control, got %d/%d", len(view.panels), len(view.controls))
	}
	for _, text := range view.panels {
		if text != "YOU WIN" {
			t.Errorf("panel text = %q, want %q", text, "YOU WIN")
		}
	}

	rec.reset()
	view.activate(t)

	want := []string{"panel:hide", "control:hide", "cue:closed", "reset"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("dismiss sequence = %v, want %v", rec.calls, want)
	}
	if w.State() != FlowPlaying {
		t.Errorf("state after dismiss = %s, want playing", w.State())
	}
	if len(view.panels) != 0 || len(view.controls) != 0 {
		t.Errorf("notification visuals left behind: %d panels, %d controls", len(view.panels), len(view.controls))
	}
}

func TestWinFlowIgnoresDuplicateEvents(t *testing.T) {
	w, view, rec := newTestWinFlow(t, []string{"A", "B"})
	r := &countingResetter{rec: rec}

	// Playing 状态下 Dismiss 为空操作
	w.Dismiss()
	if r.calls != 0 || len(rec.calls) != 0 {
		t.Fatalf("Dismiss while playing had effects: %v", rec.calls)
	}

	w.Run(r)
	w.Run(r)
	if rec.count("panel:show") != 1 {
		t.Errorf("Run twice showed %d panels, want 1", rec.count("panel:show"))
	}

	view.activate(t)
	view.activate(t)
	if r.calls != 1 {
		t.Errorf("reset called %d times, want 1", r.calls)
	}
}

func TestWinFlowSamplesFromPool(t *testing.T) {
	pool := []string{"A", "B", "C"}
	w, view, rec := newTestWinFlow(t, pool)
	r := &countingResetter{rec: rec}

	seen := make(map[string]int)
	for i := 0; i < 60; i++ {
		w.Run(r)
		seen[w.LastNotice()]++
		view.activate(t)
	}

	for notice := range seen {
		found := false
		for _, p := range pool {
			if p == notice {
				found = true
			}
		}
		if !found {
			t.Errorf("notice %q not from pool", notice)
		}
	}
	if len(seen) != len(pool) {
		t.Errorf("expected all %d notices over 60 rounds, saw %v", len(pool), seen)
	}
	if w.Rounds() != 60 {
		t.Errorf("rounds = %d, want 60", w.Rounds())
	}
}
