package entities

import (
	"testing"

	"github.com/decker502/shroom/pkg/components"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
)

func testNotificationConfig() config.NotificationConfig {
	return config.NotificationConfig{
		Width:       300,
		Height:      160,
		Y:           240,
		FontSize:    22,
		FadeIn:      0.25,
		Background:  "#000000CC",
		CloseSprite: "buttonClose",
		CloseOffset: 36,
	}
}

func TestNotificationPanelLifecycle(t *testing.T) {
	em := ecs.NewEntityManager()
	rl := newMockResourceLoader()

	panelID, err := NewNotificationPanel(em, rl, testNotificationConfig(), 360, "YOU WIN")
	if err != nil {
		t.Fatalf("NewNotificationPanel failed: %v", err)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, panelID)
	if pos.X != 30 || pos.Y != 240 {
		t.Errorf("panel at (%v, %v), want centered (30, 240)", pos.X, pos.Y)
	}

	members := ecs.GetEntitiesWith1[*components.NotificationComponent](em)
	if len(members) != 2 {
		t.Fatalf("notification has %d entities, want panel + text", len(members))
	}

	var found bool
	for _, id := range members {
		if txt, ok := ecs.GetComponent[*components.TextComponent](em, id); ok {
			found = txt.Text == "YOU WIN" && txt.MaxWidth == 260
		}
	}
	if !found {
		t.Error("notification text entity not found")
	}

	// 另一个提示不受影响
	other, _ := NewNotificationPanel(em, rl, testNotificationConfig(), 360, "again")

	if n := DestroyNotification(em, panelID); n != 2 {
		t.Errorf("DestroyNotification marked %d entities, want 2", n)
	}
	if n := DestroyNotification(em, panelID); n != 0 {
		t.Errorf("second DestroyNotification marked %d entities, want 0", n)
	}
	em.RemoveMarkedEntities()

	if !em.IsAlive(other) {
		t.Error("unrelated notification was destroyed")
	}
	if em.IsAlive(panelID) {
		t.Error("panel should be gone")
	}
}

func TestNewDismissButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := 0

	id, err := NewDismissButton(em, newMockResourceLoader("buttonClose"), testNotificationConfig(), 360, func() { clicked++ })
	if err != nil {
		t.Fatalf("NewDismissButton failed: %v", err)
	}

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 180 || pos.Y != 240+160-36 {
		t.Errorf("button at (%v, %v), want (180, 364)", pos.X, pos.Y)
	}

	clickable, _ := ecs.GetComponent[*components.ClickableComponent](em, id)
	if !clickable.IsEnabled || clickable.Width != 32 || clickable.Height != 24 {
		t.Errorf("clickable = %+v, want enabled 32x24", clickable)
	}

	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	button.OnClick()
	if clicked != 1 {
		t.Error("OnClick should be wired to the callback")
	}

	if !ecs.HasComponent[*components.HoverHighlightComponent](em, id) {
		t.Error("dismiss button should highlight on hover")
	}

	if _, err := NewDismissButton(em, newMockResourceLoader(), testNotificationConfig(), 360, nil); err == nil {
		t.Error("missing close sprite should be an error")
	}
}
