package scenes

import (
	"log"

	"github.com/decker502/shroom/pkg/ecs"
	"github.com/decker502/shroom/pkg/entities"
	"github.com/decker502/shroom/pkg/game"
)

// 以下类型把核心的协作者接口映射到 ECS 实体
// 句柄即实体 ID；工厂失败时只记录日志，返回 NoHandle

// ecsStageRenderer 实现 game.StageRenderer
type ecsStageRenderer struct {
	scene *ClickerScene
}

func (r *ecsStageRenderer) SpawnStage(spec game.StageSpec) game.Handle {
	id, err := entities.NewStageVisual(r.scene.entityManager, r.scene.services.Loader, spec)
	if err != nil {
		log.Printf("[ClickerScene] Failed to spawn stage %s: %v", spec.Stage, err)
		return game.NoHandle
	}
	return game.Handle(id)
}

func (r *ecsStageRenderer) DestroyStage(h game.Handle) {
	if h == game.NoHandle {
		return
	}
	r.scene.entityManager.DestroyEntity(ecs.EntityID(h))
}

// scoreBoard 实现 game.ScoreDisplay
type scoreBoard struct {
	scene *ClickerScene
}

func (b *scoreBoard) UpdateScore(value int) {
	entities.SetScoreText(b.scene.entityManager, b.scene.scoreEntity, value)
}

// ecsEffectPlayer 实现 game.EffectPlayer
type ecsEffectPlayer struct {
	scene *ClickerScene
}

func (p *ecsEffectPlayer) PlayScatter(pos game.Point) {
	s := p.scene
	if _, err := entities.NewScatterBurst(s.entityManager, s.services.Loader, s.settings.Scatter, pos.X, pos.Y, s.rng); err != nil {
		log.Printf("[ClickerScene] Failed to play scatter: %v", err)
	}
}

func (p *ecsEffectPlayer) PlayFloatingSymbol(symbol string, pos game.Point) {
	s := p.scene
	if _, err := entities.NewFloatingSymbol(s.entityManager, s.services.Loader, s.settings.FloatingSymbol, symbol, pos.X, pos.Y); err != nil {
		log.Printf("[ClickerScene] Failed to play floating symbol: %v", err)
	}
}

// ecsNotificationView 实现 game.NotificationView
type ecsNotificationView struct {
	scene *ClickerScene
}

func (v *ecsNotificationView) ShowNotificationPanel(text string) game.Handle {
	s := v.scene
	id, err := entities.NewNotificationPanel(s.entityManager, s.services.Loader, s.settings.Notification, float64(s.settings.Scene.Width), text)
	if err != nil {
		log.Printf("[ClickerScene] Failed to show notification: %v", err)
		return game.NoHandle
	}
	return game.Handle(id)
}

func (v *ecsNotificationView) HideNotificationPanel(h game.Handle) {
	if h == game.NoHandle {
		return
	}
	entities.DestroyNotification(v.scene.entityManager, ecs.EntityID(h))
}

func (v *ecsNotificationView) ShowDismissControl(onActivate func()) game.Handle {
	s := v.scene
	id, err := entities.NewDismissButton(s.entityManager, s.services.Loader, s.settings.Notification, float64(s.settings.Scene.Width), onActivate)
	if err != nil {
		log.Printf("[ClickerScene] Failed to show dismiss control: %v", err)
		return game.NoHandle
	}
	return game.Handle(id)
}

func (v *ecsNotificationView) HideDismissControl(h game.Handle) {
	if h == game.NoHandle {
		return
	}
	v.scene.entityManager.DestroyEntity(ecs.EntityID(h))
}
