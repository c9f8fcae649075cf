package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"

	"github.com/atotto/clipboard"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/ecs"
	"github.com/decker502/shroom/pkg/entities"
	"github.com/decker502/shroom/pkg/game"
	"github.com/decker502/shroom/pkg/systems"
	"github.com/decker502/shroom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Services 场景依赖的外部服务
type Services struct {
	Loader   entities.ResourceLoader // 精灵与字体，必需
	Sound    game.SoundPlayer        // 提示音，必需
	Haptics  *game.HapticManager     // 可为 nil（不震动）
	Settings *game.SettingsManager   // 可为 nil（偏好开关不可用）
}

// Options 场景运行参数
type Options struct {
	// TouchCapable 按触摸设备分类输入
	TouchCapable bool
	// EmulateTouch 把鼠标当作单指触摸（桌面调试触摸流程），隐含 TouchCapable
	EmulateTouch bool
	// Debug 显示点击区域和计数，启用 F2 复制快照
	Debug bool
	// Seed 随机种子（文案抽取、粒子、漂浮符号偏移）
	Seed int64
	// PointerSource 输入来源，为 nil 时读取 Ebitengine
	PointerSource utils.PointerSource
}

// ClickerScene 蘑菇点击场景（组合根）
//
// 职责：
//   - 创建 ECS 世界、系统和静态界面（背景区域、顶部面板、分数）
//   - 以 ECS 实现核心的协作者接口（阶段精灵、分数、粒子、提示面板）
//   - 每帧轮询指针输入，经 InputClassifier 去重后交给 ProgressionController
type ClickerScene struct {
	settings *config.Settings
	services Services
	opts     Options

	entityManager  *ecs.EntityManager
	lifetimeSystem *systems.LifetimeSystem
	particleSystem *systems.ParticleSystem
	tweenSystem    *systems.TweenSystem
	buttonSystem   *systems.ButtonSystem
	renderSystem   *systems.RenderSystem

	poller     *utils.PointerPoller
	classifier *game.InputClassifier
	controller *game.ProgressionController
	winFlow    *game.WinFlow
	rng        *rand.Rand

	background  color.RGBA
	areaEntity  ecs.EntityID
	scoreEntity ecs.EntityID
	events      []utils.PointerEvent

	// 键盘与剪贴板，测试中替换
	keyJustPressed func(ebiten.Key) bool
	writeClipboard func(string) error
}

// NewClickerScene 创建点击场景
//
// 参数：
//   - settings: 已校验的静态配置
//   - services: 资源、声音、震动、偏好
//   - opts: 输入与调试参数
//
// 返回：
//   - *ClickerScene: 场景实例
//   - error: 配置无效或资源缺失
func NewClickerScene(settings *config.Settings, services Services, opts Options) (*ClickerScene, error) {
	if settings == nil {
		return nil, errors.New("settings are required")
	}
	if services.Loader == nil || services.Sound == nil {
		return nil, errors.New("resource loader and sound player are required")
	}
	if services.Haptics == nil {
		services.Haptics = game.NewHapticManager(nil, nil)
	}

	// 阶段精灵和关闭按钮在运行期才创建，缺失时在这里失败而不是在胜利时卡住
	for _, id := range settings.ReferencedSprites() {
		if _, err := services.Loader.LoadImage(id); err != nil {
			return nil, fmt.Errorf("sprite %s unavailable: %w", id, err)
		}
	}

	em := ecs.NewEntityManager()
	s := &ClickerScene{
		settings:       settings,
		services:       services,
		opts:           opts,
		entityManager:  em,
		lifetimeSystem: systems.NewLifetimeSystem(em),
		particleSystem: systems.NewParticleSystem(em),
		tweenSystem:    systems.NewTweenSystem(em),
		buttonSystem:   systems.NewButtonSystem(em),
		renderSystem:   systems.NewRenderSystem(em),
		poller:         utils.NewPointerPoller(opts.PointerSource, opts.EmulateTouch),
		classifier:     game.NewInputClassifier(opts.TouchCapable || opts.EmulateTouch),
		rng:            rand.New(rand.NewSource(opts.Seed)),
		background:     config.MustColor(settings.Scene.Background, color.RGBA{R: 0x26, G: 0x11, B: 0x52, A: 0xFF}),
		keyJustPressed: inpututil.IsKeyJustPressed,
		writeClipboard: clipboard.WriteAll,
	}

	if err := s.buildStaticUI(); err != nil {
		return nil, err
	}

	winFlow, err := game.NewWinFlow(&ecsNotificationView{scene: s}, services.Sound, settings.Notices, s.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to create win flow: %w", err)
	}

	controller, err := game.NewProgressionController(
		game.ControllerConfigFromSettings(settings),
		game.Collaborators{
			Stage:   &ecsStageRenderer{scene: s},
			Score:   &scoreBoard{scene: s},
			Effects: &ecsEffectPlayer{scene: s},
			Sound:   services.Sound,
			Haptic:  services.Haptics,
		},
		winFlow,
		s.rng,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create progression controller: %w", err)
	}

	s.winFlow = winFlow
	s.controller = controller
	s.controller.Start()

	log.Printf("[ClickerScene] Ready: limit=%d growPoints=%v touch=%v debug=%v",
		settings.ClickLimit, settings.GrowPoints, s.classifier.TouchCapable(), opts.Debug)
	return s, nil
}

// buildStaticUI 创建背景区域、顶部面板和分数文字
func (s *ClickerScene) buildStaticUI() error {
	var err error

	s.areaEntity, err = entities.NewClickableArea(s.entityManager, s.services.Loader, s.settings)
	if err != nil {
		return err
	}
	if _, err = entities.NewTopPanel(s.entityManager, s.services.Loader, s.settings.TopPanel); err != nil {
		return err
	}
	s.scoreEntity, err = entities.NewScoreText(s.entityManager, s.services.Loader, s.settings.TopPanel, s.settings.Score, 0)
	return err
}

// Update 每帧更新：输入 -> 快捷键 -> 系统 -> 清理
func (s *ClickerScene) Update(deltaTime float64) {
	s.events = s.poller.Poll(s.events[:0])

	cx, cy := s.poller.CursorPosition()
	s.buttonSystem.UpdateHover(cx, cy)

	for _, ev := range s.events {
		s.handlePointer(ev)
	}

	s.handleKeys()

	s.services.Haptics.Update(deltaTime)
	s.tweenSystem.Update(deltaTime)
	s.particleSystem.Update(deltaTime)
	s.lifetimeSystem.Update(deltaTime)

	s.entityManager.RemoveMarkedEntities()
}

// handlePointer 处理一个原始指针事件
func (s *ClickerScene) handlePointer(ev utils.PointerEvent) {
	switch ev.Kind {
	case utils.PointerTouchStart:
		s.classifier.OnTouchStart(ev.ActiveTouches)

	case utils.PointerClick:
		tap, ok := s.classifier.OnClick(ev.X, ev.Y)
		if !ok {
			return
		}

		// 按钮在最上层，优先命中
		if s.buttonSystem.HandleClick(tap.Pos.X, tap.Pos.Y) {
			return
		}
		if s.winFlow.State() != game.FlowPlaying {
			return
		}
		if !config.InArea(s.settings, tap.Pos.X, tap.Pos.Y) {
			return
		}
		s.controller.OnTap(tap)
	}
}

// handleKeys 偏好开关和调试快捷键
func (s *ClickerScene) handleKeys() {
	if s.services.Settings != nil {
		if s.keyJustPressed(ebiten.KeyM) {
			log.Printf("[ClickerScene] Sound enabled: %v", s.services.Settings.ToggleSound())
		}
		if s.keyJustPressed(ebiten.KeyV) {
			enabled := s.services.Settings.ToggleHaptics()
			if !enabled {
				s.services.Haptics.Stop()
			}
			log.Printf("[ClickerScene] Haptics enabled: %v", enabled)
		}
	}

	if s.opts.Debug && s.keyJustPressed(ebiten.KeyF2) {
		s.copySnapshot()
	}
}

// Draw 绘制背景色和所有实体
func (s *ClickerScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)

	if s.opts.Debug {
		s.drawDebug(screen)
	}
}

// OnExit 场景退出时保存偏好设置（进度不保存）
func (s *ClickerScene) OnExit() {
	if s.services.Settings == nil {
		return
	}
	if err := s.services.Settings.Save(); err != nil {
		log.Printf("[ClickerScene] Warning: failed to save settings: %v", err)
	}
}

// Controller 返回进度控制器
func (s *ClickerScene) Controller() *game.ProgressionController {
	return s.controller
}

// WinFlow 返回胜利流程
func (s *ClickerScene) WinFlow() *game.WinFlow {
	return s.winFlow
}

// EntityManager 返回场景的实体管理器
func (s *ClickerScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
