// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 cmd 包调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/game"
	"github.com/decker502/shroom/pkg/scenes"
	"github.com/decker502/shroom/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "shroom"

// sampleRate 音频上下文采样率，与合成器一致
const sampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 磁盘上的配置文件，为空时使用嵌入的 data/settings.yaml
	ConfigPath string
	// Touch 在桌面端按触摸设备处理输入（鼠标模拟单指触摸）
	Touch bool
	// Debug 显示调试覆盖层
	Debug bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	settings        *config.Settings
	sceneManager    *game.SceneManager
	settingsManager *game.SettingsManager
	verbose         bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings, err := LoadSettings(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	settingsManager := openSettingsManager()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// 资源：精灵、字体、提示音
	resourceManager := game.NewResourceManager()
	if err := resourceManager.LoadAssets(settings.Sprites, settings.Font); err != nil {
		return nil, fmt.Errorf("资源加载失败: %w", err)
	}
	if err := resourceManager.LoadSoundCues(settings.Sounds, rand.New(rand.NewSource(seed))); err != nil {
		return nil, fmt.Errorf("提示音合成失败: %w", err)
	}

	// 初始化音频
	audioContext := audio.NewContext(sampleRate)
	audioManager := game.NewAudioManager(audioContext, resourceManager, settingsManager)
	audioManager.Preload([]game.SoundCue{game.CueClick, game.CueUp, game.CueWinner, game.CueClosed})
	log.Printf("[App] AudioManager initialized")

	hapticManager := game.NewHapticManager(settingsManager, game.EbitenVibrate)

	touchCapable := utils.IsMobile() || utils.IsTouchCapable()
	services := scenes.Services{
		Loader:   resourceManager,
		Sound:    audioManager,
		Haptics:  hapticManager,
		Settings: settingsManager,
	}

	// 每次创建场景都从种子阶段开始；F5 重开使用新的随机种子
	round := int64(0)
	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() (game.Scene, error) {
		opts := scenes.Options{
			TouchCapable: touchCapable,
			EmulateTouch: utils.EmulatesTouch(cfg.Touch),
			Debug:        cfg.Debug,
			Seed:         seed + round,
		}
		round++

		scene, err := scenes.NewClickerScene(settings, services, opts)
		if err != nil {
			return nil, err
		}
		return scene, nil
	})
	if err := sceneManager.Reload(); err != nil {
		return nil, fmt.Errorf("场景创建失败: %w", err)
	}

	if settingsManager.GetSettings().Fullscreen && !utils.IsMobile() {
		ebiten.SetFullscreen(true)
	}

	log.Printf("[App] Started: touch=%v seed=%d", touchCapable, seed)

	return &App{
		settings:        settings,
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		verbose:         cfg.Verbose,
	}, nil
}

// LoadSettings 加载配置：指定路径时读取磁盘文件，否则读取嵌入的默认配置
func LoadSettings(path string) (*config.Settings, error) {
	var (
		settings *config.Settings
		err      error
	)
	if path != "" {
		settings, err = config.LoadSettingsFile(path)
	} else {
		settings, err = config.LoadSettings(config.DefaultSettingsPath)
	}
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	return settings, nil
}

// openSettingsManager 打开偏好存储
// 存储不可用时降级为仅内存设置
func openSettingsManager() *game.SettingsManager {
	var gdataManager *gdata.Manager

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage directory unavailable: %v", err)
	} else {
		m, err := gdata.Open(gdata.Config{AppName: AppName})
		if err != nil {
			log.Printf("[App] Warning: gdata unavailable, preferences will not persist: %v", err)
		} else {
			gdataManager = m
			if path := utils.GetStoragePath(); path != "" {
				log.Printf("[App] Storage path: %s", path)
			}
		}
	}

	sm, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	return sm
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.sceneManager.Shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.settings.Scene.Width, a.settings.Scene.Height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.settings.Scene.Width, a.settings.Scene.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// F5 开始新一局（进度不保存）
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if err := a.sceneManager.Reload(); err != nil {
			log.Printf("[App] Reload failed: %v", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen 切换全屏并记住偏好
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save fullscreen preference: %v", err)
	}
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制游戏画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.Scene.Width, a.settings.Scene.Height
}

// Settings 返回已加载的配置
func (a *App) Settings() *config.Settings {
	return a.settings
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存设置
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Run 打开窗口并运行游戏循环，直到窗口关闭
func Run(cfg Config, title string) error {
	gameApp, err := NewApp(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(gameApp.settings.Scene.Width, gameApp.settings.Scene.Height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(gameApp); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
