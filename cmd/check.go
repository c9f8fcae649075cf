package cmd

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"math/rand"
	"os"
	"path/filepath"

	synth "github.com/decker502/shroom/internal/audio"
	"github.com/decker502/shroom/pkg/app"
	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/embedded"
	"github.com/decker502/shroom/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate settings, sprites and sound cues without opening a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		exportDir, _ := cmd.Flags().GetString("export-wav")

		settings, err := app.LoadSettings(path)
		if err != nil {
			return err
		}
		return runCheck(cmd.OutOrStdout(), settings, exportDir)
	},
}

func init() {
	checkCmd.Flags().String("export-wav", "", "Write every synthesized cue to <dir>/<cue>.wav")
}

// runCheck 检查精灵和提示音，可选导出 WAV
func runCheck(w io.Writer, settings *config.Settings, exportDir string) error {
	fmt.Fprintf(w, "settings: limit=%d growPoints=%v notices=%d\n",
		settings.ClickLimit, settings.GrowPoints, len(settings.Notices))

	for _, id := range settings.Sprites {
		width, height, err := spriteSize(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "sprite %-16s %4dx%d\n", id, width, height)
	}

	if exportDir != "" {
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", exportDir, err)
		}
	}

	rng := rand.New(rand.NewSource(1))
	for _, cue := range config.CueOrder {
		sc, ok := settings.Sounds[cue]
		if !ok {
			return fmt.Errorf("%w: %s", config.ErrMissingSound, cue)
		}
		params, err := game.SoundParams(sc)
		if err != nil {
			return fmt.Errorf("sound %s: %w", cue, err)
		}
		fmt.Fprintf(w, "sound  %-16s %v\n", cue, params.TotalDuration())

		if exportDir == "" {
			continue
		}
		if err := exportWAV(filepath.Join(exportDir, cue+".wav"), params, rng); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "ok")
	return nil
}

// spriteSize 读取嵌入精灵的尺寸（只解码文件头）
func spriteSize(id string) (int, int, error) {
	f, err := embedded.Open(game.SpritePath(id))
	if err != nil {
		return 0, 0, fmt.Errorf("sprite %s: %w", id, err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("sprite %s: %w", id, err)
	}
	return cfg.Width, cfg.Height, nil
}

// exportWAV 把提示音写成 16-bit 立体声 WAV 文件
func exportWAV(path string, params synth.Params, rng *rand.Rand) error {
	streamer, err := synth.Build(params, synth.SampleRate, rng)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	format := beep.Format{SampleRate: synth.SampleRate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, streamer, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
