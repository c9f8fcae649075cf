package cmd

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/shroom/pkg/config"
	"github.com/decker502/shroom/pkg/embedded"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// setupCheck 使用仓库中的配置和内存中的精灵
func setupCheck(t *testing.T) *config.Settings {
	t.Helper()
	data, err := os.ReadFile("../data/settings.yaml")
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	settings, err := config.ParseSettings(data, "settings.yaml")
	if err != nil {
		t.Fatalf("ParseSettings failed: %v", err)
	}

	assets := fstest.MapFS{}
	for _, id := range settings.Sprites {
		assets["assets/sprites/"+id+".png"] = &fstest.MapFile{Data: encodePNG(t, 16, 8)}
	}
	embedded.Init(assets, fstest.MapFS{})
	t.Cleanup(func() { embedded.Init(fstest.MapFS{}, fstest.MapFS{}) })
	return settings
}

func TestRunCheck(t *testing.T) {
	settings := setupCheck(t)

	var out bytes.Buffer
	if err := runCheck(&out, settings, ""); err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}

	report := out.String()
	for _, want := range []string{"limit=100", "mushroomXS", "16x8", "winner", "ok"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRunCheckExportsWAV(t *testing.T) {
	settings := setupCheck(t)
	dir := filepath.Join(t.TempDir(), "cues")

	if err := runCheck(&bytes.Buffer{}, settings, dir); err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}

	for _, cue := range config.CueOrder {
		data, err := os.ReadFile(filepath.Join(dir, cue+".wav"))
		if err != nil {
			t.Fatalf("missing %s.wav: %v", cue, err)
		}
		if len(data) <= 44 || string(data[:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
			t.Errorf("%s.wav is not a WAV file (%d bytes)", cue, len(data))
		}
	}
}

func TestRunCheckErrors(t *testing.T) {
	t.Run("missing sprite", func(t *testing.T) {
		settings := setupCheck(t)
		settings.Sprites = append(settings.Sprites, "ghost")
		if err := runCheck(&bytes.Buffer{}, settings, ""); err == nil {
			t.Error("expected an error for a missing sprite")
		}
	})

	t.Run("missing sound", func(t *testing.T) {
		settings := setupCheck(t)
		delete(settings.Sounds, config.CueClosed)
		err := runCheck(&bytes.Buffer{}, settings, "")
		if !errors.Is(err, config.ErrMissingSound) {
			t.Errorf("expected ErrMissingSound, got %v", err)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	if !strings.HasPrefix(out.String(), "shroom ") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestAppConfigFlags(t *testing.T) {
	if err := rootCmd.ParseFlags([]string{"--touch", "--debug", "--seed", "42", "--config", "x.yaml", "-v"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}
	cfg, err := appConfig(rootCmd)
	if err != nil {
		t.Fatalf("appConfig failed: %v", err)
	}
	if !cfg.Touch || !cfg.Debug || !cfg.Verbose || cfg.Seed != 42 || cfg.ConfigPath != "x.yaml" {
		t.Errorf("cfg = %+v", cfg)
	}
}
