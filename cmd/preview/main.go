// preview renders the desk scene to a PNG on the CPU, without a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"deskscene/internal/config"
	"deskscene/internal/logger"
	"deskscene/internal/preview"
	"deskscene/internal/scene"
	"deskscene/internal/snapshot"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	flagOut     = flag.String("out", "preview.png", "Output PNG path")
	flagWorkers = flag.Int("workers", 0, "Rows shaded in parallel (0 = all CPUs)")
	flagYaw     = flag.Float64("yaw", 0, "Camera yaw in degrees (overrides config)")
	flagPitch   = flag.Float64("pitch", 0, "Camera pitch in degrees (overrides config)")
	flagPos     = flag.String("pos", "", "Camera position as x,y,z (overrides config)")
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		logger.Error("preview failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run(cfg *config.Config) error {
	if err := rejectViewerFlags(); err != nil {
		return err
	}
	if err := applyCameraFlags(cfg); err != nil {
		return err
	}

	state := scene.NewState(cfg)
	textures, err := state.Scene.LoadTextures(cfg.Scene.TextureSize, cfg.Scene.MaxTextureSize)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	img, err := preview.New(state, textures, preview.WithWorkers(*flagWorkers)).
		Render(ctx, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	if err := snapshot.WritePNG(*flagOut, img); err != nil {
		return err
	}

	logger.Info("Preview written",
		zap.String("path", *flagOut),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Stringer("projection", state.Projection.Mode),
		zap.Duration("took", time.Since(start)))
	return nil
}

// viewerOnlyFlags are shared config flags that have no effect on a still render.
var viewerOnlyFlags = map[string]bool{"fps": true, "save-config": true}

// rejectViewerFlags fails when a viewer-only flag was given on the command line.
func rejectViewerFlags() error {
	var given []string
	flag.Visit(func(f *flag.Flag) {
		if viewerOnlyFlags[f.Name] {
			given = append(given, "-"+f.Name)
		}
	})
	if len(given) > 0 {
		return fmt.Errorf("flags %s only apply to the interactive viewer", strings.Join(given, ", "))
	}
	return nil
}

// applyCameraFlags overrides the camera only for flags given on the command line.
func applyCameraFlags(cfg *config.Config) error {
	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "yaw":
			cfg.Camera.Yaw = float32(*flagYaw)
		case "pitch":
			cfg.Camera.Pitch = float32(*flagPitch)
		case "pos":
			var p mgl32.Vec3
			if _, scanErr := fmt.Sscanf(*flagPos, "%g,%g,%g", &p[0], &p[1], &p[2]); scanErr != nil {
				err = fmt.Errorf("invalid -pos %q: %w", *flagPos, scanErr)
				return
			}
			cfg.Camera.Position = p
		}
	})
	return err
}
