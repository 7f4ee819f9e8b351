package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/scenekit/scenekit/internal/config"
	"github.com/scenekit/scenekit/internal/core/event"
	"github.com/scenekit/scenekit/internal/data"
	"github.com/scenekit/scenekit/internal/scene"
	"github.com/scenekit/scenekit/internal/system"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// shutdownDrainFrames bounds the frames run after a signal to flush events.
const shutdownDrainFrames = 4

func run() error {
	// 1. Load config
	cfgPath := "config/scenekit.toml"
	if p := os.Getenv("SCENEKIT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, os.ErrNotExist) && os.Getenv("SCENEKIT_CONFIG") == "" {
		cfg, err = config.Default(), nil
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	prof := startProfile(cfg.Profile)
	defer prof.Stop()

	// 3. Build the scene context and window state
	ctx := scene.NewContext(cfg.SceneOptions(), log.Named("scene"))
	ctx.Resources.Window.Title = cfg.Window.Title
	ctx.Resources.Window.Width = cfg.Window.Width
	ctx.Resources.Window.Height = cfg.Window.Height

	if cfg.Scene.File != "" {
		sceneFile, err := data.LoadScene(cfg.Scene.File)
		if err != nil {
			return fmt.Errorf("load scene %s: %w", cfg.Scene.File, err)
		}
		if _, err := sceneFile.Spawn(ctx, log.Named("data")); err != nil {
			return fmt.Errorf("spawn scene %s: %w", cfg.Scene.File, err)
		}
	}

	// 4. Create frame systems
	bus := event.NewBus()
	frame := system.NewFrame(ctx, bus, cfg.CameraControls(), log)
	if !cfg.Scene.Headless {
		scene.AttachRenderer(ctx, newLogRenderer(log.Named("renderer")))
	}
	event.Emit(bus, event.Resized{Width: cfg.Window.Width, Height: cfg.Window.Height})

	// 5. Start frame loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Frame.Rate)
	defer ticker.Stop()

	log.Info("frame loop started",
		zap.String("title", cfg.Window.Title),
		zap.Duration("rate", cfg.Frame.Rate),
		zap.Int("entities", ctx.World.Len()),
		zap.Bool("headless", cfg.Scene.Headless),
	)

	for {
		select {
		case <-ticker.C:
			frame.Run(cfg.Frame.Rate)
			if frame.ShouldExit() {
				log.Info("exit requested", zap.Uint64("frames", frame.Frames()))
				return nil
			}
			if cfg.Frame.MaxFrames > 0 && frame.Frames() >= cfg.Frame.MaxFrames {
				log.Info("frame limit reached", zap.Uint64("frames", frame.Frames()))
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal received", zap.String("signal", sig.String()))
			event.Emit(bus, event.CloseRequested{})
			drained := frame.Drain(cfg.Frame.Rate, shutdownDrainFrames)
			log.Info("stopped",
				zap.Uint64("frames", frame.Frames()),
				zap.Int("drain_frames", drained),
			)
			return nil
		}
	}
}

// newLogger builds the root logger from [logging]. Every entry carries the
// window title so logs from several scenekit processes can be told apart.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	switch cfg.Logging.Format {
	case "json":
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	// per-frame debug entries repeat every tick; sampling would drop them
	zapCfg.Sampling = nil
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	log, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Named("scenekit").With(zap.String("window", cfg.Window.Title)), nil
}
