package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"sortvis/cmd"
	"sortvis/internal/audio"
	"sortvis/internal/config"
	applog "sortvis/internal/log"
	"sortvis/internal/pipeline"
	"sortvis/internal/prng"
	"sortvis/internal/render"
	"sortvis/internal/sorts"
	"sortvis/internal/transport"
	"sortvis/internal/transport/udp"
	"sortvis/pkg/build"
)

// main is the entry point for the sort visualizer.
// The program flow is divided into three phases:
//
// 1. Startup Phase:
//   - Initialize build information
//   - Parse command line arguments and configuration
//   - Execute one-off commands if requested
//   - Open the audio file and telemetry transports
//
// 2. Render Phase:
//   - Run every stage, streaming PPM frames to stdout
//
// 3. Shutdown Phase:
//   - Close the audio file, patching lengths when finalizing
//   - Close telemetry transports
//
// stdout carries nothing but frames. Everything else goes to stderr.
func main() {
	// ==================== STARTUP PHASE ====================

	buildErr := build.Initialize()

	config, err := cmd.ParseArgs(os.Args[1:])
	if err != nil {
		applog.Fatalf("%v", err)
	}
	if config == nil {
		return // help or version
	}

	level, ok := applog.ParseLevel(config.LogLevel)
	if !ok {
		applog.Warnf("Unknown log level %q, using %s", config.LogLevel, level)
	}
	applog.SetLevel(level)
	if buildErr != nil {
		applog.Debugf("Development build: %v", buildErr)
	}

	// Handle one-off commands that don't render anything
	if config.Command != "" {
		if err := executeCommand(config.Command); err != nil {
			applog.Fatalf("%v", err)
		}
		return
	}

	// Stop at the next frame on SIGINT/SIGTERM so the audio file is closed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config); err != nil {
		applog.Fatalf("%v", err)
	}
}

// run renders the configured stages to stdout.
func run(ctx context.Context, cfg *config.Config) (err error) {
	seed, err := cfg.SeedValue()
	if err != nil {
		return err
	}
	mode, err := sorts.ParseShuffleMode(cfg.Sort.Shuffle)
	if err != nil {
		return err
	}

	var audioOut audio.Writer
	if cfg.Audio.Output != "" {
		samplesPerFrame := cfg.Audio.SampleRate / cfg.Video.FPS
		audioOut, err = audio.Create(cfg.Audio.Output, cfg.Audio.SampleRate, samplesPerFrame, cfg.Audio.Finalize)
		if err != nil {
			return err
		}
		applog.Infof("Writing audio to %s", cfg.Audio.Output)
	}

	telemetry, err := openTelemetry(cfg.Telemetry)
	if err != nil {
		if audioOut != nil {
			audioOut.Close()
		}
		return err
	}

	// ==================== RENDER PHASE ====================

	p := pipeline.New(pipeline.Config{
		Size:        cfg.Video.Size,
		Points:      cfg.Video.Points,
		FPS:         cfg.Video.FPS,
		SampleRate:  cfg.Audio.SampleRate,
		MinHz:       cfg.Audio.MinHz,
		MaxHz:       cfg.Audio.MaxHz,
		SkipSilence: cfg.Audio.Silence == config.SilenceSkip,
	}, render.NewPPMWriter(os.Stdout), audioOut, telemetry)

	// ==================== SHUTDOWN PHASE ====================

	defer func() {
		if cerr := p.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	runner := &pipeline.Runner{
		Emitter: p,
		Points:  cfg.Video.Points,
		Rand:    prng.New(seed),
		Shuffle: mode,
	}
	stages := pipeline.Plan(cfg.Sort.Algorithms, cfg.Sort.PauseFrames, cfg.Sort.WaitSeconds*cfg.Video.FPS)

	applog.Infof("Rendering %d stages: %d points, %dx%d at %d fps, seed %#x, %s shuffle",
		len(stages), cfg.Video.Points, cfg.Video.Size, cfg.Video.Size, cfg.Video.FPS, seed, mode)

	stats, err := runner.Run(ctx, stages)
	if errors.Is(err, context.Canceled) {
		applog.Warnf("Interrupted after %d frames", stats.Frames)
		return nil
	}
	if err != nil {
		return err
	}

	applog.Infof("Done: %d frames, %d exchanges", stats.Frames, stats.Exchanges)
	return nil
}

// openTelemetry builds the configured transports. It returns nil when none
// are enabled.
func openTelemetry(cfg config.TelemetryConfig) (transport.Transport, error) {
	var transports transport.Multi

	if cfg.Log {
		transports = append(transports, transport.NewLoggingTransport())
	}
	if cfg.WebSocketAddr != "" {
		ws, err := transport.NewWebSocketTransport(cfg.WebSocketAddr)
		if err != nil {
			transports.Close()
			return nil, err
		}
		applog.Infof("Telemetry: ws://%s/ws", ws.Addr())
		transports = append(transports, ws)
	}
	if cfg.UDPTarget != "" {
		pub, err := udp.Dial(cfg.UDPTarget)
		if err != nil {
			transports.Close()
			return nil, err
		}
		applog.Infof("Telemetry: udp://%s", cfg.UDPTarget)
		transports = append(transports, pub)
	}

	if len(transports) == 0 {
		return nil, nil
	}
	return transports, nil
}

// executeCommand handles one-off commands that don't render frames, such
// as listing the available algorithms.
func executeCommand(command string) error {
	switch command {
	case "list":
		for _, alg := range sorts.All() {
			fmt.Printf("  %d: %s\n", alg.ID, alg.Name)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
