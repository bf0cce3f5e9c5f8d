package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/younwookim/flipstrike/internal/application/game"
	"github.com/younwookim/flipstrike/internal/application/scene/playing"
	"github.com/younwookim/flipstrike/internal/infrastructure/config"
	"github.com/younwookim/flipstrike/internal/infrastructure/logger"
)

//go:embed configs
var configFS embed.FS

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// run parses flags and runs the game or a headless replay. Deferred cleanup runs
// before main exits.
func run(args []string) error {
	// Parse command line flags
	flags := flag.NewFlagSet("game", flag.ContinueOnError)
	configDir := flags.String("config", "", "Load configs from a directory instead of the embedded defaults")
	recordFlag := flags.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flags.String("replay", "", "Replay a recording headlessly and print its gestures")
	watch := flags.Bool("watch", false, "Reload game.yaml on change (requires -config); applies on restart")
	logLevel := flags.String("log-level", "", "Log level: debug, info, warn, error (overrides game.yaml)")
	logFormat := flags.String("log-format", "", "Log format: text or json (overrides game.yaml)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	// Replays do not need configs or a window
	if *replayFlag != "" {
		logger.New(logger.Config{Level: *logLevel, Format: *logFormat})
		if err := runReplay(*replayFlag, os.Stdout); err != nil {
			return fmt.Errorf("replay failed: %w", err)
		}
		return nil
	}

	loader, err := newLoader(*configDir)
	if err != nil {
		return fmt.Errorf("failed to open configs: %w", err)
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level, format := cfg.Logging.Level, cfg.Logging.Format
	if *logLevel != "" {
		level = *logLevel
	}
	if *logFormat != "" {
		format = *logFormat
	}
	log := logger.New(logger.Config{Level: level, Format: format})

	opts := playing.Options{
		RecordPath: *recordFlag,
		Logger:     log,
	}

	if *watch {
		if *configDir == "" {
			log.Warn("-watch ignored without -config")
		} else {
			watcher, err := config.NewWatcher(*configDir)
			if err != nil {
				return fmt.Errorf("failed to watch configs: %w", err)
			}
			defer watcher.Close()
			go func() {
				for err := range watcher.Errors {
					log.Warn("config watcher error", "err", err)
				}
			}()
			opts.Loader = loader
			opts.Reloads = watcher.Events
			log.Info("watching configs", "dir", *configDir)
		}
	}

	scene, err := playing.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}

	// Run game
	if err := game.New(scene, cfg.Display).Run("Flipstrike"); err != nil {
		return fmt.Errorf("game exited with error: %w", err)
	}
	return nil
}

// newLoader reads configs from dir, or from the embedded defaults when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys), nil
}
