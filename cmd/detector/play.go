package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/detector-run/internal/assets"
	"github.com/vovakirdan/detector-run/internal/audio"
	"github.com/vovakirdan/detector-run/internal/config"
	"github.com/vovakirdan/detector-run/internal/core"
	"github.com/vovakirdan/detector-run/internal/games/detector"
	"github.com/vovakirdan/detector-run/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game.

Controls:
  Space/Up/W/click - Jump, or restart after game over
  R                - Restart (after game over)
  P/Esc            - Pause
  Ctrl+S           - Save a text screenshot to ~/.detector/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Speed ramps up at half the normal rate
  normal - Default ramp
  hard   - Speed ramps up 1.5x faster
  fixed  - Speed never changes

Examples:
  detector play
  detector play --difficulty easy
  detector play --config ./my-detector.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	logger := newLogger(os.Stderr)

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sprites, err := assets.LoadSprites(flagAssets)
	if err != nil {
		return err
	}

	gameLog, closeLog, err := openGameLog(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = max(h-1, 1) // footer line
	}

	var cues *audio.Player
	if cfg.Audio.Enabled && !flagMute {
		cues = audio.NewPlayer(cfg.Audio, gameLog)
		if err := cues.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing silently", "error", err)
		}
		defer cues.Close()
	}

	game := detector.New(cfg, sprites)

	if err := tui.Run(game, cues, gameLog, runtime); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	final := game.State()
	logger.Info("bye", "score", final.Score)
	return nil
}

// loadConfig resolves the configuration from files, flags and environment.
func loadConfig() (config.DetectorConfig, error) {
	cfg, err := config.LoadDetector(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	config.ApplyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openGameLog returns the logger used while the alt-screen owns the
// terminal. Without a path, messages are dropped.
func openGameLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f), func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}, nil
}
