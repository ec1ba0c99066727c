package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akshaywadatkar/temple-run/internal/core"
	"github.com/akshaywadatkar/temple-run/internal/game"
	"github.com/akshaywadatkar/temple-run/internal/platform/tui"
	"github.com/akshaywadatkar/temple-run/internal/storage"
)

var (
	flagConfig string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a run in the current terminal.

Controls:
  A/D, Left/Right  - Change lane
  Space/Up/W       - Jump (also starts the run)
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot

Examples:
  templerun play
  templerun play --seed 42
  templerun play --config ./my-runner.yaml
  templerun play --player speedrunner`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record scores under (default: OS user)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)

	player := flagPlayer
	if player == "" {
		if u, err := user.Current(); err == nil {
			player = u.Username
		}
	}

	// Open the score store; play on without it if unavailable
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: scores disabled: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	if err := tui.Run(game.New(), store, player, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
