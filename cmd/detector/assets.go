package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/detector-run/internal/assets"
	"github.com/vovakirdan/detector-run/internal/core"
)

var assetsCmd = &cobra.Command{
	Use:   "assets [dir]",
	Short: "Check a sprite directory",
	Long: `Load the sprites the game needs and report their sizes.

A sprite directory holds three text files: detector.txt, coin.txt and
can.txt. Lines starting with ';' are comments, and a "; color=<name>"
line sets the sprite color. Without a directory the built-in sprites are
checked.

Examples:
  detector assets
  detector assets ./my-sprites`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAssets,
}

func runAssets(cmd *cobra.Command, args []string) {
	dir := flagAssets
	if len(args) == 1 {
		dir = args[0]
	}

	sprites, err := assets.LoadSprites(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, assets.ErrAssetsUnavailable) {
			fmt.Fprintln(os.Stderr, "The game will not start with this sprite directory.")
		}
		os.Exit(1)
	}

	source := dir
	if source == "" {
		source = "built-in"
	}
	fmt.Printf("Sprites (%s):\n\n", source)
	for _, s := range []struct {
		file   string
		sprite core.Sprite
	}{
		{assets.DetectorFile, sprites.Detector},
		{assets.BonusFile, sprites.Bonus},
		{assets.HazardFile, sprites.Hazard},
	} {
		fmt.Printf("  %-14s %2dx%-2d\n", s.file, s.sprite.Width(), s.sprite.Height())
	}
}
