// Package assets loads the sprites the game draws. Sprites ship embedded in
// the binary and can be replaced by pointing the loader at a directory with
// files of the same names.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/vovakirdan/detector-run/internal/core"
)

// ErrAssetsUnavailable is returned when a required sprite cannot be loaded.
// The game loop must not start without all sprites.
var ErrAssetsUnavailable = errors.New("assets unavailable")

// Sprite file names, shared by the embedded set and override directories.
const (
	DetectorFile = "detector.txt"
	BonusFile    = "coin.txt"
	HazardFile   = "can.txt"
)

//go:embed sprites/*.txt
var embedded embed.FS

// Sprites holds the three images the game needs.
type Sprites struct {
	Detector core.Sprite
	Bonus    core.Sprite
	Hazard   core.Sprite
}

// LoadSprites loads all sprites from dir, or the embedded set when dir is empty.
// Any failure wraps ErrAssetsUnavailable and names the file.
func LoadSprites(dir string) (Sprites, error) {
	fsys, err := source(dir)
	if err != nil {
		return Sprites{}, err
	}

	var s Sprites
	for _, slot := range []struct {
		file     string
		fallback core.Color
		dst      *core.Sprite
	}{
		{DetectorFile, core.ColorCyan, &s.Detector},
		{BonusFile, core.ColorYellow, &s.Bonus},
		{HazardFile, core.ColorRed, &s.Hazard},
	} {
		sp, err := loadSprite(fsys, slot.file, slot.fallback)
		if err != nil {
			return Sprites{}, err
		}
		*slot.dst = sp
	}
	return s, nil
}

func source(dir string) (fs.FS, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "sprites")
		if err != nil {
			return nil, fmt.Errorf("assets: %w: %v", ErrAssetsUnavailable, err)
		}
		return sub, nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w: %v", ErrAssetsUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %w: %s is not a directory", ErrAssetsUnavailable, dir)
	}
	return os.DirFS(dir), nil
}

func loadSprite(fsys fs.FS, name string, fallback core.Color) (core.Sprite, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return core.Sprite{}, fmt.Errorf("assets: %w: %s: %v", ErrAssetsUnavailable, name, err)
	}
	sp, err := core.ParseSprite(string(data), fallback)
	if err != nil {
		return core.Sprite{}, fmt.Errorf("assets: %w: %s: %v", ErrAssetsUnavailable, name, err)
	}
	return sp, nil
}
