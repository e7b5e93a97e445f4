package core

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEmptySprite is returned when a sprite source has no drawable rows.
var ErrEmptySprite = errors.New("sprite has no rows")

// Sprite is a small rune picture drawn in a single color.
// All rows have the same width.
type Sprite struct {
	Rows  [][]rune
	Color Color
}

// Width returns the sprite width in runes.
func (sp Sprite) Width() int {
	if len(sp.Rows) == 0 {
		return 0
	}
	return len(sp.Rows[0])
}

// Height returns the number of rows.
func (sp Sprite) Height() int {
	return len(sp.Rows)
}

// ParseSprite reads a sprite from its text form.
//
// Lines starting with ';' are directives or comments. The only directive is
// "; color=<name>", which overrides the fallback color. Remaining lines are
// the picture; trailing blank lines are dropped and short rows are padded
// with spaces.
func ParseSprite(src string, fallback Color) (Sprite, error) {
	sp := Sprite{Color: fallback}
	width := 0

	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, ";") {
			if name, ok := strings.CutPrefix(strings.TrimSpace(line[1:]), "color="); ok {
				c, known := ParseColor(name)
				if !known {
					return Sprite{}, fmt.Errorf("sprite: unknown color %q", name)
				}
				sp.Color = c
			}
			continue
		}
		sp.Rows = append(sp.Rows, []rune(line))
		width = max(width, utf8.RuneCountInString(line))
	}
	if err := sc.Err(); err != nil {
		return Sprite{}, fmt.Errorf("sprite: %w", err)
	}

	for len(sp.Rows) > 0 && strings.TrimSpace(string(sp.Rows[len(sp.Rows)-1])) == "" {
		sp.Rows = sp.Rows[:len(sp.Rows)-1]
	}
	if len(sp.Rows) == 0 || width == 0 {
		return Sprite{}, ErrEmptySprite
	}

	for i, row := range sp.Rows {
		for len(row) < width {
			row = append(row, ' ')
		}
		sp.Rows[i] = row
	}
	return sp, nil
}
