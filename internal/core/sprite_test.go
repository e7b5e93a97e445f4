package core

import (
	"errors"
	"testing"
)

func TestParseSprite(t *testing.T) {
	src := "; detector sprite\n; color=cyan\n/^\\\n[o]\n |\n\n"

	sp, err := ParseSprite(src, ColorWhite)
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}

	if sp.Color != ColorCyan {
		t.Errorf("Color = %v, expected cyan", sp.Color)
	}
	if sp.Height() != 3 {
		t.Errorf("Height() = %d, expected 3 (trailing blank lines dropped)", sp.Height())
	}
	if sp.Width() != 3 {
		t.Errorf("Width() = %d, expected 3", sp.Width())
	}
	if got := string(sp.Rows[0]); got != `/^\` {
		t.Errorf("row 0 = %q, expected %q", got, `/^\`)
	}
	// Short rows are padded
	if got := string(sp.Rows[2]); got != " | " {
		t.Errorf("row 2 = %q, expected %q", got, " | ")
	}
}

func TestParseSpriteFallbackColor(t *testing.T) {
	sp, err := ParseSprite("$$\n", ColorYellow)
	if err != nil {
		t.Fatalf("ParseSprite() failed: %v", err)
	}
	if sp.Color != ColorYellow {
		t.Errorf("Color = %v, expected fallback yellow", sp.Color)
	}
}

func TestParseSpriteErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		empty bool
	}{
		{"empty source", "", true},
		{"only comments", "; nothing here\n", true},
		{"only blank lines", "\n   \n", true},
		{"unknown color", "; color=ultraviolet\nxx\n", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSprite(tc.src, ColorDefault)
			if err == nil {
				t.Fatal("expected an error")
			}
			if errors.Is(err, ErrEmptySprite) != tc.empty {
				t.Errorf("errors.Is(err, ErrEmptySprite) = %v, expected %v (err: %v)", !tc.empty, tc.empty, err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor(" Bright_Yellow "); !ok || c != ColorBrightYellow {
		t.Errorf("ParseColor(bright_yellow) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("plaid"); ok {
		t.Error("ParseColor(plaid) should fail")
	}
}
