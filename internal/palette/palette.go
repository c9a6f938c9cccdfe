// Package palette holds the colour scheme shared by the renderer.
package palette

import (
	"errors"
	"fmt"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

// Darker scales every channel by 1-amount; amount is clamped to [0, 1].
func (c RGB) Darker(amount float64) RGB {
	if amount < 0 {
		amount = 0
	} else if amount > 1 {
		amount = 1
	}
	return c.Mul(uint8((1-amount)*255 + 0.5))
}

// Floats returns the colour as normalised float32 channels.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

var ErrBadHex = errors.New("bad hex colour")

// ParseHex reads a "#RRGGBB" string.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrBadHex, s)
	}
	var ch [3]uint8
	for i := range ch {
		hi, ok1 := hexNibble(s[1+2*i])
		lo, ok2 := hexNibble(s[2+2*i])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%w: %q", ErrBadHex, s)
		}
		ch[i] = hi<<4 | lo
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func MustHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Scheme is a terminal-style colour set.
type Scheme struct {
	FG, BG                     RGB
	Black, Red, Green, Orange  RGB
	Blue, Magenta, Cyan, White RGB
}

// Kizu is the default scheme.
var Kizu = Scheme{
	FG:      MustHex("#C5C8C9"),
	BG:      MustHex("#0B0F10"),
	Black:   MustHex("#131718"),
	Red:     MustHex("#DF5B61"),
	Green:   MustHex("#87C7A1"),
	Orange:  MustHex("#DE8F78"),
	Blue:    MustHex("#6791C9"),
	Magenta: MustHex("#BC83E3"),
	Cyan:    MustHex("#70B9CC"),
	White:   MustHex("#C4C4C4"),
}

// GridLine is the colour of the reference grid.
func (s Scheme) GridLine() RGB { return s.FG.Darker(0.5) }
