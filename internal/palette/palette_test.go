package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#87C7A1")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x87, G: 0xC7, B: 0xA1}, c)

	c, err = ParseHex("#0b0f10")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x0B, G: 0x0F, B: 0x10}, c)
}

func TestParseHex_Invalid(t *testing.T) {
	for _, s := range []string{"", "87C7A1", "#87C7A", "#87C7A1F", "#GGGGGG", "?87C7A1"} {
		_, err := ParseHex(s)
		assert.ErrorIs(t, err, ErrBadHex, "input %q", s)
	}
	assert.Panics(t, func() { MustHex("nope") })
}

func TestDarker(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 0}
	assert.Equal(t, c, c.Darker(0))
	assert.Equal(t, RGB{}, c.Darker(1))
	assert.Equal(t, RGB{R: 100, G: 50, B: 0}, c.Darker(0.5))
	assert.Equal(t, RGB{}, c.Darker(3))
}

func TestKizu(t *testing.T) {
	assert.Equal(t, RGB{R: 0xC5, G: 0xC8, B: 0xC9}, Kizu.FG)
	assert.Equal(t, Kizu.FG.Darker(0.5), Kizu.GridLine())
	r, g, b := Kizu.BG.Floats()
	assert.InDelta(t, 11.0/255, r, 1e-6)
	assert.InDelta(t, 15.0/255, g, 1e-6)
	assert.InDelta(t, 16.0/255, b, 1e-6)
}
