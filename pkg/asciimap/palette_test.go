package asciimap

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPaletteEntries(t *testing.T) {
	p := DefaultPalette()

	cases := []struct {
		c    color.Color
		want byte
	}{
		{color.RGBA{255, 0, 0, 255}, 'D'},
		{color.RGBA{155, 208, 138, 255}, 'S'},
		{color.RGBA{255, 255, 255, 255}, 'C'},
		{color.RGBA{97, 68, 44, 255}, 'B'},
		{color.RGBA{141, 141, 141, 255}, 'R'},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, p.CharFor(tc.c, DefaultFallback))
	}
}

func TestCharForFallsBackOnUnmappedColor(t *testing.T) {
	p := DefaultPalette()

	assert.Equal(t, byte('S'), p.CharFor(color.RGBA{0, 0, 0, 255}, DefaultFallback))
	assert.Equal(t, byte('S'), p.CharFor(color.RGBA{254, 0, 0, 255}, DefaultFallback))
	assert.Equal(t, byte('X'), p.CharFor(color.RGBA{1, 2, 3, 255}, 'X'))
}

func TestRGBOfNormalizesTo8Bit(t *testing.T) {
	got := RGBOf(color.RGBA64{R: 0xffff, G: 0, B: 0x8d8d, A: 0xffff})

	assert.Equal(t, RGB{255, 0, 141}, got)
}

func TestColorForInverseLookup(t *testing.T) {
	p := DefaultPalette()

	c, ok := p.ColorFor('B')
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{97, 68, 44, 255}, c)

	_, ok = p.ColorFor('X')
	assert.False(t, ok)
}
