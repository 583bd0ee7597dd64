package asciimap

import "image/color"

// RGB is an exact 8-bit per channel color key. Alpha is always discarded
// before lookup, so it is not part of the key.
type RGB struct {
	R, G, B uint8
}

// Palette maps exact pixel colors to terrain characters. Keys are unique,
// order is irrelevant. Treat palettes as immutable once they are in use.
type Palette map[RGB]byte

// DefaultFallback is the character emitted for any color not present in the
// palette. It intentionally matches the greenish terrain character: unmapped
// colors classify as the common terrain rather than something visually loud.
const DefaultFallback byte = 'S'

// terrainPalette is the fixed table the simulation expects. Consumers of the
// output match these characters exactly, so changing an entry is a breaking
// change to the map format.
var terrainPalette = Palette{
	{255, 0, 0}:     'D', // ff0000 - red
	{155, 208, 138}: 'S', // 9bd08a - greenish
	{255, 255, 255}: 'C', // ffffff - white
	{97, 68, 44}:    'B', // 61442c - brown
	{141, 141, 141}: 'R', // 8d8d8d - gray
}

// DefaultPalette returns the fixed terrain color table. The returned map is
// shared, do not mutate it.
func DefaultPalette() Palette {
	return terrainPalette
}

// RGBOf normalizes any color.Color down to an 8-bit RGB triple, discarding
// alpha and any extra channels. color.Color.RGBA() reports 16-bit channels,
// so each is shifted down to the 0-255 range first.
func RGBOf(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// CharFor returns the terrain character for a pixel color: an exact palette
// match, or fallback when the color is unmapped.
func (p Palette) CharFor(c color.Color, fallback byte) byte {
	if ch, ok := p[RGBOf(c)]; ok {
		return ch
	}
	return fallback
}

/*
ColorFor is the inverse lookup used when rendering a grid back into an image.
The fallback character collides with the greenish terrain character, so 'S'
always renders as greenish. Returns false for characters outside the palette's
value set.
*/
func (p Palette) ColorFor(ch byte) (color.RGBA, bool) {
	for rgb, c := range p {
		if c == ch {
			return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}, true
		}
	}
	return color.RGBA{}, false
}
