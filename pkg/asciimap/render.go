package asciimap

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

/*
Render performs the inverse conversion: one opaque pixel per grid cell, using
the palette's inverse lookup. Characters outside the palette's value set draw
as the fallback character's color, so render(convert(img)) reproduces img
exactly when img only uses palette colors. The returned image is
Width() x Height(); an empty grid yields an empty image.
*/
func (c *Converter) Render(g Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))

	fallbackColor, ok := c.palette.ColorFor(c.fallback)
	if !ok {
		fallbackColor = color.RGBA{A: 255}
	}

	for y, row := range g {
		for x := 0; x < len(row); x++ {
			col, ok := c.palette.ColorFor(row[x])
			if !ok {
				col = fallbackColor
			}
			img.SetRGBA(x, y, col)
		}
	}

	return img
}

// RenderPNG renders a grid and PNG-encodes it to w.
func (c *Converter) RenderPNG(g Grid, w io.Writer) error {
	return png.Encode(w, c.Render(g))
}

// RenderToFile renders a grid to a PNG file at path, truncating any existing
// file. Same write semantics as ConvertToFile.
func (c *Converter) RenderToFile(g Grid, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating '%s': %w", path, err)
	}
	defer out.Close()

	if err := c.RenderPNG(g, out); err != nil {
		return fmt.Errorf("encoding '%s': %w", path, err)
	}

	return nil
}
