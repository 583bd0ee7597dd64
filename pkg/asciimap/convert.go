package asciimap

import (
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/jbuchbinder/gopnm"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"bytes"
	"image"
	"io"
	"os"
	"strings"
)

/*
Converter classifies the pixels of a map image into terrain characters. It is
a pure function of its palette and fallback: converting the same image twice
yields byte-identical grids. Construct one with New() and reuse it freely, a
Converter holds no per-conversion state.
*/
type Converter struct {
	palette  Palette
	fallback byte
}

// New constructs a Converter. With no options it classifies against the fixed
// terrain table with the 'S' fallback, which is what the simulation expects.
func New(opts ...Option) *Converter {
	c := &Converter{
		palette:  DefaultPalette(),
		fallback: DefaultFallback,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

/*
Convert scans an already-decoded image row-major (top to bottom, left to
right) and classifies every pixel. The grid always has exactly Bounds().Dy()
rows of Bounds().Dx() characters; a zero-dimension image yields a zero-row
grid rather than an error.
*/
func (c *Converter) Convert(img image.Image) Grid {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	grid := make(Grid, 0, height)

	for y := 0; y < height; y++ {
		var row strings.Builder
		row.Grow(width)
		for x := 0; x < width; x++ {
			px := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			row.WriteByte(c.palette.CharFor(px, c.fallback))
		}
		grid = append(grid, row.String())
	}

	return grid
}

// ConvertReader decodes an image from r and converts it. The format must be
// one of the registered decoders (see the package documentation).
func (c *Converter) ConvertReader(r io.Reader) (Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	return c.Convert(img), nil
}

// ConvertBytes decodes an image from an in-memory buffer and converts it.
func (c *Converter) ConvertBytes(b []byte) (Grid, error) {
	return c.ConvertReader(bytes.NewReader(b))
}

// ConvertFile opens and converts the image at path. A missing or unopenable
// path reports ErrSourceNotFound; any other failure is wrapped as-is.
func (c *Converter) ConvertFile(path string) (Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: '%s'", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("opening '%s': %w", path, err)
	}
	defer f.Close()

	return c.ConvertReader(f)
}

/*
ConvertToFile converts the image at imagePath and writes the grid to
outputPath, truncating whatever was there. The load happens entirely before
the write, so a failed load leaves the filesystem untouched; a failure during
the write itself can leave a truncated output file behind. The output handle
is closed on every exit path.
*/
func (c *Converter) ConvertToFile(imagePath, outputPath string) error {
	grid, err := c.ConvertFile(imagePath)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating '%s': %w", outputPath, err)
	}
	defer out.Close()

	if _, err := grid.WriteTo(out); err != nil {
		return fmt.Errorf("writing '%s': %w", outputPath, err)
	}

	return nil
}
