package asciimap

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPixels(t *testing.T) {
	img := New().Render(Grid{"DC", "BR"})

	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{97, 68, 44, 255}, img.RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{141, 141, 141, 255}, img.RGBAAt(1, 1))
}

func TestRenderUnknownCharUsesFallbackColor(t *testing.T) {
	img := New().Render(Grid{"X"})

	// 'X' is outside the value set, so it draws as the fallback ('S') color.
	assert.Equal(t, color.RGBA{155, 208, 138, 255}, img.RGBAAt(0, 0))
}

func TestRenderEmptyGrid(t *testing.T) {
	img := New().Render(Grid{})

	assert.True(t, img.Bounds().Empty())
}

func TestConvertRenderRoundTrip(t *testing.T) {
	conv := New()
	g := Grid{"DCS", "BRS"}

	assert.Equal(t, g, conv.Convert(conv.Render(g)))
}

func TestRenderPNGIsDecodable(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New().RenderPNG(Grid{"DC", "SS"}, &buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")

	require.NoError(t, New().RenderToFile(Grid{"D"}, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 1, img.Bounds().Dx())
}
