package asciimap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridStringHasNoTrailingNewline(t *testing.T) {
	g := Grid{"DC", "SS"}

	assert.Equal(t, "DC\nSS", g.String())
}

func TestGridDimensions(t *testing.T) {
	assert.Equal(t, 0, Grid(nil).Width())
	assert.Equal(t, 0, Grid(nil).Height())

	g := Grid{"DCS", "BRS"}
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
}

func TestGridWriteTo(t *testing.T) {
	var sb strings.Builder
	g := Grid{"DC", "SS"}

	n, err := g.WriteTo(&sb)

	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, "DC\nSS", sb.String())
}

func TestGridCounts(t *testing.T) {
	g := Grid{"DCS", "SSB"}

	counts := g.Counts()

	assert.Equal(t, map[byte]int{'D': 1, 'C': 1, 'S': 3, 'B': 1}, counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, g.Width()*g.Height(), total)
}

func TestParseGridRoundTrip(t *testing.T) {
	g := Grid{"DCS", "BRS", "SSS"}

	parsed, err := ParseGrid(strings.NewReader(g.String()))

	require.NoError(t, err)
	assert.Equal(t, g, parsed)
}

func TestParseGridTrimsCarriageReturns(t *testing.T) {
	parsed, err := ParseGrid(strings.NewReader("DC\r\nSS\r\n"))

	require.NoError(t, err)
	assert.Equal(t, Grid{"DC", "SS"}, parsed)
}

func TestParseGridRejectsRaggedRows(t *testing.T) {
	_, err := ParseGrid(strings.NewReader("DCS\nBR"))

	assert.Error(t, err)
}

func TestParseGridEmptyInput(t *testing.T) {
	parsed, err := ParseGrid(strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Height())
}
