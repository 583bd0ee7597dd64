package asciimap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Grid is the ASCII map produced from an image: one string per pixel row,
// top to bottom, one character per pixel, left to right. Every row has the
// same length. A grid is never mutated after it is built.
type Grid []string

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the length of the rows, or 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// String joins the rows with a single newline between consecutive rows.
// There is no trailing newline after the final row; the simulation treats
// one as an extra empty map row.
func (g Grid) String() string {
	return strings.Join(g, "\n")
}

// WriteTo writes the grid in its on-disk form to w.
func (g Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.String())
	return int64(n), err
}

// Counts returns a terrain census: how many cells hold each character.
func (g Grid) Counts() map[byte]int {
	counts := make(map[byte]int)
	for _, row := range g {
		for i := 0; i < len(row); i++ {
			counts[row[i]]++
		}
	}
	return counts
}

/*
ParseGrid reads a grid back from its on-disk form. Rows must all have the same
length; a ragged file is rejected since the simulation indexes cells by
(x, y). An empty input parses as the empty grid.
*/
func ParseGrid(r io.Reader) (Grid, error) {
	var g Grid

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := strings.TrimRight(scanner.Text(), "\r")
		if len(g) > 0 && len(row) != len(g[0]) {
			return nil, fmt.Errorf("row %d has %d characters, expected %d", len(g), len(row), len(g[0]))
		}
		g = append(g, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
