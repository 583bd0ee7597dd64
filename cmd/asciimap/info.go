package main

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nebbyJammin/asciimap/pkg/asciimap"
)

var infoCmd = &cobra.Command{
	Use:   "info <map.txt|image>",
	Short: "Print the dimensions and terrain census of a map",
	Long: `Print the dimensions and terrain census of a map. The argument may be an
ASCII map file or a map image; images are classified first, so the census
matches what convert would produce.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := os.ReadFile(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: '%s'", asciimap.ErrSourceNotFound, args[0])
			}
			return fmt.Errorf("reading '%s': %w", args[0], err)
		}

		grid, err := asciimap.New().ConvertBytes(b)
		if err != nil {
			// Not a decodable image, treat it as an ASCII map file.
			grid, err = asciimap.ParseGrid(bytes.NewReader(b))
			if err != nil {
				return fmt.Errorf("parsing '%s': %w", args[0], err)
			}
		}

		fmt.Printf("%s: %dx%d\n", args[0], grid.Width(), grid.Height())

		counts := grid.Counts()
		chars := make([]byte, 0, len(counts))
		for ch := range counts {
			chars = append(chars, ch)
		}
		sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })

		for _, ch := range chars {
			fmt.Printf("  %c: %d\n", ch, counts[ch])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
