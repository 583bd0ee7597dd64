package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nebbyJammin/asciimap/pkg/asciimap"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render <map.txt>",
	Short: "Render an ASCII terrain grid back into a PNG image",
	Long: `Render an ASCII terrain grid back into a PNG image, one pixel per cell,
using the inverse of the terrain color table. Characters outside the table
render as the default terrain color.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("%w: '%s'", asciimap.ErrSourceNotFound, args[0])
			}
			return fmt.Errorf("opening '%s': %w", args[0], err)
		}
		defer f.Close()

		grid, err := asciimap.ParseGrid(f)
		if err != nil {
			return fmt.Errorf("parsing '%s': %w", args[0], err)
		}

		out := renderOut
		if out == "" {
			ext := filepath.Ext(args[0])
			out = strings.TrimSuffix(args[0], ext) + ".png"
		}

		if err := asciimap.New().RenderToFile(grid, out); err != nil {
			return err
		}

		logrus.Infof("Successfully rendered '%s' to '%s'", args[0], out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output file for the PNG image")
}
