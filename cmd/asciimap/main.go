package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nebbyJammin/asciimap/pkg/asciimap"
)

var rootCmd = &cobra.Command{
	Use:   "asciimap",
	Short: "Convert color-coded map images to ASCII terrain grids",
	Long: `asciimap converts a color-coded map image into the plain-text terrain grid
read by the simulation setup: one character per pixel, one line per pixel row.
Colors outside the fixed terrain table classify as the default terrain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	if lvl, err := logrus.ParseLevel(os.Getenv("ASCIIMAP_LOG_LEVEL")); err == nil {
		logrus.SetLevel(lvl)
	}

	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, asciimap.ErrSourceNotFound) {
			logrus.Errorf("Error: %v", err)
		} else {
			logrus.Errorf("An error occurred: %v", err)
		}
		os.Exit(1)
	}
}
