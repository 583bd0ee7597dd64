package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	utils "github.com/nebbyJammin/asciimap/cmd/internal/cmd_utils"
	"github.com/nebbyJammin/asciimap/pkg/asciimap"
)

var (
	convertOut string
	convertDir bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <image>",
	Short: "Convert a map image to an ASCII terrain grid",
	Long: `Convert a map image to an ASCII terrain grid and write it next to the
image (or to -o). With --dir, the argument is a directory and every image
inside is converted to a sibling .txt file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conv := asciimap.New()

		if convertDir {
			return utils.ConvertDir(conv, args[0])
		}

		out := convertOut
		if out == "" {
			out = utils.OutputPath(args[0])
		}

		if err := conv.ConvertToFile(args[0], out); err != nil {
			return err
		}

		logrus.Infof("Successfully converted '%s' to ASCII map in '%s'", args[0], out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output file for the ASCII map")
	convertCmd.Flags().BoolVar(&convertDir, "dir", false, "Convert every image in a directory")
}
