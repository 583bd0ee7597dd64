package utils

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nebbyJammin/asciimap/pkg/asciimap"
)

// Extensions the registered decoders understand. Anything else in a batch
// directory is skipped silently.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".pbm":  true,
	".pgm":  true,
	".ppm":  true,
}

// OutputPath derives the default ASCII map path for an image: the same path
// with the extension swapped for .txt.
func OutputPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + ".txt"
}

// ConvertDir converts every image under dir to a sibling .txt ASCII map.
// A file that fails to convert is logged and skipped so one corrupt image
// does not abort the batch; the error returned at the end reports how many
// failed.
func ConvertDir(a *asciimap.Converter, dir string) error {
	var failed int

	err := filepath.Walk(dir, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if !imageExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		out := OutputPath(path)
		start := time.Now()

		if err := a.ConvertToFile(path, out); err != nil {
			logrus.Warnf("Skipping '%s': %v", path, err)
			failed++
			return nil
		}

		logrus.Infof("Successfully converted '%s' to ASCII map in '%s' (%dms)",
			path, out, time.Since(start).Milliseconds())
		return nil
	})
	if err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d image(s) failed to convert", failed)
	}

	return nil
}
