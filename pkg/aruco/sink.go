package aruco

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/poqudrof/arucogen/pkg/errors"
)

// WriteImage encodes img as PNG at path, creating parent directories as
// needed. Markers are 8-bit grayscale so the encoding is lossless.
func WriteImage(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory for %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeEncode, err, "encode %s", path)
	}
	return f.Close()
}
