package plot

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// EncodeWebP writes img to w as a lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		return fmt.Errorf("plot: encode webp: %w", err)
	}
	return nil
}

// WriteWebP encodes img to path, creating parent directories as needed.
func WriteWebP(path string, img image.Image) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("plot: mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("plot: close: %w", cerr)
		}
	}()
	return EncodeWebP(f, img)
}
