package gfx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
)

// EncodeWebP writes the current canvas contents as a lossless WebP image.
func EncodeWebP(w io.Writer, c *Canvas) error {
	if err := nativewebp.Encode(w, c.RGBA(), nil); err != nil {
		return fmt.Errorf("gfx: webp encode: %w", err)
	}
	return nil
}

// SaveWebP writes the canvas to path, creating parent directories.
func SaveWebP(path string, c *Canvas) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeWebP(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
