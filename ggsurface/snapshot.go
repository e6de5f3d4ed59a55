package ggsurface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/phanxgames/canvas2d"
)

// SavePNG writes the surface to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if err := c.gc.SavePNG(path); err != nil {
		return fmt.Errorf("ggsurface: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the surface as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.gc.Image())
}

// Screenshot writes the surface to dir as <timestamp>_<label>.png and
// returns the file path. dir is created if needed.
func (c *Canvas) Screenshot(dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ggsurface: screenshot: mkdir %s: %w", dir, err)
	}
	stamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
	if err := writePNG(path, c.gc.Image()); err != nil {
		return "", fmt.Errorf("ggsurface: screenshot: %w", err)
	}
	canvas2d.Logger().Debug("ggsurface: screenshot saved", slog.String("path", path))
	return path, nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores. A blank label becomes "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
