package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// Supported output formats
const (
	FormatPNG = "png"
	FormatPPM = "ppm"
)

// ParseFormat normalizes a format name, accepting an optional leading dot
func ParseFormat(name string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(name, "."))
	switch format {
	case FormatPNG, FormatPPM:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported image format %q (want %s or %s)", name, FormatPNG, FormatPPM)
	}
}

// Save writes img to path in the given format, creating parent directories
func Save(path, format string, img image.Image) error {
	format, err := ParseFormat(format)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	switch format {
	case FormatPNG:
		if err := gg.SavePNG(path, img); err != nil {
			return fmt.Errorf("saving PNG %s: %w", path, err)
		}
		return nil
	default:
		return savePPM(path, img)
	}
}

func savePPM(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WritePPM(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
