// Package debug provides debug visualization utilities.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Capture writes numbered PNG images for one capture session.
type Capture struct {
	outputDir string
	prefix    string
	session   string
}

// NewCapture creates a capture handler writing to outputDir. Each capture
// gets a fresh session id so repeated runs never overwrite each other.
func NewCapture(outputDir, prefix string) *Capture {
	return &Capture{
		outputDir: outputDir,
		prefix:    prefix,
		session:   uuid.NewString(),
	}
}

// Session returns the capture session id.
func (c *Capture) Session() string {
	return c.session
}

// Filename returns the path used for the given frame number.
func (c *Capture) Filename(frame int) string {
	name := fmt.Sprintf("%s_%s_%06d.png", c.prefix, c.session[:8], frame)
	if c.outputDir != "" {
		name = filepath.Join(c.outputDir, name)
	}
	return name
}

// Write encodes img as PNG for the given frame number and returns the path.
func (c *Capture) Write(img image.Image, frame int) (string, error) {
	if c.outputDir != "" {
		if err := os.MkdirAll(c.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename := c.Filename(frame)
	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}
