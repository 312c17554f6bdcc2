// Package qr renders the printable check-in badges participants scan at the
// door. The QR payload is the participant's 5-digit unique id.
package qr

import (
	"fmt"
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

type Generator struct {
	outputDir string
}

func NewGenerator(outputDir string) *Generator {
	return &Generator{
		outputDir: outputDir,
	}
}

// Generate writes <outputDir>/<uniqueID>.png and returns its path.
func (g *Generator) Generate(uniqueID string) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll -> %w", err)
	}

	path := filepath.Join(g.outputDir, uniqueID+".png")
	if err := qrcode.WriteFile(uniqueID, qrcode.Medium, 256, path); err != nil {
		return "", fmt.Errorf("qrcode.WriteFile -> %w", err)
	}

	return path, nil
}
