// Package asset provides the point sprite texture.
package asset

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed particle.png
var particlePNG []byte

// DecodeSprite decodes the image at path, or the embedded soft circle when
// path is empty.
func DecodeSprite(path string) (image.Image, error) {
	if path == "" {
		img, _, err := image.Decode(bytes.NewReader(particlePNG))
		if err != nil {
			return nil, fmt.Errorf("decode embedded sprite: %w", err)
		}
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	return img, nil
}

// LoadSprite loads the sprite once for the whole session. A broken override
// falls back to the embedded texture.
func LoadSprite(path string) (*ebiten.Image, error) {
	img, err := DecodeSprite(path)
	if err != nil && path != "" {
		slog.Warn("falling back to embedded sprite", "path", path, "err", err)
		img, err = DecodeSprite("")
	}
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}
