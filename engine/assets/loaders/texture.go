package loaders

import (
	"fmt"
	"image"
	"os"

	// Image formats textures may come in. Decoders register themselves.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/spaghettifunk/prisma/engine/assets"
)

// ImageInfo is the payload of a loaded texture asset. Only the header is
// decoded; pixel upload is the rendering backend's business.
type ImageInfo struct {
	Width  int
	Height int
	Format string
}

type TextureLoader struct{}

func (tl *TextureLoader) Load(fullPath, name string) (*assets.Resource, error) {
	f, err := os.Open(fullPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", name, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("texture %s has degenerate dimensions %dx%d", name, cfg.Width, cfg.Height)
	}

	return &assets.Resource{
		Type:     assets.ResourceTypeImage,
		Name:     name,
		FullPath: fullPath,
		Data:     &ImageInfo{Width: cfg.Width, Height: cfg.Height, Format: format},
	}, nil
}
