package assets

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"neilpa.me/go-stbi"
)

// DefaultTileSize is the edge length of one atlas tile in pixels.
const DefaultTileSize = 16

// Atlas is the composed block texture: one square tile per texture, stacked
// top to bottom in the order they were requested.
type Atlas struct {
	Image *image.RGBA
	Tile  int
	Tiles int
}

// BuildAtlas loads every texture id through rp and scales it into its tile.
// Textures taller than wide are animation strips; only the first frame is
// used.
func BuildAtlas(rp ResourceProvider, textures []string, tile int) (*Atlas, error) {
	if len(textures) == 0 {
		return nil, fmt.Errorf("atlas: no textures requested")
	}
	if tile <= 0 {
		tile = DefaultTileSize
	}

	dst := image.NewRGBA(image.Rect(0, 0, tile, tile*len(textures)))
	for i, name := range textures {
		id, err := ParseID(name)
		if err != nil {
			return nil, fmt.Errorf("atlas: %w", err)
		}
		data, err := rp.Bytes(Texture, id)
		if err != nil {
			return nil, fmt.Errorf("atlas: %w", err)
		}
		src, err := stbi.LoadMemory(data)
		if err != nil {
			return nil, fmt.Errorf("atlas: decode %s: %w", id, err)
		}

		frame := src.Bounds()
		if frame.Dy() > frame.Dx() {
			frame.Max.Y = frame.Min.Y + frame.Dx()
		}
		cell := image.Rect(0, i*tile, tile, (i+1)*tile)
		draw.NearestNeighbor.Scale(dst, cell, src, frame, draw.Src, nil)
	}

	return &Atlas{Image: dst, Tile: tile, Tiles: len(textures)}, nil
}
