package world

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

const (
	Stone = "minecraft:block/stone"
	Dirt  = "minecraft:block/dirt"
	Grass = "minecraft:block/grass_block"
)

// Layout names accepted by Populate.
const (
	LayoutSingle  = "single"
	LayoutLayers  = "layers"
	LayoutTerrain = "terrain"
	LayoutHills   = "hills"
)

// Populate writes the initial contents of c.
func Populate(c *Chunk, cat *Catalog, layout string, seed int64) error {
	switch layout {
	case LayoutSingle:
		return populateSingle(c, cat)
	case LayoutLayers:
		return populateLayers(c, cat)
	case LayoutTerrain:
		return populateTerrain(c, cat, seed)
	case LayoutHills:
		return populateHills(c, cat, seed)
	default:
		return fmt.Errorf("unknown layout %q", layout)
	}
}

func lookupAll(cat *Catalog, names ...string) ([]BlockTypeRef, error) {
	refs := make([]BlockTypeRef, len(names))
	for i, n := range names {
		ref, ok := cat.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("layout needs block %q", n)
		}
		refs[i] = ref
	}
	return refs, nil
}

// single stone at the corner of the bottom section
func populateSingle(c *Chunk, cat *Catalog) error {
	refs, err := lookupAll(cat, Stone)
	if err != nil {
		return err
	}
	return c.Set(0, 0, 0, Solid(refs[0]))
}

// 30 stone layers, 19 dirt, 1 grass
func populateLayers(c *Chunk, cat *Catalog) error {
	refs, err := lookupAll(cat, Stone, Dirt, Grass)
	if err != nil {
		return err
	}
	stone, dirt, grass := refs[0], refs[1], refs[2]
	for y := 0; y < 50; y++ {
		ref := stone
		switch {
		case y == 49:
			ref = grass
		case y >= 30:
			ref = dirt
		}
		if err := c.FillSection(y, Solid(ref)); err != nil {
			return err
		}
	}
	return nil
}

func fractalNoise(noise opensimplex.Noise32, x, z int32, amplitude float32, octaves int, lacunarity, persistence, scale float32) int {
	val := float32(0)
	x1 := float32(x)
	z1 := float32(z)

	for i := 0; i < octaves; i++ {
		val += noise.Eval2(x1/scale, z1/scale) * amplitude
		z1 *= lacunarity
		x1 *= lacunarity
		amplitude *= persistence
	}
	return int(val)
}

const terrainBase = 48

func populateTerrain(c *Chunk, cat *Catalog, seed int64) error {
	noise := opensimplex.New32(seed)
	return fillColumns(c, cat, func(x, z int32) int {
		return terrainBase + fractalNoise(noise, x, z, 30, 4, 1.5, 0.5, 100)
	})
}

const (
	hillsBase      = 40
	hillsAmplitude = 24
	hillsScale     = 0.03
)

// populateHills shapes gentler ground from Perlin noise mapped to [0, 1].
func populateHills(c *Chunk, cat *Catalog, seed int64) error {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	return fillColumns(c, cat, func(x, z int32) int {
		n := (noise.Noise2D(float64(x)*hillsScale, float64(z)*hillsScale) + 1) / 2
		n = math.Max(0, math.Min(1, n))
		return hillsBase + int(n*hillsAmplitude)
	})
}

// fillColumns stacks stone, four dirt and one grass block up to the height
// returned for each world column.
func fillColumns(c *Chunk, cat *Catalog, heightAt func(x, z int32) int) error {
	refs, err := lookupAll(cat, Stone, Dirt, Grass)
	if err != nil {
		return err
	}
	stone, dirt, grass := refs[0], refs[1], refs[2]

	ox, oz := c.Origin()
	for x := 0; x < ChunkWidth; x++ {
		for z := 0; z < ChunkDepth; z++ {
			height := heightAt(int32(x)+ox, int32(z)+oz)
			if height < 0 {
				height = 0
			}
			if height >= ChunkHeight {
				height = ChunkHeight - 1
			}
			for y := 0; y <= height; y++ {
				ref := dirt
				switch {
				case y == height:
					ref = grass
				case y < height-4:
					ref = stone
				}
				if err := c.Set(x, y, z, Solid(ref)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
