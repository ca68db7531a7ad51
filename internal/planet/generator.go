// Package planet generates terrain lazily in fixed-size square chunks over an
// unbounded plane. Chunks are produced on demand from per-cell normalized
// fractal noise, classified on three axes, and memoized in a bounded LRU so a
// revisited region never resamples noise while it stays resident.
package planet

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"overworld/internal/biome"
	"overworld/internal/noise"
	"overworld/internal/worldmap"
)

// Key addresses a chunk by its chunk-grid coordinates.
type Key struct {
	CX, CY int
}

// Chunk is one generated square of tiles in row-major order.
type Chunk struct {
	Key   Key
	Tiles []worldmap.Tile
}

// Generator produces chunks deterministically from the world seed. It is not
// safe for concurrent use; hosts drive it from a single update loop.
type Generator struct {
	cfg        Config
	classifier *biome.Classifier

	elev  noise.Sampler
	temp  noise.Sampler
	humid noise.Sampler

	cache *lru.Cache[Key, *Chunk]
}

// NewGenerator builds a Generator for the configured seed using the given
// noise factory. Each scalar field draws from its own derived seed.
func NewGenerator(cfg Config, f noise.Factory) *Generator {
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = 1
	}
	if cfg.CacheSize < 1 {
		cfg.CacheSize = 1
	}
	cache, err := lru.New[Key, *Chunk](cfg.CacheSize)
	if err != nil {
		panic(err)
	}
	return &Generator{
		cfg:        cfg,
		classifier: biome.NewPlanetClassifier(),
		elev:       f(cfg.Seed),
		temp:       f(cfg.Seed + 1),
		humid:      f(cfg.Seed + 2),
		cache:      cache,
	}
}

// ChunkSize reports the configured side length of a chunk in tiles.
func (g *Generator) ChunkSize() int { return g.cfg.ChunkSize }

// CachedChunks reports how many chunks are currently resident.
func (g *Generator) CachedChunks() int { return g.cache.Len() }

// Chunk returns the chunk at the given chunk coordinates, generating and
// caching it on first access.
func (g *Generator) Chunk(cx, cy int) *Chunk {
	key := Key{CX: cx, CY: cy}
	if c, ok := g.cache.Get(key); ok {
		return c
	}
	c := g.generate(key)
	g.cache.Add(key, c)
	return c
}

// TileAt returns the tile at world coordinates (x, y), pulling in its chunk
// as needed. Coordinates may be negative.
func (g *Generator) TileAt(x, y int) worldmap.Tile {
	size := g.cfg.ChunkSize
	c := g.Chunk(floorDiv(x, size), floorDiv(y, size))
	tx := floorMod(x, size)
	ty := floorMod(y, size)
	return c.Tiles[ty*size+tx]
}

// generate samples and classifies every tile of one chunk. The continent axis
// carries no weight in the three-axis table, so a neutral value stands in.
func (g *Generator) generate(key Key) *Chunk {
	size := g.cfg.ChunkSize
	p := g.cfg.Params
	base := noise.FractalParams{
		Octaves:     p.Octaves,
		Persistence: p.Persistence,
		Lacunarity:  p.Lacunarity,
	}
	elevParams := base
	elevParams.Scale = p.ElevScale
	tempParams := base
	tempParams.Scale = p.TempScale
	humidParams := base
	humidParams.Scale = p.HumidScale

	c := &Chunk{Key: key, Tiles: make([]worldmap.Tile, size*size)}
	originX := key.CX * size
	originY := key.CY * size
	for ty := 0; ty < size; ty++ {
		wy := float64(originY + ty)
		for tx := 0; tx < size; tx++ {
			wx := float64(originX + tx)
			elevation := noise.FractalUnit(g.elev, wx, wy, elevParams)
			temperature := noise.FractalUnit(g.temp, wx, wy, tempParams)
			humidity := noise.FractalUnit(g.humid, wx, wy, humidParams)
			c.Tiles[ty*size+tx] = worldmap.NewTile(g.classifier, 0.5, elevation, humidity, temperature)
		}
	}
	return c
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod is the remainder matching floorDiv, always in [0, b).
func floorMod(a, b int) int {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}
