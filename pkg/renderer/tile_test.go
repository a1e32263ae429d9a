package renderer

import (
	"image"
	"testing"
)

func TestNewTileGrid_CoversImageOnce(t *testing.T) {
	tests := []struct {
		name                    string
		width, height, tileSize int
		expectedTiles           int
	}{
		{"exact fit", 8, 8, 4, 4},
		{"ragged edges", 10, 7, 4, 6},
		{"single tile", 3, 2, 64, 1},
		{"one pixel tiles", 3, 2, 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 1)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			covered := make(map[image.Point]int)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Tile %d has ID %d", i, tile.ID)
				}
				if tile.Bounds.Dx() > tt.tileSize || tile.Bounds.Dy() > tt.tileSize {
					t.Errorf("Tile %d bounds %v exceed tile size %d", i, tile.Bounds, tt.tileSize)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[image.Pt(x, y)]++
					}
				}
			}

			if len(covered) != tt.width*tt.height {
				t.Errorf("Expected %d covered pixels, got %d", tt.width*tt.height, len(covered))
			}
			for p, n := range covered {
				if n != 1 {
					t.Errorf("Pixel %v covered %d times", p, n)
				}
				if !p.In(image.Rect(0, 0, tt.width, tt.height)) {
					t.Errorf("Pixel %v outside image", p)
				}
			}
		})
	}
}

func TestNewTile_SeedDeterminism(t *testing.T) {
	bounds := image.Rect(0, 0, 4, 4)

	a := NewTile(3, bounds, 100)
	b := NewTile(3, bounds, 100)
	if a.NewRandom().Int63() != b.NewRandom().Int63() {
		t.Error("Tiles with the same id and seed should share a random sequence")
	}

	if NewTile(4, bounds, 100).Seed == a.Seed || NewTile(3, bounds, 101).Seed == a.Seed {
		t.Error("Changing the tile id or seed should change the tile seed")
	}
}

func TestTile_NewRandomRestartsSequence(t *testing.T) {
	tile := NewTile(0, image.Rect(0, 0, 2, 2), 7)

	first := tile.NewRandom()
	first.Int63()
	firstSecond := first.Int63()

	second := tile.NewRandom()
	second.Int63()
	if got := second.Int63(); got != firstSecond {
		t.Errorf("Each generator should start from the tile seed, got %d and %d", firstSecond, got)
	}
}
