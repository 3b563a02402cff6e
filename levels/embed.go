package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrSizeMismatch    = errors.New("levels: width*height does not match layer data length")
	ErrNoLayers        = errors.New("levels: map has no layers")
	ErrInvalidTileSize = errors.New("levels: tile size must be positive")
)

// Level is the on-disk map description. Only the first layer is used.
type Level struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	TileWidth   int     `json:"tilewidth"`
	TileHeight  int     `json:"tileheight,omitempty"`
	Orientation string  `json:"orientation"`
	Layers      []Layer `json:"layers"`
}

type Layer struct {
	Name string `json:"name,omitempty"`
	Data []int  `json:"data"`
}

// Load reads and parses a map file from disk.
func Load(path string) (*MapData, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Parse(b)
}

// LoadFromFS reads a map from an fs.FS (e.g. LevelsFS).
func LoadFromFS(fsys fs.FS, name string) (*MapData, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(name), "levels/")
	if filepath.Ext(clean) == "" {
		clean += ".json"
	}
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return Parse(b)
}

// Parse decodes a map description and builds its grid. The grid is never
// partially built: any validation failure returns a nil MapData.
func Parse(b []byte) (*MapData, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	return FromLevel(lvl)
}

// FromLevel converts a decoded Level into MapData.
func FromLevel(lvl Level) (*MapData, error) {
	if len(lvl.Layers) == 0 {
		return nil, ErrNoLayers
	}
	if lvl.TileWidth <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTileSize, lvl.TileWidth)
	}
	data := lvl.Layers[0].Data
	if !sizeMatches(lvl.Width, lvl.Height, len(data)) {
		return nil, fmt.Errorf("%w: %dx%d != %d", ErrSizeMismatch, lvl.Width, lvl.Height, len(data))
	}

	grid := make([][]int, lvl.Height)
	for row := 0; row < lvl.Height; row++ {
		grid[row] = make([]int, lvl.Width)
		copy(grid[row], data[row*lvl.Width:(row+1)*lvl.Width])
	}

	return &MapData{
		maxRowIndex:    lvl.Width,
		maxColumnIndex: lvl.Height,
		tileSize:       lvl.TileWidth,
		orientation:    lvl.Orientation,
		layersData:     grid,
	}, nil
}

// sizeMatches reports whether w*h == n without letting the product wrap.
func sizeMatches(w, h, n int) bool {
	if w < 0 || h < 0 {
		return false
	}
	if h != 0 && w > n/h {
		return false
	}
	return w*h == n
}
