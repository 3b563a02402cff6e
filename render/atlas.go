package render

import (
	"errors"
	"fmt"
	"image"
)

var (
	ErrInvalidTileSize = errors.New("render: tile size must be positive")
	ErrAtlasTooSmall   = errors.New("render: atlas smaller than one tile")
)

// Atlas is a single image holding square tiles laid out left to right,
// top to bottom. Tile ids are 0-based.
type Atlas struct {
	img      image.Image
	tileSize int
	columns  int
	rows     int
}

func NewAtlas(img image.Image, tileSize int) (*Atlas, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTileSize, tileSize)
	}
	if img == nil {
		return nil, fmt.Errorf("render: nil atlas image")
	}
	b := img.Bounds()
	cols := b.Dx() / tileSize
	rows := b.Dy() / tileSize
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: %dx%d image, tile %d", ErrAtlasTooSmall, b.Dx(), b.Dy(), tileSize)
	}
	return &Atlas{img: img, tileSize: tileSize, columns: cols, rows: rows}, nil
}

// LoadAtlas loads (and caches) an atlas image by key.
func LoadAtlas(key string, tileSize int) (*Atlas, error) {
	img, err := LoadImage(key)
	if err != nil {
		return nil, err
	}
	return NewAtlas(img, tileSize)
}

func (a *Atlas) Image() image.Image { return a.img }
func (a *Atlas) TileSize() int      { return a.tileSize }
func (a *Atlas) Columns() int       { return a.columns }
func (a *Atlas) Rows() int          { return a.rows }

// Count is the number of addressable tiles.
func (a *Atlas) Count() int { return a.columns * a.rows }

// TileCoordinates returns the atlas column (x) and row (y) of a 0-based id.
func (a *Atlas) TileCoordinates(id int) (col, row int, ok bool) {
	if id < 0 || id >= a.Count() {
		return 0, 0, false
	}
	return id % a.columns, id / a.columns, true
}

// TileRect returns the source rectangle of a 0-based tile id.
func (a *Atlas) TileRect(id int) (image.Rectangle, bool) {
	col, row, ok := a.TileCoordinates(id)
	if !ok {
		return image.Rectangle{}, false
	}
	ts := a.tileSize
	r := image.Rect(col*ts, row*ts, col*ts+ts, row*ts+ts)
	return r.Add(a.img.Bounds().Min), true
}

// TileForSource resolves a 1-based map tile id. 0 means no tile.
func (a *Atlas) TileForSource(sourceID int) (image.Rectangle, bool) {
	return a.TileRect(sourceID - 1)
}
