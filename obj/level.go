package obj

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/milk9111/tilecam/levels"
	"github.com/milk9111/tilecam/render"
	"golang.org/x/image/draw"
)

// GameLevel owns a level's map data and its tile map.
type GameLevel struct {
	data    *levels.MapData
	tileMap *TileMap
}

func NewGameLevel(atlas *render.Atlas, data *levels.MapData) (*GameLevel, error) {
	tm, err := NewTileMap(atlas, data)
	if err != nil {
		return nil, fmt.Errorf("obj: build level: %w", err)
	}
	return &GameLevel{data: data, tileMap: tm}, nil
}

// LoadGameLevel loads the named level from the embedded levels (or disk,
// if name is a path to an existing file) and the named atlas.
func LoadGameLevel(levelName, atlasKey string) (*GameLevel, error) {
	data, err := levels.LoadFromFS(levels.LevelsFS, levelName)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = levels.Load(levelName)
	}
	if err != nil {
		return nil, err
	}
	atlas, err := render.LoadAtlas(atlasKey, data.TileSize())
	if err != nil {
		return nil, fmt.Errorf("obj: load atlas %s: %w", atlasKey, err)
	}
	return NewGameLevel(atlas, data)
}

func (l *GameLevel) MapSize() image.Rectangle { return l.tileMap.MapSize() }
func (l *GameLevel) TileMap() *TileMap        { return l.tileMap }
func (l *GameLevel) Data() *levels.MapData    { return l.data }

func (l *GameLevel) Draw(dst draw.Image, vp *GameViewport) {
	l.tileMap.Draw(dst, vp)
}
