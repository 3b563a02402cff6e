package obj

import (
	"errors"
	"image"
	"testing"

	"github.com/milk9111/tilecam/assets"
	"github.com/milk9111/tilecam/common"
	"github.com/milk9111/tilecam/prefabs"
)

func TestLoadGameLevelEmbedded(t *testing.T) {
	l, err := LoadGameLevel("test_level", assets.TerrainTiles)
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	if got := l.MapSize(); got != image.Rect(0, 0, 60*32+1, 40*32) {
		t.Fatalf("map size = %v", got)
	}
	if l.Data().TileSize() != 32 || l.TileMap().Data() != l.Data() {
		t.Fatalf("level data not shared with its tile map")
	}
}

func TestLoadGameLevelMissing(t *testing.T) {
	if _, err := LoadGameLevel("does_not_exist.json", assets.TerrainTiles); err == nil {
		t.Fatalf("expected an error for a missing level")
	}
}

func TestNewGameLevelWrapsTileSizeMismatch(t *testing.T) {
	_, err := NewGameLevel(newTestAtlas(t, 16, 2, 2), newTestData(t, 2, 2, 32, sequentialIDs(2)))
	if !errors.Is(err, ErrTileSizeMismatch) {
		t.Fatalf("expected ErrTileSizeMismatch, got %v", err)
	}
}

func TestLoadSceneFromSpec(t *testing.T) {
	spec, err := prefabs.LoadGameSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}

	s, err := LoadScene(spec, "small_level")
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	w, h := s.ScreenSize()
	if w != spec.Screen.Width || h != spec.Screen.Height {
		t.Fatalf("screen size %dx%d, want %dx%d", w, h, spec.Screen.Width, spec.Screen.Height)
	}
	if got := s.Camera().MaxSpeed(); !approxEqual(got, 400.0/30.0) {
		t.Fatalf("max speed = %f", got)
	}

	// The small level is narrower than the screen, so the camera pins to its centre.
	s.Update()
	if got := s.Camera().Position(); got != common.Vec2(float64(w)/2, float64(h)/2) {
		t.Fatalf("camera = %v, want screen centre", got)
	}

	sp, err := LoadSprite(spec.Sprite)
	if err != nil {
		t.Fatalf("load sprite: %v", err)
	}
	if sp.FrameCount() != 4 {
		t.Fatalf("marker sheet frame count = %d, want 4", sp.FrameCount())
	}

	if _, err := LoadSprite(prefabs.SpriteSpec{Name: "nothing"}); err == nil {
		t.Fatalf("expected an error for a sprite without an image")
	}
}
