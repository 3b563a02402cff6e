package obj

import (
	"fmt"

	"github.com/milk9111/tilecam/common"
	"github.com/milk9111/tilecam/prefabs"
	"github.com/milk9111/tilecam/render"
)

// LoadScene builds a scene from a game spec. A non-empty levelName
// replaces the spec's level.
func LoadScene(spec *prefabs.GameSpec, levelName string) (*Scene, error) {
	if levelName == "" {
		levelName = spec.TileMap.Level
	}
	level, err := LoadGameLevel(levelName, spec.TileMap.Atlas)
	if err != nil {
		return nil, fmt.Errorf("obj: load level %s: %w", levelName, err)
	}

	return NewScene(SceneConfig{
		Level:               level,
		ScreenWidth:         spec.Screen.Width,
		ScreenHeight:        spec.Screen.Height,
		JoystickOuterRadius: spec.Joystick.OuterRadius,
		JoystickInnerRadius: spec.Joystick.InnerRadius,
		JoystickOffsetX:     spec.Joystick.OffsetX,
		JoystickOffsetY:     spec.Joystick.OffsetY,
		MaxSpeed:            MaxSpeed(spec.Camera.SpeedPixelsPerSecond, float64(spec.Camera.UpdatesPerSecond)),
		Margin:              spec.TileMap.Margin,
		Background:          spec.BackgroundColor(),
		Debug:               spec.Camera.Debug,
	})
}

// LoadSprite builds the sprite described by spec.
func LoadSprite(spec prefabs.SpriteSpec) (*Sprite, error) {
	if spec.Image == "" {
		return nil, fmt.Errorf("obj: sprite %s has no image", spec.Name)
	}
	img, err := render.LoadImage(spec.Image)
	if err != nil {
		return nil, fmt.Errorf("obj: load sprite %s: %w", spec.Name, err)
	}
	frameW, frameH := spec.FrameW, spec.FrameH
	if frameW <= 0 {
		frameW = img.Bounds().Dx()
	}
	if frameH <= 0 {
		frameH = img.Bounds().Dy()
	}
	s := NewSprite(img, frameW, frameH)
	s.SetFrame(spec.Frame)
	s.SetTicksPerFrame(spec.TicksPerFrame)
	s.SetPosition(common.Vec2(spec.X, spec.Y))
	return s, nil
}
