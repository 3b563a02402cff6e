package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/tilecam/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CameraSpec struct {
	Name                 string  `yaml:"name"`
	SpeedPixelsPerSecond float64 `yaml:"speed_pixels_per_second"`
	UpdatesPerSecond     int     `yaml:"updates_per_second"`
	Debug                bool    `yaml:"debug"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	data, err := Load("camera.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load camera.yaml: %w", err)
	}
	var spec CameraSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal camera.yaml: %w", err)
	}
	if spec.UpdatesPerSecond < 0 || spec.SpeedPixelsPerSecond < 0 {
		return nil, fmt.Errorf("prefabs: camera.yaml: negative speed or update rate")
	}
	if spec.UpdatesPerSecond == 0 {
		spec.UpdatesPerSecond = common.DefaultUpdatesPerSecond
	}
	if spec.SpeedPixelsPerSecond == 0 {
		spec.SpeedPixelsPerSecond = common.DefaultCameraSpeed
	}
	return &spec, nil
}

type JoystickSpec struct {
	Name        string `yaml:"name"`
	OuterRadius int    `yaml:"outer_radius"`
	InnerRadius int    `yaml:"inner_radius"`
	OffsetX     int    `yaml:"offset_x"`
	OffsetY     int    `yaml:"offset_y"`
}

type TileMapSpec struct {
	Name       string     `yaml:"name"`
	Level      string     `yaml:"level"`
	Atlas      string     `yaml:"atlas"`
	Margin     int        `yaml:"margin"`
	Background *YAMLColor `yaml:"background"`
}

type ScreenSpec struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func LoadScreenSpec() (*ScreenSpec, error) {
	spec, err := LoadSpec[ScreenSpec]("screen.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Width < 0 || spec.Height < 0 {
		return nil, fmt.Errorf("prefabs: screen.yaml: invalid size %dx%d", spec.Width, spec.Height)
	}
	if spec.Width == 0 || spec.Height == 0 {
		spec.Width, spec.Height = common.BaseWidth, common.BaseHeight
	}
	return &spec, nil
}

type SpriteSpec struct {
	Name          string  `yaml:"name"`
	Image         string  `yaml:"image"`
	FrameW        int     `yaml:"frame_w"`
	FrameH        int     `yaml:"frame_h"`
	Frame         int     `yaml:"frame"`
	TicksPerFrame int     `yaml:"ticks_per_frame"`
	X             float64 `yaml:"x"`
	Y             float64 `yaml:"y"`
}

// GameFiles lists the specs LoadGameSpec reads.
var GameFiles = []string{"screen.yaml", "camera.yaml", "joystick.yaml", "tilemap.yaml", "sprite.yaml"}

// GameSpec is the full configuration of a scene and its host.
type GameSpec struct {
	Screen   ScreenSpec
	Camera   CameraSpec
	Joystick JoystickSpec
	TileMap  TileMapSpec
	Sprite   SpriteSpec
}

func LoadGameSpec() (*GameSpec, error) {
	screen, err := LoadScreenSpec()
	if err != nil {
		return nil, err
	}
	camera, err := LoadCameraSpec()
	if err != nil {
		return nil, err
	}
	joystick, err := LoadSpec[JoystickSpec]("joystick.yaml")
	if err != nil {
		return nil, err
	}
	tileMap, err := LoadSpec[TileMapSpec]("tilemap.yaml")
	if err != nil {
		return nil, err
	}
	sprite, err := LoadSpec[SpriteSpec]("sprite.yaml")
	if err != nil {
		return nil, err
	}
	return &GameSpec{
		Screen:   *screen,
		Camera:   *camera,
		Joystick: joystick,
		TileMap:  tileMap,
		Sprite:   sprite,
	}, nil
}

// BackgroundColor returns the tilemap background, black when unset.
func (s *GameSpec) BackgroundColor() color.Color {
	if s.TileMap.Background == nil || s.TileMap.Background.Color == nil {
		return color.Black
	}
	return s.TileMap.Background.Color
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	col, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = col
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"; the leading '#' is optional.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	r, err := parse(0)
	if err != nil {
		return color.NRGBA{}, err
	}
	g, err := parse(2)
	if err != nil {
		return color.NRGBA{}, err
	}
	b, err := parse(4)
	if err != nil {
		return color.NRGBA{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return color.NRGBA{}, err
		}
	}

	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}
