package obj

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/tilecam/common"
	"github.com/milk9111/tilecam/input"
	"github.com/milk9111/tilecam/render"
	"golang.org/x/image/draw"
)

var ErrNoLevel = errors.New("obj: scene has no level")

var debugTextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// SceneConfig holds everything NewScene needs. Joystick offsets place the
// outer circle center OffsetX from the left edge and OffsetY from the bottom.
type SceneConfig struct {
	Level *GameLevel

	ScreenWidth  int
	ScreenHeight int

	JoystickOuterRadius int
	JoystickInnerRadius int
	JoystickOffsetX     int
	JoystickOffsetY     int

	MaxSpeed   float64
	Margin     int
	Background color.Color
	Debug      bool
}

// Scene wires the level, joystick, camera and viewport together and runs
// them once per frame in that dependency order.
type Scene struct {
	level    *GameLevel
	joystick *Joystick
	camera   *Camera
	viewport *GameViewport
	sprites  []*Sprite

	scheduler  *Scheduler
	background color.Color
	debug      bool
	fps        float64
}

func NewScene(cfg SceneConfig) (*Scene, error) {
	if cfg.Level == nil {
		return nil, ErrNoLevel
	}
	if cfg.ScreenWidth <= 0 || cfg.ScreenHeight <= 0 {
		return nil, fmt.Errorf("obj: invalid screen size %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	}

	level := cfg.Level
	if cfg.Margin > 0 {
		level.TileMap().SetMargin(cfg.Margin)
	}

	joystick := NewJoystick(
		common.Vec2(cfg.JoystickOffsetX, cfg.ScreenHeight-cfg.JoystickOffsetY),
		cfg.JoystickOuterRadius,
		cfg.JoystickInnerRadius,
	)

	camera := NewCamera(joystick, level.MapSize(), cfg.ScreenWidth, cfg.ScreenHeight, cfg.MaxSpeed)
	camera.Debug = cfg.Debug

	viewport := NewGameViewport(camera, cfg.ScreenWidth, cfg.ScreenHeight)

	bg := cfg.Background
	if bg == nil {
		bg = color.Black
	}

	s := &Scene{
		level:      level,
		joystick:   joystick,
		camera:     camera,
		viewport:   viewport,
		scheduler:  NewScheduler(joystick, camera, viewport),
		background: bg,
		debug:      cfg.Debug,
	}
	return s, nil
}

func (s *Scene) Level() *GameLevel       { return s.level }
func (s *Scene) Joystick() *Joystick     { return s.joystick }
func (s *Scene) Camera() *Camera         { return s.camera }
func (s *Scene) Viewport() *GameViewport { return s.viewport }
func (s *Scene) Sprites() []*Sprite      { return s.sprites }
func (s *Scene) Debug() bool             { return s.debug }
func (s *Scene) SetFPS(fps float64)      { s.fps = fps }
func (s *Scene) ScreenSize() (int, int)  { return s.viewport.WidthPixels(), s.viewport.HeightPixels() }
func (s *Scene) Background() color.Color { return s.background }

func (s *Scene) SetDebug(debug bool) {
	s.debug = debug
	s.camera.Debug = debug
}

// AddSprite appends a sprite; it updates after the viewport.
func (s *Scene) AddSprite(sp *Sprite) {
	if sp == nil {
		return
	}
	s.sprites = append(s.sprites, sp)
	s.scheduler.Add(sp)
}

// HandleTouch applies a touch event to the joystick and reports whether
// the joystick consumed it.
func (s *Scene) HandleTouch(e input.Event) bool {
	switch e.Kind {
	case input.Press:
		if s.joystick.IsPressedAt(e.Position()) {
			s.joystick.SetPressed(true)
			return true
		}
	case input.Move:
		return s.joystick.MoveIfPressed(e.Position())
	case input.Release:
		return s.joystick.Release()
	}
	return false
}

func (s *Scene) Update() {
	s.scheduler.Update()
}

// Draw renders a full frame into dst.
func (s *Scene) Draw(dst draw.Image) {
	render.Fill(dst, s.background)

	s.level.Draw(dst, s.viewport)
	for _, sp := range s.sprites {
		sp.Draw(dst, s.viewport)
	}
	s.camera.Draw(dst, s.viewport)
	s.joystick.Draw(dst)

	if s.debug {
		s.drawDebug(dst)
	}
}

func (s *Scene) drawDebug(dst draw.Image) {
	bb := s.viewport.VisibleWorldRect()
	lines := []string{
		fmt.Sprintf("FPS: %d", int(s.fps)),
		fmt.Sprintf("x: %d, y: %d", int(bb.L), int(bb.B)),
		fmt.Sprintf("stick: %.2f", s.joystick.actuatorMagnitude()),
	}
	stats := s.level.TileMap().Stats()
	lines = append(lines, fmt.Sprintf("tiles: %d drawn, %d skipped", stats.Drawn, stats.Skipped))

	y := 20
	for _, line := range lines {
		render.DebugText(dst, line, 10, y, debugTextColor)
		y += 16
	}
}
