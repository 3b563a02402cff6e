package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// scriptDispatch calls the user's update function each step.
const scriptDispatch = `
update(__touch, __frame)
`

// Script produces touch events from a tengo program. The program must
// define update(touch, frame); touch offers press(x, y), move(x, y),
// release() and screen().
type Script struct {
	name     string
	compiled *tengo.Compiled
	touch    *tengo.ImmutableMap
	pending  []Event
}

func NewScript(name string, src []byte, screenW, screenH int) (*Script, error) {
	s := &Script{name: name}
	s.touch = s.buildTouch(screenW, screenH)

	script := tengo.NewScript(append(append([]byte(nil), src...), []byte("\n"+scriptDispatch)...))
	_ = script.Add("__touch", map[string]any{})
	_ = script.Add("__frame", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: script %s: compile: %w", name, err)
	}
	s.compiled = compiled
	return s, nil
}

// Step runs update for one frame and returns the events it emitted.
func (s *Script) Step(frame int) ([]Event, error) {
	s.pending = s.pending[:0]
	if err := s.compiled.Set("__touch", s.touch); err != nil {
		return nil, fmt.Errorf("input: script %s: %w", s.name, err)
	}
	if err := s.compiled.Set("__frame", frame); err != nil {
		return nil, fmt.Errorf("input: script %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("input: script %s: frame %d: %w", s.name, frame, err)
	}
	return append([]Event(nil), s.pending...), nil
}

func (s *Script) buildTouch(screenW, screenH int) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["press"] = &tengo.UserFunction{Name: "press", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return s.emit(Press, args)
	}}
	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return s.emit(Move, args)
	}}
	values["release"] = &tengo.UserFunction{Name: "release", Value: func(args ...tengo.Object) (tengo.Object, error) {
		s.pending = append(s.pending, Event{Kind: Release})
		return tengo.TrueValue, nil
	}}
	values["screen"] = &tengo.UserFunction{Name: "screen", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Array{Value: []tengo.Object{&tengo.Int{Value: int64(screenW)}, &tengo.Int{Value: int64(screenH)}}}, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func (s *Script) emit(kind Kind, args []tengo.Object) (tengo.Object, error) {
	if len(args) < 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	x, ok := objectAsFloat(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "int/float", Found: args[0].TypeName()}
	}
	y, ok := objectAsFloat(args[1])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "int/float", Found: args[1].TypeName()}
	}
	s.pending = append(s.pending, Event{Kind: kind, X: x, Y: y})
	return tengo.TrueValue, nil
}

func objectAsFloat(o tengo.Object) (float64, bool) {
	switch v := o.(type) {
	case *tengo.Int:
		return float64(v.Value), true
	case *tengo.Float:
		return v.Value, true
	default:
		return 0, false
	}
}
