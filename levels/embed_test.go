package levels

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"testing/fstest"
)

func levelJSON(width, height, tileSize int, data []int) []byte {
	parts := make([]string, len(data))
	for i, v := range data {
		parts[i] = fmt.Sprint(v)
	}
	return []byte(fmt.Sprintf(`{"width":%d,"height":%d,"tilewidth":%d,"orientation":"orthogonal","layers":[{"data":[%s]}]}`,
		width, height, tileSize, strings.Join(parts, ",")))
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestParseBuildsRowMajorGrid(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		tileSize      int
	}{
		{"square", 3, 3, 32},
		{"wide", 5, 2, 16},
		{"tall", 2, 4, 64},
		{"single", 1, 1, 8},
		{"empty", 0, 0, 32},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data := seq(c.width * c.height)
			m, err := Parse(levelJSON(c.width, c.height, c.tileSize, data))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if m.Rows() != c.height || m.Cols() != c.width {
				t.Fatalf("expected %dx%d grid, got %dx%d", c.height, c.width, m.Rows(), m.Cols())
			}
			if m.TileSize() != c.tileSize || m.Orientation() != "orthogonal" {
				t.Fatalf("unexpected header: size=%d orientation=%q", m.TileSize(), m.Orientation())
			}
			grid := m.Grid()
			if len(grid) != c.height {
				t.Fatalf("expected %d rows, got %d", c.height, len(grid))
			}
			for row := 0; row < c.height; row++ {
				if len(grid[row]) != c.width {
					t.Fatalf("row %d: expected %d cols, got %d", row, c.width, len(grid[row]))
				}
				for col := 0; col < c.width; col++ {
					if grid[row][col] != data[row*c.width+col] {
						t.Fatalf("cell [%d][%d]: expected %d, got %d", row, col, data[row*c.width+col], grid[row][col])
					}
				}
			}
		})
	}
}

func TestParseRejectsMismatchedLength(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		n             int
	}{
		{"short", 3, 3, 8},
		{"long", 3, 3, 10},
		{"empty_data", 2, 2, 0},
		{"swapped_but_wrong", 4, 2, 6},
		{"negative_width", -2, 2, 0},
		// product wraps to zero on both 32 and 64 bit ints
		{"overflowing_width", math.MaxInt/2 + 1, 4, 0},
		{"overflowing_height", 4, math.MaxInt/2 + 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := Parse(levelJSON(c.width, c.height, 32, seq(c.n)))
			if !errors.Is(err, ErrSizeMismatch) {
				t.Fatalf("expected ErrSizeMismatch, got %v", err)
			}
			if m != nil {
				t.Fatalf("expected no map on failure")
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no_layers", `{"width":1,"height":1,"tilewidth":32,"layers":[]}`, ErrNoLayers},
		{"zero_tile", `{"width":1,"height":1,"tilewidth":0,"layers":[{"data":[1]}]}`, ErrInvalidTileSize},
		{"negative_dims", `{"width":-1,"height":-1,"tilewidth":32,"layers":[{"data":[1]}]}`, ErrSizeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.in)); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}

func TestParseReadsOnlyFirstLayer(t *testing.T) {
	in := `{"width":2,"height":1,"tilewidth":16,"orientation":"orthogonal","layers":[{"data":[1,2]},{"data":[9,9,9]}]}`
	m, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if v, _ := m.TileAt(0, 1); v != 2 {
		t.Fatalf("expected 2 from first layer, got %d", v)
	}
}

func TestMapDataEqual(t *testing.T) {
	a, err := Parse(levelJSON(3, 2, 32, seq(6)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(levelJSON(3, 2, 32, seq(6)))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatalf("expected equal maps")
	}

	other := seq(6)
	other[5] = 0
	c, err := Parse(levelJSON(3, 2, 32, other))
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Fatalf("expected maps with different cells to differ")
	}

	d, err := Parse(levelJSON(2, 3, 32, seq(6)))
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(d) {
		t.Fatalf("expected maps with different shape to differ")
	}
	if a.Equal(nil) {
		t.Fatalf("expected nil to differ")
	}
}

func TestGridIsACopy(t *testing.T) {
	m, err := Parse(levelJSON(2, 2, 32, seq(4)))
	if err != nil {
		t.Fatal(err)
	}
	g := m.Grid()
	g[0][0] = 99
	if v, _ := m.TileAt(0, 0); v != 1 {
		t.Fatalf("map mutated through Grid copy: %d", v)
	}
}

func TestTileAtBounds(t *testing.T) {
	m, err := Parse(levelJSON(2, 2, 32, seq(4)))
	if err != nil {
		t.Fatal(err)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, ok := m.TileAt(rc[0], rc[1]); ok {
			t.Fatalf("expected out of range for %v", rc)
		}
	}
}

func TestLoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"tiny.json": &fstest.MapFile{Data: levelJSON(2, 1, 32, seq(2))},
	}
	for _, name := range []string{"tiny.json", "tiny", "levels/tiny.json"} {
		if _, err := LoadFromFS(fsys, name); err != nil {
			t.Fatalf("load %q: %v", name, err)
		}
	}
	if _, err := LoadFromFS(fsys, "missing.json"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}

func TestEmbeddedLevels(t *testing.T) {
	for _, name := range []string{"test_level.json", "small_level.json"} {
		m, err := LoadFromFS(LevelsFS, name)
		if err != nil {
			t.Fatalf("load %s: %v", name, err)
		}
		if m.Rows() == 0 || m.Cols() == 0 || m.TileSize() != 32 {
			t.Fatalf("%s: unexpected map %dx%d size %d", name, m.Cols(), m.Rows(), m.TileSize())
		}
	}
}
