package levels

// MapData is an immutable tile grid. MaxRowIndex is the number of tiles in
// a row (the source "width") and MaxColumnIndex the number of rows (the
// source "height"); the grid is indexed [row][col].
type MapData struct {
	maxRowIndex    int
	maxColumnIndex int
	tileSize       int
	orientation    string
	layersData     [][]int
}

func (m *MapData) MaxRowIndex() int    { return m.maxRowIndex }
func (m *MapData) MaxColumnIndex() int { return m.maxColumnIndex }
func (m *MapData) TileSize() int       { return m.tileSize }
func (m *MapData) Orientation() string { return m.orientation }

// Cols is the number of tiles per row.
func (m *MapData) Cols() int { return m.maxRowIndex }

// Rows is the number of tile rows.
func (m *MapData) Rows() int { return m.maxColumnIndex }

// TileAt returns the 1-based source tile id at row, col.
func (m *MapData) TileAt(row, col int) (int, bool) {
	if row < 0 || row >= len(m.layersData) {
		return 0, false
	}
	r := m.layersData[row]
	if col < 0 || col >= len(r) {
		return 0, false
	}
	return r[col], true
}

// Grid returns a copy of the tile grid.
func (m *MapData) Grid() [][]int {
	out := make([][]int, len(m.layersData))
	for i, row := range m.layersData {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether both maps have the same header and identical cells.
func (m *MapData) Equal(other *MapData) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.maxRowIndex != other.maxRowIndex ||
		m.maxColumnIndex != other.maxColumnIndex ||
		m.tileSize != other.tileSize ||
		m.orientation != other.orientation ||
		len(m.layersData) != len(other.layersData) {
		return false
	}
	for i := range m.layersData {
		a, b := m.layersData[i], other.layersData[i]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}
