package level

// Map is a rectangular grid of tile types paired with a score.
// Cells are indexed [y][x].
type Map struct {
	Width  int
	Height int
	Cells  [][]TileType
	Score  int
}

// NewMap creates a map of the given size filled with Empty tiles.
func NewMap(width, height int) *Map {
	m := &Map{Width: width, Height: height}
	m.Cells = make([][]TileType, height)
	for y := range m.Cells {
		m.Cells[y] = make([]TileType, width)
	}
	return m
}

// InBounds reports whether (x, y) lies inside the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y), or Wall outside the map.
func (m *Map) At(x, y int) TileType {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.Cells[y][x]
}

// Set stores a tile at (x, y). Out-of-bounds writes are ignored.
func (m *Map) Set(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Cells[y][x] = t
	}
}

// Count returns how many cells hold the given tile type.
func (m *Map) Count(t TileType) int {
	n := 0
	for _, row := range m.Cells {
		for _, c := range row {
			if c == t {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := NewMap(m.Width, m.Height)
	c.Score = m.Score
	for y := range m.Cells {
		copy(c.Cells[y], m.Cells[y])
	}
	return c
}

// Equal reports whether two maps have the same size, cells and score.
func (m *Map) Equal(o *Map) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Width != o.Width || m.Height != o.Height || m.Score != o.Score {
		return false
	}
	for y := range m.Cells {
		for x := range m.Cells[y] {
			if m.Cells[y][x] != o.Cells[y][x] {
				return false
			}
		}
	}
	return true
}

// IsLatticeWall reports whether (x, y) must be a wall in a w x h map: the
// outer border and every cell whose coordinates are both even.
func IsLatticeWall(x, y, w, h int) bool {
	if x == 0 || y == 0 || x == w-1 || y == h-1 {
		return true
	}
	return x%2 == 0 && y%2 == 0
}

// CheckLayout verifies the wall lattice cell by cell: walls exactly on the
// border and even/even cells, nowhere else.
func (m *Map) CheckLayout() error {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			want := IsLatticeWall(x, y, m.Width, m.Height)
			if want != (m.Cells[y][x] == Wall) {
				return layoutError(x, y)
			}
		}
	}
	return nil
}
