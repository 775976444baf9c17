package level

import (
	"strconv"
	"strings"
)

// EncodeRows renders the map grid as rows of space-separated tile integers.
func EncodeRows(m *Map) []string {
	rows := make([]string, 0, m.Height)
	var sb strings.Builder
	for _, row := range m.Cells {
		sb.Reset()
		for x, c := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(c)))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// Encode renders the grid as text, one row per line.
func Encode(m *Map) string {
	return strings.Join(EncodeRows(m), "\n")
}

// Decode parses a width x height grid and pairs it with score.
//
// Rows must hold exactly width whitespace-separated tile integers and there
// must be exactly height rows. Tile values must be known tile types and the
// wall lattice must hold for every cell. Nothing is returned unless the whole
// grid validates.
func Decode(score int, rows []string, width, height int) (*Map, error) {
	if score < 0 {
		return nil, negativeScoreError(score)
	}

	m := NewMap(width, height)
	m.Score = score

	for y := 0; y < height; y++ {
		if y >= len(rows) {
			return nil, dimensionsError(width, height)
		}
		tokens := strings.Fields(rows[y])
		if len(tokens) != width {
			return nil, dimensionsError(width, height)
		}
		for x, tok := range tokens {
			n, err := strconv.Atoi(tok)
			if err != nil || !TileType(n).Valid() {
				return nil, tileTypeError(tok)
			}
			m.Cells[y][x] = TileType(n)
		}
	}
	if len(rows) != height {
		return nil, dimensionsError(width, height)
	}

	if err := m.CheckLayout(); err != nil {
		return nil, err
	}
	return m, nil
}

// DecodeText is Decode over a newline-separated grid. Blank lines are
// ignored.
func DecodeText(score int, text string, width, height int) (*Map, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	return Decode(score, rows, width, height)
}
