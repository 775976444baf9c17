package bomber

import (
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/engine"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// CellsPerTile is how many terminal columns one tile occupies.
// Rows are one per tile; terminal cells are roughly twice as tall as wide.
const CellsPerTile = 2

// Glyph is the terminal look of a tile type.
type Glyph struct {
	Runes [CellsPerTile]rune
	Color core.Color
}

// Glyphs by tile type
var Glyphs = map[level.TileType]Glyph{
	level.Empty:     {[CellsPerTile]rune{' ', ' '}, core.ColorDefault},
	level.Wall:      {[CellsPerTile]rune{'█', '█'}, core.ColorGray},
	level.Breakable: {[CellsPerTile]rune{'▒', '▒'}, core.ColorOrange},
	level.Player1:   {[CellsPerTile]rune{'P', '1'}, core.ColorBrightCyan},
	level.Player2:   {[CellsPerTile]rune{'P', '2'}, core.ColorBrightMagenta},
	level.Enemy:     {[CellsPerTile]rune{'o', 'o'}, core.ColorBrightRed},
	level.Bonus:     {[CellsPerTile]rune{'<', '>'}, core.ColorBrightGreen},
	level.Bomb:      {[CellsPerTile]rune{'(', ')'}, core.ColorBrightWhite},
	level.Blast:     {[CellsPerTile]rune{'*', '*'}, core.ColorBrightYellow},
	level.Door:      {[CellsPerTile]rune{'[', ']'}, core.ColorBrightBlue},
}

var textColors = map[engine.TextKind]core.Color{
	engine.TextPlayer1Score: core.ColorBrightCyan,
	engine.TextPlayer2Score: core.ColorBrightMagenta,
}

// Sprite handles: tile sprites are the tile type, text sprites follow them.
const textSpriteBase = engine.Sprite(100)

type drawOp struct {
	sprite engine.Sprite
	text   string
	col    int
	row    int
}

// canvas implements engine.Renderer on top of a terminal screen. Draw calls
// made while the manager ticks are recorded in pixel space and replayed by
// blit, so a paused game keeps showing its last frame.
type canvas struct {
	tileWidth int
	ops       []drawOp
}

func newCanvas(tileWidth int) *canvas {
	return &canvas{tileWidth: tileWidth}
}

func (c *canvas) Texture(t level.TileType) engine.Sprite {
	return engine.Sprite(t)
}

func (c *canvas) Text(kind engine.TextKind) engine.Sprite {
	return textSpriteBase + engine.Sprite(kind)
}

func (c *canvas) Draw(s engine.Sprite, _, dst core.Rect) {
	col, row := c.cell(dst)
	c.ops = append(c.ops, drawOp{sprite: s, col: col, row: row})
}

func (c *canvas) DrawText(s engine.Sprite, value string, dst core.Rect) {
	col, row := c.cell(dst)
	c.ops = append(c.ops, drawOp{sprite: s, text: value, col: col, row: row})
}

// cell rounds a pixel position to the nearest half tile horizontally and
// the nearest tile vertically.
func (c *canvas) cell(dst core.Rect) (int, int) {
	tw := c.tileWidth
	col := (dst.X*CellsPerTile + tw/2) / tw
	row := (dst.Y + tw/2) / tw
	return col, row
}

// begin drops the recorded frame.
func (c *canvas) begin() {
	c.ops = c.ops[:0]
}

// blit replays the recorded frame into dst with the grid's top-left corner
// at (offX, offY). Text that would run past gridCols is shifted left.
func (c *canvas) blit(dst *core.Screen, offX, offY, gridCols int) {
	for _, op := range c.ops {
		if op.sprite >= textSpriteBase {
			kind := engine.TextKind(op.sprite - textSpriteBase)
			col := op.col
			if n := len([]rune(op.text)); col+n > gridCols {
				col = max(0, gridCols-n)
			}
			dst.DrawTextColored(offX+col, offY+op.row, op.text, textColors[kind])
			continue
		}

		glyph, ok := Glyphs[level.TileType(op.sprite)]
		if !ok {
			continue
		}
		for i, r := range glyph.Runes {
			dst.SetColored(offX+op.col+i, offY+op.row, r, glyph.Color)
		}
	}
}
