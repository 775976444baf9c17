package engine

import (
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// Sprite is an opaque texture handle issued by a Renderer.
type Sprite int

// TextKind selects a font/text style.
type TextKind int

const (
	TextPlayer1Score TextKind = iota
	TextPlayer2Score
)

// Renderer is the drawing collaborator. The engine never touches pixels; it
// asks for handles and issues one draw call per visible tile or object.
type Renderer interface {
	// Texture returns the sprite for a tile type.
	Texture(t level.TileType) Sprite
	// Text returns the sprite for a text style.
	Text(kind TextKind) Sprite
	// Draw draws the src region of s at dst. Rectangles are in pixels.
	Draw(s Sprite, src, dst core.Rect)
	// DrawText draws value with the text style s at dst.
	DrawText(s Sprite, value string, dst core.Rect)
}

// NopRenderer discards all drawing. Used by headless simulation and tests.
type NopRenderer struct{}

func (NopRenderer) Texture(level.TileType) Sprite { return 0 }
func (NopRenderer) Text(TextKind) Sprite { return 0 }
func (NopRenderer) Draw(Sprite, core.Rect, core.Rect) {}
func (NopRenderer) DrawText(Sprite, string, core.Rect) {}
