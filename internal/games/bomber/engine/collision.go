package engine

import (
	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

// Insets shrink (positive) or grow (negative) an overlap test per edge, in
// fractions of a tile width.
type Insets struct {
	Up, Down, Left, Right float64
}

// CheckCollision reports whether box overlaps other after applying the
// insets. The comparisons are strict: boxes that only touch do not collide.
func CheckCollision(box, other core.Rect, in Insets, tileWidth int) bool {
	tw := float64(tileWidth)
	return float64(other.Bottom())-tw*in.Up > float64(box.Y) &&
		float64(box.Bottom())-tw*in.Down > float64(other.Y) &&
		float64(other.Right())-tw*in.Left > float64(box.X) &&
		float64(box.Right())-tw*in.Right > float64(other.X)
}

// WallCollision tests box against the wall and breakable tiles of the 4x4
// neighbourhood around cell: two cells up and left, one cell down and right.
func WallCollision(box core.Rect, cell level.Point, tiles *TileGrid, in Insets) bool {
	for y := cell.Y - 2; y < cell.Y+2; y++ {
		for x := cell.X - 2; x < cell.X+2; x++ {
			if !tiles.InBounds(x, y) {
				continue
			}
			t := tiles.At(x, y)
			if t.Type.Solid() && CheckCollision(box, t.Box, in, tiles.TileWidth()) {
				return true
			}
		}
	}
	return false
}

// ObjectCollision returns the first object in list order tagged target whose
// box overlaps box, or nil.
func ObjectCollision(box core.Rect, objects []Object, target level.TileType, in Insets, tileWidth int) Object {
	for _, obj := range objects {
		if obj.Type() != target {
			continue
		}
		if CheckCollision(box, obj.Box(), in, tileWidth) {
			return obj
		}
	}
	return nil
}
