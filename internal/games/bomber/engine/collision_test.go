package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-bomber/internal/core"
	"github.com/vovakirdan/tui-bomber/internal/games/bomber/level"
)

func TestCheckCollision(t *testing.T) {
	box := core.NewRect(64, 64, 64, 64)

	tests := []struct {
		name     string
		other    core.Rect
		in       Insets
		expected bool
	}{
		{"overlap", core.NewRect(100, 100, 64, 64), Insets{}, true},
		{"touching right edge", core.NewRect(128, 64, 64, 64), Insets{}, false},
		{"touching bottom edge", core.NewRect(64, 128, 64, 64), Insets{}, false},
		{"one pixel in", core.NewRect(127, 64, 64, 64), Insets{}, true},
		{"right inset hides overlap", core.NewRect(120, 64, 64, 64), Insets{Right: 0.25}, false},
		{"negative down inset reaches", core.NewRect(64, 130, 64, 64), Insets{Down: -0.1}, true},
		{"up inset lets head overlap", core.NewRect(64, 0, 64, 70), Insets{Up: 0.8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CheckCollision(box, tt.other, tt.in, 64))
		})
	}
}

func TestWallCollisionIgnoresEmptyTiles(t *testing.T) {
	tiles := newTileGrid(5, 5, 64)
	tiles.set(level.Point{X: 2, Y: 1}, level.Breakable)

	inside := core.NewRect(64+10, 64+10, 40, 40)
	assert.False(t, WallCollision(inside, level.Point{X: 1, Y: 1}, tiles, Insets{}))

	pushed := core.NewRect(inside.X+40, inside.Y, inside.W, inside.H)
	assert.True(t, WallCollision(pushed, level.Point{X: 1, Y: 1}, tiles, Insets{}))

	// Cells outside the scanned neighbourhood are never tested
	far := core.NewRect(2*64+10, 64+10, 40, 40)
	assert.False(t, WallCollision(far, level.Point{X: 4, Y: 4}, tiles, Insets{}))
}

func TestObjectCollisionFiltersByType(t *testing.T) {
	g := testGeometry()
	door := NewDoor(1, level.Point{X: 1, Y: 1}, g)
	blast := NewExplosion(2, level.Point{X: 1, Y: 1}, g)
	objects := []Object{door, blast}

	box := core.NewRect(70, 70, 10, 10)
	assert.Equal(t, Object(blast), ObjectCollision(box, objects, level.Blast, Insets{}, 64))
	assert.Equal(t, Object(door), ObjectCollision(box, objects, level.Door, Insets{}, 64))
	assert.Nil(t, ObjectCollision(box, objects, level.Enemy, Insets{}, 64))
}
