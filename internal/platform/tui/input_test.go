package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   KeyBinding
		ok     bool
		global core.Action
	}{
		{"w", runeKey("w"), KeyBinding{core.Player1, core.ActionUp, true}, true, core.ActionNone},
		{"caps D", runeKey("D"), KeyBinding{core.Player1, core.ActionRight, true}, true, core.ActionNone},
		{"space", runeKey(" "), KeyBinding{core.Player1, core.ActionBomb, false}, true, core.ActionNone},
		{"arrow", tea.KeyMsg{Type: tea.KeyLeft}, KeyBinding{core.Player2, core.ActionLeft, true}, true, core.ActionNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, KeyBinding{core.Player2, core.ActionBomb, false}, true, core.ActionNone},
		{"pause", runeKey("p"), KeyBinding{core.Player1, core.ActionPause, false}, true, core.ActionNone},
		{"save", tea.KeyMsg{Type: tea.KeyF5}, KeyBinding{core.Player1, core.ActionSave, false}, true, core.ActionNone},
		{"quit", runeKey("q"), KeyBinding{}, false, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, KeyBinding{}, false, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, KeyBinding{}, false, core.ActionBack},
		{"unbound", runeKey("x"), KeyBinding{}, false, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok, global := km.MapKey(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.global, global)
			if tt.ok {
				assert.Equal(t, tt.want, b)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(runeKey("j")))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey("q")))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey("x")))
}

func TestHeldKeysDecay(t *testing.T) {
	h := NewHeldKeys(HoldWindow)
	t0 := time.Unix(1000, 0)
	up := KeyBinding{core.Player1, core.ActionUp, true}

	h.Press(up, t0)

	assert.True(t, h.Frame(t0.Add(100*time.Millisecond)).Pressed(core.Player1, core.ActionUp))
	assert.True(t, h.Frame(t0.Add(249*time.Millisecond)).Pressed(core.Player1, core.ActionUp))
	assert.False(t, h.Frame(t0.Add(HoldWindow)).Pressed(core.Player1, core.ActionUp))

	// auto-repeat extends the hold
	h.Press(up, t0.Add(300*time.Millisecond))
	assert.True(t, h.Frame(t0.Add(500*time.Millisecond)).Pressed(core.Player1, core.ActionUp))
}

func TestHeldKeysOneShot(t *testing.T) {
	h := NewHeldKeys(HoldWindow)
	t0 := time.Unix(1000, 0)

	h.Press(KeyBinding{core.Player2, core.ActionBomb, false}, t0)

	first := h.Frame(t0)
	assert.True(t, first.Pressed(core.Player2, core.ActionBomb))
	assert.False(t, first.Pressed(core.Player1, core.ActionBomb))

	second := h.Frame(t0.Add(time.Millisecond))
	assert.False(t, second.Pressed(core.Player2, core.ActionBomb))
}

func TestHeldKeysDirectionReplaces(t *testing.T) {
	h := NewHeldKeys(HoldWindow)
	t0 := time.Unix(1000, 0)

	h.Press(KeyBinding{core.Player1, core.ActionUp, true}, t0)
	h.Press(KeyBinding{core.Player2, core.ActionDown, true}, t0)
	h.Press(KeyBinding{core.Player1, core.ActionRight, true}, t0.Add(10*time.Millisecond))

	f := h.Frame(t0.Add(20 * time.Millisecond))
	assert.False(t, f.Pressed(core.Player1, core.ActionUp))
	assert.True(t, f.Pressed(core.Player1, core.ActionRight))
	assert.True(t, f.Pressed(core.Player2, core.ActionDown), "other player keeps its keys")

	h.Reset()
	f = h.Frame(t0.Add(20 * time.Millisecond))
	require.False(t, f.Pressed(core.Player1, core.ActionRight))
	require.False(t, f.Pressed(core.Player2, core.ActionDown))
}
