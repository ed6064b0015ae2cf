package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodger/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Replay     key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Replay, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Replay, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("click/r", "replay"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// actionScreenshot is a platform-only action; the game never sees it.
const actionScreenshot core.Action = -1

// KeyMapper translates Bubble Tea key messages to game actions.
//
// Terminals report key presses (and auto-repeats) but never releases, so a
// direction press is treated as held for holdTicks ticks. Auto-repeat keeps
// refreshing the window while the key is down; pressing the opposite
// direction releases the current one immediately.
type KeyMapper struct {
	keys      KeyMap
	holdTicks int
	held      map[core.Action]int
}

// NewKeyMapper creates a key mapper. holdTicks below 1 means a press lasts one tick.
func NewKeyMapper(keys KeyMap, holdTicks int) *KeyMapper {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyMapper{
		keys:      keys,
		holdTicks: holdTicks,
		held:      make(map[core.Action]int),
	}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action (ActionNone if unbound).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight
	case key.Matches(msg, km.keys.Replay):
		return core.ActionRestart
	case key.Matches(msg, km.keys.Screenshot):
		return actionScreenshot
	}
	return core.ActionNone
}

// Press starts or refreshes the hold window of a direction.
// Other actions are ignored; the caller sets them on the frame directly.
func (km *KeyMapper) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(km.held, core.ActionRight)
	case core.ActionRight:
		delete(km.held, core.ActionLeft)
	default:
		return
	}
	km.held[a] = km.holdTicks
}

// Apply sets every currently held direction on frame and ages the hold windows by one tick.
func (km *KeyMapper) Apply(frame *core.InputFrame) {
	for a, left := range km.held {
		frame.Set(a)
		if left <= 1 {
			delete(km.held, a)
		} else {
			km.held[a] = left - 1
		}
	}
}

// Held reports whether a direction is currently held.
func (km *KeyMapper) Held(a core.Action) bool {
	return km.held[a] > 0
}

// ReleaseAll drops every hold window.
func (km *KeyMapper) ReleaseAll() {
	clear(km.held)
}
