package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/karl-eido/input"
)

// binding maps a terminal key to a keypad key
// long bindings bypass hit classification and report input.TypeLong;
// tap bindings follow a Press with a Short since terminals report no release
type binding struct {
	key  input.Key
	long bool
	tap  bool
}

// KeyTable holds terminal key bindings
type KeyTable struct {
	Special map[tcell.Key]binding
	Runes   map[rune]binding
}

// DefaultKeyTable binds arrows and hjkl to the pad, Enter to a short OK,
// Space to a long OK, and Escape, Backspace, q and Ctrl+C to Back
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Special: map[tcell.Key]binding{
			tcell.KeyUp:         {key: input.KeyUp},
			tcell.KeyDown:       {key: input.KeyDown},
			tcell.KeyLeft:       {key: input.KeyLeft},
			tcell.KeyRight:      {key: input.KeyRight},
			tcell.KeyEnter:      {key: input.KeyOK, tap: true},
			tcell.KeyEscape:     {key: input.KeyBack},
			tcell.KeyBackspace:  {key: input.KeyBack},
			tcell.KeyBackspace2: {key: input.KeyBack},
			tcell.KeyCtrlC:      {key: input.KeyBack},
		},
		Runes: map[rune]binding{
			'k': {key: input.KeyUp},
			'j': {key: input.KeyDown},
			'h': {key: input.KeyLeft},
			'l': {key: input.KeyRight},
			' ': {key: input.KeyOK, long: true},
			'q': {key: input.KeyBack},
		},
	}
}

// Lookup resolves a tcell key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (binding, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := kt.Runes[ev.Rune()]
		return b, ok
	}
	b, ok := kt.Special[ev.Key()]
	return b, ok
}
