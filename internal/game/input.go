package game

import "github.com/gdamore/tcell/v2"

// keyToIntent maps a tcell key event to an intent. menu selects the
// bindings used while the inventory overlay is open.
func keyToIntent(ev *tcell.EventKey, menu bool) (Intent, bool) {
	if menu {
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyEnter:
			return CloseMenu, true
		}
		switch ev.Rune() {
		case 'i', 'I', 'x', 'X':
			return CloseMenu, true
		case 'q', 'Q':
			return Quit, true
		}
		return Intent{}, false
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return MoveBy(0, -1), true
	case tcell.KeyDown:
		return MoveBy(0, 1), true
	case tcell.KeyRight:
		return MoveBy(1, 0), true
	case tcell.KeyLeft:
		return MoveBy(-1, 0), true
	case tcell.KeyEnter:
		return Interact, true
	case tcell.KeyEscape:
		return Quit, true
	}

	switch ev.Rune() {
	case 'k', 'K', '8':
		return MoveBy(0, -1), true
	case 'j', 'J', '2':
		return MoveBy(0, 1), true
	case 'l', 'L', '6':
		return MoveBy(1, 0), true
	case 'h', 'H', '4':
		return MoveBy(-1, 0), true
	case 'y', 'Y', '7':
		return MoveBy(-1, -1), true
	case 'u', 'U', '9':
		return MoveBy(1, -1), true
	case 'b', 'B', '1':
		return MoveBy(-1, 1), true
	case 'n', 'N', '3':
		return MoveBy(1, 1), true
	case '.', '5', ' ':
		return Wait, true
	case 'g', 'G', ',', '>':
		return Interact, true
	case 'i', 'I':
		return OpenMenu, true
	case 'q', 'Q':
		return Quit, true
	}
	return Intent{}, false
}
