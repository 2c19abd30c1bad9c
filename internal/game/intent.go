package game

// IntentKind enumerates the discrete player intents the core accepts.
type IntentKind uint8

const (
	IntentNone IntentKind = iota
	IntentMove
	IntentWait
	IntentInteract
	IntentOpenMenu
	IntentCloseMenu
	IntentQuit // handled by front-ends; the core treats it as a no-op
)

func (k IntentKind) String() string {
	switch k {
	case IntentMove:
		return "Move"
	case IntentWait:
		return "Wait"
	case IntentInteract:
		return "Interact"
	case IntentOpenMenu:
		return "OpenMenu"
	case IntentCloseMenu:
		return "CloseMenu"
	case IntentQuit:
		return "Quit"
	}
	return "None"
}

// Intent is one logical player input. DX and DY are only meaningful for
// IntentMove.
type Intent struct {
	Kind   IntentKind
	DX, DY int
}

func MoveBy(dx, dy int) Intent { return Intent{Kind: IntentMove, DX: dx, DY: dy} }

var (
	Wait      = Intent{Kind: IntentWait}
	Interact  = Intent{Kind: IntentInteract}
	OpenMenu  = Intent{Kind: IntentOpenMenu}
	CloseMenu = Intent{Kind: IntentCloseMenu}
	Quit      = Intent{Kind: IntentQuit}
)

// unitStep reports whether (DX, DY) is one of the 8 unit directions.
func (in Intent) unitStep() bool {
	if in.DX == 0 && in.DY == 0 {
		return false
	}
	return in.DX >= -1 && in.DX <= 1 && in.DY >= -1 && in.DY <= 1
}

// PlayerAction is the outcome of handling one intent in AwaitingInput.
type PlayerAction uint8

const (
	NoAction PlayerAction = iota
	WaitTurn
	Moved
	MeleeAttack
	Salvaged
	Transit
	OpenInventory
)

func (a PlayerAction) String() string {
	switch a {
	case WaitTurn:
		return "WaitTurn"
	case Moved:
		return "Moved"
	case MeleeAttack:
		return "MeleeAttack"
	case Salvaged:
		return "Salvaged"
	case Transit:
		return "Transit"
	case OpenInventory:
		return "OpenInventory"
	}
	return "NoAction"
}
