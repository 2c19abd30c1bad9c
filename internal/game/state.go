package game

import "strconv"

// State is a node of the turn state machine.
type State uint8

const (
	StateNewGame State = iota
	StateNextLevel
	StateAwaitingInput
	StateIncrementTime
	StateRunAI
	StateRunCombat
	StateRunDamage
	StateDeleteDead
	StateRunTimers
	StateGameOver
	StateInventoryMenu
)

var stateNames = [...]string{
	StateNewGame:       "NewGame",
	StateNextLevel:     "NextLevel",
	StateAwaitingInput: "AwaitingInput",
	StateIncrementTime: "IncrementTime",
	StateRunAI:         "RunAI",
	StateRunCombat:     "RunCombat",
	StateRunDamage:     "RunDamage",
	StateDeleteDead:    "DeleteDead",
	StateRunTimers:     "RunTimers",
	StateGameOver:      "GameOver",
	StateInventoryMenu: "InventoryMenu",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// waitsForInput reports whether the state only advances on player input.
func (s State) waitsForInput() bool {
	return s == StateAwaitingInput || s == StateInventoryMenu
}
