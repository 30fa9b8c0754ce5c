package command

// Action is the kind of state transition a command line asks for.
type Action int

const (
	ActionEmpty Action = iota
	ActionNewDeal
	ActionStockToWaste
	ActionWasteToFoundation
	ActionWasteToTableau
	ActionTableauToFoundation
	ActionTableauToTableau
	ActionFoundationToTableau
	ActionUndo
	ActionReplay
	ActionHint
	ActionSolve
	ActionHelp
	ActionQuit
	ActionInvalid
)

var actionNames = map[Action]string{
	ActionEmpty:               "empty",
	ActionNewDeal:             "new_deal",
	ActionStockToWaste:        "stock_to_waste",
	ActionWasteToFoundation:   "waste_to_foundation",
	ActionWasteToTableau:      "waste_to_tableau",
	ActionTableauToFoundation: "tableau_to_foundation",
	ActionTableauToTableau:    "tableau_to_tableau",
	ActionFoundationToTableau: "foundation_to_tableau",
	ActionUndo:                "undo",
	ActionReplay:              "replay",
	ActionHint:                "hint",
	ActionSolve:               "solve",
	ActionHelp:                "help",
	ActionQuit:                "quit",
	ActionInvalid:             "invalid",
}

// String returns the snake_case name used in logs and metric labels.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, len(actionNames))
	for a := ActionEmpty; a <= ActionInvalid; a++ {
		out = append(out, a)
	}
	return out
}

// Mutates reports whether a successful command of this kind changes the
// game (as opposed to printing help or reporting an unavailable feature).
func (a Action) Mutates() bool {
	switch a {
	case ActionNewDeal, ActionStockToWaste, ActionWasteToFoundation, ActionWasteToTableau,
		ActionTableauToFoundation, ActionTableauToTableau, ActionFoundationToTableau:
		return true
	}
	return false
}
