package gameplay

import (
	engineinput "blademaster/pkg/engine/input"
	"blademaster/pkg/engine/world"
	"blademaster/pkg/game/state"
)

// StepResult describes what one processed intent did
type StepResult struct {
	Quit  bool
	Moved bool
	Taken bool
}

// directionFor maps movement actions to world directions
func directionFor(a engineinput.Action) (world.Direction, bool) {
	switch a {
	case engineinput.ActionMoveUp:
		return world.Up, true
	case engineinput.ActionMoveDown:
		return world.Down, true
	case engineinput.ActionMoveLeft:
		return world.Left, true
	case engineinput.ActionMoveRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// ProcessIntent resolves one step: collision or move, then pickup.
// Quit returns immediately without touching any state so the caller can
// restore the terminal and exit.
func ProcessIntent(g *state.Game, intent engineinput.Intent) (StepResult, error) {
	if intent.Action == engineinput.ActionQuit {
		return StepResult{Quit: true}, nil
	}

	var res StepResult
	if dir, ok := directionFor(intent.Action); ok {
		moved, err := Move(g, dir)
		if err != nil {
			return res, err
		}
		res.Moved = moved
	}

	res.Taken = TakeItems(g)
	g.Turn++
	return res, nil
}
