// Package workflow holds the screen-level state machine of a brick breaker
// session: playing a level, waiting to start the next one, or game over.
package workflow

import (
	"errors"
	"fmt"
)

// State is the current workflow screen.
type State int

const (
	Play State = iota
	NextLevel
	GameOver
)

// Initial is the state a new session starts in.
const Initial = Play

func (s State) String() string {
	switch s {
	case Play:
		return "play"
	case NextLevel:
		return "next_level"
	case GameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Intent is a request to move the workflow forward.
type Intent int

const (
	StartGame Intent = iota
	Lose
	Win
	GoToHomePage
)

func (i Intent) String() string {
	switch i {
	case StartGame:
		return "start_game"
	case Lose:
		return "lose"
	case Win:
		return "win"
	case GoToHomePage:
		return "go_to_home_page"
	default:
		return fmt.Sprintf("intent(%d)", int(i))
	}
}

// ErrInvalidTransition is matched by every rejected transition.
var ErrInvalidTransition = errors.New("workflow: invalid transition")

// InvalidTransitionError reports an intent that is not valid in a state.
type InvalidTransitionError struct {
	From   State
	Intent Intent
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("workflow: invalid transition: %s does not accept %s", e.From, e.Intent)
}

// Is lets errors.Is match the sentinel.
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

type transition struct {
	from   State
	intent Intent
}

var transitions = map[transition]State{
	{NextLevel, StartGame}:   Play,
	{Play, Lose}:             GameOver,
	{Play, Win}:              NextLevel,
	{GameOver, GoToHomePage}: NextLevel,
}

// Reduce returns the state reached by applying intent to state.
// On error the returned state equals the input state.
func Reduce(state State, intent Intent) (State, error) {
	next, ok := transitions[transition{state, intent}]
	if !ok {
		return state, &InvalidTransitionError{From: state, Intent: intent}
	}
	return next, nil
}

// Machine keeps the current state and applies intents to it.
type Machine struct {
	state State
}

// NewMachine returns a machine in the initial state.
func NewMachine() *Machine {
	return &Machine{state: Initial}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Apply reduces the current state. Rejected intents leave it unchanged.
func (m *Machine) Apply(intent Intent) error {
	next, err := Reduce(m.state, intent)
	if err != nil {
		return err
	}
	m.state = next
	return nil
}
