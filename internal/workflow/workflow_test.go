package workflow

import (
	"errors"
	"testing"
)

func TestReduceValidTransitions(t *testing.T) {
	tests := []struct {
		from     State
		intent   Intent
		expected State
	}{
		{NextLevel, StartGame, Play},
		{Play, Lose, GameOver},
		{Play, Win, NextLevel},
		{GameOver, GoToHomePage, NextLevel},
	}

	for _, tt := range tests {
		got, err := Reduce(tt.from, tt.intent)
		if err != nil {
			t.Errorf("Reduce(%s, %s) error = %v", tt.from, tt.intent, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Reduce(%s, %s) = %s, expected %s", tt.from, tt.intent, got, tt.expected)
		}
	}
}

func TestReduceRejectsEveryOtherPair(t *testing.T) {
	states := []State{Play, NextLevel, GameOver}
	intents := []Intent{StartGame, Lose, Win, GoToHomePage}

	valid := 0
	for _, s := range states {
		for _, in := range intents {
			got, err := Reduce(s, in)
			if _, ok := transitions[transition{s, in}]; ok {
				valid++
				continue
			}
			if err == nil {
				t.Errorf("Reduce(%s, %s) expected error", s, in)
				continue
			}
			if got != s {
				t.Errorf("Reduce(%s, %s) = %s, expected state unchanged", s, in, got)
			}
			if !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("Reduce(%s, %s) error = %v, expected ErrInvalidTransition", s, in, err)
			}
		}
	}

	if valid != 4 {
		t.Errorf("valid transitions = %d, expected 4", valid)
	}
}

func TestInvalidTransitionErrorCarriesPair(t *testing.T) {
	_, err := Reduce(NextLevel, Lose)

	var te *InvalidTransitionError
	if !errors.As(err, &te) {
		t.Fatalf("Reduce(NextLevel, Lose) error = %T, expected *InvalidTransitionError", err)
	}
	if te.From != NextLevel || te.Intent != Lose {
		t.Errorf("error pair = (%s, %s), expected (next_level, lose)", te.From, te.Intent)
	}
}

func TestMachineApply(t *testing.T) {
	m := NewMachine()
	if m.State() != Play {
		t.Fatalf("NewMachine().State() = %s, expected play", m.State())
	}

	if err := m.Apply(StartGame); err == nil {
		t.Error("Apply(StartGame) in play expected error")
	}
	if m.State() != Play {
		t.Errorf("State() = %s after rejected intent, expected play", m.State())
	}

	steps := []struct {
		intent   Intent
		expected State
	}{
		{Lose, GameOver},
		{GoToHomePage, NextLevel},
		{StartGame, Play},
		{Win, NextLevel},
	}
	for _, s := range steps {
		if err := m.Apply(s.intent); err != nil {
			t.Fatalf("Apply(%s) error = %v", s.intent, err)
		}
		if m.State() != s.expected {
			t.Errorf("Apply(%s) state = %s, expected %s", s.intent, m.State(), s.expected)
		}
	}
}

func TestStringers(t *testing.T) {
	if State(9).String() != "state(9)" {
		t.Errorf("State(9).String() = %q", State(9).String())
	}
	if GoToHomePage.String() != "go_to_home_page" {
		t.Errorf("GoToHomePage.String() = %q", GoToHomePage.String())
	}
}
