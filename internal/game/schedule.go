package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingResource is returned when a tick needs state the session does not
// hold, or when the current turn state has no bound system group.
var ErrMissingResource = errors.New("missing resource")

// System is one step of a turn group. Reads and Writes declare the session
// resources it touches; the scheduler refuses to run it if any is absent.
type System struct {
	Name   string
	Reads  Resource
	Writes Resource
	Run    func(*Session) error
}

// Schedule maps each turn state to the ordered systems run for it.
type Schedule struct {
	groups map[TurnState][]System
}

// NewSchedule returns an empty schedule.
func NewSchedule() *Schedule {
	return &Schedule{groups: make(map[TurnState][]System)}
}

// Bind sets the systems run while in state, replacing any earlier binding.
func (sc *Schedule) Bind(state TurnState, systems ...System) {
	sc.groups[state] = systems
}

// Run executes the group bound to the session's current turn state. Deferred
// entity destruction is flushed after every system so later systems see the
// result. The state is read once; a system changing it takes effect next tick.
func (sc *Schedule) Run(s *Session) error {
	state := s.Turn
	group, ok := sc.groups[state]
	if !ok {
		return fmt.Errorf("%w: no systems bound to %v", ErrMissingResource, state)
	}
	// Check the whole group up front so a missing resource aborts the tick
	// before any system has changed state.
	for _, sys := range group {
		if err := s.require(sys.Reads | sys.Writes); err != nil {
			return fmt.Errorf("%s: %w", sys.Name, err)
		}
	}
	for _, sys := range group {
		if err := sys.Run(s); err != nil {
			return fmt.Errorf("%s: %w", sys.Name, err)
		}
		if s.World != nil {
			s.World.Flush()
		}
	}
	return nil
}

// Describe lists every bound group and its systems with their declared
// resources.
func (sc *Schedule) Describe() string {
	var b strings.Builder
	for _, state := range []TurnState{AwaitingInput, PlayerTurn, MonsterTurn} {
		group, ok := sc.groups[state]
		if !ok {
			fmt.Fprintf(&b, "%v: (unbound)\n", state)
			continue
		}
		fmt.Fprintf(&b, "%v:\n", state)
		for i, sys := range group {
			fmt.Fprintf(&b, "  %d. %-18s reads=%-22v writes=%v\n", i+1, sys.Name, sys.Reads, sys.Writes)
		}
	}
	return b.String()
}
