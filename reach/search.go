package reach

import "github.com/Brandhoej/perfdar"

// Search is a restartable, lazy breadth-first enumerator of the states
// reachable from the system's initial state by edges whose action is in the
// subset. Every reachable state is discovered exactly once, in
// non-decreasing distance from the initial state; membership uses full
// state equality, not location equality. Each state is yielded before its
// successors are computed, so the caller can stop after any discovered
// state without paying for the next expansion:
//
//	search := reach.NewSearch(system, actions)
//	for search.Next() {
//		state := search.State()
//		...
//	}
//	if err := search.Err(); err != nil { ... }
//
// Termination is the caller's concern: the enumeration is finite exactly
// when the reachable state space is, and WithMaxStates bounds it otherwise.
type Search struct {
	system    System
	actions   perfdar.ChannelSet
	frontier  *FIFO[perfdar.State]
	seen      map[string]bool
	current   perfdar.State
	expand    bool
	err       error
	started   bool
	maxStates int
	visited   int
}

// NewSearch builds a search over the system restricted to the action
// subset. The search is lazy; no exploration happens until Next.
func NewSearch(system System, actions perfdar.ChannelSet) *Search {
	return &Search{
		system:   system,
		actions:  actions.Clone(),
		frontier: NewFIFO[perfdar.State](),
		seen:     make(map[string]bool),
	}
}

// WithMaxStates caps the number of states the search will discover. Zero
// means unbounded.
func (s *Search) WithMaxStates(max int) *Search {
	s.maxStates = max
	return s
}

// Next discovers the next reachable state. It reports false when the state
// space is exhausted, the cap is reached, or stepping failed; Err
// distinguishes the last case.
func (s *Search) Next() bool {
	if s.err != nil {
		return false
	}
	if !s.started {
		s.started = true
		initial := s.system.InitialState()
		s.frontier.Push(initial)
		s.seen[initial.Key()] = true
	}

	// Expand the previously yielded state first; its successors were
	// deliberately not computed until the caller asked for more.
	if s.expand {
		s.expand = false
		successors, err := s.system.Successors(s.current, s.actions)
		if err != nil {
			s.err = err
			return false
		}
		for _, successor := range successors {
			key := successor.Key()
			if !s.seen[key] {
				s.seen[key] = true
				s.frontier.Push(successor)
			}
		}
	}

	if s.maxStates > 0 && s.visited >= s.maxStates {
		return false
	}
	current, ok := s.frontier.Pop()
	if !ok {
		return false
	}

	s.current = current
	s.visited++
	s.expand = true
	return true
}

// State returns the state discovered by the last successful Next.
func (s *Search) State() perfdar.State { return s.current }

// Err returns the stepping error that stopped the search, if any.
func (s *Search) Err() error { return s.err }

// Truncated reports whether the search stopped because of the state cap
// while frontier states remained.
func (s *Search) Truncated() bool {
	return s.maxStates > 0 && s.visited >= s.maxStates && s.frontier.Len() > 0
}

// Visited returns the number of states discovered so far.
func (s *Search) Visited() int { return s.visited }

// Reset restarts the search from the initial state.
func (s *Search) Reset() {
	s.frontier = NewFIFO[perfdar.State]()
	s.seen = make(map[string]bool)
	s.current = perfdar.State{}
	s.expand = false
	s.err = nil
	s.started = false
	s.visited = 0
}

// All drains the search and returns every discovered state. The search
// should be fresh or reset; draining a partially consumed search only
// returns the remainder.
func (s *Search) All() ([]perfdar.State, error) {
	var states []perfdar.State
	for s.Next() {
		states = append(states, s.State())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return states, nil
}
