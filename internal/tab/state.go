package tab

import "fmt"

// State tracks the titles of the tabs and which of them is active.
type State struct {
	titles []string
	index  int
}

// NewState constructs state from tab titles, labelling each title with its
// 1-based position, e.g. "1.Disk". The first tab is active.
func NewState(titles []string) (*State, error) {
	if len(titles) == 0 {
		return nil, ErrNoTabs
	}
	labelled := make([]string, len(titles))
	for i, title := range titles {
		labelled[i] = fmt.Sprintf("%d.%s", i+1, title)
	}
	return &State{titles: labelled}, nil
}

// Next activates the next tab, cycling back to the first tab after the last.
func (s *State) Next() {
	s.index = (s.index + 1) % len(s.titles)
}

// Previous activates the previous tab, cycling to the last tab before the
// first.
func (s *State) Previous() {
	if s.index > 0 {
		s.index--
	} else {
		s.index = len(s.titles) - 1
	}
}

// Jump activates the nth tab (1-based). If n exceeds the number of tabs then
// the last tab is activated. Values of n below 1 are ignored.
func (s *State) Jump(n int) {
	if n < 1 {
		return
	}
	if n > len(s.titles) {
		n = len(s.titles)
	}
	// Cycle forward until the target is reached.
	for s.index != n-1 {
		s.Next()
	}
}

// Index returns the 0-based index of the active tab.
func (s *State) Index() int { return s.index }

// Len returns the number of tabs.
func (s *State) Len() int { return len(s.titles) }

// Titles returns the labelled titles.
func (s *State) Titles() []string {
	return append([]string(nil), s.titles...)
}

// Active returns the labelled title of the active tab.
func (s *State) Active() string {
	return s.titles[s.index]
}
