package tui

import "github.com/leg100/tabdash/internal/executor"

// resultMsg carries the result of running the active tab's command for a
// frame.
type resultMsg struct {
	frame  int
	result executor.Result
}
