// Package notice carries the single user-facing messages (toasts) that
// controllers emit after an interaction. Hosts decide how to show them: the
// TUI status bar, stderr for CLI commands, or a tool result for MCP clients.
package notice

import (
	"sync"
)

// Level is the severity of a notice.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notice is one message shown to the operator.
type Notice struct {
	Level Level
	Text  string
}

// Sink receives notices. Implementations must be safe for concurrent use.
type Sink interface {
	Notify(n Notice)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Notice)

func (f SinkFunc) Notify(n Notice) { f(n) }

// Discard drops every notice.
var Discard Sink = SinkFunc(func(Notice) {})

// Recorder keeps every notice it receives, in order.
type Recorder struct {
	mu      sync.Mutex
	notices []Notice
}

func (r *Recorder) Notify(n Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	r.mu.Unlock()
}

// All returns a copy of the recorded notices.
func (r *Recorder) All() []Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Texts returns the recorded notice texts.
func (r *Recorder) Texts() []string {
	all := r.All()
	out := make([]string, len(all))
	for i, n := range all {
		out[i] = n.Text
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.notices = nil
	r.mu.Unlock()
}
