// Package flow models the wizard stage machines behind the Convert,
// Send and card-creation flows: a fixed stage list, explicit forward
// and backward transitions, and epoch-guarded timers for the
// fixed-duration automatic advances so a stale or duplicated timer can
// never move a wizard twice.
package flow

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Stage names one wizard step.
type Stage string

// epochCounter is process-wide so a freshly mounted machine can never
// be advanced by a timer scheduled against a previous instance.
var epochCounter atomic.Int64

// Machine is a linear wizard with optional back edges. Every
// transition bumps the epoch, invalidating any advance scheduled
// before it.
type Machine struct {
	stages []Stage
	index  int
	epoch  int64
}

func New(stages ...Stage) *Machine {
	if len(stages) == 0 {
		panic("flow: machine needs at least one stage")
	}
	return &Machine{stages: stages, epoch: epochCounter.Add(1)}
}

func (m *Machine) Stage() Stage {
	return m.stages[m.index]
}

func (m *Machine) AtTerminal() bool {
	return m.index == len(m.stages)-1
}

func (m *Machine) Epoch() int64 {
	return m.epoch
}

func (m *Machine) bump() {
	m.epoch = epochCounter.Add(1)
}

// Advance moves one stage forward. At the terminal stage it is a
// no-op, so a double-tapped confirm cannot run past the end.
func (m *Machine) Advance() bool {
	if m.AtTerminal() {
		return false
	}
	m.index++
	m.bump()
	return true
}

// Back moves one stage backward, for the cancel edges.
func (m *Machine) Back() bool {
	if m.index == 0 {
		return false
	}
	m.index--
	m.bump()
	return true
}

// GoTo jumps to a named stage. Unknown stages are rejected.
func (m *Machine) GoTo(target Stage) bool {
	for i, s := range m.stages {
		if s == target {
			m.index = i
			m.bump()
			return true
		}
	}
	return false
}

// AdvanceMsg is delivered when a scheduled automatic transition fires.
type AdvanceMsg struct {
	Epoch int64
	To    Stage
}

// AutoAdvance schedules a transition to the target stage after the
// given delay. The returned command captures the current epoch; if the
// machine moves in the meantime the message is stale and Apply drops
// it.
func (m *Machine) AutoAdvance(d time.Duration, to Stage) tea.Cmd {
	epoch := m.epoch
	return tea.Tick(d, func(time.Time) tea.Msg {
		return AdvanceMsg{Epoch: epoch, To: to}
	})
}

// Apply executes a scheduled advance, ignoring stale messages.
func (m *Machine) Apply(msg AdvanceMsg) bool {
	if msg.Epoch != m.epoch {
		return false
	}
	return m.GoTo(msg.To)
}
