package sensor

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Reading is one report from the sensor about one target slot.
type Reading struct {
	TargetID int
	Distance float64 // meters
	Angle    float64 // degrees, 0=right, 90=ahead, 180=left
	Detected bool
	At       time.Time
}

// ReadingMsg is sent via tea.Program.Send when the sensor reports.
type ReadingMsg struct {
	Reading
}

// SourceErrorMsg reports a source that stopped on an error.
type SourceErrorMsg struct {
	Err error
}

// Sender delivers messages into the host event loop. *tea.Program
// satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Source produces readings until stopped.
type Source interface {
	Start(s Sender) error
	Stop()
}
