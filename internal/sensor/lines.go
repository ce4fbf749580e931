package sensor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// LineSource reads already-decoded readings, one per line, from r:
//
//	<target-id> <distance-m> <angle-deg> <detected 0|1>
//
// Blank lines and lines starting with '#' are skipped. It lets an external
// sensor decoder feed the display through a pipe.
type LineSource struct {
	r      io.Reader
	sender Sender
	cancel context.CancelFunc
	now    func() time.Time
}

// NewLineSource creates a source reading from r.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: r, now: time.Now}
}

// ParseLine decodes one reading line. ok is false for blank and comment
// lines.
func ParseLine(line string) (r Reading, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Reading{}, false, nil
	}
	var detected int
	n, err := fmt.Sscan(line, &r.TargetID, &r.Distance, &r.Angle, &detected)
	if err != nil {
		return Reading{}, false, fmt.Errorf("parse %q: field %d: %w", line, n+1, err)
	}
	if detected != 0 && detected != 1 {
		return Reading{}, false, fmt.Errorf("parse %q: detected flag must be 0 or 1", line)
	}
	r.Detected = detected == 1
	return r, true, nil
}

// Start reads lines in a goroutine until EOF, an error or Stop.
func (s *LineSource) Start(sender Sender) error {
	s.sender = sender
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go s.loop(ctx)
	return nil
}

func (s *LineSource) loop(ctx context.Context) {
	sc := bufio.NewScanner(s.r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return
		}
		r, ok, err := ParseLine(sc.Text())
		if err != nil {
			s.send(SourceErrorMsg{Err: err})
			continue
		}
		if !ok {
			continue
		}
		r.At = s.now()
		s.send(ReadingMsg{Reading: r})
	}
	if err := sc.Err(); err != nil && ctx.Err() == nil {
		s.send(SourceErrorMsg{Err: err})
	}
}

func (s *LineSource) send(msg any) {
	if s.sender != nil {
		s.sender.Send(msg)
	}
}

// Stop stops delivering readings. A blocked read returns on the next line.
func (s *LineSource) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
