// Package display provides the notification sinks the car reports to.
package display

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Console prints each message on its own line and mirrors it to the debug log.
type Console struct {
	out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

func (c *Console) Notify(message string) {
	fmt.Fprintln(c.out, message)
	slog.Debug("Display", "message", message)
}

// Recorder keeps every message in the order it was notified.
type Recorder struct {
	messages []string
}

func (r *Recorder) Notify(message string) {
	r.messages = append(r.messages, message)
}

func (r *Recorder) Messages() []string {
	return slices.Clone(r.messages)
}

func (r *Recorder) Last() string {
	if len(r.messages) == 0 {
		return ""
	}
	return r.messages[len(r.messages)-1]
}

func (r *Recorder) Reset() {
	r.messages = nil
}
