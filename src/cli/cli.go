// Package cli drives a dispatcher from single key presses.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"liftscan/src/elev"
	"liftscan/src/types"

	"github.com/eiannone/keyboard"
)

type Action int

const (
	None Action = iota
	Call
	Run
	Emergency
	Status
	Reset
	Quit
)

type Command struct {
	Action Action
	Floor  types.Floor
}

const Help = "1-9,0: call floor (0 = 10)  r/enter: run  e: emergency  s: status  x: reset  q/esc: quit"

// ParseKey maps a key press to a command. Unknown keys map to None.
func ParseKey(char rune, key keyboard.Key) Command {
	switch key {
	case keyboard.KeyEnter:
		return Command{Action: Run}
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return Command{Action: Quit}
	}

	switch {
	case char >= '1' && char <= '9':
		return Command{Action: Call, Floor: types.Floor(char - '0')}
	case char == '0':
		return Command{Action: Call, Floor: 10}
	}

	switch char {
	case 'r', 'R':
		return Command{Action: Run}
	case 'e', 'E':
		return Command{Action: Emergency}
	case 's', 'S':
		return Command{Action: Status}
	case 'x', 'X':
		return Command{Action: Reset}
	case 'q', 'Q':
		return Command{Action: Quit}
	}
	return Command{Action: None}
}

// Apply executes cmd on the dispatcher. It returns false once the user quits.
// A floor button both queues the floor and lights it.
func Apply(d *elev.Dispatcher, cmd Command, out io.Writer) bool {
	switch cmd.Action {
	case Call:
		// Rejections are already shown on the display.
		_ = d.SubmitCall(cmd.Floor)
		_ = d.MarkPressed(cmd.Floor)
	case Run:
		d.DispatchNext()
	case Emergency:
		d.ActivateEmergencyMode()
	case Status:
		fmt.Fprintln(out, elev.FormatStatus(d.Snapshot()))
	case Reset:
		d.Reset()
	case Quit:
		return false
	}
	return true
}

// RunInteractive reads keys until the user quits or the keyboard fails.
func RunInteractive(d *elev.Dispatcher, out io.Writer) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	fmt.Fprintln(out, Help)
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		cmd := ParseKey(char, key)
		slog.Debug("Key pressed", "char", string(char), "action", cmd.Action, "floor", cmd.Floor)
		if !Apply(d, cmd, out) {
			return nil
		}
	}
}
