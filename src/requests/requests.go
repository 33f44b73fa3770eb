// Package requests holds the pending floor requests of a single car.
//
// The call queue (floors to travel to, in arrival order) and the pressed set
// (floors whose button light is lit) are tracked independently: pressing a
// floor does not queue it, and serving a queued floor does not clear its
// pressed entry. Callers that want both must update both.
package requests

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"liftscan/src/types"
)

// RequestSet is not safe for concurrent use. It belongs to exactly one dispatcher.
type RequestSet struct {
	maxFloors int
	queueSize int
	calls     []types.Floor
	pressed   []types.Floor
	display   types.Notifier
}

func New(maxFloors, queueSize int, display types.Notifier) *RequestSet {
	return &RequestSet{
		maxFloors: maxFloors,
		queueSize: queueSize,
		calls:     make([]types.Floor, 0, queueSize),
		pressed:   make([]types.Floor, 0, maxFloors),
		display:   display,
	}
}

func (rs *RequestSet) ValidFloor(floor types.Floor) bool {
	return floor >= 1 && int(floor) <= rs.maxFloors
}

// SubmitCall appends floor to the call queue. A rejected call is reported on
// the display and returned as a *FloorError.
func (rs *RequestSet) SubmitCall(floor types.Floor) error {
	var err error
	switch {
	case !rs.ValidFloor(floor):
		err = ErrInvalidFloor
	case rs.Contains(floor):
		err = ErrDuplicateRequest
	case len(rs.calls) >= rs.queueSize:
		err = ErrQueueFull
	}
	if err != nil {
		return rs.reject(floor, err)
	}

	rs.calls = append(rs.calls, floor)
	rs.display.Notify("Queue: " + formatFloors(rs.calls))
	return nil
}

// MarkPressed records floor as lit. It never touches the call queue.
func (rs *RequestSet) MarkPressed(floor types.Floor) error {
	var err error
	switch {
	case !rs.ValidFloor(floor):
		err = ErrInvalidFloor
	case rs.IsPressed(floor):
		err = ErrAlreadyPressed
	case len(rs.pressed) >= rs.maxFloors:
		err = ErrCapacityExceeded
	}
	if err != nil {
		return rs.reject(floor, err)
	}

	rs.pressed = append(rs.pressed, floor)
	rs.display.Notify("Pressed Floors: " + formatFloors(rs.pressed))
	return nil
}

func (rs *RequestSet) Contains(floor types.Floor) bool {
	return slices.Contains(rs.calls, floor)
}

func (rs *RequestSet) IsPressed(floor types.Floor) bool {
	return slices.Contains(rs.pressed, floor)
}

// Remove drops floor from the call queue, keeping the order of the rest.
// Removing an absent floor does nothing.
func (rs *RequestSet) Remove(floor types.Floor) {
	if i := slices.Index(rs.calls, floor); i >= 0 {
		rs.calls = slices.Delete(rs.calls, i, i+1)
	}
}

func (rs *RequestSet) Len() int {
	return len(rs.calls)
}

// Calls returns the queued floors in arrival order. The slice is shared; do not modify it.
func (rs *RequestSet) Calls() []types.Floor {
	return rs.calls
}

// Pressed returns the lit floors in press order. The slice is shared; do not modify it.
func (rs *RequestSet) Pressed() []types.Floor {
	return rs.pressed
}

// Clear empties both collections.
func (rs *RequestSet) Clear() {
	rs.calls = rs.calls[:0]
	rs.pressed = rs.pressed[:0]
}

func (rs *RequestSet) reject(floor types.Floor, err error) error {
	floorErr := &FloorError{Floor: floor, Err: err}
	slog.Info("Request rejected", "floor", floor, "reason", err)
	rs.display.Notify(floorErr.Error())
	return floorErr
}

func formatFloors(floors []types.Floor) string {
	parts := make([]string, len(floors))
	for i, f := range floors {
		parts[i] = fmt.Sprint(int(f))
	}
	return strings.Join(parts, " ")
}
