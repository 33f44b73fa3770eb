package requests

import (
	"errors"
	"fmt"

	"liftscan/src/types"
)

var (
	ErrInvalidFloor     = errors.New("invalid floor")
	ErrAlreadyAtFloor   = errors.New("already at floor")
	ErrDuplicateRequest = errors.New("duplicate request")
	ErrQueueFull        = errors.New("queue full")
	ErrAlreadyPressed   = errors.New("already pressed")
	ErrCapacityExceeded = errors.New("pressed floors capacity exceeded")
)

// FloorError reports a rejected request. Error returns the message shown on the display.
type FloorError struct {
	Floor types.Floor
	Err   error
}

func (e *FloorError) Error() string {
	switch e.Err {
	case ErrInvalidFloor:
		return "Invalid floor number!"
	case ErrAlreadyAtFloor:
		return "You are already on this floor!"
	case ErrDuplicateRequest:
		return fmt.Sprintf("Floor %d is already in the queue!", e.Floor)
	case ErrQueueFull:
		return "Queue is full! Cannot add more floors."
	case ErrAlreadyPressed:
		return fmt.Sprintf("Floor %d is already pressed!", e.Floor)
	case ErrCapacityExceeded:
		return "Cannot add more pressed floors!"
	}
	return fmt.Sprintf("floor %d: %v", e.Floor, e.Err)
}

func (e *FloorError) Unwrap() error {
	return e.Err
}
