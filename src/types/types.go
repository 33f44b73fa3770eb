package types

import "liftscan/src/config"

// Floor numbers are 1-based. Floor 1 is the ground floor.
type Floor int

type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) Reverse() Direction {
	if d == Up {
		return Down
	}
	return Up
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "unknown"
}

type CarBehaviour int

const (
	Idle CarBehaviour = iota
	Moving
	Emergency
)

func (b CarBehaviour) String() string {
	switch b {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case Emergency:
		return "emergency"
	}
	return "unknown"
}

// CarState is the state of the single car. It is owned by one dispatcher.
type CarState struct {
	Floor       Floor
	Dir         Direction
	IsMoving    bool
	IsEmergency bool
}

func InitialCarState() CarState {
	return CarState{Floor: config.GroundFloor, Dir: Up}
}

func (s CarState) Behaviour() CarBehaviour {
	switch {
	case s.IsEmergency:
		return Emergency
	case s.IsMoving:
		return Moving
	default:
		return Idle
	}
}

// Status is a caller-owned copy of everything the dispatcher holds.
type Status struct {
	Car     CarState
	Queue   []Floor
	Pressed []Floor
}

// Notifier is the display sink. Notify must not fail.
type Notifier interface {
	Notify(message string)
}
