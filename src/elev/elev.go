package elev

import (
	"log/slog"

	"liftscan/src/config"
	"liftscan/src/requests"
	"liftscan/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Dispatcher owns the car state and its pending requests. It is not safe for
// concurrent use; all calls must come from the same goroutine.
type Dispatcher struct {
	car      types.CarState
	requests *requests.RequestSet
	display  types.Notifier
}

func New(cfg config.Config, display types.Notifier) *Dispatcher {
	d := &Dispatcher{
		car:      types.InitialCarState(),
		requests: requests.New(cfg.MaxFloors, cfg.MaxQueueSize, display),
		display:  display,
	}
	slog.Debug("Dispatcher initialized",
		"floor", d.car.Floor,
		"maxFloors", cfg.MaxFloors,
		"queueSize", cfg.MaxQueueSize)
	return d
}

// SubmitCall queues a floor for the car to visit.
func (d *Dispatcher) SubmitCall(floor types.Floor) error {
	if floor == d.car.Floor {
		err := &requests.FloorError{Floor: floor, Err: requests.ErrAlreadyAtFloor}
		slog.Info("Request rejected", "floor", floor, "reason", err.Err)
		d.display.Notify(err.Error())
		return err
	}
	return d.requests.SubmitCall(floor)
}

// MarkPressed lights a floor button without queueing it.
func (d *Dispatcher) MarkPressed(floor types.Floor) error {
	return d.requests.MarkPressed(floor)
}

func (d *Dispatcher) CurrentFloor() types.Floor {
	return d.car.Floor
}

func (d *Dispatcher) Direction() types.Direction {
	return d.car.Dir
}

func (d *Dispatcher) IsQueued(floor types.Floor) bool {
	return d.requests.Contains(floor)
}

func (d *Dispatcher) IsPressed(floor types.Floor) bool {
	return d.requests.IsPressed(floor)
}

func (d *Dispatcher) IsMoving() bool {
	return d.car.IsMoving
}

func (d *Dispatcher) IsEmergency() bool {
	return d.car.IsEmergency
}

func (d *Dispatcher) QueueLen() int {
	return d.requests.Len()
}

// Remove drops a floor from the call queue. Absent floors are ignored.
func (d *Dispatcher) Remove(floor types.Floor) {
	d.requests.Remove(floor)
}

// Snapshot returns a deep copy of the car state and both request collections.
func (d *Dispatcher) Snapshot() types.Status {
	current := types.Status{
		Car:     d.car,
		Queue:   d.requests.Calls(),
		Pressed: d.requests.Pressed(),
	}
	status := types.Status{}
	if err := deepcopy.Copy(&status, &current); err != nil {
		panic(err)
	}
	return status
}

// Reset drops every request and puts the car back at the ground floor, heading up.
func (d *Dispatcher) Reset() {
	d.requests.Clear()
	d.car = types.InitialCarState()
	slog.Debug("Dispatcher reset")
	d.display.Notify("Elevator reset")
	d.showFloor()
}

func (d *Dispatcher) showFloor() {
	d.display.Notify("Elevator on Floor " + FloorName(d.car.Floor))
}
