// Contains the directional scan that moves the car from stop to stop.
package elev

import (
	"fmt"
	"log/slog"

	"liftscan/src/config"
	"liftscan/src/types"
)

// DispatchNext serves queued floors until the queue is empty or an emergency is active.
//  1. Pick the nearest queued floor ahead of the car in its current direction.
//  2. If there is none, reverse direction once and look again.
//  3. Move there, announce the floor, drop it from the queue and repeat.
func (d *Dispatcher) DispatchNext() {
	reversed := false
	for {
		if d.requests.Len() == 0 || d.car.IsEmergency {
			d.car.IsMoving = false
			if d.car.IsEmergency {
				d.display.Notify("Emergency mode activated. Please wait.")
			} else {
				d.display.Notify("No floors in the queue!")
			}
			return
		}
		d.car.IsMoving = true

		target, found := nextStop(d.requests.Calls(), d.car.Floor, d.car.Dir)
		if !found {
			if reversed {
				// Nothing ahead either way: every remaining call is for this floor.
				d.serveHere()
				reversed = false
				continue
			}
			d.car.Dir = d.car.Dir.Reverse()
			reversed = true
			slog.Debug("No calls ahead, reversing", "floor", d.car.Floor, "dir", d.car.Dir)
			continue
		}
		reversed = false

		d.display.Notify(fmt.Sprintf("Elevator is moving from floor %d to floor %d", d.car.Floor, target))
		slog.Debug("Serving call", "from", d.car.Floor, "to", target, "dir", d.car.Dir)
		d.car.Floor = target
		d.showFloor()
		d.requests.Remove(target)
		d.car.IsMoving = false
	}
}

// ActivateEmergencyMode sends the car straight to the ground floor. Pending
// requests are left in place.
func (d *Dispatcher) ActivateEmergencyMode() {
	d.car.IsEmergency = true
	slog.Warn("Emergency recall", "from", d.car.Floor, "queued", d.requests.Len())
	d.display.Notify("Emergency mode activated! Returning to ground floor.")
	d.car.Floor = config.GroundFloor
	d.car.IsEmergency = false
	d.showFloor()
}

func (d *Dispatcher) serveHere() {
	slog.Debug("Serving call at current floor", "floor", d.car.Floor)
	for d.requests.Contains(d.car.Floor) {
		d.requests.Remove(d.car.Floor)
	}
	d.showFloor()
	d.car.IsMoving = false
}

// nextStop returns the closest floor strictly ahead of current in direction dir.
func nextStop(calls []types.Floor, current types.Floor, dir types.Direction) (types.Floor, bool) {
	var next types.Floor
	found := false
	for _, floor := range calls {
		switch dir {
		case types.Up:
			if floor > current && (!found || floor < next) {
				next, found = floor, true
			}
		case types.Down:
			if floor < current && (!found || floor > next) {
				next, found = floor, true
			}
		}
	}
	return next, found
}
