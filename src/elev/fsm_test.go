package elev

import (
	"slices"
	"strings"
	"testing"

	"liftscan/src/config"
	"liftscan/src/display"
	"liftscan/src/types"
)

func newTestDispatcher() (*Dispatcher, *display.Recorder) {
	rec := &display.Recorder{}
	return New(config.Default(), rec), rec
}

// visitedFloors extracts the destination of every move message.
func visitedFloors(messages []string) []string {
	var floors []string
	for _, msg := range messages {
		if i := strings.LastIndex(msg, "to floor "); i >= 0 && strings.HasPrefix(msg, "Elevator is moving") {
			floors = append(floors, msg[i+len("to floor "):])
		}
	}
	return floors
}

func TestNextStop(t *testing.T) {
	tests := []struct {
		name    string
		calls   []types.Floor
		current types.Floor
		dir     types.Direction
		want    types.Floor
		found   bool
	}{
		{"nearest above", []types.Floor{7, 3, 5}, 1, types.Up, 3, true},
		{"nearest below", []types.Floor{2, 8, 4}, 6, types.Down, 4, true},
		{"nothing above", []types.Floor{2, 3}, 5, types.Up, 0, false},
		{"nothing below", []types.Floor{8, 9}, 5, types.Down, 0, false},
		{"current floor ignored", []types.Floor{5}, 5, types.Up, 0, false},
		{"empty", nil, 5, types.Down, 0, false},
	}

	for _, tc := range tests {
		got, found := nextStop(tc.calls, tc.current, tc.dir)
		if got != tc.want || found != tc.found {
			t.Errorf("%s: expected (%d, %v), got (%d, %v)", tc.name, tc.want, tc.found, got, found)
		}
	}
}

func TestDispatchFromGroundGoingUp(t *testing.T) {
	d, rec := newTestDispatcher()
	for _, floor := range []types.Floor{3, 5, 1, 7} {
		_ = d.SubmitCall(floor)
	}
	rec.Reset()

	d.DispatchNext()

	if visited := visitedFloors(rec.Messages()); !slices.Equal(visited, []string{"3", "5", "7"}) {
		t.Errorf("Expected stops 3 5 7, got %v", visited)
	}
	if d.IsMoving() {
		t.Errorf("Expected car to be stopped")
	}
	if d.QueueLen() != 0 {
		t.Errorf("Expected empty queue, got %d entries", d.QueueLen())
	}
	if d.CurrentFloor() != 7 {
		t.Errorf("Expected car at floor 7, got %d", d.CurrentFloor())
	}
	if rec.Last() != "No floors in the queue!" {
		t.Errorf("Expected drain message last, got %q", rec.Last())
	}
}

func TestDispatchReversesWhenNothingAhead(t *testing.T) {
	d, rec := newTestDispatcher()
	d.car.Floor = 5
	_ = d.SubmitCall(2)
	_ = d.SubmitCall(8)
	rec.Reset()

	d.DispatchNext()

	expected := []string{
		"Elevator is moving from floor 5 to floor 8",
		"Elevator on Floor 8",
		"Elevator is moving from floor 8 to floor 2",
		"Elevator on Floor 2",
		"No floors in the queue!",
	}
	if !slices.Equal(rec.Messages(), expected) {
		t.Errorf("Expected messages %q, got %q", expected, rec.Messages())
	}
	if d.Direction() != types.Down {
		t.Errorf("Expected direction down after reversing, got %v", d.Direction())
	}
}

func TestDispatchServesDownwardCallsInScanOrder(t *testing.T) {
	d, rec := newTestDispatcher()
	d.car.Floor = 6
	d.car.Dir = types.Down
	for _, floor := range []types.Floor{2, 9, 4, 7, 3} {
		_ = d.SubmitCall(floor)
	}
	rec.Reset()

	d.DispatchNext()

	if visited := visitedFloors(rec.Messages()); !slices.Equal(visited, []string{"4", "3", "2", "7", "9"}) {
		t.Errorf("Expected stops 4 3 2 7 9, got %v", visited)
	}
}

func TestDispatchEmptyQueue(t *testing.T) {
	d, rec := newTestDispatcher()
	d.DispatchNext()

	if rec.Last() != "No floors in the queue!" {
		t.Errorf("Expected empty queue message, got %q", rec.Last())
	}
	if d.IsMoving() {
		t.Errorf("Expected car to be stopped")
	}
	if d.Direction() != types.Up {
		t.Errorf("Expected direction to stay up, got %v", d.Direction())
	}
}

func TestDispatchDuringEmergency(t *testing.T) {
	d, rec := newTestDispatcher()
	_ = d.SubmitCall(4)
	d.car.IsEmergency = true

	d.DispatchNext()

	if rec.Last() != "Emergency mode activated. Please wait." {
		t.Errorf("Expected emergency message, got %q", rec.Last())
	}
	if !d.IsQueued(4) {
		t.Errorf("Expected floor 4 to stay queued")
	}
	if d.CurrentFloor() != 1 {
		t.Errorf("Expected car to stay at floor 1, got %d", d.CurrentFloor())
	}
}

func TestEmergencyRecall(t *testing.T) {
	for floor := types.Floor(1); floor <= config.MaxFloors; floor++ {
		d, rec := newTestDispatcher()
		d.car.Floor = floor
		_ = d.SubmitCall(4)
		_ = d.MarkPressed(9)
		rec.Reset()

		d.ActivateEmergencyMode()

		if d.CurrentFloor() != config.GroundFloor {
			t.Errorf("From floor %d: expected ground floor, got %d", floor, d.CurrentFloor())
		}
		if d.IsEmergency() {
			t.Errorf("From floor %d: expected emergency flag cleared", floor)
		}
		expected := []string{"Emergency mode activated! Returning to ground floor.", "Elevator on Floor Ground"}
		if !slices.Equal(rec.Messages(), expected) {
			t.Errorf("Expected messages %q, got %q", expected, rec.Messages())
		}
		if d.QueueLen() == 0 && floor != 4 {
			t.Errorf("Expected queue to survive recall")
		}
		if !d.IsPressed(9) {
			t.Errorf("Expected pressed floors to survive recall")
		}
	}
}

func TestDispatchAfterRecallWithGroundQueued(t *testing.T) {
	d, rec := newTestDispatcher()
	d.car.Floor = 6
	_ = d.SubmitCall(1)
	_ = d.SubmitCall(3)
	d.ActivateEmergencyMode()
	rec.Reset()

	d.DispatchNext()

	if d.QueueLen() != 0 {
		t.Errorf("Expected queue drained, got %v", d.Snapshot().Queue)
	}
	if visited := visitedFloors(rec.Messages()); !slices.Equal(visited, []string{"3", "1"}) {
		t.Errorf("Expected stops 3 1, got %v", visited)
	}
	if d.CurrentFloor() != 1 {
		t.Errorf("Expected car back at floor 1, got %d", d.CurrentFloor())
	}
}

func TestDispatchOnlyCallAtCurrentFloor(t *testing.T) {
	d, rec := newTestDispatcher()
	d.car.Floor = 4
	_ = d.SubmitCall(1)
	d.ActivateEmergencyMode()
	rec.Reset()

	d.DispatchNext()

	expected := []string{"Elevator on Floor Ground", "No floors in the queue!"}
	if !slices.Equal(rec.Messages(), expected) {
		t.Errorf("Expected messages %q, got %q", expected, rec.Messages())
	}
	if d.IsMoving() {
		t.Errorf("Expected car to be stopped")
	}
}
