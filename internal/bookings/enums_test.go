package bookings

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"approved to cancelled", StatusApproved, StatusCancelled, true},
		{"approved to completed", StatusApproved, StatusCompleted, true},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"approved to pending", StatusApproved, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusApproved, false},
		{"cancelled is terminal", StatusCancelled, StatusApproved, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusPending:   false,
		StatusApproved:  false,
		StatusRejected:  true,
		StatusCancelled: true,
		StatusCompleted: true,
	}
	for status, want := range terminal {
		if got := status.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", status, got, want)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range AllStatuses {
		if !status.IsValid() {
			t.Errorf("expected %s to be valid", status)
		}
	}
	if Status("UNKNOWN").IsValid() {
		t.Error("expected UNKNOWN to be invalid")
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, bookingType := range AllTypes {
		if !bookingType.IsValid() {
			t.Errorf("expected %s to be valid", bookingType)
		}
	}
	if Type("ARCADE").IsValid() {
		t.Error("expected ARCADE to be invalid")
	}
}

func TestTransitionUpdatesStatus(t *testing.T) {
	booking := &Booking{Status: StatusPending}
	if !booking.Transition(StatusApproved) {
		t.Fatal("expected pending -> approved to succeed")
	}
	if booking.Status != StatusApproved {
		t.Errorf("status = %s, want %s", booking.Status, StatusApproved)
	}
	if booking.Transition(StatusRejected) {
		t.Error("expected approved -> rejected to fail")
	}
	if booking.Status != StatusApproved {
		t.Errorf("failed transition must not mutate status, got %s", booking.Status)
	}
}
