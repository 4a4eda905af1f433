package events

import "testing"

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"draft publishes", StatusDraft, StatusPublished, true},
		{"draft cancels", StatusDraft, StatusCancelled, true},
		{"draft cannot complete", StatusDraft, StatusCompleted, false},
		{"published cancels", StatusPublished, StatusCancelled, true},
		{"published completes", StatusPublished, StatusCompleted, true},
		{"published cannot return to draft", StatusPublished, StatusDraft, false},
		{"cancelled is terminal", StatusCancelled, StatusPublished, false},
		{"completed is terminal", StatusCompleted, StatusPublished, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, status := range []Status{StatusDraft, StatusPublished, StatusCancelled, StatusCompleted} {
		if !status.IsValid() {
			t.Errorf("expected %s to be valid", status)
		}
	}
	if Status("archived").IsValid() {
		t.Error("expected archived to be invalid")
	}
}
