package bookings

// Status is the booking lifecycle state
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// AllStatuses lists every lifecycle state in declaration order
var AllStatuses = []Status{
	StatusPending,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}

// IsValid checks if the booking status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the admin action moving a booking from
// s to next is allowed
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected || next == StatusCancelled
	case StatusApproved:
		return next == StatusCancelled || next == StatusCompleted
	}
	return false
}

// Type is the venue area a booking reserves
type Type string

const (
	TypeCafe        Type = "CAFE"
	TypeSensoryRoom Type = "SENSORY_ROOM"
	TypePlayground  Type = "PLAYGROUND"
	TypeParty       Type = "PARTY"
	TypeEvent       Type = "EVENT"
)

// AllTypes lists every booking type in declaration order
var AllTypes = []Type{
	TypeCafe,
	TypeSensoryRoom,
	TypePlayground,
	TypeParty,
	TypeEvent,
}

// IsValid checks if the booking type is valid
func (t Type) IsValid() bool {
	switch t {
	case TypeCafe, TypeSensoryRoom, TypePlayground, TypeParty, TypeEvent:
		return true
	}
	return false
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}
