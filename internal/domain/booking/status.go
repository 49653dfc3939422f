package booking

import "github.com/fitmarket/trainer-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Party is the side of the booking allowed to drive a given transition.
type Party string

const (
	PartyTrainer Party = "trainer"
	PartyClient  Party = "client"
)

func IsValid(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition may leave s.
func IsTerminal(s Status) bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions holds the legal edges of the lifecycle:
// pending -> accepted | rejected | cancelled
// accepted -> completed | cancelled
var transitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted: {StatusCompleted, StatusCancelled},
}

// CanTransition validates the edge from -> to.
func CanTransition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidState)
}

// RequiredParty returns which side may move a booking into to.
// The trainer decides accept/reject/complete; only the client cancels.
func RequiredParty(to Status) Party {
	if to == StatusCancelled {
		return PartyClient
	}
	return PartyTrainer
}

func InitialStatus() Status {
	return StatusPending
}
