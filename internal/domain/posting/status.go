package posting

import "errors"

// Status is a closed enumeration; transitions outside the table below are
// rejected instead of silently overwriting.
type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusClosed          Status = "closed"
)

var ErrUnknownStatus = errors.New("unknown job posting status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPendingApproval, StatusApproved, StatusRejected, StatusClosed:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

var transitions = map[Status][]Status{
	StatusPendingApproval: {StatusApproved, StatusRejected},
	StatusApproved:        {StatusClosed},
	StatusRejected:        {},
	StatusClosed:          {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
