package application

import "errors"

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
	StatusCompleted Status = "completed"
)

var ErrUnknownStatus = errors.New("unknown application status")

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusSubmitted, StatusApproved, StatusRejected, StatusWithdrawn, StatusCompleted:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

// An approved application never returns to submitted; a second employment
// stint requires a new application.
var transitions = map[Status][]Status{
	StatusSubmitted: {StatusApproved, StatusRejected, StatusWithdrawn},
	StatusApproved:  {StatusCompleted},
	StatusRejected:  {},
	StatusWithdrawn: {},
	StatusCompleted: {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
