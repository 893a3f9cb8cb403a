package booking

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsDecision reports whether s is one of the two administrator verdicts.
// Only decisions are legal targets for a transition out of pending.
func (s Status) IsDecision() bool {
	return s == StatusAccepted || s == StatusRejected
}
