package review

type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

func (s ModerationStatus) String() string {
	return string(s)
}

func (s ModerationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func NewModerationStatus(s string) (ModerationStatus, error) {
	status := ModerationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidModerationStatus
	}
	return status, nil
}
