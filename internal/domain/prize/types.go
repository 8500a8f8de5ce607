package prize

import "errors"

var ErrInvalidStatus = errors.New("invalid prize status")

type Status string

const (
	StatusActive  Status = "active"
	StatusClaimed Status = "claimed"
	StatusExpired Status = "expired"
)

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusClaimed, StatusExpired:
		return true
	default:
		return false
	}
}
