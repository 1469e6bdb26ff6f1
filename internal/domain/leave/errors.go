package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("Leave request not found")
)
