package hub

import "errors"

// Domain-specific errors for hub operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrConnectionFailed is returned when the control-channel
	// connection cannot be established.
	ErrConnectionFailed = errors.New("hub: connection failed")

	// ErrAuthFailed is returned when the control channel rejects the
	// access token during the auth handshake.
	ErrAuthFailed = errors.New("hub: authentication failed")

	// ErrProtocolViolation is returned when a control-channel frame
	// cannot be sent, read, or decoded. The run terminates; updates
	// already applied are not rolled back.
	ErrProtocolViolation = errors.New("hub: protocol violation")
)
