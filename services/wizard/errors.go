package wizard

import "errors"

var (
	// ErrSessionNotFound is returned when a session id does not resolve to a
	// live session (unknown, expired, or cancelled).
	ErrSessionNotFound = errors.New("wizard session not found or expired")

	// ErrNotReady is returned by Submit when the session is not at the
	// confirm step or its guard does not pass.
	ErrNotReady = errors.New("wizard session is not ready for submission")

	// ErrAlreadySubmitted is returned when an action would mutate state that
	// is frozen after submission.
	ErrAlreadySubmitted = errors.New("wizard session already submitted")
)
