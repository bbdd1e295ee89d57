package notifier

import "errors"

var (
	ErrUndefinedEvent          = errors.New("undefined order event")
	ErrInvalidNotificationID   = errors.New("invalid notification id")
	ErrNotificationNotAssigned = errors.New("notification belongs to another recipient")
)
