package reputation

import "errors"

var (
	ErrInvalidScore     = errors.New("score must be between 1 and 5")
	ErrFeedbackTooLong  = errors.New("feedback is too long")
	ErrInvalidRatee     = errors.New("ratee is not a counterparty of the order")
	ErrMissingRatingRef = errors.New("missing order or ratee reference")
)
