package reputation

import (
	"unicode/utf8"

	"fulfillment/internal/entities"
)

func isValidScore(score int) bool {
	return score >= entities.MinRatingScore && score <= entities.MaxRatingScore
}

func isValidFeedback(feedback string) bool {
	return utf8.RuneCountInString(feedback) <= entities.MaxFeedbackLength
}

func validateScoreAndFeedback(score int, feedback string) error {
	if !isValidScore(score) {
		return ErrInvalidScore
	}
	if !isValidFeedback(feedback) {
		return ErrFeedbackTooLong
	}
	return nil
}
