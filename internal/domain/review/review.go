package review

import (
	"strings"

	"github.com/BruksfildServices01/rental-booking/internal/domain/booking"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
)

const (
	MinRating = 1
	MaxRating = 5

	maxCommentLength = 2000
)

// ReviewableStatus is the booking status that entitles a guest to review a property.
const ReviewableStatus = booking.StatusConfirmed

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return httperr.ErrInvalid("invalid_rating", "Rating must be between 1 and 5.")
	}
	return nil
}

// NormalizeComment trims the comment and rejects empty or oversized text.
func NormalizeComment(comment string) (string, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return "", httperr.ErrInvalid("invalid_comment", "Comment is required.")
	}
	if len([]rune(comment)) > maxCommentLength {
		return "", httperr.ErrInvalid("invalid_comment", "Comment is too long.")
	}
	return comment, nil
}
