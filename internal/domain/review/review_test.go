package review

import (
	"strings"
	"testing"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
)

func TestValidateRating(t *testing.T) {
	for _, r := range []int{1, 3, 5} {
		if err := ValidateRating(r); err != nil {
			t.Errorf("ValidateRating(%d) = %v", r, err)
		}
	}
	for _, r := range []int{-1, 0, 6} {
		if err := ValidateRating(r); !httperr.IsBusiness(err, "invalid_rating") {
			t.Errorf("ValidateRating(%d) = %v, want invalid_rating", r, err)
		}
	}
}

func TestNormalizeComment(t *testing.T) {
	got, err := NormalizeComment("  lovely view  ")
	if err != nil || got != "lovely view" {
		t.Errorf("NormalizeComment = %q, %v", got, err)
	}

	if _, err := NormalizeComment("   "); !httperr.IsBusiness(err, "invalid_comment") {
		t.Errorf("blank comment err = %v", err)
	}
	if _, err := NormalizeComment(strings.Repeat("a", maxCommentLength+1)); !httperr.IsBusiness(err, "invalid_comment") {
		t.Errorf("long comment err = %v", err)
	}
}
