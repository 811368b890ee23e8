package domain

import (
	"errors"

	"github.com/google/uuid"
)

var (
	MessageFailedLoadHousehold = "failed to load household snapshot"

	ErrHouseholdFileUnreadable = errors.New("household snapshot file unreadable")
)

// WarningKind classifies a constraint warning. Allergy and disease
// conflicts make a recipe unsafe; dislikes are preference only.
type WarningKind string

const (
	WarningAllergy WarningKind = "allergy"
	WarningDisease WarningKind = "disease"
	WarningDislike WarningKind = "dislike"
)

type (
	// ConstraintWarning names a member and the tag that conflicts with
	// a recipe. Warnings are advisory; the caller decides whether to
	// surface or veto the assignment.
	ConstraintWarning struct {
		MemberID   uuid.UUID   `json:"member_id"`
		MemberName string      `json:"member_name"`
		Kind       WarningKind `json:"kind"`
		Tag        string      `json:"tag"`
		Message    string      `json:"message"`
	}
)

// IsSafety reports whether the warning affects safety rather than
// preference.
func (w ConstraintWarning) IsSafety() bool {
	return w.Kind == WarningAllergy || w.Kind == WarningDisease
}
