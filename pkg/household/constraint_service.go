package household

import (
	"fmt"
	"time"

	"fridge-planner/domain"
	"fridge-planner/entities"

	"github.com/google/uuid"
)

type (
	ConstraintService interface {
		CheckWarnings(recipe *entities.Recipe, memberIDs []uuid.UUID, members []*entities.Member) []domain.ConstraintWarning
		IsSafeFor(recipe *entities.Recipe, member *entities.Member) bool
		ParticipantsFor(date time.Time, slot entities.MealSlot, members []*entities.Member) []*entities.Member
	}

	constraintService struct{}
)

func NewConstraintService() ConstraintService {
	return &constraintService{}
}

// CheckWarnings resolves each member ID and reports every allergy,
// disease and dislike tag that conflicts with the recipe. Unknown IDs
// are skipped rather than failing: a dangling reference in a stored
// plan must not break the page. The result is advisory; force-assigning
// a flagged recipe is the caller's call.
func (s *constraintService) CheckWarnings(recipe *entities.Recipe, memberIDs []uuid.UUID, members []*entities.Member) []domain.ConstraintWarning {
	byID := make(map[uuid.UUID]*entities.Member, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}

	warnings := []domain.ConstraintWarning{}
	for _, id := range memberIDs {
		member, ok := byID[id]
		if !ok {
			continue
		}
		warnings = append(warnings, memberWarnings(recipe, member)...)
	}
	return warnings
}

// IsSafeFor reports whether the recipe carries no allergy or disease
// conflict for the member. Dislikes affect preference, never safety.
func (s *constraintService) IsSafeFor(recipe *entities.Recipe, member *entities.Member) bool {
	for _, w := range memberWarnings(recipe, member) {
		if w.IsSafety() {
			return false
		}
	}
	return true
}

// ParticipantsFor selects the members whose default schedule marks
// them as eating the slot on the date's day type.
func (s *constraintService) ParticipantsFor(date time.Time, slot entities.MealSlot, members []*entities.Member) []*entities.Member {
	participants := make([]*entities.Member, 0, len(members))
	for _, m := range members {
		if m.ParticipatesIn(date, slot) {
			participants = append(participants, m)
		}
	}
	return participants
}

func memberWarnings(recipe *entities.Recipe, member *entities.Member) []domain.ConstraintWarning {
	var warnings []domain.ConstraintWarning
	for _, tag := range member.Allergies {
		if recipeMentions(recipe, tag) {
			warnings = append(warnings, warning(member, domain.WarningAllergy, tag,
				fmt.Sprintf("%s is allergic to %s", member.Name, tag)))
		}
	}
	for _, tag := range member.Diseases {
		if recipeMentions(recipe, tag) {
			warnings = append(warnings, warning(member, domain.WarningDisease, tag,
				fmt.Sprintf("%s has a health condition conflicting with %s", member.Name, tag)))
		}
	}
	for _, tag := range member.Dislikes {
		if recipeMentions(recipe, tag) {
			warnings = append(warnings, warning(member, domain.WarningDislike, tag,
				fmt.Sprintf("%s dislikes %s", member.Name, tag)))
		}
	}
	return warnings
}

// recipeMentions applies the shared substring rule to the recipe's
// ingredient names and its declared allergen tags.
func recipeMentions(recipe *entities.Recipe, tag string) bool {
	for _, ing := range recipe.Ingredients {
		if entities.NamesOverlap(ing.Name, tag) {
			return true
		}
	}
	for _, allergen := range recipe.Allergens {
		if entities.NamesOverlap(allergen, tag) {
			return true
		}
	}
	return false
}

func warning(member *entities.Member, kind domain.WarningKind, tag, message string) domain.ConstraintWarning {
	return domain.ConstraintWarning{
		MemberID:   member.ID,
		MemberName: member.Name,
		Kind:       kind,
		Tag:        tag,
		Message:    message,
	}
}
