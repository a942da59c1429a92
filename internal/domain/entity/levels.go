package entity

// CookingLevel classifies a user's self-reported cooking skill.
type CookingLevel string

const (
	CookingLevelBeginner     CookingLevel = "beginner"
	CookingLevelIntermediate CookingLevel = "intermediate"
	CookingLevelAdvanced     CookingLevel = "advanced"
)

// IsValid reports whether the cooking level is one of the known values.
func (l CookingLevel) IsValid() bool {
	switch l {
	case CookingLevelBeginner, CookingLevelIntermediate, CookingLevelAdvanced:
		return true
	}

	return false
}

// ActivityLevel classifies daily physical activity for TDEE scaling.
type ActivityLevel string

const (
	ActivityLevelSedentary ActivityLevel = "sedentary"
	ActivityLevelLight     ActivityLevel = "light"
	ActivityLevelModerate  ActivityLevel = "moderate"
	ActivityLevelVery      ActivityLevel = "very"
	ActivityLevelExtra     ActivityLevel = "extra"
)

// IsValid reports whether the activity level is one of the known values.
func (l ActivityLevel) IsValid() bool {
	switch l {
	case ActivityLevelSedentary, ActivityLevelLight, ActivityLevelModerate, ActivityLevelVery, ActivityLevelExtra:
		return true
	}

	return false
}

// Gender is the binary gender input consumed by the BMR formula.
// Values other than "M" are treated with the female coefficient; this mirrors
// the upstream formula choice and is a documented limitation, not a validation rule.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)
