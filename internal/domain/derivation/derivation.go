// Package derivation implements the pure computation that turns onboarding
// input into sparse account and profile updates. It never touches storage and
// never returns an error: insufficient input simply yields a result without a
// calorie target.
package derivation

import (
	"math"
	"time"

	"pantry/internal/domain/entity"
)

// activityMultipliers scales BMR to total daily energy expenditure.
var activityMultipliers = map[entity.ActivityLevel]float64{
	entity.ActivityLevelSedentary: 1.2,
	entity.ActivityLevelLight:     1.375,
	entity.ActivityLevelModerate:  1.55,
	entity.ActivityLevelVery:      1.725,
	entity.ActivityLevelExtra:     1.9,
}

// defaultMultiplier is used when the activity level is absent or unrecognized.
// Falling back to moderate keeps the target computable instead of failing.
const defaultMultiplier = 1.55

// Input carries the raw onboarding fields. Every field is individually
// optional; only fields that are present flow into the resulting updates.
type Input struct {
	HeightCm      *float64
	WeightKg      *float64
	Age           *int
	DateOfBirth   *time.Time
	Gender        *entity.Gender
	ActivityLevel *entity.ActivityLevel
	CookingLevel  *entity.CookingLevel
	FamilySize    *int
	Location      *string
}

// BMR estimates basal metabolic rate with the Mifflin-St Jeor equation.
// Gender M uses the male coefficient; any other value falls through to the
// female coefficient. This binary branch is a known limitation carried over
// from the product's current formula, not something to silently correct here.
func BMR(weightKg, heightCm float64, age int, gender entity.Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == entity.GenderMale {
		return base + 5
	}

	return base - 161
}

// TDEE scales a basal metabolic rate by the multiplier for the given activity
// level, defaulting to moderate when the level is unknown.
func TDEE(bmr float64, level entity.ActivityLevel) float64 {
	multiplier, ok := activityMultipliers[level]
	if !ok {
		multiplier = defaultMultiplier
	}

	return bmr * multiplier
}

// Derive computes the sparse account and profile updates for an onboarding
// submission. Absent input fields are left nil in the updates so downstream
// persistence never touches them. The profile updates always mark onboarding
// as completed at now; re-running onboarding recomputes and overwrites.
//
// The daily calorie target is set only when height, weight, age and gender
// are all present. A partial estimate is never produced.
func Derive(input *Input, now time.Time) (*entity.AccountUpdates, *entity.ProfileUpdates) {
	accountUpdates := &entity.AccountUpdates{
		HeightCm:     input.HeightCm,
		WeightKg:     input.WeightKg,
		Gender:       input.Gender,
		CookingLevel: input.CookingLevel,
		FamilySize:   input.FamilySize,
		Location:     input.Location,
	}

	// 1. Resolve the date of birth. An explicit date wins; otherwise a date is
	// synthesized from the age as January 1 of (current year - age). The
	// synthesized date is deliberately low-precision.
	switch {
	case input.DateOfBirth != nil:
		accountUpdates.DateOfBirth = input.DateOfBirth
	case input.Age != nil:
		dob := time.Date(now.Year()-*input.Age, time.January, 1, 0, 0, 0, 0, time.UTC)
		accountUpdates.DateOfBirth = &dob
	}

	completedAt := now
	completed := true
	profileUpdates := &entity.ProfileUpdates{
		ActivityLevel:         input.ActivityLevel,
		OnboardingCompleted:   &completed,
		OnboardingCompletedAt: &completedAt,
	}

	// 2. Resolve the age used for the calorie computation. A directly supplied
	// age wins; otherwise it is approximated from the birth year.
	var age *int
	switch {
	case input.Age != nil:
		age = input.Age
	case input.DateOfBirth != nil:
		years := now.Year() - input.DateOfBirth.Year()
		age = &years
	}

	// 3. Compute the calorie target only when every required field is present.
	if input.HeightCm != nil && input.WeightKg != nil && age != nil && input.Gender != nil {
		level := entity.ActivityLevel("")
		if input.ActivityLevel != nil {
			level = *input.ActivityLevel
		}

		bmr := BMR(*input.WeightKg, *input.HeightCm, *age, *input.Gender)
		target := int(math.Round(TDEE(bmr, level)))
		profileUpdates.DailyCalorieTarget = &target
	}

	return accountUpdates, profileUpdates
}
