package derivation

import (
	"testing"
	"time"

	"pantry/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }

func genderPtr(g entity.Gender) *entity.Gender { return &g }

func activityPtr(l entity.ActivityLevel) *entity.ActivityLevel { return &l }

func TestBMR(t *testing.T) {
	t.Run("male coefficient", func(t *testing.T) {
		assert.InDelta(t, 1617.5, BMR(70, 170, 30, entity.GenderMale), 0.001)
	})

	t.Run("female coefficient", func(t *testing.T) {
		assert.InDelta(t, 1451.5, BMR(70, 170, 30, entity.GenderFemale), 0.001)
	})

	t.Run("unrecognized gender falls through to female coefficient", func(t *testing.T) {
		assert.InDelta(t, 1451.5, BMR(70, 170, 30, entity.Gender("X")), 0.001)
	})
}

func TestTDEE(t *testing.T) {
	t.Run("known levels use their multiplier", func(t *testing.T) {
		assert.InDelta(t, 1200, TDEE(1000, entity.ActivityLevelSedentary), 0.001)
		assert.InDelta(t, 1375, TDEE(1000, entity.ActivityLevelLight), 0.001)
		assert.InDelta(t, 1550, TDEE(1000, entity.ActivityLevelModerate), 0.001)
		assert.InDelta(t, 1725, TDEE(1000, entity.ActivityLevelVery), 0.001)
		assert.InDelta(t, 1900, TDEE(1000, entity.ActivityLevelExtra), 0.001)
	})

	t.Run("unknown level defaults to moderate", func(t *testing.T) {
		assert.InDelta(t, 1550, TDEE(1000, entity.ActivityLevel("couch")), 0.001)
	})
}

func TestDerive_CalorieTarget(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("complete male input produces a rounded target", func(t *testing.T) {
		_, profileUpdates := Derive(&Input{
			HeightCm:      floatPtr(170),
			WeightKg:      floatPtr(70),
			Age:           intPtr(30),
			Gender:        genderPtr(entity.GenderMale),
			ActivityLevel: activityPtr(entity.ActivityLevelModerate),
		}, now)

		// BMR 1617.5 * 1.55 = 2507.125
		require.NotNil(t, profileUpdates.DailyCalorieTarget)
		assert.Equal(t, 2507, *profileUpdates.DailyCalorieTarget)
	})

	t.Run("complete female input produces a rounded target", func(t *testing.T) {
		_, profileUpdates := Derive(&Input{
			HeightCm:      floatPtr(170),
			WeightKg:      floatPtr(70),
			Age:           intPtr(30),
			Gender:        genderPtr(entity.GenderFemale),
			ActivityLevel: activityPtr(entity.ActivityLevelSedentary),
		}, now)

		// BMR 1451.5 * 1.2 = 1741.8
		require.NotNil(t, profileUpdates.DailyCalorieTarget)
		assert.Equal(t, 1742, *profileUpdates.DailyCalorieTarget)
	})

	t.Run("missing activity level falls back to moderate", func(t *testing.T) {
		_, profileUpdates := Derive(&Input{
			HeightCm: floatPtr(170),
			WeightKg: floatPtr(70),
			Age:      intPtr(30),
			Gender:   genderPtr(entity.GenderMale),
		}, now)

		require.NotNil(t, profileUpdates.DailyCalorieTarget)
		assert.Equal(t, 2507, *profileUpdates.DailyCalorieTarget)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		input := &Input{
			HeightCm:      floatPtr(165.5),
			WeightKg:      floatPtr(58),
			Age:           intPtr(42),
			Gender:        genderPtr(entity.GenderFemale),
			ActivityLevel: activityPtr(entity.ActivityLevelVery),
		}

		_, first := Derive(input, now)
		_, second := Derive(input, now)

		require.NotNil(t, first.DailyCalorieTarget)
		require.NotNil(t, second.DailyCalorieTarget)
		assert.Equal(t, *first.DailyCalorieTarget, *second.DailyCalorieTarget)
	})

	t.Run("any missing required field omits the target", func(t *testing.T) {
		complete := Input{
			HeightCm: floatPtr(170),
			WeightKg: floatPtr(70),
			Age:      intPtr(30),
			Gender:   genderPtr(entity.GenderMale),
		}

		withoutHeight := complete
		withoutHeight.HeightCm = nil
		withoutWeight := complete
		withoutWeight.WeightKg = nil
		withoutAge := complete
		withoutAge.Age = nil
		withoutGender := complete
		withoutGender.Gender = nil

		for name, input := range map[string]Input{
			"no height": withoutHeight,
			"no weight": withoutWeight,
			"no age":    withoutAge,
			"no gender": withoutGender,
		} {
			_, profileUpdates := Derive(&input, now)
			assert.Nil(t, profileUpdates.DailyCalorieTarget, name)
		}
	})
}

func TestDerive_DateOfBirth(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("age synthesizes january first of birth year", func(t *testing.T) {
		accountUpdates, _ := Derive(&Input{Age: intPtr(30)}, now)

		require.NotNil(t, accountUpdates.DateOfBirth)
		assert.Equal(t, time.Date(1996, time.January, 1, 0, 0, 0, 0, time.UTC), *accountUpdates.DateOfBirth)
	})

	t.Run("explicit date of birth wins over age", func(t *testing.T) {
		dob := time.Date(1990, time.July, 4, 0, 0, 0, 0, time.UTC)
		accountUpdates, _ := Derive(&Input{Age: intPtr(30), DateOfBirth: &dob}, now)

		require.NotNil(t, accountUpdates.DateOfBirth)
		assert.Equal(t, dob, *accountUpdates.DateOfBirth)
	})

	t.Run("age for the target is derived from birth year when absent", func(t *testing.T) {
		dob := time.Date(1996, time.July, 4, 0, 0, 0, 0, time.UTC)
		_, profileUpdates := Derive(&Input{
			HeightCm:      floatPtr(170),
			WeightKg:      floatPtr(70),
			DateOfBirth:   &dob,
			Gender:        genderPtr(entity.GenderMale),
			ActivityLevel: activityPtr(entity.ActivityLevelModerate),
		}, now)

		// 2026 - 1996 = 30, same target as the direct-age case.
		require.NotNil(t, profileUpdates.DailyCalorieTarget)
		assert.Equal(t, 2507, *profileUpdates.DailyCalorieTarget)
	})
}

func TestDerive_SparseUpdates(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	t.Run("absent fields stay nil", func(t *testing.T) {
		accountUpdates, profileUpdates := Derive(&Input{WeightKg: floatPtr(82)}, now)

		require.NotNil(t, accountUpdates.WeightKg)
		assert.Equal(t, 82.0, *accountUpdates.WeightKg)
		assert.Nil(t, accountUpdates.HeightCm)
		assert.Nil(t, accountUpdates.Gender)
		assert.Nil(t, accountUpdates.DateOfBirth)
		assert.Nil(t, accountUpdates.CookingLevel)
		assert.Nil(t, accountUpdates.FamilySize)
		assert.Nil(t, accountUpdates.Location)
		assert.Nil(t, profileUpdates.ActivityLevel)
		assert.Nil(t, profileUpdates.DailyCalorieTarget)
	})

	t.Run("present lifestyle fields are carried through", func(t *testing.T) {
		cooking := entity.CookingLevelAdvanced
		location := "Taipei"
		accountUpdates, _ := Derive(&Input{
			CookingLevel: &cooking,
			FamilySize:   intPtr(4),
			Location:     &location,
		}, now)

		require.NotNil(t, accountUpdates.CookingLevel)
		assert.Equal(t, entity.CookingLevelAdvanced, *accountUpdates.CookingLevel)
		require.NotNil(t, accountUpdates.FamilySize)
		assert.Equal(t, 4, *accountUpdates.FamilySize)
		require.NotNil(t, accountUpdates.Location)
		assert.Equal(t, "Taipei", *accountUpdates.Location)
	})

	t.Run("onboarding completion is always stamped", func(t *testing.T) {
		_, profileUpdates := Derive(&Input{}, now)

		require.NotNil(t, profileUpdates.OnboardingCompleted)
		assert.True(t, *profileUpdates.OnboardingCompleted)
		require.NotNil(t, profileUpdates.OnboardingCompletedAt)
		assert.Equal(t, now, *profileUpdates.OnboardingCompletedAt)
	})
}
