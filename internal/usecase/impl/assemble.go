// Package impl contains the implementation of the application's business logic.
package impl

import (
	"pantry/internal/domain/entity"
)

// assembleUser builds the normalized user view from an account and its
// extended profile. The profile argument may be nil, in which case the view
// carries a nil Profile rather than a zero-valued one: "no profile record"
// and "profile with onboarding pending" are different states and consumers
// rely on telling them apart.
func assembleUser(account *entity.Account, profile *entity.ExtendedProfile) *entity.User {
	if account == nil {
		return nil
	}

	user := &entity.User{
		ID:           account.ID,
		Email:        account.Email,
		Username:     account.Username,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		CookingLevel: account.CookingLevel,
		FamilySize:   account.FamilySize,
	}

	if profile != nil {
		user.Profile = &entity.ProfileView{
			OnboardingCompleted: profile.OnboardingCompleted,
			DailyCalorieTarget:  profile.DailyCalorieTarget,
			ActivityLevel:       profile.ActivityLevel,
		}
	}

	return user
}
