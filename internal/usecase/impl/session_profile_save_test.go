package impl

import (
	"context"
	"testing"
	"time"

	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fullOnboardingInput() *usecase.SaveProfileInput {
	height := 180.0
	weight := 80.0
	age := 30
	gender := entity.GenderMale
	activity := entity.ActivityLevelModerate
	cooking := entity.CookingLevelIntermediate
	family := 3

	return &usecase.SaveProfileInput{
		HeightCm:      &height,
		WeightKg:      &weight,
		Age:           &age,
		Gender:        &gender,
		ActivityLevel: &activity,
		CookingLevel:  &cooking,
		FamilySize:    &family,
	}
}

func TestSessionService_CompleteOnboarding_DerivesCalorieTarget(t *testing.T) {
	fx := createTestSessionService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	var (
		capturedAccount *entity.AccountUpdates
		capturedProfile *entity.ProfileUpdates
	)

	fx.accountRepo.On("ApplyUpdates", ctx, userID, mock.AnythingOfType("*entity.AccountUpdates")).
		Run(func(args mock.Arguments) {
			capturedAccount = args.Get(2).(*entity.AccountUpdates)
		}).
		Return(nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(&entity.ExtendedProfile{
		UserID:        userID,
		ActivityLevel: entity.ActivityLevelModerate,
	}, nil)
	fx.profileRepo.On("ApplyUpdates", ctx, userID, mock.AnythingOfType("*entity.ProfileUpdates")).
		Run(func(args mock.Arguments) {
			capturedProfile = args.Get(2).(*entity.ProfileUpdates)
		}).
		Return(nil)
	fx.accountRepo.On("FindByID", ctx, userID).Return(&entity.Account{ID: userID, Email: "user@example.com"}, nil)

	user, err := fx.service.CompleteOnboarding(ctx, userID, fullOnboardingInput())

	require.NoError(t, err)
	require.NotNil(t, user)

	// 80kg, 180cm, age 30, male, moderate activity:
	// BMR = 800 + 1125 - 150 + 5 = 1780; target = round(1780 * 1.55) = 2759.
	require.NotNil(t, capturedProfile)
	require.NotNil(t, capturedProfile.DailyCalorieTarget)
	assert.Equal(t, 2759, *capturedProfile.DailyCalorieTarget)

	// Onboarding is always stamped by the save path.
	require.NotNil(t, capturedProfile.OnboardingCompleted)
	assert.True(t, *capturedProfile.OnboardingCompleted)
	assert.NotNil(t, capturedProfile.OnboardingCompletedAt)

	// Account updates carry the physiological and lifestyle fields, with the
	// date of birth synthesized from the bare age.
	require.NotNil(t, capturedAccount)
	require.NotNil(t, capturedAccount.DateOfBirth)
	assert.Equal(t, time.Now().Year()-30, capturedAccount.DateOfBirth.Year())
	assert.Equal(t, time.January, capturedAccount.DateOfBirth.Month())
	assert.Equal(t, 1, capturedAccount.DateOfBirth.Day())
	require.NotNil(t, capturedAccount.FamilySize)
	assert.Equal(t, 3, *capturedAccount.FamilySize)
}

func TestSessionService_UpdateProfile_SparseUpdate(t *testing.T) {
	fx := createTestSessionService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	var capturedAccount *entity.AccountUpdates

	fx.accountRepo.On("ApplyUpdates", ctx, userID, mock.AnythingOfType("*entity.AccountUpdates")).
		Run(func(args mock.Arguments) {
			capturedAccount = args.Get(2).(*entity.AccountUpdates)
		}).
		Return(nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(&entity.ExtendedProfile{
		UserID:        userID,
		ActivityLevel: entity.ActivityLevelModerate,
	}, nil)
	fx.profileRepo.On("ApplyUpdates", ctx, userID, mock.AnythingOfType("*entity.ProfileUpdates")).Return(nil)
	fx.accountRepo.On("FindByID", ctx, userID).Return(&entity.Account{ID: userID}, nil)

	weight := 75.0
	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.SaveProfileInput{WeightKg: &weight})

	require.NoError(t, err)
	require.NotNil(t, capturedAccount)
	require.NotNil(t, capturedAccount.WeightKg)
	assert.Equal(t, 75.0, *capturedAccount.WeightKg)
	// Absent fields are left nil so storage never touches them.
	assert.Nil(t, capturedAccount.HeightCm)
	assert.Nil(t, capturedAccount.Gender)
	assert.Nil(t, capturedAccount.DateOfBirth)
	assert.Nil(t, capturedAccount.CookingLevel)
	assert.Nil(t, capturedAccount.Location)
}

func TestSessionService_UpdateProfile_NoTargetWithoutFullInputs(t *testing.T) {
	fx := createTestSessionService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	var capturedProfile *entity.ProfileUpdates

	fx.accountRepo.On("ApplyUpdates", ctx, userID, mock.Anything).Return(nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(&entity.ExtendedProfile{UserID: userID}, nil)
	fx.profileRepo.On("ApplyUpdates", ctx, userID, mock.AnythingOfType("*entity.ProfileUpdates")).
		Run(func(args mock.Arguments) {
			capturedProfile = args.Get(2).(*entity.ProfileUpdates)
		}).
		Return(nil)
	fx.accountRepo.On("FindByID", ctx, userID).Return(&entity.Account{ID: userID}, nil)

	weight := 75.0
	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.SaveProfileInput{WeightKg: &weight})

	require.NoError(t, err)
	require.NotNil(t, capturedProfile)
	// Height, age and gender are missing, so no target is derived.
	assert.Nil(t, capturedProfile.DailyCalorieTarget)
	// Onboarding is still stamped: the save path always does.
	require.NotNil(t, capturedProfile.OnboardingCompleted)
	assert.True(t, *capturedProfile.OnboardingCompleted)
}

func TestSessionService_SaveProfile_CreatesMissingProfileRow(t *testing.T) {
	fx := createTestSessionService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	var createdProfile *entity.ExtendedProfile

	fx.accountRepo.On("ApplyUpdates", ctx, userID, mock.Anything).Return(nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.profileRepo.On("Upsert", ctx, mock.AnythingOfType("*entity.ExtendedProfile")).
		Run(func(args mock.Arguments) {
			createdProfile = args.Get(1).(*entity.ExtendedProfile)
		}).
		Return(nil)
	fx.accountRepo.On("FindByID", ctx, userID).Return(&entity.Account{ID: userID}, nil)
	fx.profileRepo.On("FindByUserID", ctx, userID).Return(&entity.ExtendedProfile{
		UserID:              userID,
		ActivityLevel:       entity.ActivityLevelLight,
		OnboardingCompleted: true,
	}, nil)

	activity := entity.ActivityLevelLight
	user, err := fx.service.CompleteOnboarding(ctx, userID, &usecase.SaveProfileInput{ActivityLevel: &activity})

	require.NoError(t, err)
	require.NotNil(t, createdProfile)
	assert.Equal(t, entity.ActivityLevelLight, createdProfile.ActivityLevel)
	assert.True(t, createdProfile.OnboardingCompleted)
	require.NotNil(t, user.Profile)
	assert.True(t, user.Profile.OnboardingCompleted)
}

func TestSessionService_SaveProfile_UnknownAccount(t *testing.T) {
	fx := createTestSessionService(t, 0)
	ctx := context.Background()
	userID := uuid.New()

	fx.accountRepo.On("ApplyUpdates", ctx, userID, mock.Anything).
		Return(repository.ErrAccountNotFound)

	weight := 75.0
	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.SaveProfileInput{WeightKg: &weight})

	require.Error(t, err)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
