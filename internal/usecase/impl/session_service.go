package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pantry/config"
	deliverycontext "pantry/internal/delivery/context"
	"pantry/internal/domain/derivation"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface. Besides the
// stateless auth operations it keeps an in-memory snapshot of the current
// session, protected by a read-write mutex, and publishes session events on
// every authentication boundary.
type sessionService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	eventBus          service.SessionEventBus
	maxActiveSessions int
	logger            *slog.Logger

	mu    sync.RWMutex
	phase entity.SessionPhase
	user  *entity.User
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	EventBus         service.SessionEventBus
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSessionService is the constructor for sessionService. The session
// starts in the anonymous phase.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &sessionService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		eventBus:          params.EventBus,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		phase:             entity.SessionAnonymous,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Attempting to register account", slog.String("email", input.Email))
	srv.setPhase(entity.SessionAuthenticating)

	// 1. Validate password strength before any expensive work.
	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		srv.setAnonymousQuiet()

		return nil, errors.Wrap(err, "password strength validation failed")
	}

	// 2. Hash the password outside the transaction; bcrypt is CPU-bound.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.setAnonymousQuiet()

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password")
	}

	account := &entity.Account{
		Email:        input.Email,
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CookingLevel: entity.CookingLevelBeginner,
		FamilySize:   1,
		PasswordHash: passwordHash,
	}
	if account.Username == "" {
		account.Username = input.Email
	}

	var profile *entity.ExtendedProfile

	// 3. Create the account and its default extended profile atomically.
	// The profile exists from day one with onboarding pending.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		profileRepo := repoFactory.NewProfileRepository()

		if createErr := accountRepo.Create(ctx, account); createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
			}

			return errors.Wrap(createErr, "failed to create account")
		}

		profile = &entity.ExtendedProfile{
			UserID:        account.ID,
			ActivityLevel: entity.ActivityLevelModerate,
		}
		if createErr := profileRepo.Create(ctx, profile); createErr != nil {
			return errors.Wrap(createErr, "failed to create extended profile")
		}

		return nil
	})
	if err != nil {
		srv.setAnonymousQuiet()
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	// 4. Issue tokens and persist the refresh token as the first session.
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(account.ID)
	if err != nil {
		srv.setAnonymousQuiet()

		return nil, errors.Wrap(err, "failed to generate tokens after registration")
	}
	if err := srv.persistLoginRefreshToken(ctx, account.ID, refreshTokenString); err != nil {
		srv.setAnonymousQuiet()

		return nil, errors.Wrap(err, "failed to create refresh token during registration")
	}

	signedInUser := assembleUser(account, profile)
	srv.setAuthenticated(ctx, signedInUser)
	srv.log(ctx).Debug("Account registered successfully", slog.Any("userID", account.ID))

	return &usecase.AuthOutput{
		User:         signedInUser,
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// Login verifies credentials and establishes an authenticated session.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Attempting to login", slog.String("email", input.Email))
	srv.setPhase(entity.SessionAuthenticating)

	// 1. Load the account in a short transaction to avoid stale replica reads.
	account, err := srv.loadLoginAccount(ctx, input.Email)
	if err != nil {
		srv.setAnonymousQuiet()
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// 2. Verify the password outside any transaction; bcrypt is CPU-bound.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.setAnonymousQuiet()
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	// 3. Load the extended profile; its absence is a valid state, not an error.
	profile, err := srv.loadProfile(ctx, account.ID)
	if err != nil {
		srv.setAnonymousQuiet()

		return nil, err
	}

	// 4. Issue tokens and persist the refresh token.
	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(account.ID)
	if err != nil {
		srv.setAnonymousQuiet()

		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}
	if err := srv.persistLoginRefreshToken(ctx, account.ID, refreshTokenString); err != nil {
		srv.setAnonymousQuiet()
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	signedInUser := assembleUser(account, profile)
	srv.setAuthenticated(ctx, signedInUser)
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", account.ID))

	return &usecase.AuthOutput{
		User:         signedInUser,
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// Logout clears the local session and revokes the refresh token. The local
// state is cleared first so a failed revocation never leaves the session
// half signed-in.
func (srv *sessionService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Attempting to logout")

	srv.setAnonymous(ctx)

	// Revocation is best-effort: an unparsable token has nothing to revoke.
	if _, err := srv.tokenService.ValidateToken(refreshToken); err != nil {
		srv.log(ctx).Warn("Logout with invalid refresh token", slog.Any("error", err))

		return nil
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	storedToken, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil
		}

		return errors.Wrap(err, "failed to find refresh token during logout")
	}

	if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, storedToken.ID); err != nil {
		return errors.Wrap(err, "failed to delete refresh token during logout")
	}
	srv.log(ctx).Debug("User logged out successfully")

	return nil
}

// RestoreSession rebuilds an authenticated session from a persisted refresh
// token, e.g. on application start.
func (srv *sessionService) RestoreSession(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Attempting to restore session")
	srv.setPhase(entity.SessionAuthenticating)

	// 1. Verify the token signature and type before touching storage.
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		srv.setAnonymousQuiet()

		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session restore failed")
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	var (
		account *entity.Account
		profile *entity.ExtendedProfile
	)

	// 2. Confirm the token is still registered, then load the user it belongs to.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()
		accountRepo := repoFactory.NewAccountRepository()
		profileRepo := repoFactory.NewProfileRepository()

		storedToken, findErr := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) || errors.Is(findErr, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session restore failed")
			}

			return errors.Wrap(findErr, "failed to find refresh token")
		}
		if storedToken.UserID != claims.UserID {
			return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
		}

		var loadErr error
		account, loadErr = accountRepo.FindByID(ctx, storedToken.UserID)
		if loadErr != nil {
			if errors.Is(loadErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "session restore failed")
			}

			return errors.Wrap(loadErr, "failed to load account")
		}

		profile, loadErr = profileRepo.FindByUserID(ctx, storedToken.UserID)
		if loadErr != nil && !errors.Is(loadErr, repository.ErrProfileNotFound) {
			return errors.Wrap(loadErr, "failed to load extended profile")
		}

		return nil
	})
	if err != nil {
		srv.setAnonymousQuiet()
		srv.log(ctx).Warn("Session restore failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute session restore transaction")
	}

	// 3. Issue a fresh access token; the refresh token itself is unchanged.
	accessToken, _, err := srv.tokenService.GenerateTokens(account.ID)
	if err != nil {
		srv.setAnonymousQuiet()

		return nil, errors.Wrap(err, "failed to generate access token during restore")
	}

	restoredUser := assembleUser(account, profile)
	srv.setAuthenticated(ctx, restoredUser)
	srv.log(ctx).Debug("Session restored successfully", slog.Any("userID", account.ID))

	return &usecase.AuthOutput{
		User:         restoredUser,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken issues a new access token using a refresh token.
// The refresh token remains unchanged for security reasons.
func (srv *sessionService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "invalid refresh token")
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	// Verify the token is still registered before minting a new access token.
	storedToken, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if storedToken.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
	}

	newAccessToken, _, err := srv.tokenService.GenerateTokens(storedToken.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}
	srv.log(ctx).Debug("Access token refreshed successfully", slog.Any("userID", storedToken.UserID))

	return &usecase.RefreshTokenOutput{
		AccessToken: newAccessToken,
	}, nil
}

// CompleteOnboarding persists the onboarding payload through the shared save
// path and returns the refreshed user view.
func (srv *sessionService) CompleteOnboarding(ctx context.Context, userID uuid.UUID, input *usecase.SaveProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Completing onboarding", slog.Any("userID", userID))

	return srv.saveProfileData(ctx, userID, input)
}

// UpdateProfile persists a sparse profile change through the shared save path.
func (srv *sessionService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.SaveProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	return srv.saveProfileData(ctx, userID, input)
}

// saveProfileData is the single write path behind onboarding and profile
// updates. It derives the daily calorie target from whatever physiological
// inputs are present, writes the sparse account and profile updates in one
// transaction, and re-reads the result so the returned view reflects exactly
// what was stored.
func (srv *sessionService) saveProfileData(ctx context.Context, userID uuid.UUID, input *usecase.SaveProfileInput) (*entity.User, error) {
	// 1. Run the derivation engine on the combined input.
	accountUpdates, profileUpdates := derivation.Derive(&derivation.Input{
		HeightCm:      input.HeightCm,
		WeightKg:      input.WeightKg,
		Age:           input.Age,
		DateOfBirth:   input.DateOfBirth,
		Gender:        input.Gender,
		ActivityLevel: input.ActivityLevel,
		CookingLevel:  input.CookingLevel,
		FamilySize:    input.FamilySize,
		Location:      input.Location,
	}, time.Now())

	var (
		account *entity.Account
		profile *entity.ExtendedProfile
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		profileRepo := repoFactory.NewProfileRepository()

		// 2. Apply the sparse account updates; absent fields stay untouched.
		if applyErr := accountRepo.ApplyUpdates(ctx, userID, accountUpdates); applyErr != nil {
			if errors.Is(applyErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "profile save failed")
			}

			return errors.Wrap(applyErr, "failed to apply account updates")
		}

		// 3. Apply the profile updates. A missing profile row is created on
		// the spot so the save succeeds for accounts predating the profile
		// table.
		_, findErr := profileRepo.FindByUserID(ctx, userID)
		switch {
		case findErr == nil:
			if applyErr := profileRepo.ApplyUpdates(ctx, userID, profileUpdates); applyErr != nil {
				return errors.Wrap(applyErr, "failed to apply profile updates")
			}
		case errors.Is(findErr, repository.ErrProfileNotFound):
			newProfile := &entity.ExtendedProfile{
				UserID:        userID,
				ActivityLevel: entity.ActivityLevelModerate,
			}
			if profileUpdates.ActivityLevel != nil {
				newProfile.ActivityLevel = *profileUpdates.ActivityLevel
			}
			if profileUpdates.DailyCalorieTarget != nil {
				newProfile.DailyCalorieTarget = profileUpdates.DailyCalorieTarget
			}
			if profileUpdates.OnboardingCompleted != nil {
				newProfile.OnboardingCompleted = *profileUpdates.OnboardingCompleted
			}
			newProfile.OnboardingCompletedAt = profileUpdates.OnboardingCompletedAt

			if upsertErr := profileRepo.Upsert(ctx, newProfile); upsertErr != nil {
				return errors.Wrap(upsertErr, "failed to create extended profile")
			}
		default:
			return errors.Wrap(findErr, "failed to load extended profile")
		}

		// 4. Re-read both rows so the returned view matches storage exactly.
		var loadErr error
		account, loadErr = accountRepo.FindByID(ctx, userID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to reload account")
		}
		profile, loadErr = profileRepo.FindByUserID(ctx, userID)
		if loadErr != nil {
			return errors.Wrap(loadErr, "failed to reload extended profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile save failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute profile save transaction")
	}

	savedUser := assembleUser(account, profile)
	srv.replaceUserSnapshot(savedUser)
	srv.log(ctx).Debug("Profile saved successfully", slog.Any("userID", userID))

	return savedUser, nil
}

// RefreshUser re-reads the account and profile and refreshes the snapshot.
func (srv *sessionService) RefreshUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var (
		account *entity.Account
		profile *entity.ExtendedProfile
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		profileRepo := repoFactory.NewProfileRepository()

		var loadErr error
		account, loadErr = accountRepo.FindByID(ctx, userID)
		if loadErr != nil {
			if errors.Is(loadErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "refresh user failed")
			}

			return errors.Wrap(loadErr, "failed to load account")
		}

		profile, loadErr = profileRepo.FindByUserID(ctx, userID)
		if loadErr != nil && !errors.Is(loadErr, repository.ErrProfileNotFound) {
			return errors.Wrap(loadErr, "failed to load extended profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute refresh user transaction")
	}

	refreshedUser := assembleUser(account, profile)
	srv.replaceUserSnapshot(refreshedUser)

	return refreshedUser, nil
}

// CurrentUser returns the signed-in user, or nil in any other phase.
func (srv *sessionService) CurrentUser() *entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.phase != entity.SessionAuthenticated {
		return nil
	}

	return srv.user
}

// IsAuthenticated reports whether the session is in the authenticated phase.
func (srv *sessionService) IsAuthenticated() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.phase == entity.SessionAuthenticated
}

// State returns a snapshot of the session machine.
func (srv *sessionService) State() entity.SessionState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return entity.SessionState{
		Phase: srv.phase,
		User:  srv.user,
	}
}

// --- internal state transitions ---

func (srv *sessionService) setPhase(phase entity.SessionPhase) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.phase = phase
}

// setAnonymousQuiet returns the machine to anonymous without publishing an
// event. Used when an authentication attempt fails: the session never
// reached the signed-in state, so there is nothing to announce.
func (srv *sessionService) setAnonymousQuiet() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.phase = entity.SessionAnonymous
	srv.user = nil
}

func (srv *sessionService) setAnonymous(ctx context.Context) {
	srv.mu.Lock()
	srv.phase = entity.SessionAnonymous
	srv.user = nil
	srv.mu.Unlock()

	srv.eventBus.Publish(ctx, &service.SessionEventPayload{
		Event: entity.SessionEventSignedOut,
	})
}

func (srv *sessionService) setAuthenticated(ctx context.Context, user *entity.User) {
	srv.mu.Lock()
	srv.phase = entity.SessionAuthenticated
	srv.user = user
	srv.mu.Unlock()

	userID := user.ID
	srv.eventBus.Publish(ctx, &service.SessionEventPayload{
		Event:  entity.SessionEventSignedIn,
		UserID: &userID,
	})
}

// replaceUserSnapshot swaps the cached user view when it belongs to the
// currently signed-in user. Saves for other users (e.g. admin tooling) leave
// the session snapshot alone.
func (srv *sessionService) replaceUserSnapshot(user *entity.User) {
	if user == nil {
		return
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.phase == entity.SessionAuthenticated && srv.user != nil && srv.user.ID == user.ID {
		srv.user = user
	}
}

// --- login helpers ---

func (srv *sessionService) loadLoginAccount(ctx context.Context, email string) (*entity.Account, error) {
	var account *entity.Account

	// Load the account from primary in a short transaction to avoid stale reads on replicas.
	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		var findErr error
		account, findErr = accountRepo.FindByEmail(ctx, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find account")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute login account transaction")
	}

	return account, nil
}

func (srv *sessionService) loadProfile(ctx context.Context, userID uuid.UUID) (*entity.ExtendedProfile, error) {
	var profile *entity.ExtendedProfile

	if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		var findErr error
		profile, findErr = profileRepo.FindByUserID(ctx, userID)
		if findErr != nil && !errors.Is(findErr, repository.ErrProfileNotFound) {
			return errors.Wrap(findErr, "failed to load extended profile")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "failed to execute profile load transaction")
	}

	return profile, nil
}

func (srv *sessionService) persistLoginRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		// When the session limit is enabled, keep lock/count/insert in one short transaction.
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return srv.storeRefreshToken(ctx, repoFactory, userID, refreshTokenString)
		}); err != nil {
			return errors.Wrap(err, "failed to execute session persistence transaction")
		}

		return nil
	}

	// No session limit: a direct insert avoids unnecessary transaction overhead.
	if err := srv.storeRefreshTokenWithRepo(ctx, srv.refreshTokenRepo, userID, refreshTokenString); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

func (srv *sessionService) storeRefreshToken(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID, refreshTokenString string) error {
	refreshRepo := repoFactory.NewRefreshTokenRepository()
	accountRepo := repoFactory.NewAccountRepository()

	if srv.maxActiveSessions > 0 {
		if err := accountRepo.AcquireSessionLock(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock account row for session limit check")
		}

		activeSessions, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}
	}

	return srv.storeRefreshTokenWithRepo(ctx, refreshRepo, userID, refreshTokenString)
}

func (srv *sessionService) storeRefreshTokenWithRepo(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshTokenString string) error {
	refreshTokenHash := srv.tokenService.HashToken(refreshTokenString)

	newRefreshToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: refreshTokenHash,
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}
