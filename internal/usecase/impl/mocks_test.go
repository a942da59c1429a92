package impl

import (
	"context"
	"sync"
	"time"

	"pantry/internal/domain/entity"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fakeTxManager runs the transactional closure against a fixed repository
// factory, without any real transaction semantics.
type fakeTxManager struct {
	factory repository.RepositoryFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

// fakeRepoFactory hands out the test's mock repositories.
type fakeRepoFactory struct {
	accountRepo    repository.AccountRepository
	profileRepo    repository.ProfileRepository
	recipeRepo     repository.RecipeRepository
	engagementRepo repository.EngagementRepository
	mealPlanRepo   repository.MealPlanRepository
	shoppingRepo   repository.ShoppingListRepository
	refreshRepo    repository.RefreshTokenRepository
}

func (f *fakeRepoFactory) NewAccountRepository() repository.AccountRepository {
	return f.accountRepo
}

func (f *fakeRepoFactory) NewProfileRepository() repository.ProfileRepository {
	return f.profileRepo
}

func (f *fakeRepoFactory) NewRecipeRepository() repository.RecipeRepository {
	return f.recipeRepo
}

func (f *fakeRepoFactory) NewEngagementRepository() repository.EngagementRepository {
	return f.engagementRepo
}

func (f *fakeRepoFactory) NewMealPlanRepository() repository.MealPlanRepository {
	return f.mealPlanRepo
}

func (f *fakeRepoFactory) NewShoppingListRepository() repository.ShoppingListRepository {
	return f.shoppingRepo
}

func (f *fakeRepoFactory) NewRefreshTokenRepository() repository.RefreshTokenRepository {
	return f.refreshRepo
}

// fakeEventBus delivers events synchronously and records everything published.
type fakeEventBus struct {
	mu        sync.Mutex
	published []*service.SessionEventPayload
	handlers  []func(payload *service.SessionEventPayload)
}

func (b *fakeEventBus) Publish(_ context.Context, payload *service.SessionEventPayload) {
	b.mu.Lock()
	b.published = append(b.published, payload)
	handlers := append([]func(payload *service.SessionEventPayload){}, b.handlers...)
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(payload)
	}
}

func (b *fakeEventBus) Subscribe(handler func(payload *service.SessionEventPayload)) service.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers = append(b.handlers, handler)

	return &fakeSubscription{}
}

func (b *fakeEventBus) Close() error { return nil }

func (b *fakeEventBus) events() []*service.SessionEventPayload {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]*service.SessionEventPayload{}, b.published...)
}

type fakeSubscription struct{}

func (s *fakeSubscription) Cancel() {}

// --- repository mocks ---

type mockAccountRepo struct {
	mock.Mock
}

func (m *mockAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *mockAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *mockAccountRepo) ApplyUpdates(ctx context.Context, id uuid.UUID, updates *entity.AccountUpdates) error {
	args := m.Called(ctx, id, updates)

	return args.Error(0)
}

func (m *mockAccountRepo) AcquireSessionLock(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ExtendedProfile, error) {
	args := m.Called(ctx, userID)
	if profile, ok := args.Get(0).(*entity.ExtendedProfile); ok {
		return profile, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *entity.ExtendedProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *mockProfileRepo) Upsert(ctx context.Context, profile *entity.ExtendedProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

func (m *mockProfileRepo) ApplyUpdates(ctx context.Context, userID uuid.UUID, updates *entity.ProfileUpdates) error {
	args := m.Called(ctx, userID, updates)

	return args.Error(0)
}

type mockRecipeRepo struct {
	mock.Mock
}

func (m *mockRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Recipe, error) {
	args := m.Called(ctx, id)
	if recipe, ok := args.Get(0).(*entity.Recipe); ok {
		return recipe, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRecipeRepo) FindBySlug(ctx context.Context, slug string) (*entity.Recipe, error) {
	args := m.Called(ctx, slug)
	if recipe, ok := args.Get(0).(*entity.Recipe); ok {
		return recipe, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRecipeRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipe, error) {
	args := m.Called(ctx, ids)
	if recipes, ok := args.Get(0).([]*entity.Recipe); ok {
		return recipes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRecipeRepo) List(ctx context.Context, filter *repository.RecipeFilter) ([]*entity.Recipe, error) {
	args := m.Called(ctx, filter)
	if recipes, ok := args.Get(0).([]*entity.Recipe); ok {
		return recipes, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRecipeRepo) ListCuisines(ctx context.Context) ([]*entity.Cuisine, error) {
	args := m.Called(ctx)
	if cuisines, ok := args.Get(0).([]*entity.Cuisine); ok {
		return cuisines, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRecipeRepo) UpdateAggregate(ctx context.Context, id uuid.UUID, aggregate *entity.RecipeAggregate) error {
	args := m.Called(ctx, id, aggregate)

	return args.Error(0)
}

type mockReferenceRepo struct {
	mock.Mock
}

func (m *mockReferenceRepo) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	args := m.Called(ctx)
	if regions, ok := args.Get(0).([]*entity.Region); ok {
		return regions, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReferenceRepo) ListIngredients(ctx context.Context) ([]*entity.Ingredient, error) {
	args := m.Called(ctx)
	if ingredients, ok := args.Get(0).([]*entity.Ingredient); ok {
		return ingredients, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReferenceRepo) ListHealthConditions(ctx context.Context) ([]*entity.ReferenceItem, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*entity.ReferenceItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReferenceRepo) ListAllergies(ctx context.Context) ([]*entity.ReferenceItem, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*entity.ReferenceItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReferenceRepo) ListDietaryPreferences(ctx context.Context) ([]*entity.ReferenceItem, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*entity.ReferenceItem); ok {
		return items, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockReferenceRepo) ListFitnessGoals(ctx context.Context) ([]*entity.ReferenceItem, error) {
	args := m.Called(ctx)
	if goals, ok := args.Get(0).([]*entity.ReferenceItem); ok {
		return goals, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockEngagementRepo struct {
	mock.Mock
}

func (m *mockEngagementRepo) FindRecord(ctx context.Context, userID, recipeID uuid.UUID) (*entity.EngagementRecord, error) {
	args := m.Called(ctx, userID, recipeID)
	if record, ok := args.Get(0).(*entity.EngagementRecord); ok {
		return record, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEngagementRepo) UpsertRecord(ctx context.Context, record *entity.EngagementRecord) error {
	args := m.Called(ctx, record)

	return args.Error(0)
}

func (m *mockEngagementRepo) ListSavedByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EngagementRecord, error) {
	args := m.Called(ctx, userID)
	if records, ok := args.Get(0).([]*entity.EngagementRecord); ok {
		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEngagementRepo) ListFavoritesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.EngagementRecord, error) {
	args := m.Called(ctx, userID)
	if records, ok := args.Get(0).([]*entity.EngagementRecord); ok {
		return records, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEngagementRepo) FindRating(ctx context.Context, userID, recipeID uuid.UUID) (*entity.RatingRecord, error) {
	args := m.Called(ctx, userID, recipeID)
	if rating, ok := args.Get(0).(*entity.RatingRecord); ok {
		return rating, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockEngagementRepo) UpsertRating(ctx context.Context, rating *entity.RatingRecord) error {
	args := m.Called(ctx, rating)

	return args.Error(0)
}

func (m *mockEngagementRepo) AggregateRatings(ctx context.Context, recipeID uuid.UUID) (*entity.RecipeAggregate, error) {
	args := m.Called(ctx, recipeID)
	if aggregate, ok := args.Get(0).(*entity.RecipeAggregate); ok {
		return aggregate, args.Error(1)
	}

	return nil, args.Error(1)
}

type mockMealPlanRepo struct {
	mock.Mock
}

func (m *mockMealPlanRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.MealPlan, error) {
	args := m.Called(ctx, id)
	if plan, ok := args.Get(0).(*entity.MealPlan); ok {
		return plan, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMealPlanRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MealPlan, error) {
	args := m.Called(ctx, userID)
	if plans, ok := args.Get(0).([]*entity.MealPlan); ok {
		return plans, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMealPlanRepo) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MealPlan, error) {
	args := m.Called(ctx, userID, from, to)
	if plans, ok := args.Get(0).([]*entity.MealPlan); ok {
		return plans, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockMealPlanRepo) Create(ctx context.Context, plan *entity.MealPlan) error {
	args := m.Called(ctx, plan)

	return args.Error(0)
}

func (m *mockMealPlanRepo) Update(ctx context.Context, plan *entity.MealPlan) error {
	args := m.Called(ctx, plan)

	return args.Error(0)
}

func (m *mockMealPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockMealPlanRepo) AddEntry(ctx context.Context, entry *entity.MealPlanEntry) error {
	args := m.Called(ctx, entry)

	return args.Error(0)
}

func (m *mockMealPlanRepo) RemoveEntry(ctx context.Context, entryID uuid.UUID) error {
	args := m.Called(ctx, entryID)

	return args.Error(0)
}

type mockShoppingRepo struct {
	mock.Mock
}

func (m *mockShoppingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShoppingList, error) {
	args := m.Called(ctx, id)
	if list, ok := args.Get(0).(*entity.ShoppingList); ok {
		return list, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockShoppingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ShoppingList, error) {
	args := m.Called(ctx, userID)
	if lists, ok := args.Get(0).([]*entity.ShoppingList); ok {
		return lists, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockShoppingRepo) Create(ctx context.Context, list *entity.ShoppingList) error {
	args := m.Called(ctx, list)

	return args.Error(0)
}

func (m *mockShoppingRepo) Update(ctx context.Context, list *entity.ShoppingList) error {
	args := m.Called(ctx, list)

	return args.Error(0)
}

func (m *mockShoppingRepo) Deactivate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockShoppingRepo) AddItem(ctx context.Context, item *entity.ShoppingListItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockShoppingRepo) UpdateItem(ctx context.Context, item *entity.ShoppingListItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockShoppingRepo) RemoveItem(ctx context.Context, itemID uuid.UUID) error {
	args := m.Called(ctx, itemID)

	return args.Error(0)
}

type mockRefreshTokenRepo struct {
	mock.Mock
}

func (m *mockRefreshTokenRepo) CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *mockRefreshTokenRepo) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if token, ok := args.Get(0).(*entity.RefreshToken); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockRefreshTokenRepo) DeleteRefreshToken(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockRefreshTokenRepo) DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *mockRefreshTokenRepo) DeleteExpiredRefreshTokens(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}

func (m *mockRefreshTokenRepo) CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	args := m.Called(ctx, userID)

	return args.Int(0), args.Error(1)
}

// --- service mocks ---

type mockPasswordHasher struct {
	mock.Mock
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *mockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

func (m *mockPasswordHasher) ValidateStrength(password string) error {
	args := m.Called(password)

	return args.Error(0)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateTokens(userID uuid.UUID) (string, string, error) {
	args := m.Called(userID)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) ValidateToken(token string) (*service.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) HashToken(token string) string {
	args := m.Called(token)

	return args.String(0)
}

func (m *mockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()
	if duration, ok := args.Get(0).(time.Duration); ok {
		return duration
	}

	return 0
}

type mockConnectivityProbe struct {
	mock.Mock
}

func (m *mockConnectivityProbe) Ping(ctx context.Context) error {
	args := m.Called(ctx)

	return args.Error(0)
}
