// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	RecipeHandler     *handler.RecipeHandler
	ReferenceHandler  *handler.ReferenceHandler
	EngagementHandler *handler.EngagementHandler
	MealPlanHandler   *handler.MealPlanHandler
	ShoppingHandler   *handler.ShoppingListHandler
	HealthHandler     *handler.HealthHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	recipeHandler     *handler.RecipeHandler
	referenceHandler  *handler.ReferenceHandler
	engagementHandler *handler.EngagementHandler
	mealPlanHandler   *handler.MealPlanHandler
	shoppingHandler   *handler.ShoppingListHandler
	healthHandler     *handler.HealthHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		recipeHandler:     params.RecipeHandler,
		referenceHandler:  params.ReferenceHandler,
		engagementHandler: params.EngagementHandler,
		mealPlanHandler:   params.MealPlanHandler,
		shoppingHandler:   params.ShoppingHandler,
		healthHandler:     params.HealthHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health and connectivity endpoints
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/connectivity", r.healthHandler.GetConnectivityState)
	e.POST("/connectivity/reconnect", r.healthHandler.Reconnect)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.sessionHandler.Register)
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
		authGroup.POST("/refresh", r.sessionHandler.RefreshToken)
		authGroup.POST("/restore", r.sessionHandler.RestoreSession)
	}

	// Public recipe catalog
	recipeGroup := e.Group("/recipes")
	{
		recipeGroup.GET("", r.recipeHandler.ListRecipes)
		recipeGroup.GET("/cuisines", r.recipeHandler.ListCuisines)
		recipeGroup.GET("/slug/:slug", r.recipeHandler.GetRecipeBySlug)
		recipeGroup.GET("/:id", r.recipeHandler.GetRecipe)
	}

	// Public lookup catalogs for onboarding and preference pickers
	referenceGroup := e.Group("/reference")
	{
		referenceGroup.GET("/regions", r.referenceHandler.ListRegions)
		referenceGroup.GET("/ingredients", r.referenceHandler.ListIngredients)
		referenceGroup.GET("/health-conditions", r.referenceHandler.ListHealthConditions)
		referenceGroup.GET("/allergies", r.referenceHandler.ListAllergies)
		referenceGroup.GET("/dietary-preferences", r.referenceHandler.ListDietaryPreferences)
		referenceGroup.GET("/fitness-goals", r.referenceHandler.ListFitnessGoals)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.sessionHandler.GetProfile)
		userGroup.PUT("/profile", r.sessionHandler.UpdateProfile)
		userGroup.POST("/onboarding", r.sessionHandler.CompleteOnboarding)
		userGroup.GET("/session", r.sessionHandler.GetSessionState)

		// Per-recipe engagement
		userGroup.GET("/recipes/saved", r.engagementHandler.ListSavedRecipes)
		userGroup.GET("/recipes/favorites", r.engagementHandler.ListFavoriteRecipes)
		userGroup.POST("/recipes/:id/save", r.engagementHandler.SaveRecipe)
		userGroup.DELETE("/recipes/:id/save", r.engagementHandler.UnsaveRecipe)
		userGroup.POST("/recipes/:id/favorite", r.engagementHandler.ToggleFavorite)
		userGroup.POST("/recipes/:id/rating", r.engagementHandler.RateRecipe)

		// Meal plans
		userGroup.GET("/meal-plans", r.mealPlanHandler.ListMealPlans)
		userGroup.POST("/meal-plans", r.mealPlanHandler.CreateMealPlan)
		userGroup.GET("/meal-plans/:id", r.mealPlanHandler.GetMealPlan)
		userGroup.PUT("/meal-plans/:id", r.mealPlanHandler.UpdateMealPlan)
		userGroup.DELETE("/meal-plans/:id", r.mealPlanHandler.DeleteMealPlan)
		userGroup.POST("/meal-plans/:id/entries", r.mealPlanHandler.AddEntry)
		userGroup.DELETE("/meal-plans/:id/entries/:entryID", r.mealPlanHandler.RemoveEntry)

		// Shopping lists
		userGroup.GET("/shopping-lists", r.shoppingHandler.ListShoppingLists)
		userGroup.POST("/shopping-lists", r.shoppingHandler.CreateShoppingList)
		userGroup.GET("/shopping-lists/:id", r.shoppingHandler.GetShoppingList)
		userGroup.PUT("/shopping-lists/:id", r.shoppingHandler.RenameShoppingList)
		userGroup.DELETE("/shopping-lists/:id", r.shoppingHandler.DeleteShoppingList)
		userGroup.POST("/shopping-lists/:id/items", r.shoppingHandler.AddItem)
		userGroup.PUT("/shopping-lists/:id/items/:itemID", r.shoppingHandler.UpdateItem)
		userGroup.DELETE("/shopping-lists/:id/items/:itemID", r.shoppingHandler.RemoveItem)
	}
}
