package handler

import (
	"log/slog"
	"net/http"

	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/response"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EngagementHandler holds dependencies for the save / favorite / rating endpoints.
type EngagementHandler struct {
	uc     usecase.EngagementUsecase
	logger *slog.Logger
}

// NewEngagementHandler is the constructor for EngagementHandler, injected by Fx.
func NewEngagementHandler(uc usecase.EngagementUsecase, logger *slog.Logger) *EngagementHandler {
	return &EngagementHandler{
		uc:     uc,
		logger: logger,
	}
}

// SaveRecipe marks a recipe as saved for the caller.
func (h *EngagementHandler) SaveRecipe(c echo.Context) error {
	userID, recipeID, ok := h.pathIDs(c)
	if !ok {
		return nil
	}

	if err := h.uc.SaveRecipe(c.Request().Context(), userID, recipeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe saved successfully")
}

// UnsaveRecipe clears the saved status, keeping any favorite flag.
func (h *EngagementHandler) UnsaveRecipe(c echo.Context) error {
	userID, recipeID, ok := h.pathIDs(c)
	if !ok {
		return nil
	}

	if err := h.uc.UnsaveRecipe(c.Request().Context(), userID, recipeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Recipe unsaved successfully")
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (h *EngagementHandler) ToggleFavorite(c echo.Context) error {
	userID, recipeID, ok := h.pathIDs(c)
	if !ok {
		return nil
	}

	isFavorite, err := h.uc.ToggleFavorite(c.Request().Context(), userID, recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_favorite": isFavorite}, "Favorite toggled successfully")
}

// RateRecipe stores the caller's rating and returns the fresh aggregate.
func (h *EngagementHandler) RateRecipe(c echo.Context) error {
	userID, recipeID, ok := h.pathIDs(c)
	if !ok {
		return nil
	}

	var input *usecase.RateRecipeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	input.RecipeID = recipeID

	aggregate, err := h.uc.RateRecipe(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, aggregate, "Recipe rated successfully")
}

// ListSavedRecipes returns the caller's saved recipes.
func (h *EngagementHandler) ListSavedRecipes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	recipes, err := h.uc.ListSavedRecipes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "Saved recipes retrieved successfully")
}

// ListFavoriteRecipes returns the caller's favorite recipes.
func (h *EngagementHandler) ListFavoriteRecipes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	recipes, err := h.uc.ListFavoriteRecipes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "Favorite recipes retrieved successfully")
}

// pathIDs extracts the authenticated user ID and the :id recipe path param.
// When either is missing the error response has already been written and the
// handler should return nil.
func (h *EngagementHandler) pathIDs(c echo.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")

		return uuid.Nil, uuid.Nil, false
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")

		return uuid.Nil, uuid.Nil, false
	}

	return userID, recipeID, true
}
