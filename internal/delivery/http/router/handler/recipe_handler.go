package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"pantry/internal/delivery/http/response"
	"pantry/internal/domain/entity"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for the recipe catalog endpoints.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetRecipe returns one published recipe by ID.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid recipe ID")
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe retrieved successfully")
}

// GetRecipeBySlug returns one published recipe by its URL slug.
func (h *RecipeHandler) GetRecipeBySlug(c echo.Context) error {
	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "INVALID_SLUG", "Recipe slug is required")
	}

	recipe, err := h.uc.GetRecipeBySlug(c.Request().Context(), slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe retrieved successfully")
}

// ListRecipes returns published recipes matching the query filters.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	input := &usecase.ListRecipesInput{
		MealType:   entity.MealType(c.QueryParam("meal_type")),
		Difficulty: entity.Difficulty(c.QueryParam("difficulty")),
		Search:     c.QueryParam("search"),
	}

	if raw := c.QueryParam("cuisine_id"); raw != "" {
		cuisineID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid cuisine ID")
		}
		input.CuisineID = &cuisineID
	}
	if raw := c.QueryParam("max_total_time"); raw != "" {
		maxTotalTime, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "max_total_time must be a number")
		}
		input.MaxTotalTime = maxTotalTime
	}
	if raw := c.QueryParam("featured"); raw != "" {
		input.FeaturedOnly = raw == "true"
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "limit must be a number")
		}
		input.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "offset must be a number")
		}
		input.Offset = offset
	}

	recipes, err := h.uc.ListRecipes(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipes, "Recipes retrieved successfully")
}

// ListCuisines returns the cuisine catalog.
func (h *RecipeHandler) ListCuisines(c echo.Context) error {
	cuisines, err := h.uc.ListCuisines(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cuisines, "Cuisines retrieved successfully")
}
