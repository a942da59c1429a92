package handler

import (
	"log/slog"
	"net/http"

	"pantry/internal/delivery/http/response"
	"pantry/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReferenceHandler holds dependencies for the lookup catalog endpoints.
type ReferenceHandler struct {
	uc     usecase.ReferenceUsecase
	logger *slog.Logger
}

// NewReferenceHandler is the constructor for ReferenceHandler, injected by Fx.
func NewReferenceHandler(uc usecase.ReferenceUsecase, logger *slog.Logger) *ReferenceHandler {
	return &ReferenceHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListRegions returns the region catalog.
func (h *ReferenceHandler) ListRegions(c echo.Context) error {
	regions, err := h.uc.ListRegions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}

// ListIngredients returns the active ingredient catalog.
func (h *ReferenceHandler) ListIngredients(c echo.Context) error {
	ingredients, err := h.uc.ListIngredients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ingredients, "Ingredients retrieved successfully")
}

// ListHealthConditions returns the health condition catalog.
func (h *ReferenceHandler) ListHealthConditions(c echo.Context) error {
	items, err := h.uc.ListHealthConditions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Health conditions retrieved successfully")
}

// ListAllergies returns the allergy catalog.
func (h *ReferenceHandler) ListAllergies(c echo.Context) error {
	items, err := h.uc.ListAllergies(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Allergies retrieved successfully")
}

// ListDietaryPreferences returns the dietary preference catalog.
func (h *ReferenceHandler) ListDietaryPreferences(c echo.Context) error {
	items, err := h.uc.ListDietaryPreferences(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Dietary preferences retrieved successfully")
}

// ListFitnessGoals returns the fitness goal catalog.
func (h *ReferenceHandler) ListFitnessGoals(c echo.Context) error {
	goals, err := h.uc.ListFitnessGoals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, goals, "Fitness goals retrieved successfully")
}
