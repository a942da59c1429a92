package handler

import (
	"log/slog"
	"net/http"
	"time"

	"pantry/internal/delivery/http/middleware"
	"pantry/internal/delivery/http/response"
	"pantry/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MealPlanHandler holds dependencies for the meal plan endpoints.
type MealPlanHandler struct {
	uc     usecase.MealPlanUsecase
	logger *slog.Logger
}

// NewMealPlanHandler is the constructor for MealPlanHandler, injected by Fx.
func NewMealPlanHandler(uc usecase.MealPlanUsecase, logger *slog.Logger) *MealPlanHandler {
	return &MealPlanHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetMealPlan returns one plan with its entries and recipes.
func (h *MealPlanHandler) GetMealPlan(c echo.Context) error {
	userID, planID, ok := h.planIDs(c)
	if !ok {
		return nil
	}

	plan, err := h.uc.GetMealPlan(c.Request().Context(), userID, planID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Meal plan retrieved successfully")
}

// ListMealPlans returns the caller's plans. When both from and to query
// params are supplied only plans overlapping that range are returned.
func (h *MealPlanHandler) ListMealPlans(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	fromRaw, toRaw := c.QueryParam("from"), c.QueryParam("to")
	if fromRaw != "" && toRaw != "" {
		from, err := time.Parse(time.DateOnly, fromRaw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "from must be a YYYY-MM-DD date")
		}
		to, err := time.Parse(time.DateOnly, toRaw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "to must be a YYYY-MM-DD date")
		}

		plans, err := h.uc.GetMealPlansInRange(c.Request().Context(), userID, from, to)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, plans, "Meal plans retrieved successfully")
	}

	plans, err := h.uc.ListMealPlans(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "Meal plans retrieved successfully")
}

// CreateMealPlan creates a plan, optionally with initial entries.
func (h *MealPlanHandler) CreateMealPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.CreateMealPlanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal plan input")
	}

	plan, err := h.uc.CreateMealPlan(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plan, "Meal plan created successfully")
}

// UpdateMealPlan renames a plan or shifts its date range.
func (h *MealPlanHandler) UpdateMealPlan(c echo.Context) error {
	userID, planID, ok := h.planIDs(c)
	if !ok {
		return nil
	}

	var input *usecase.UpdateMealPlanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal plan input")
	}

	plan, err := h.uc.UpdateMealPlan(c.Request().Context(), userID, planID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Meal plan updated successfully")
}

// DeleteMealPlan removes a plan together with its entries.
func (h *MealPlanHandler) DeleteMealPlan(c echo.Context) error {
	userID, planID, ok := h.planIDs(c)
	if !ok {
		return nil
	}

	if err := h.uc.DeleteMealPlan(c.Request().Context(), userID, planID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Meal plan deleted successfully")
}

// AddEntry schedules a recipe on a plan.
func (h *MealPlanHandler) AddEntry(c echo.Context) error {
	userID, planID, ok := h.planIDs(c)
	if !ok {
		return nil
	}

	var input *usecase.AddMealPlanEntryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}

	plan, err := h.uc.AddEntry(c.Request().Context(), userID, planID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, plan, "Entry added successfully")
}

// RemoveEntry removes one scheduled recipe from a plan.
func (h *MealPlanHandler) RemoveEntry(c echo.Context) error {
	userID, planID, ok := h.planIDs(c)
	if !ok {
		return nil
	}

	entryID, err := uuid.Parse(c.Param("entryID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	if err := h.uc.RemoveEntry(c.Request().Context(), userID, planID, entryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Entry removed successfully")
}

// planIDs extracts the authenticated user ID and the :id plan path param.
// When either is missing the error response has already been written and the
// handler should return nil.
func (h *MealPlanHandler) planIDs(c echo.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")

		return uuid.Nil, uuid.Nil, false
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid meal plan ID")

		return uuid.Nil, uuid.Nil, false
	}

	return userID, planID, true
}
