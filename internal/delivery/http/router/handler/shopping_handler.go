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

// ShoppingListHandler holds dependencies for the shopping list endpoints.
type ShoppingListHandler struct {
	uc     usecase.ShoppingListUsecase
	logger *slog.Logger
}

// NewShoppingListHandler is the constructor for ShoppingListHandler, injected by Fx.
func NewShoppingListHandler(uc usecase.ShoppingListUsecase, logger *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetShoppingList returns one active list with its items.
func (h *ShoppingListHandler) GetShoppingList(c echo.Context) error {
	userID, listID, ok := h.listIDs(c)
	if !ok {
		return nil
	}

	list, err := h.uc.GetShoppingList(c.Request().Context(), userID, listID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list, "Shopping list retrieved successfully")
}

// ListShoppingLists returns the caller's active lists.
func (h *ShoppingListHandler) ListShoppingLists(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	lists, err := h.uc.ListShoppingLists(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, lists, "Shopping lists retrieved successfully")
}

// CreateShoppingList creates an active list, optionally with items.
func (h *ShoppingListHandler) CreateShoppingList(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.CreateShoppingListInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shopping list input")
	}

	list, err := h.uc.CreateShoppingList(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, list, "Shopping list created successfully")
}

// RenameShoppingList changes the list name.
func (h *ShoppingListHandler) RenameShoppingList(c echo.Context) error {
	userID, listID, ok := h.listIDs(c)
	if !ok {
		return nil
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rename input")
	}

	list, err := h.uc.RenameShoppingList(c.Request().Context(), userID, listID, req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list, "Shopping list renamed successfully")
}

// DeleteShoppingList deactivates a list, keeping its rows.
func (h *ShoppingListHandler) DeleteShoppingList(c echo.Context) error {
	userID, listID, ok := h.listIDs(c)
	if !ok {
		return nil
	}

	if err := h.uc.DeleteShoppingList(c.Request().Context(), userID, listID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shopping list deleted successfully")
}

// AddItem appends an item to a list.
func (h *ShoppingListHandler) AddItem(c echo.Context) error {
	userID, listID, ok := h.listIDs(c)
	if !ok {
		return nil
	}

	var input *usecase.ShoppingItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	list, err := h.uc.AddItem(c.Request().Context(), userID, listID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, list, "Item added successfully")
}

// UpdateItem modifies an item, including toggling its purchased flag.
func (h *ShoppingListHandler) UpdateItem(c echo.Context) error {
	userID, listID, ok := h.listIDs(c)
	if !ok {
		return nil
	}

	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	var input *usecase.UpdateShoppingItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	list, err := h.uc.UpdateItem(c.Request().Context(), userID, listID, itemID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, list, "Item updated successfully")
}

// RemoveItem removes an item from a list.
func (h *ShoppingListHandler) RemoveItem(c echo.Context) error {
	userID, listID, ok := h.listIDs(c)
	if !ok {
		return nil
	}

	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid item ID")
	}

	if err := h.uc.RemoveItem(c.Request().Context(), userID, listID, itemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed successfully")
}

// listIDs extracts the authenticated user ID and the :id list path param.
// When either is missing the error response has already been written and the
// handler should return nil.
func (h *ShoppingListHandler) listIDs(c echo.Context) (uuid.UUID, uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")

		return uuid.Nil, uuid.Nil, false
	}

	listID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "INVALID_ID", "Invalid shopping list ID")

		return uuid.Nil, uuid.Nil, false
	}

	return userID, listID, true
}
