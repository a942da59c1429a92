package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "pantry/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSuccess_EchoesRequestID(t *testing.T) {
	c, rec := newTestContext(t)
	deliverycontext.SetRequestID(c, "req-123")

	require.NoError(t, Success(c, http.StatusOK, map[string]string{"name": "Jollof Rice"}, ""))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "req-123", body.RequestID)
	assert.Equal(t, "Success", body.Message)
}

func TestSuccess_WithoutRequestID(t *testing.T) {
	c, rec := newTestContext(t)

	require.NoError(t, Success(c, http.StatusOK, nil, "done"))

	assert.NotContains(t, rec.Body.String(), "request_id")
}

func TestError_EchoesRequestID(t *testing.T) {
	c, rec := newTestContext(t)
	deliverycontext.SetRequestID(c, "req-456")

	require.NoError(t, NotFound(c, "RECIPE_NOT_FOUND", "Recipe not found"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "req-456", body.RequestID)
	require.NotNil(t, body.Error)
	assert.Equal(t, "RECIPE_NOT_FOUND", body.Error.Code)
}
