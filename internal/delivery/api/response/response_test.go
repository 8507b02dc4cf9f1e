package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "contacts/internal/delivery/context"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"id": "a"}))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"a"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_DropsDetailsForServerErrors(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "oops", "stack"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestHandleAppError(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.Wrap(domainerrors.ErrAddressNotFound, "lookup"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t,
		`{"error":{"code":"ADDRESS_NOT_FOUND","message":"Address not found"},"meta":{"request_id":"req-1"}}`,
		rec.Body.String())
}

func TestHandleAppError_PassesThroughOtherErrors(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)
	assert.ErrorIs(t, err, cause)
	assert.Zero(t, rec.Body.Len())
}
