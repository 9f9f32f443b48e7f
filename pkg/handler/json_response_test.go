package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailvalid/mailvalid/pkg/binder"
	"github.com/mailvalid/mailvalid/pkg/handler"
	"github.com/mailvalid/mailvalid/pkg/record"
)

func render(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, handler.JSONResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil)))

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data", func(t *testing.T) {
		t.Parallel()
		rec, body := render(t, handler.JSON(map[string]any{"valid": true}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, map[string]any{"valid": true}, body.Data)
		assert.Nil(t, body.Error)
	})

	t.Run("status and meta", func(t *testing.T) {
		t.Parallel()
		rec, body := render(t, handler.JSON("ok",
			handler.WithJSONStatus(http.StatusCreated),
			handler.WithJSONMeta(map[string]any{"locale": "ja"}),
		))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "ok", body.Data)
		assert.Equal(t, "ja", body.Meta["locale"])
	})

	t.Run("error value", func(t *testing.T) {
		t.Parallel()
		rec, body := render(t, handler.JSON(handler.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "not_found", body.Error.Code)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	errs := record.NewErrors()
	errs.Add("email", "can't be blank")
	errs.Add("email", "invalid email")

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", errs, http.StatusUnprocessableEntity, handler.CodeValidationFailed},
		{"wrapped validation", fmt.Errorf("register: %w", errs), http.StatusUnprocessableEntity, handler.CodeValidationFailed},
		{"http error", handler.ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{"custom http error", handler.NewHTTPError(http.StatusConflict, "conflict"), http.StatusConflict, "conflict"},
		{"missing content type", binder.ErrMissingContentType, http.StatusUnsupportedMediaType, "unsupported_media_type"},
		{"body too large", binder.ErrBodyTooLarge, http.StatusRequestEntityTooLarge, "request_entity_too_large"},
		{"bad json", fmt.Errorf("%w: eof", binder.ErrFailedToParseJSON), http.StatusBadRequest, "bad_request"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, body := render(t, handler.JSONError(tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus, handler.StatusCode(tt.err))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}

	t.Run("validation details", func(t *testing.T) {
		t.Parallel()
		_, body := render(t, handler.JSONError(errs))
		assert.Equal(t, map[string][]string{"email": {"can't be blank", "invalid email"}}, body.Error.Details)
	})

	t.Run("internal errors are not exposed", func(t *testing.T) {
		t.Parallel()
		_, body := render(t, handler.JSONError(errors.New("dial tcp 10.0.0.1:5432")))
		assert.NotContains(t, body.Error.Message, "10.0.0.1")
	})

	t.Run("message override", func(t *testing.T) {
		t.Parallel()
		_, body := render(t, handler.JSONError(handler.ErrNotFound, handler.WithErrorMessage("見つかりません")))
		assert.Equal(t, "見つかりません", body.Error.Message)
	})
}
