package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailvalid/mailvalid/pkg/binder"
)

type emailRequest struct {
	Email  string  `json:"email"`
	Locale *string `json:"locale,omitempty"`
}

func newJSONRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid JSON binding", func(t *testing.T) {
		t.Parallel()
		var got emailRequest
		err := binder.JSON()(newJSONRequest(`{"email":"user@example.com","locale":"ja"}`, "application/json"), &got)

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", got.Email)
		require.NotNil(t, got.Locale)
		assert.Equal(t, "ja", *got.Locale)
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()
		var got emailRequest
		err := binder.JSON()(newJSONRequest(`{"email":"a@b.co"}`, "application/json; charset=utf-8"), &got)

		require.NoError(t, err)
		assert.Equal(t, "a@b.co", got.Email)
		assert.Nil(t, got.Locale)
	})

	t.Run("values are not altered", func(t *testing.T) {
		t.Parallel()
		var got emailRequest
		err := binder.JSON()(newJSONRequest(`{"email":" <x>@example.com "}`, "application/json"), &got)

		require.NoError(t, err)
		assert.Equal(t, " <x>@example.com ", got.Email)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{name: "missing content type", body: `{"email":"x"}`, wantErr: binder.ErrMissingContentType},
		{name: "wrong content type", body: `{"email":"x"}`, contentType: "text/plain", wantErr: binder.ErrUnsupportedMediaType},
		{name: "malformed content type", body: `{"email":"x"}`, contentType: "application/json; =", wantErr: binder.ErrUnsupportedMediaType},
		{name: "empty body", contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "invalid syntax", body: `{"email":`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "type mismatch", body: `{"email":42}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "unknown field", body: `{"email":"x","admin":true}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
		{name: "trailing data", body: `{"email":"x"}{"email":"y"}`, contentType: "application/json", wantErr: binder.ErrFailedToParseJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got emailRequest
			err := binder.JSON()(newJSONRequest(tt.body, tt.contentType), &got)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestJSON_MaxSize(t *testing.T) {
	t.Parallel()

	body := `{"email":"` + strings.Repeat("a", 100) + `@example.com"}`

	var got emailRequest
	err := binder.JSON(binder.WithMaxSize(64))(newJSONRequest(body, "application/json"), &got)
	assert.ErrorIs(t, err, binder.ErrBodyTooLarge)

	err = binder.JSON(binder.WithMaxSize(int64(len(body))))(newJSONRequest(body, "application/json"), &got)
	assert.NoError(t, err)

	err = binder.JSON(binder.WithMaxSize(0))(newJSONRequest(body, "application/json"), &got)
	assert.NoError(t, err)
}

func TestJSON_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := newJSONRequest(`{"email":"x"}`, "application/json").WithContext(ctx)

	var got emailRequest
	err := binder.JSON()(req, &got)
	assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	assert.ErrorIs(t, err, context.Canceled)
}
