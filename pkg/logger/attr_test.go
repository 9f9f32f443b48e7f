package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailvalid/mailvalid/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestEmail(t *testing.T) {
	tests := map[string]string{
		"jane@example.com":  "j***@example.com",
		"invalid.example":   "***",
		"@example.com":      "***",
		"":                  "",
		"éclair@example.jp": "é***@example.jp",
	}
	for in, want := range tests {
		attr := logger.Email(in)
		assert.Equal(t, "email", attr.Key)
		assert.Equal(t, want, attr.Value.String(), in)
	}
}

func TestSimpleAttrs(t *testing.T) {
	assert.Equal(t, "ja", logger.Locale("ja").Value.String())
	assert.Equal(t, "invalid_email", logger.Reason("invalid_email").Value.String())
	assert.Equal(t, "abc", logger.RequestID("abc").Value.Any())
	assert.True(t, logger.RequestID(nil).Equal(slog.Attr{}))
	assert.Equal(t, "user_id", logger.UserID(7).Key)
	assert.Equal(t, time.Second, logger.Duration(time.Second).Value.Duration())
	assert.Equal(t, "api", logger.Component("api").Value.String())
}
