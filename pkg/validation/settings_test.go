package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/validation"
)

// Tests in this file change process-wide settings and must not run in parallel.

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := validation.LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, validation.DefaultSettings(), s)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("VALIDATION_USE_JSON_NAMES", "false")
		t.Setenv("VALIDATION_MAX_DEPTH", "7")
		t.Setenv("VALIDATION_DEFAULT_LANG", "de")

		s, err := validation.LoadSettings()
		require.NoError(t, err)
		assert.Equal(t, validation.Settings{UseJSONNames: false, MaxDepth: 7, DefaultLang: "de"}, s)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("VALIDATION_MAX_DEPTH", "deep")

		_, err := validation.LoadSettings()
		assert.ErrorIs(t, err, validation.ErrFailedToLoadSettings)
	})
}

func TestUseSettings(t *testing.T) {
	prev := validation.CurrentSettings()
	t.Cleanup(func() { validation.UseSettings(prev) })

	validation.UseSettings(validation.Settings{UseJSONNames: false})
	assert.Equal(t, validation.Settings{UseJSONNames: false, MaxDepth: 100, DefaultLang: "en"}, validation.CurrentSettings())

	r, err := newPeriodValidator().Validate(context.Background(), &period{Text: "ok"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Code"}, r.Messages().Fields())

	assert.False(t, validation.NewArgs().UseJSONNames)
}
