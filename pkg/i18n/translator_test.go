package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validationkit/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"validation": map[string]any{
				"mandatory": "%{0} is required.",
				"items": map[string]any{
					"one":   "%{n} item",
					"other": "%{n} items",
				},
			},
			"only.in.english": "English only",
		},
		"de": {
			"validation": map[string]any{
				"mandatory": "%{0} ist erforderlich.",
			},
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{Data: map[string]map[string]any{"": {}}})
		assert.ErrorIs(t, err, i18n.ErrInvalidStructure)
	})

	t.Run("supported languages are sorted", func(t *testing.T) {
		t.Parallel()
		tr := newTestTranslator(t)
		assert.Equal(t, []string{"de", "en"}, tr.SupportedLanguages())
		assert.Equal(t, "en", tr.DefaultLanguage())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{"nested key", "en", "validation.mandatory", []string{"0", "Name"}, "Name is required."},
		{"other language", "de", "validation.mandatory", []string{"0", "Name"}, "Name ist erforderlich."},
		{"region falls back to base", "de-AT", "validation.mandatory", []string{"0", "Name"}, "Name ist erforderlich."},
		{"missing key falls back to default language", "de", "only.in.english", nil, "English only"},
		{"unknown language uses default", "fr", "validation.mandatory", []string{"0", "Code"}, "Code is required."},
		{"missing key returns key", "en", "no.such.key", nil, "no.such.key"},
		{"unknown placeholders kept", "en", "validation.mandatory", nil, "%{0} is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_NoFallbackToKey(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t, i18n.WithFallbackToKey(false))

	assert.Empty(t, tr.T("en", "no.such.key"))
	assert.Equal(t, "fallback", tr.Td("en", "no.such.key", "fallback"))
	assert.Equal(t, "Name is required.", tr.Td("en", "validation.mandatory", "fallback", "0", "Name"))
}

func TestTranslator_HasTranslation(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.True(t, tr.HasTranslation("de", "validation.mandatory"))
	assert.True(t, tr.HasTranslation("de", "only.in.english"))
	assert.False(t, tr.HasTranslation("en", "validation"))
	assert.False(t, tr.HasTranslation("en", "validation.unknown"))
}

func TestTranslator_N(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "1 item", tr.N("en", "validation.items", 1, "n", "1"))
	assert.Equal(t, "5 items", tr.N("en", "validation.items", 5, "n", "5"))
	assert.Equal(t, "0 items", tr.N("en", "validation.items", 0, "n", "0"))
}

func TestTranslator_Tc(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	ctx := i18n.SetLocale(context.Background(), "de")
	assert.Equal(t, "Name ist erforderlich.", tr.Tc(ctx, "validation.mandatory", "0", "Name"))
	assert.Equal(t, "Name is required.", tr.Tc(context.Background(), "validation.mandatory", "0", "Name"))
}

func TestTranslator_Reload(t *testing.T) {
	t.Parallel()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": {"greeting": "hi"}}}
	tr, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)
	assert.Equal(t, "hi", tr.T("en", "greeting"))

	adapter.Data = map[string]map[string]any{"en": {"greeting": "hello"}}
	require.NoError(t, tr.Reload(context.Background()))
	assert.Equal(t, "hello", tr.T("en", "greeting"))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Name must not exceed 10 characters.",
		i18n.Format("%{0} must not exceed %{2} characters.", map[string]string{"0": "Name", "2": "10"}))
	assert.Equal(t, "plain", i18n.Format("plain", nil))
	assert.Equal(t, "%{x} stays", i18n.Format("%{x} stays", map[string]string{"y": "1"}))
}
