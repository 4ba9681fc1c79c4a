package validation

import (
	"context"
	"embed"

	"github.com/dmitrymomot/validationkit/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator returns a translator loaded with the bundled message
// catalogs (en, de). Use it with NewTranslatorFormatter or ContextFormatter.
func NewTranslator(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"), opts...)
}
