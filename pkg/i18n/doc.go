// Package i18n is a small message catalog used to localize validation
// messages.
//
// Translations are loaded through a TranslationAdapter: MapAdapter for
// in-memory data, FileAdapter for a single JSON or YAML file and FSAdapter for
// a directory in any fs.FS, including embed.FS. Keys are dot-separated paths
// into nested maps and templates use named "%{name}" placeholders:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales"))
//	if err != nil {
//		return err
//	}
//	msg := tr.T("de-AT", "validation.mandatory", "0", "Name")
//
// Lookups fall back from the requested language to its base language and
// then to the default language. ParseAcceptLanguage selects a supported
// language from a list of preferences in Accept-Language form.
package i18n
