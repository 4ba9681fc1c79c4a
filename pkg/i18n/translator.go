package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Translator resolves translation keys for a language. Lookups fall back from
// the requested language to its base language ("de-AT" -> "de") and then to
// the default language.
type Translator struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	adapter      TranslationAdapter

	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the last language of the fallback chain.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key when no translation
// exists. Enabled by default.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.logMissing = log
	}
}

// NewTranslator loads translations through adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		adapter:       adapter,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.Reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// Reload replaces the translations with a fresh load from the adapter.
func (t *Translator) Reload(ctx context.Context) error {
	translations, err := t.adapter.Load(ctx)
	if err != nil {
		return err
	}
	for lang, keys := range translations {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidStructure)
		}
		if keys == nil {
			return &StructureError{Lang: lang}
		}
	}

	t.mu.Lock()
	t.translations = translations
	t.mu.Unlock()

	t.logger.InfoContext(ctx, "translations loaded", slog.Any("languages", t.SupportedLanguages()))
	return nil
}

// SupportedLanguages returns the loaded languages, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// DefaultLanguage returns the last language of the fallback chain.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// HasTranslation reports whether key resolves for lang, fallbacks included.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. args are name/value pairs substituted into the
// "%{name}" placeholders of the template.
//
//	t.T("en", "validation.max_length", "0", "Name", "2", "10")
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return Format(tmpl, pairs(args))
}

// Td is T with an explicit template used when key does not resolve.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	tmpl, ok := t.lookup(lang, key)
	if !ok {
		tmpl = defaultValue
	}
	return Format(tmpl, pairs(args))
}

// Tc is T for the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// N translates a pluralized key: key.zero (n == 0, optional), key.one (n == 1)
// or key.other.
func (t *Translator) N(lang, key string, n int, args ...string) string {
	var candidates []string
	switch n {
	case 0:
		candidates = []string{key + ".zero", key + ".other"}
	case 1:
		candidates = []string{key + ".one", key + ".other"}
	default:
		candidates = []string{key + ".other"}
	}
	for _, k := range candidates {
		if tmpl, ok := t.lookup(lang, k); ok {
			return Format(tmpl, pairs(args))
		}
	}
	return t.T(lang, key, args...)
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, l := range t.chain(lang) {
		keys, ok := t.translations[l]
		if !ok {
			continue
		}
		if v, ok := resolve(keys, key); ok {
			return v, true
		}
	}
	return "", false
}

func (t *Translator) chain(lang string) []string {
	chain := make([]string, 0, 3)
	add := func(l string) {
		if l != "" && !slices.Contains(chain, l) {
			chain = append(chain, l)
		}
	}
	add(lang)
	add(BaseLanguage(lang))
	add(t.defaultLang)
	return chain
}

// resolve walks a dot-separated key: "validation.compare.equal". A flat key
// containing dots is tried first.
func resolve(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		return asString(v)
	}

	head, rest, found := strings.Cut(key, ".")
	if !found {
		return "", false
	}
	next, ok := m[head].(map[string]any)
	if !ok {
		return "", false
	}
	return resolve(next, rest)
}

func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return "", false
	}
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Format substitutes "%{name}" placeholders with params. Unknown placeholders
// are kept as-is.
//
//	i18n.Format("%{0} must not exceed %{2} characters.", map[string]string{"0": "Name", "2": "10"})
//	// "Name must not exceed 10 characters."
func Format(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
