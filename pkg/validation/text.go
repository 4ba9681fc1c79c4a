package validation

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/dmitrymomot/validationkit/pkg/i18n"
)

// Text is a message template with its positional arguments.
//
// Templates use the %{0}, %{1}, ... placeholders of the i18n package. By
// convention %{0} is the property display text and %{1} its current value;
// rule-specific arguments start at %{2}. A Text is resolved by a Formatter
// when the message is consumed, not when it is created.
type Text struct {
	Key    string
	Format string
	Args   []any
}

// NewText creates a translatable Text with its English default template.
func NewText(key, format string) Text {
	return Text{Key: key, Format: format}
}

// PlainText creates a Text without a translation key.
func PlainText(format string) Text {
	return Text{Format: format}
}

// With returns a copy of the text bound to args.
func (t Text) With(args ...any) Text {
	t.Args = append([]any(nil), args...)
	return t
}

// IsEmpty reports whether the text has neither a key nor a template.
func (t Text) IsEmpty() bool {
	return t.Key == "" && t.Format == ""
}

func (t Text) String() string {
	return DefaultFormatter.Format(t)
}

// Formatter resolves a Text into its final string.
type Formatter interface {
	Format(t Text) string
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc func(t Text) string

func (f FormatterFunc) Format(t Text) string { return f(t) }

// DefaultFormatter substitutes the template placeholders with the arguments.
var DefaultFormatter Formatter = FormatterFunc(formatText)

func formatText(t Text) string {
	format := t.Format
	if format == "" {
		format = t.Key
	}
	return i18n.Format(format, textParams(t.Args))
}

// TranslatorFormatter resolves the text key through an i18n.Translator and
// falls back to the default template when no translation exists.
type TranslatorFormatter struct {
	Translator *i18n.Translator
	Lang       string
}

// NewTranslatorFormatter returns a formatter for lang, or for
// Settings.DefaultLang when lang is empty.
func NewTranslatorFormatter(t *i18n.Translator, lang string) TranslatorFormatter {
	if lang == "" {
		lang = CurrentSettings().DefaultLang
	}
	return TranslatorFormatter{Translator: t, Lang: lang}
}

// ContextFormatter returns a formatter for the locale stored in ctx by the
// i18n package.
func ContextFormatter(ctx context.Context, t *i18n.Translator) TranslatorFormatter {
	return NewTranslatorFormatter(t, i18n.GetLocale(ctx))
}

func (f TranslatorFormatter) Format(t Text) string {
	if f.Translator == nil || t.Key == "" || !f.Translator.HasTranslation(f.Lang, t.Key) {
		return DefaultFormatter.Format(t)
	}

	pairs := make([]string, 0, len(t.Args)*2)
	for i, arg := range t.Args {
		pairs = append(pairs, strconv.Itoa(i), formatArg(arg))
	}
	return f.Translator.T(f.Lang, t.Key, pairs...)
}

func textParams(args []any) map[string]string {
	params := make(map[string]string, len(args))
	for i, arg := range args {
		params[strconv.Itoa(i)] = formatArg(arg)
	}
	return params
}

// formatArg renders an argument for message output. Nested Text values are
// resolved, pointers are dereferenced and dates render without a clock when
// they sit on midnight.
func formatArg(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case Text:
		return formatText(val)
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format(time.DateOnly)
		}
		return val.Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		return formatArg(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}
