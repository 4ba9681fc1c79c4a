package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrNilAdapter          = errors.New("i18n: adapter is nil")
	ErrLoadingCancelled    = errors.New("i18n: loading translations cancelled")
	ErrFailedToReadFile    = errors.New("i18n: failed to read translation file")
	ErrFailedToParseFile   = errors.New("i18n: failed to parse translation file")
	ErrFailedToParseJSON   = errors.New("i18n: failed to parse JSON content")
	ErrFailedToParseYAML   = errors.New("i18n: failed to parse YAML content")
	ErrUnsupportedFormat   = errors.New("i18n: unsupported translation file format")
	ErrNoTranslationsFound = errors.New("i18n: no translation files found")
	ErrInvalidStructure    = errors.New("i18n: invalid translation structure")
)

// StructureError reports a language whose translations are not a map.
type StructureError struct {
	Lang string
	Got  any
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("i18n: translations for %q must be a map, got %T", e.Lang, e.Got)
}

func (e *StructureError) Unwrap() error { return ErrInvalidStructure }
