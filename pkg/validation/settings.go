package validation

import (
	"errors"
	"sync/atomic"

	"github.com/dmitrymomot/validationkit/pkg/config"
)

// Settings holds process-wide validation defaults.
type Settings struct {
	UseJSONNames bool   `env:"VALIDATION_USE_JSON_NAMES" envDefault:"true"` // UseJSONNames selects wire names for message paths by default.
	MaxDepth     int    `env:"VALIDATION_MAX_DEPTH" envDefault:"100"`       // MaxDepth caps nested validation to stop cyclic object graphs.
	DefaultLang  string `env:"VALIDATION_DEFAULT_LANG" envDefault:"en"`     // DefaultLang is the language used by NewTranslatorFormatter when none is given.
}

// DefaultSettings returns the built-in defaults, identical to the env defaults.
func DefaultSettings() Settings {
	return Settings{
		UseJSONNames: true,
		MaxDepth:     100,
		DefaultLang:  "en",
	}
}

var current atomic.Pointer[Settings]

func init() {
	s := DefaultSettings()
	current.Store(&s)
}

// LoadSettings reads Settings from the environment (and a .env file if
// present). Every call parses the environment again.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s, config.WithoutCache()); err != nil {
		return Settings{}, errors.Join(ErrFailedToLoadSettings, err)
	}
	return s, nil
}

// UseSettings replaces the process-wide defaults. Call it once during startup,
// before validators are used.
func UseSettings(s Settings) {
	if s.MaxDepth <= 0 {
		s.MaxDepth = DefaultSettings().MaxDepth
	}
	if s.DefaultLang == "" {
		s.DefaultLang = DefaultSettings().DefaultLang
	}
	current.Store(&s)
}

// CurrentSettings returns the process-wide defaults in effect.
func CurrentSettings() Settings {
	return *current.Load()
}
