package validation

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxLength reports an error when a string exceeds max characters.
// Empty strings are skipped.
func MaxLength(max int, opts ...RuleOption) Rule[string] {
	cfg := newRuleConfig(TextMaxLength, opts)
	return RuleFunc[string](func(_ context.Context, pc *PropertyContext[string]) error {
		if pc.Value != "" && utf8.RuneCountInString(pc.Value) > max {
			pc.CreateError(cfg.text, max)
		}
		return nil
	})
}

// MinLength reports an error when a non-empty string is shorter than min characters.
func MinLength(min int, opts ...RuleOption) Rule[string] {
	cfg := newRuleConfig(TextMinLength, opts)
	return RuleFunc[string](func(_ context.Context, pc *PropertyContext[string]) error {
		if pc.Value != "" && utf8.RuneCountInString(pc.Value) < min {
			pc.CreateError(cfg.text, min)
		}
		return nil
	})
}

// Length checks both bounds. When min equals max the string must have exactly
// that many characters.
func Length(min, max int, opts ...RuleOption) Rule[string] {
	exact := newRuleConfig(TextExactLength, opts)
	lower := newRuleConfig(TextMinLength, opts)
	upper := newRuleConfig(TextMaxLength, opts)
	return RuleFunc[string](func(_ context.Context, pc *PropertyContext[string]) error {
		if pc.Value == "" {
			return nil
		}
		n := utf8.RuneCountInString(pc.Value)
		switch {
		case min == max && n != min:
			pc.CreateError(exact.text, min)
		case n < min:
			pc.CreateError(lower.text, min)
		case n > max:
			pc.CreateError(upper.text, max)
		}
		return nil
	})
}

// Matches reports an error when a non-empty string does not match re.
func Matches(re *regexp.Regexp, opts ...RuleOption) Rule[string] {
	if re == nil {
		mustConfig("Matches", "regexp is nil", ErrNilRule)
	}
	cfg := newRuleConfig(TextInvalid, opts)
	return RuleFunc[string](func(_ context.Context, pc *PropertyContext[string]) error {
		if pc.Value != "" && !re.MatchString(pc.Value) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

// Email reports an error when a non-blank string is not a plain e-mail address.
func Email(opts ...RuleOption) Rule[string] {
	cfg := newRuleConfig(TextEmail, opts)
	return RuleFunc[string](func(_ context.Context, pc *PropertyContext[string]) error {
		if strings.TrimSpace(pc.Value) != "" && !isEmail(pc.Value) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Display-name forms like "Bob <bob@example.com>" are not accepted.
	if addr.Address != strings.TrimSpace(value) {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// UUID reports an error when a non-blank string is not a canonical UUID.
func UUID(opts ...RuleOption) Rule[string] {
	cfg := newRuleConfig(TextUUID, opts)
	return RuleFunc[string](func(_ context.Context, pc *PropertyContext[string]) error {
		if strings.TrimSpace(pc.Value) != "" && !isUUID(pc.Value) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

func isUUID(value string) bool {
	// Fast rejection before parsing.
	if len(value) != 36 || value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

// NonNilUUID reports an error for uuid.Nil.
func NonNilUUID(opts ...RuleOption) Rule[uuid.UUID] {
	cfg := newRuleConfig(TextNilUUID, opts)
	return RuleFunc[uuid.UUID](func(_ context.Context, pc *PropertyContext[uuid.UUID]) error {
		if pc.Value == uuid.Nil {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}
