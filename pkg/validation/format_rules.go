package validation

import (
	"context"
	"net"
	"net/url"
	"regexp"
	"slices"
	"strings"
)

var (
	phoneRegex        = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	slugRegex         = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// stringRule reports text when a non-blank string fails valid.
func stringRule(def Text, valid func(string) bool, opts []RuleOption) Rule[string] {
	cfg := newRuleConfig(def, opts)
	return RuleFunc[string](func(_ context.Context, pc *PropertyContext[string]) error {
		if strings.TrimSpace(pc.Value) != "" && !valid(pc.Value) {
			pc.CreateError(cfg.text)
		}
		return nil
	})
}

// URL requires an absolute URL with a host. When schemes are given the URL
// scheme must be one of them.
func URL(schemes ...string) Rule[string] {
	return stringRule(TextURL, func(v string) bool {
		u, err := url.ParseRequestURI(v)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return false
		}
		return len(schemes) == 0 || slices.Contains(schemes, u.Scheme)
	}, nil)
}

// Phone requires an E.164 phone number. Spaces and dashes are ignored.
func Phone(opts ...RuleOption) Rule[string] {
	return stringRule(TextPhone, func(v string) bool {
		cleaned := strings.NewReplacer(" ", "", "-", "").Replace(v)
		return len(cleaned) >= 7 && phoneRegex.MatchString(cleaned)
	}, opts)
}

// IP requires an IPv4 or IPv6 address.
func IP(opts ...RuleOption) Rule[string] {
	return stringRule(TextIP, func(v string) bool {
		return net.ParseIP(v) != nil
	}, opts)
}

// Alphanumeric allows ASCII letters and digits only.
func Alphanumeric(opts ...RuleOption) Rule[string] {
	return stringRule(TextAlphanumeric, alphanumericRegex.MatchString, opts)
}

// Slug requires lowercase letters and digits separated by single hyphens.
func Slug(opts ...RuleOption) Rule[string] {
	return stringRule(TextSlug, slugRegex.MatchString, opts)
}
