package i18n

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// DefaultLanguage is used when no language is requested.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the parsed part of an Accept-Language value.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

// BaseLanguage strips the region from a language tag: "de-AT" -> "de".
func BaseLanguage(lang string) string {
	if i := strings.IndexAny(lang, "-_"); i > 0 {
		return strings.ToLower(lang[:i])
	}
	return strings.ToLower(lang)
}

func parseLanguagePreferences(header string) []langWithQ {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for part := range strings.SplitSeq(header, ",") {
		tag, params, _ := strings.Cut(strings.TrimSpace(part), ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}

		q := 1.0
		if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
				q = f
			}
		}
		languages = append(languages, langWithQ{lang: tag, q: q})
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		return cmp.Compare(b.q, a.q)
	})
	return languages
}

// ParseAcceptLanguage picks the best supported language from a list of
// preferences in Accept-Language form ("de-AT,de;q=0.9,en;q=0.5"). Exact
// matches win over base language matches. defaultLang is returned when
// nothing matches.
func ParseAcceptLanguage(header string, supportedLangs []string, defaultLang string) string {
	if header == "" || len(supportedLangs) == 0 {
		return defaultLang
	}

	supported := make([]string, len(supportedLangs))
	for i, lang := range supportedLangs {
		supported[i] = strings.ToLower(lang)
	}

	languages := parseLanguagePreferences(header)
	for _, l := range languages {
		if slices.Contains(supported, l.lang) {
			return l.lang
		}
	}
	for _, l := range languages {
		if base := BaseLanguage(l.lang); base != l.lang && slices.Contains(supported, base) {
			return base
		}
	}
	return defaultLang
}
