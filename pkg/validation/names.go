package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	defaultValueName = "value"
)

// JSONName derives the wire name of a property: lower camel case with leading
// acronyms lowered ("StartDate" -> "startDate", "ID" -> "id", "HTTPCode" -> "httpCode").
func JSONName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}

	upper := 0
	for upper < len(runes) && unicode.IsUpper(runes[upper]) {
		upper++
	}

	switch {
	case upper == 0:
		return name
	case upper == 1 || upper == len(runes):
		// "Name" -> "name", "ID" -> "id"
	case !unicode.IsLetter(runes[upper]):
		// "ID2" -> "id2"
	case pluralAcronym(runes, upper):
		// "IDs" -> "ids", "URLsByHost" -> "urlsByHost"
	default:
		// "HTTPCode": keep the last capital as the start of the next word
		upper--
	}

	for i := 0; i < upper; i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// DisplayText derives the human-readable text of a property by splitting its
// name into words ("StartDate" -> "Start Date", "CustomerID" -> "Customer ID").
func DisplayText(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return name
	}
	// Casers keep state between calls and must not be shared across goroutines.
	words[0] = cases.Title(language.English, cases.NoLower).String(words[0])
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	runes := []rune(name)
	var (
		words []string
		start int
	)

	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case cur == '_' || cur == '-' || cur == ' ':
			boundary = true
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			boundary = !pluralAcronym(runes, i+1)
		case unicode.IsDigit(cur) != unicode.IsDigit(prev) && unicode.IsLower(prev):
			boundary = true
		}
		if boundary {
			if w := strings.Trim(string(runes[start:i]), "_- "); w != "" {
				words = append(words, w)
			}
			start = i
		}
	}
	if w := strings.Trim(string(runes[start:]), "_- "); w != "" {
		words = append(words, w)
	}
	return words
}

// pluralAcronym reports whether runes[i] is the "s" closing an acronym such as
// "IDs" or "URLsByHost".
func pluralAcronym(runes []rune, i int) bool {
	return runes[i] == 's' && (i+1 == len(runes) || !unicode.IsLower(runes[i+1]))
}

// JoinPath appends a segment to a fully-qualified path. Index and key
// segments ("[0]", "[key]") attach without a separator.
func JoinPath(parent, segment string) string {
	switch {
	case parent == "":
		return segment
	case segment == "":
		return parent
	case strings.HasPrefix(segment, "["):
		return parent + segment
	default:
		return parent + "." + segment
	}
}

// LastSegment returns the final segment of a fully-qualified path:
// "order.lines[2]" -> "[2]", "order.customer" -> "customer".
func LastSegment(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasSuffix(path, "]") {
		if i := strings.LastIndex(path, "["); i >= 0 {
			return path[i:]
		}
	}
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}

func indexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func keySegment(key any) string {
	return "[" + fmt.Sprint(key) + "]"
}
