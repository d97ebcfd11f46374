package strcase

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	lowerUpper      = regexp.MustCompile(`([a-z\d])([A-Z])`)
	lowerUpperRun   = regexp.MustCompile(`([a-z\d])([A-Z]+)`)
	dashOrSpaceRuns = regexp.MustCompile(`-|\s+`)
)

// NoOp returns s unchanged. It is the identity key transform.
func NoOp(s string) string {
	return s
}

// CamelCase removes separators (_, -, ., whitespace), upper-casing the rune
// that follows each run, and lower-cases a leading ASCII capital.
func CamelCase(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	upperNext := false
	for _, r := range s {
		if isSeparator(r) {
			upperNext = true

			continue
		}

		if upperNext {
			r = unicode.ToUpper(r)
			upperNext = false
		}

		b.WriteRune(r)
	}

	out := b.String()
	if out != "" && out[0] >= 'A' && out[0] <= 'Z' {
		out = string(out[0]+('a'-'A')) + out[1:]
	}

	return out
}

// SnakeCase splits on lower-to-upper transitions with an underscore and
// lower-cases the result. Acronyms stay joined: "XMLParser" -> "xmlparser".
func SnakeCase(s string) string {
	return strings.ToLower(lowerUpper.ReplaceAllString(s, "${1}_${2}"))
}

// UnderscoreCase is SnakeCase that also turns dashes and whitespace runs
// into underscores and keeps upper-case runs together.
func UnderscoreCase(s string) string {
	s = lowerUpperRun.ReplaceAllString(s, "${1}_${2}")
	s = dashOrSpaceRuns.ReplaceAllString(s, "_")

	return strings.ToLower(s)
}

// DashCase converts underscores to dashes and splits lower-to-upper
// transitions with a dash.
func DashCase(s string) string {
	s = strings.ReplaceAll(s, "_", "-")

	return strings.ToLower(lowerUpper.ReplaceAllString(s, "${1}-${2}"))
}

// Lookup returns the transform registered under name. The empty name and
// "none" resolve to NoOp.
func Lookup(name string) (func(string) string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none", "noop", "identity":
		return NoOp, true
	case "camel", "camelcase":
		return CamelCase, true
	case "snake", "snakecase":
		return SnakeCase, true
	case "underscore", "underscorecase":
		return UnderscoreCase, true
	case "dash", "dashcase", "kebab":
		return DashCase, true
	}

	return nil, false
}

// isSeparator returns true if the rune separates words in an identifier.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}
