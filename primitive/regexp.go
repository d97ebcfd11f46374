package primitive

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRegExp is returned when a serialized pattern cannot be compiled.
var ErrInvalidRegExp = errors.New("invalid regular expression")

var (
	rxZero     *regexp.Regexp
	rxLiteral  = regexp.MustCompile(`^/(.*)/([a-z]*)$`)
	rxLeadFlag = regexp.MustCompile(`^\(\?([ims]+)\)`)
)

// ParseRegExp turns the "/pattern/flags" form back into a compiled pattern.
// Flags i, m and s become Go inline flags; g, y, u and d have no Go
// counterpart and are dropped. A string without the surrounding slashes is
// compiled verbatim.
func ParseRegExp(s string) (*regexp.Regexp, error) {
	pattern := s
	if m := rxLiteral.FindStringSubmatch(s); m != nil {
		pattern = m[1]

		var inline strings.Builder
		for _, f := range m[2] {
			switch f {
			case 'i', 'm', 's':
				inline.WriteRune(f)
			case 'g', 'y', 'u', 'd':
			default:
				return nil, fmt.Errorf("%w: unknown flag %q in %s", ErrInvalidRegExp, f, s)
			}
		}

		if inline.Len() > 0 {
			pattern = "(?" + inline.String() + ")" + pattern
		}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegExp, err)
	}

	return re, nil
}

// FormatRegExp renders re as "/pattern/flags", lifting a leading inline flag
// group back into trailing flags.
func FormatRegExp(re *regexp.Regexp) string {
	src := re.String()
	flags := ""

	if m := rxLeadFlag.FindStringSubmatch(src); m != nil {
		flags = m[1]
		src = src[len(m[0]):]
	}

	return "/" + src + "/" + flags
}
