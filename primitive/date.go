package primitive

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the textual form dates are serialized to.
const DateLayout = time.RFC3339Nano

// jsDateLayout matches JavaScript's Date#toString output, minus the trailing
// zone name in parentheses.
const jsDateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	jsDateLayout,
	time.RFC1123Z,
	time.RFC1123,
}

// ParseDate reads the textual date forms this package understands. The
// boolean is false when nothing matched.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, " ("); i > 0 && strings.HasSuffix(s, ")") {
		s = s[:i]
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func toDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		return ParseDate(x)
	}

	if f := ToNumber(v); !math.IsNaN(f) && !math.IsInf(f, 0) {
		if _, isBool := v.(bool); !isBool {
			return time.UnixMilli(int64(f)).UTC(), true
		}
	}

	return ParseDate(ToString(v))
}
