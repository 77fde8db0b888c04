package conf

import (
	"strconv"
	"strings"

	"pmlogd/internal/syslogcode"
)

// ParseInt parses a base-prefix-aware integer ("123", "0x1f", "0755").
// The whole string must be numeric; trailing characters or an empty string
// fail.
func ParseInt(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseSize parses an integer with an optional case-insensitive K/KB
// (x1024) or M/MB (x1048576) suffix.
//
// The K/KB trim runs before the M/MB trim, and both run: a value carrying
// both patterns resolves by stripping K first and then M from what remains.
func ParseSize(s string) (int64, bool) {
	multiplier := int64(1)

	if trimmed, ok := trimSuffixFold(s, "K"); ok {
		s, multiplier = trimmed, 1024
	} else if trimmed, ok := trimSuffixFold(s, "KB"); ok {
		s, multiplier = trimmed, 1024
	}

	if trimmed, ok := trimSuffixFold(s, "M"); ok {
		s, multiplier = trimmed, 1024*1024
	} else if trimmed, ok := trimSuffixFold(s, "MB"); ok {
		s, multiplier = trimmed, 1024*1024
	}

	n, ok := ParseInt(s)
	if !ok {
		return 0, false
	}
	return n * multiplier, true
}

// trimSuffixFold strips suffix case-insensitively and reports whether it was
// present.
func trimSuffixFold(s, suffix string) (string, bool) {
	if len(s) < len(suffix) {
		return s, false
	}
	tail := s[len(s)-len(suffix):]
	if !strings.EqualFold(tail, suffix) {
		return s, false
	}
	return s[:len(s)-len(suffix)], true
}

// ParseKeyValue splits "KEY=VALUE" at the first '='. The key may not be
// empty; the value may be. Either half exceeding its length bound fails.
func ParseKeyValue(s string, maxKeyLen, maxValueLen int) (key, value string, ok bool) {
	sep := strings.IndexByte(s, '=')
	if sep <= 0 {
		return "", "", false
	}
	key, value = s[:sep], s[sep+1:]
	if len(key) > maxKeyLen || len(value) > maxValueLen {
		return "", "", false
	}
	return key, value, true
}

// ParseRuleLevel resolves a severity token inside a filter expression.
// "*" is the any-level wildcard (-1); otherwise the severity vocabulary
// applies.
func ParseRuleLevel(s string) (int, bool) {
	if s == "*" {
		return syslogcode.LevelNone, true
	}
	return syslogcode.Level(s)
}

// ParseRuleFacility resolves a facility token inside a filter expression.
// "*" is the any-facility wildcard (-1); otherwise the facility vocabulary
// applies.
func ParseRuleFacility(s string) (int, bool) {
	if s == "*" {
		return syslogcode.FacilityAny, true
	}
	return syslogcode.Facility(s)
}

// ParseFlushLevel resolves a context FlushLevel value. "none" disables the
// threshold (-1); otherwise the severity vocabulary applies.
func ParseFlushLevel(s string) (int, bool) {
	return syslogcode.Level(s)
}

// tokenScanner walks a filter expression token by token. Tokens run up to
// the next '.' or ','; end of string is reported as separator 0 and is a
// legal terminator for any token.
type tokenScanner struct {
	rest string
}

// next consumes one token and its trailing separator.
func (s *tokenScanner) next() (token string, sep byte) {
	for i := 0; i < len(s.rest); i++ {
		if c := s.rest[i]; c == '.' || c == ',' {
			token = s.rest[:i]
			s.rest = s.rest[i+1:]
			return token, c
		}
	}
	token = s.rest
	s.rest = ""
	return token, 0
}

// consume eats a single leading byte if present ('!' before a level token,
// '-' before an output token).
func (s *tokenScanner) consume(c byte) bool {
	if len(s.rest) > 0 && s.rest[0] == c {
		s.rest = s.rest[1:]
		return true
	}
	return false
}
