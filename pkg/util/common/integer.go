package common

import (
	"regexp"
	"strconv"

	"github.com/ccoveille/go-safecast"
	"github.com/pkg/errors"
)

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// IsInteger reports whether s is an optional minus sign followed by one or more ASCII digits.
// The whole string must match, surrounding whitespace and a leading plus are rejected.
func IsInteger(s string) bool {
	return integerPattern.MatchString(s)
}

// ParseInteger parses s as a decimal int after checking it with IsInteger.
func ParseInteger(s string) (int, error) {
	if !IsInteger(s) {
		return 0, errors.Wrapf(ErrNotInteger, "%q", s)
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse integer %q", s)
	}
	i, err := safecast.ToInt(v)
	if err != nil {
		return 0, errors.Wrapf(err, "integer %q does not fit into int", s)
	}
	return i, nil
}
