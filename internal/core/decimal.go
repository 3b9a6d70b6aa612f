package core

// decimal.go decodes locale-formatted numbers from the solver log.
//
// The solver writes numbers through the host locale, so the decimal mark
// depends on the machine that produced the file:
//   - "12,5" on a Spanish or German machine
//   - "12.5" on an English one, or wherever the C locale was in effect
//   - "1.234,5" / "1,234.5" when digit grouping is switched on
//
// The convention is always passed in explicitly. Nothing in this file reads or
// changes process-wide locale state.

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// numericRegex validates a number after group separators are removed and the
// decimal mark is rewritten to '.'. Exponents, NaN and Inf are not accepted.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// localeProbe is formatted through CLDR data to discover a locale's separators.
// It needs at least two digit groups and a fractional part.
const localeProbe = 1234567.5

// DecimalConvention describes how a source file writes numbers.
type DecimalConvention struct {
	Decimal rune // Fractional separator
	Group   rune // Thousands separator, 0 if the source never groups digits
}

// Common conventions.
var (
	CommaDecimal  = DecimalConvention{Decimal: ',', Group: '.'}
	PeriodDecimal = DecimalConvention{Decimal: '.', Group: ','}
)

func (c DecimalConvention) String() string {
	if c.Group == 0 {
		return fmt.Sprintf("decimal %q", c.Decimal)
	}
	return fmt.Sprintf("decimal %q, group %q", c.Decimal, c.Group)
}

// Validate checks that the separators can be told apart from digits, signs
// and each other.
func (c DecimalConvention) Validate() error {
	if c.Decimal == 0 {
		return errors.New("decimal separator is not set")
	}
	if c.Decimal == c.Group {
		return fmt.Errorf("decimal and group separators are both %q", c.Decimal)
	}
	for _, r := range []rune{c.Decimal, c.Group} {
		if r == 0 {
			continue
		}
		if unicode.IsDigit(r) || r == '+' || r == '-' || r == utf8.RuneError {
			return fmt.Errorf("invalid separator %q", r)
		}
	}
	return nil
}

func (c DecimalConvention) isGroup(r rune) bool {
	if c.Group == 0 {
		return false
	}
	if r == c.Group {
		return true
	}
	// Locales that group with a space (fr, ru, ...) use NBSP or NNBSP in CLDR,
	// while hand-edited files tend to use a plain space.
	return unicode.Is(unicode.Zs, c.Group) && unicode.Is(unicode.Zs, r)
}

// ConventionForLocale derives the decimal convention of a locale from CLDR data.
func ConventionForLocale(tag language.Tag) (DecimalConvention, error) {
	probe := message.NewPrinter(tag).Sprintf("%.1f", localeProbe)

	var seps []rune
	for _, r := range probe {
		if !unicode.IsDigit(r) {
			seps = append(seps, r)
		}
	}
	if len(seps) == 0 {
		return DecimalConvention{}, fmt.Errorf("locale %s: no decimal separator in %q", tag, probe)
	}

	conv := DecimalConvention{Decimal: seps[len(seps)-1]}
	if len(seps) > 1 {
		conv.Group = seps[0]
	}
	if err := conv.Validate(); err != nil {
		return DecimalConvention{}, fmt.Errorf("locale %s: %w", tag, err)
	}
	return conv, nil
}

// ParseDecimalConvention resolves a configuration value: "comma", "period"
// (or "dot"), or a BCP 47 locale tag such as "es" or "en-US".
func ParseDecimalConvention(s string) (DecimalConvention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DecimalConvention{}, errors.New("decimal convention is empty")
	case "comma", ",":
		return CommaDecimal, nil
	case "period", "dot", "point", ".":
		return PeriodDecimal, nil
	}

	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return DecimalConvention{}, fmt.Errorf("unknown decimal convention %q: %w", s, err)
	}
	return ConventionForLocale(tag)
}

// ParseNumber converts a locale-formatted number to float64.
func ParseNumber(s string, conv DecimalConvention) (float64, error) {
	n, err := ToNumeric(s, conv)
	if err != nil {
		return 0, err
	}
	f, err := n.Float64Value()
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidNumber, s, err)
	}
	return f.Float64, nil
}

// ToNumeric converts a locale-formatted number to an exact pgtype.Numeric.
func ToNumeric(s string, conv DecimalConvention) (pgtype.Numeric, error) {
	normalized, err := normalizeNumber(s, conv)
	if err != nil {
		return pgtype.Numeric{}, err
	}

	var n pgtype.Numeric
	if err := n.Scan(normalized); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

// normalizeNumber rewrites a number into the canonical form [+-]digits[.digits].
func normalizeNumber(raw string, conv DecimalConvention) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidNumber)
	}

	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign, s = s[:1], s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, string(conv.Decimal))
	if hasFrac && strings.ContainsRune(fracPart, conv.Decimal) {
		return "", fmt.Errorf("%w: %q has more than one decimal mark", ErrInvalidNumber, raw)
	}
	if strings.ContainsFunc(fracPart, conv.isGroup) {
		return "", fmt.Errorf("%w: %q has a group separator after the decimal mark", ErrInvalidNumber, raw)
	}

	digits, err := ungroup(intPart, conv)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidNumber, raw, err)
	}

	out := sign + digits
	if hasFrac {
		out += "." + fracPart
	}
	if !numericRegex.MatchString(out) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, raw)
	}
	return out, nil
}

// ungroup strips group separators from the integer part. Grouping is optional,
// but when present the first group holds 1-3 digits and every later group
// exactly 3, so "12.5" under a comma convention fails instead of reading 125.
func ungroup(s string, conv DecimalConvention) (string, error) {
	if !strings.ContainsFunc(s, conv.isGroup) {
		return s, nil
	}

	var groups []string
	start := 0
	for i, r := range s {
		if conv.isGroup(r) {
			groups = append(groups, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	groups = append(groups, s[start:])

	for i, g := range groups {
		if i == 0 && (len(g) == 0 || len(g) > 3) {
			return "", errors.New("misplaced group separator")
		}
		if i > 0 && len(g) != 3 {
			return "", errors.New("misplaced group separator")
		}
	}
	return strings.Join(groups, ""), nil
}
