package core

// convert.go normalizes the messy reality of sheet cell values:
//   - numbers typed with Persian or Arabic-Indic digit glyphs
//   - thousands separators, currency marks and stray text around numbers
//   - loose boolean tokens (yes/y/on/1) in checkbox-style columns
//
// Numeric normalization returns a Number with Valid=false for empty or
// unparseable input, keeping "no value" distinct from zero.

import (
	"math"
	"strconv"
	"strings"
)

// foldDigits translates Persian (U+06F0-U+06F9) and Arabic-Indic
// (U+0660-U+0669) digit glyphs to their ASCII equivalents.
func foldDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		default:
			return r
		}
	}, s)
}

// ParseNumber normalizes numeric cell text. Digit glyphs are folded to
// ASCII, every rune that is not a digit, '.' or '-' is stripped, and the
// remainder is parsed as a decimal number. Empty or unparseable text
// yields an absent Number, not zero and not an error.
func ParseNumber(s string) Number {
	s = foldDigits(s)

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return Number{}
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Number{}
	}
	return Number{Value: f, Valid: true}
}

// NormalizeNumber accepts the value shapes a JSON payload can carry for a
// numeric field. Native numbers pass through unless non-finite; text goes
// through ParseNumber; anything else is absent.
func NormalizeNumber(v any) Number {
	switch x := v.(type) {
	case nil:
		return Number{}
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return Number{}
		}
		return Number{Value: x, Valid: true}
	case int:
		return Number{Value: float64(x), Valid: true}
	case string:
		return ParseNumber(x)
	default:
		return Number{}
	}
}

// trueTokens is the set of text values the boolean parser accepts as true.
var trueTokens = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"y":    true,
	"on":   true,
}

// ParseBool tests trimmed, lower-cased text against the accepted token
// set. Anything outside the set, including empty text, is false.
func ParseBool(s string) bool {
	return trueTokens[strings.ToLower(strings.TrimSpace(s))]
}

// NormalizeBool passes a native bool through and sends everything else
// through ParseBool.
func NormalizeBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return ParseBool(x)
	case float64:
		return x == 1
	default:
		return false
	}
}

// formatNumber renders a normalized number back into cell text. Integral
// values are written without a decimal part.
func formatNumber(n Number) string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}
