package pure_utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/guregu/null/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Rendering of a metric that could not be computed.
const NullMetricPlaceholder = "—"

// ParseNullFloat reads a user supplied number. Blank input, "null" and the null placeholder
// are all read as a null value. NaN and infinities are rejected.
func ParseNullFloat(s string) (null.Float, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.EqualFold(trimmed, "null") || trimmed == NullMetricPlaceholder {
		return null.Float{}, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return null.Float{}, errors.Wrapf(err, "'%s' is not a number", s)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return null.Float{}, errors.Newf("'%s' is not a finite number", s)
	}
	return null.FloatFrom(value), nil
}

// FormatMetricValue renders a metric value with the grouping and decimal separators of the
// given language. Null values are rendered as NullMetricPlaceholder.
func FormatMetricValue(value null.Float, decimals int, tag language.Tag) string {
	if !value.Valid {
		return NullMetricPlaceholder
	}
	if decimals < 0 {
		decimals = 0
	}
	printer := message.NewPrinter(tag)
	return printer.Sprint(number.Decimal(
		value.Float64,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}
