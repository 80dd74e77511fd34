package history

import (
	"strings"
	"time"

	"github.com/freqcli/freq/internal/errors"
)

const dateLayout = "2006-01-02"

// relativePeriods maps relative keywords to their lookback duration.
var relativePeriods = map[string]time.Duration{
	"1h":    time.Hour,
	"hour":  time.Hour,
	"24h":   24 * time.Hour,
	"day":   24 * time.Hour,
	"week":  7 * 24 * time.Hour,
	"7d":    7 * 24 * time.Hour,
	"month": 30 * 24 * time.Hour,
	"30d":   30 * 24 * time.Hour,
	"year":  365 * 24 * time.Hour,
	"365d":  365 * 24 * time.Hour,
}

// periodNames maps expressions to display names for report headers.
var periodNames = map[string]string{
	"1h": "last hour", "hour": "last hour",
	"24h": "last 24 hours", "day": "last 24 hours",
	"today": "today",
	"week":  "last week", "7d": "last week",
	"month": "last month", "30d": "last month",
	"year": "last year", "365d": "last year",
}

// ParseRangeExpression translates a date-filter expression into a DateRange
// anchored at now. Relative keywords (1h, 24h, day, today, week, 7d, month,
// 30d, year, 365d) produce an open-ended range starting in the past; "today"
// anchors to local midnight. Absolute forms accept a single YYYY-MM-DD date
// (a one-day window) or a YYYY-MM-DD:YYYY-MM-DD range inclusive of the full
// end day.
//
// An unparseable expression is a user-facing validation error wrapping
// ErrInvalid, never a panic.
func ParseRangeExpression(expr string, now time.Time) (DateRange, error) {
	if d, ok := relativePeriods[expr]; ok {
		return DateRange{Start: now.Add(-d).Unix()}, nil
	}

	if expr == "today" {
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return DateRange{Start: midnight.Unix()}, nil
	}

	if strings.Contains(expr, ":") {
		parts := strings.SplitN(expr, ":", 2)
		start, err := time.ParseInLocation(dateLayout, parts[0], now.Location())
		if err != nil {
			return DateRange{}, &errors.ExprError{Expr: expr, Err: errors.ErrInvalid}
		}
		end, err := time.ParseInLocation(dateLayout, parts[1], now.Location())
		if err != nil {
			return DateRange{}, &errors.ExprError{Expr: expr, Err: errors.ErrInvalid}
		}
		// End bound covers the whole final day.
		return DateRange{Start: start.Unix(), End: end.AddDate(0, 0, 1).Unix()}, nil
	}

	day, err := time.ParseInLocation(dateLayout, expr, now.Location())
	if err != nil {
		return DateRange{}, &errors.ExprError{Expr: expr, Err: errors.ErrInvalid}
	}
	return DateRange{Start: day.Unix(), End: day.AddDate(0, 0, 1).Unix()}, nil
}

// PeriodName returns a display name for a date-filter expression, such as
// "last week" for "7d". Absolute expressions are described literally.
func PeriodName(expr string) string {
	if name, ok := periodNames[expr]; ok {
		return name
	}
	return "date range " + expr
}
