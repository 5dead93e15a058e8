// Package daterange resolves named filter presets into inclusive
// calendar-day ranges. All values are day-granular and carried as UTC
// midnights, so comparisons never depend on the time of day.
package daterange

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the storage and wire format of every date field.
const DayLayout = "2006-01-02"

type Preset string

const (
	PresetAll          Preset = "All"
	PresetToday        Preset = "Today"
	PresetYesterday    Preset = "Yesterday"
	PresetLast7Days    Preset = "Last 7 Days"
	PresetLast1Month   Preset = "Last 1 Month"
	PresetLast3Months  Preset = "Last 3 Months"
	PresetLast6Months  Preset = "Last 6 Months"
	PresetLast9Months  Preset = "Last 9 Months"
	PresetLast1Year    Preset = "Last 1 Year"
	PresetSpecificDate Preset = "Specific Date"
)

var presetsByName = func() map[string]Preset {
	m := map[string]Preset{
		// Short names used by the dashboard selectors.
		"all":       PresetAll,
		"today":     PresetToday,
		"yesterday": PresetYesterday,
		"week":      PresetLast7Days,
		"month":     PresetLast1Month,
		"year":      PresetLast1Year,
		"date":      PresetSpecificDate,
	}
	for _, p := range []Preset{
		PresetAll, PresetToday, PresetYesterday, PresetLast7Days,
		PresetLast1Month, PresetLast3Months, PresetLast6Months,
		PresetLast9Months, PresetLast1Year, PresetSpecificDate,
	} {
		m[strings.ToLower(string(p))] = p
	}
	return m
}()

// ParsePreset looks a preset up by its label or short name, ignoring case.
// Unknown names resolve to PresetAll.
func ParsePreset(name string) Preset {
	p, ok := presetsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PresetAll
	}
	return p
}

type MalformedDateError struct {
	Value string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q", e.Value)
}

// TruncateDate drops any time-of-day or offset suffix, keeping the
// YYYY-MM-DD portion of s.
func TruncateDate(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "T "); i >= 0 {
		return s[:i]
	}
	return s
}

// ParseDay parses a calendar date, ignoring any time suffix.
// It returns a *MalformedDateError when s is not a date.
func ParseDay(s string) (time.Time, error) {
	day, err := time.Parse(DayLayout, TruncateDate(s))
	if err != nil {
		return time.Time{}, &MalformedDateError{Value: s}
	}
	return day, nil
}

// Day returns the calendar day of t, as observed in t's location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SubtractMonths moves day back by n months. When the day of month does
// not exist in the target month it clamps to that month's last day, so
// March 31 minus one month is the last day of February.
func SubtractMonths(day time.Time, n int) time.Time {
	y, m, d := day.Date()
	first := time.Date(y, m-time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, time.UTC)
}

// Range is an inclusive span of calendar days. An Unbounded range
// restricts nothing.
type Range struct {
	Start     time.Time
	End       time.Time
	Unbounded bool
}

func Unrestricted() Range {
	return Range{Unbounded: true}
}

func Between(start, end time.Time) Range {
	return Range{Start: Day(start), End: Day(end)}
}

// Contains reports whether t falls in [Start, End+1 day).
func (r Range) Contains(t time.Time) bool {
	if r.Unbounded {
		return true
	}
	return !t.Before(r.Start) && t.Before(r.End.AddDate(0, 0, 1))
}

// Bounds returns the range limits in DayLayout, or empty strings for an
// unbounded range.
func (r Range) Bounds() (start, end string) {
	if r.Unbounded {
		return "", ""
	}
	return r.Start.Format(DayLayout), r.End.Format(DayLayout)
}

func (r Range) String() string {
	if r.Unbounded {
		return "all"
	}
	start, end := r.Bounds()
	return start + ".." + end
}

// Resolve turns a preset into a concrete range relative to today. custom
// is only consulted by PresetSpecificDate; when it is empty or malformed
// the range falls back to today.
func Resolve(preset Preset, custom string, today time.Time) Range {
	t := Day(today)

	switch preset {
	case PresetToday:
		return Between(t, t)
	case PresetYesterday:
		y := t.AddDate(0, 0, -1)
		return Between(y, y)
	case PresetLast7Days:
		return Between(t.AddDate(0, 0, -6), t)
	case PresetLast1Month:
		return Between(SubtractMonths(t, 1), t)
	case PresetLast3Months:
		return Between(SubtractMonths(t, 3), t)
	case PresetLast6Months:
		return Between(SubtractMonths(t, 6), t)
	case PresetLast9Months:
		return Between(SubtractMonths(t, 9), t)
	case PresetLast1Year:
		return Between(SubtractMonths(t, 12), t)
	case PresetSpecificDate:
		if custom != "" {
			if d, err := ParseDay(custom); err == nil {
				return Between(d, d)
			}
		}
		return Between(t, t)
	default:
		return Unrestricted()
	}
}
