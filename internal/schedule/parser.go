package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSpec parses a cron time specification back into a Schedule. It
// accepts exactly the grammar Spec emits plus the standard aliases, so a
// serialized schedule round-trips.
func ParseSpec(spec string) (Schedule, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Schedule{}, fmt.Errorf("empty time specification")
	}

	var fields []string
	if strings.HasPrefix(spec, "@") {
		if strings.EqualFold(spec, "@reboot") {
			return Schedule{Reboot: true}, nil
		}
		aliased, ok := aliasFields(spec)
		if !ok {
			return Schedule{}, fmt.Errorf("unknown alias %q", spec)
		}
		fields = aliased
	} else {
		fields = strings.Fields(spec)
		if len(fields) != 5 {
			return Schedule{}, fmt.Errorf("expected 5 fields, got %d", len(fields))
		}
	}

	var s Schedule
	var err error
	if s.Minute, err = parseField(fields[0], MinMinute, MaxMinute); err != nil {
		return Schedule{}, fmt.Errorf("minute: %w", err)
	}
	if s.Hour, err = parseField(fields[1], MinHour, MaxHour); err != nil {
		return Schedule{}, fmt.Errorf("hour: %w", err)
	}
	if s.DayOfMonth, err = parseField(fields[2], MinDayOfMonth, MaxDayOfMonth); err != nil {
		return Schedule{}, fmt.Errorf("day of month: %w", err)
	}
	if s.Month, err = parseField(fields[3], MinMonth, MaxMonth); err != nil {
		return Schedule{}, fmt.Errorf("month: %w", err)
	}
	if s.DayOfWeek, err = parseField(fields[4], MinDayOfWeek, MaxDayOfWeek); err != nil {
		return Schedule{}, fmt.Errorf("day of week: %w", err)
	}
	return s, nil
}

// parseField parses a single cron field within the given bounds.
func parseField(raw string, min, max int) (Field, error) {
	if raw == "*" {
		return Any(), nil
	}

	// Step notation (*/N)
	if rest, ok := strings.CutPrefix(raw, "*/"); ok {
		step, err := strconv.Atoi(rest)
		if err != nil || step < 1 || step > max {
			return Field{}, fmt.Errorf("invalid step %q", raw)
		}
		return Every(step), nil
	}

	// Range (N-M); wrap-around ranges are never emitted, so lo < hi
	if strings.Contains(raw, "-") {
		parts := strings.SplitN(raw, "-", 2)
		lo, err1 := strconv.Atoi(parts[0])
		hi, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return Field{}, fmt.Errorf("invalid range %q", raw)
		}
		if lo < min || hi > max || lo >= hi {
			return Field{}, fmt.Errorf("range %q out of bounds %d-%d", raw, min, max)
		}
		return During(lo, hi), nil
	}

	// List (N,M,O) or single value
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Field{}, fmt.Errorf("invalid value %q", p)
		}
		if v < min || v > max {
			return Field{}, fmt.Errorf("value %d out of bounds %d-%d", v, min, max)
		}
		values = append(values, v)
	}
	return On(values...), nil
}

// aliasFields converts cron aliases to their field representation.
func aliasFields(alias string) ([]string, bool) {
	switch strings.ToLower(alias) {
	case "@yearly", "@annually":
		return []string{"0", "0", "1", "1", "*"}, true
	case "@monthly":
		return []string{"0", "0", "1", "*", "*"}, true
	case "@weekly":
		return []string{"0", "0", "*", "*", "0"}, true
	case "@daily", "@midnight":
		return []string{"0", "0", "*", "*", "*"}, true
	case "@hourly":
		return []string{"0", "*", "*", "*", "*"}, true
	default:
		return nil, false
	}
}
