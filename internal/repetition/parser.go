package repetition

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/linostar/supercron/internal/schedule"
)

var (
	// ErrInvalidSentence is returned when no recognizer contributes any
	// field, i.e. the sentence describes no schedule at all.
	ErrInvalidSentence = errors.New("invalid repetition sentence")

	// ErrFieldOutOfRange is returned when a recognizer matches but its
	// captured number is outside the accepted range.
	ErrFieldOutOfRange = errors.New("value out of range")

	// ErrConflict is returned when two recognizers contribute different
	// values for the same field.
	ErrConflict = errors.New("conflicting repetition clauses")
)

const (
	dayWords   = "monday|tuesday|wednesday|thursday|friday|saturday|sunday"
	monthWords = "january|february|march|april|may|june|july|august|september|october|november|december"
)

var (
	rebootRegex      = regexp.MustCompile(`(at|every)\s+(boot|reboot)`)
	everyMinuteRegex = regexp.MustCompile(`(once\s+)?every\s+(\d+\s+)?minute(s)?`)
	everyHourRegex   = regexp.MustCompile(`(once\s+)?every\s+(\d+\s+)?hour(s)?`)
	everyDayRegex    = regexp.MustCompile(`(once\s+)?every\s+(\d+\s+)?day(s)?`)
	everyMonthRegex  = regexp.MustCompile(`(once\s+)?every\s+(\d+\s+)?month(s)?`)
	everydayRegex    = regexp.MustCompile(`\b(everyday|anyday)\b`)
	midnightRegex    = regexp.MustCompile(`(at\s*)?\bmidnight\b`)
	clockRegex       = regexp.MustCompile(`(on|at\s*)?\b(\d{1,2}):(\d{1,2})\b(\s*(am|pm))?`)
	dayMonthRegex    = regexp.MustCompile(`(on\s*)?\b(\d{1,2})[/-](\d{1,2})\b`)
	weekdayRegex     = regexp.MustCompile(`on\s+(` + dayWords + `)s?`)
	weekdaySpanRegex = regexp.MustCompile(`from\s+(` + dayWords + `)\s+to\s+(` + dayWords + `)`)
	monthRegex       = regexp.MustCompile(`[oi]n\s+(` + monthWords + `)`)
	monthSpanRegex   = regexp.MustCompile(`from\s+(` + monthWords + `)\s+to\s+(` + monthWords + `)`)
)

// Parser converts repetition sentences into schedules. Fields a sentence
// leaves open default to the clock's current minute and hour so that
// phrases like "every wednesday" fire at a deterministic instant.
type Parser struct {
	now func() time.Time
}

// NewParser returns a parser defaulting against the wall clock.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserAt returns a parser defaulting against the given clock. Tests
// use this to pin the current minute and hour.
func NewParserAt(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// partial accumulates recognizer contributions. A nil slot means no
// recognizer spoke for that field.
type partial struct {
	reboot      bool
	minute      *schedule.Field
	hour        *schedule.Field
	dayOfMonth  *schedule.Field
	month       *schedule.Field
	dayOfWeek   *schedule.Field
	minuteEvery bool
}

func (p *partial) empty() bool {
	return !p.reboot && p.minute == nil && p.hour == nil &&
		p.dayOfMonth == nil && p.month == nil && p.dayOfWeek == nil
}

// contribute merges a recognizer's value for one field. Two recognizers may
// agree on a field, but disjoint contributions are an error.
func contribute(slot **schedule.Field, f schedule.Field, what string) error {
	if *slot != nil && !(*slot).Equal(f) {
		return fmt.Errorf("%w: %s is set more than once", ErrConflict, what)
	}
	*slot = &f
	return nil
}

// Parse runs every recognizer over the normalized sentence, merges their
// contributions and fills the remaining minute/hour defaults.
func (p *Parser) Parse(sentence string) (schedule.Schedule, error) {
	s := Normalize(sentence)
	var pt partial
	for _, recognize := range recognizers {
		if err := recognize(s, &pt); err != nil {
			return schedule.Schedule{}, err
		}
	}

	// Reboot is exclusive: any other contribution is subsumed by it.
	if pt.reboot {
		return schedule.Schedule{Reboot: true}, nil
	}
	if pt.empty() {
		return schedule.Schedule{}, fmt.Errorf("%w: %q", ErrInvalidSentence, sentence)
	}

	now := p.now()
	if pt.minute == nil {
		f := schedule.On(now.Minute())
		pt.minute = &f
	}
	if pt.hour == nil && !pt.minuteEvery {
		f := schedule.On(now.Hour())
		pt.hour = &f
	}

	return schedule.Schedule{
		Minute:     deref(pt.minute),
		Hour:       deref(pt.hour),
		DayOfMonth: deref(pt.dayOfMonth),
		Month:      deref(pt.month),
		DayOfWeek:  deref(pt.dayOfWeek),
	}, nil
}

func deref(f *schedule.Field) schedule.Field {
	if f == nil {
		return schedule.Any()
	}
	return *f
}

// recognizers run in a fixed order, but each is independent: order only
// matters for which conflict is reported first.
var recognizers = []func(string, *partial) error{
	recognizeReboot,
	recognizeEveryMinutes,
	recognizeEveryHours,
	recognizeEveryDays,
	recognizeEveryMonths,
	recognizeEveryday,
	recognizeMidnight,
	recognizeClock,
	recognizeDayMonth,
	recognizeWeekdays,
	recognizeWeekdaySpan,
	recognizeMonths,
	recognizeMonthSpan,
}

func recognizeReboot(s string, pt *partial) error {
	if rebootRegex.MatchString(s) {
		pt.reboot = true
	}
	return nil
}

// everyN extracts the optional N from an "every N <unit>" match. A missing
// N means 1.
func everyN(m []string, max int, unit string) (int, error) {
	if m[2] == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(m[2]))
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("%w: expected 1-%d for %s", ErrFieldOutOfRange, max, unit)
	}
	return n, nil
}

func recognizeEveryMinutes(s string, pt *partial) error {
	m := everyMinuteRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := everyN(m, 59, "minutes")
	if err != nil {
		return err
	}
	pt.minuteEvery = true
	return contribute(&pt.minute, schedule.Every(n), "minute")
}

func recognizeEveryHours(s string, pt *partial) error {
	m := everyHourRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := everyN(m, 23, "hours")
	if err != nil {
		return err
	}
	return contribute(&pt.hour, schedule.Every(n), "hour")
}

func recognizeEveryDays(s string, pt *partial) error {
	m := everyDayRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := everyN(m, 460, "days")
	if err != nil {
		return err
	}
	return contribute(&pt.dayOfMonth, schedule.Every(n), "day of month")
}

func recognizeEveryMonths(s string, pt *partial) error {
	m := everyMonthRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := everyN(m, 12, "months")
	if err != nil {
		return err
	}
	return contribute(&pt.month, schedule.Every(n), "month")
}

func recognizeEveryday(s string, pt *partial) error {
	if !everydayRegex.MatchString(s) {
		return nil
	}
	return contribute(&pt.dayOfMonth, schedule.Every(1), "day of month")
}

func recognizeMidnight(s string, pt *partial) error {
	if !midnightRegex.MatchString(s) {
		return nil
	}
	if err := contribute(&pt.minute, schedule.On(0), "minute"); err != nil {
		return err
	}
	return contribute(&pt.hour, schedule.On(0), "hour")
}

func recognizeClock(s string, pt *partial) error {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	hour, _ := strconv.Atoi(m[2])
	minute, _ := strconv.Atoi(m[3])
	if m[4] != "" {
		if m[5] == "pm" {
			if hour != 12 {
				hour += 12
			}
		} else if hour == 12 {
			hour = 0
		}
	}
	if hour >= 24 || minute >= 59 {
		return fmt.Errorf("%w: invalid value for hour and/or minute", ErrFieldOutOfRange)
	}
	if err := contribute(&pt.minute, schedule.On(minute), "minute"); err != nil {
		return err
	}
	return contribute(&pt.hour, schedule.On(hour), "hour")
}

func recognizeDayMonth(s string, pt *partial) error {
	m := dayMonthRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	day, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: expected 1-12 for month", ErrFieldOutOfRange)
	}
	if day < 1 || day > daysInMonth(month) {
		return fmt.Errorf("%w: expected 1-%d for day", ErrFieldOutOfRange, daysInMonth(month))
	}
	if err := contribute(&pt.dayOfMonth, schedule.On(day), "day of month"); err != nil {
		return err
	}
	return contribute(&pt.month, schedule.On(month), "month")
}

func daysInMonth(month int) int {
	switch month {
	case 2:
		return 29
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func recognizeWeekdays(s string, pt *partial) error {
	// Rewrite connectives so a single pattern enumerates the days.
	s = strings.ReplaceAll(s, " and ", " on ")
	s = strings.ReplaceAll(s, ",and ", " on ")
	s = strings.ReplaceAll(s, ",", " on ")
	var days []int
	for _, m := range weekdayRegex.FindAllStringSubmatch(s, -1) {
		days = append(days, weekdays[m[1]])
	}
	if len(days) == 0 {
		return nil
	}
	return contribute(&pt.dayOfWeek, schedule.On(days...), "day of week")
}

func recognizeWeekdaySpan(s string, pt *partial) error {
	m := weekdaySpanRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	from, to := weekdays[m[1]], weekdays[m[2]]
	if from < to {
		return contribute(&pt.dayOfWeek, schedule.During(from, to), "day of week")
	}
	// Wrap-around span, expanded to the explicit set walking modulo 7.
	days := []int{}
	for i := from; i != to; i = (i + 1) % 7 {
		days = append(days, i)
	}
	days = append(days, to)
	return contribute(&pt.dayOfWeek, schedule.On(days...), "day of week")
}

func recognizeMonths(s string, pt *partial) error {
	s = strings.ReplaceAll(s, " and ", " in ")
	s = strings.ReplaceAll(s, ",and ", " in ")
	s = strings.ReplaceAll(s, ",", "in ")
	var list []int
	for _, m := range monthRegex.FindAllStringSubmatch(s, -1) {
		list = append(list, months[m[1]])
	}
	if len(list) == 0 {
		return nil
	}
	return contribute(&pt.month, schedule.On(list...), "month")
}

func recognizeMonthSpan(s string, pt *partial) error {
	m := monthSpanRegex.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	from, to := months[m[1]], months[m[2]]
	if from < to {
		return contribute(&pt.month, schedule.During(from, to), "month")
	}
	// Wrap-around span, expanded walking the 1-based month cycle.
	list := []int{}
	for i := from; i != to; i = i%12 + 1 {
		list = append(list, i)
	}
	list = append(list, to)
	return contribute(&pt.month, schedule.On(list...), "month")
}
