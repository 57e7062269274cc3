// Package repetition converts free-form English repetition sentences like
// "every 2 hours on saturdays in april" into structured schedules.
package repetition

import (
	"regexp"
	"sort"
	"strings"
)

// weekdays maps full weekday names to cron day-of-week numbers (Sunday = 0).
var weekdays = map[string]int{
	"sunday":    0,
	"monday":    1,
	"tuesday":   2,
	"wednesday": 3,
	"thursday":  4,
	"friday":    5,
	"saturday":  6,
}

// months maps full month names to cron month numbers (January = 1).
var months = map[string]int{
	"january":   1,
	"february":  2,
	"march":     3,
	"april":     4,
	"may":       5,
	"june":      6,
	"july":      7,
	"august":    8,
	"september": 9,
	"october":   10,
	"november":  11,
	"december":  12,
}

// expansions maps three-letter abbreviations to full names ("fri" ->
// "friday", "oct" -> "october").
var expansions = buildExpansions()

var expandRegex = buildExpandRegex()

func buildExpansions() map[string]string {
	m := make(map[string]string, len(weekdays)+len(months))
	for name := range weekdays {
		m[name[:3]] = name
	}
	for name := range months {
		m[name[:3]] = name
	}
	return m
}

func buildExpandRegex() *regexp.Regexp {
	shorts := make([]string, 0, len(expansions))
	for short := range expansions {
		shorts = append(shorts, short)
	}
	sort.Strings(shorts)
	return regexp.MustCompile(`\b(` + strings.Join(shorts, "|") + `)\b`)
}

// Normalize lowercases a repetition sentence and expands three-letter
// weekday and month abbreviations to their full names. Only whole words are
// rewritten, so substrings of longer words are left alone.
func Normalize(sentence string) string {
	return expandRegex.ReplaceAllStringFunc(strings.ToLower(sentence), func(short string) string {
		return expansions[short]
	})
}
