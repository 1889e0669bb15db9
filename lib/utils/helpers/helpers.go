package helpers

import (
	"context"
	"strconv"
	"strings"
	"time"
)

func IsContextDone(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	select {
	case <-ctx.Done():
		return true
	default:
	}
	return false
}

// форматы дат, которые встречаются в записях вакансий
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02.01.2006",
}

// ParseDate разбирает дату в одном из известных форматов.
// Даты без смещения трактуются в часовом поясе loc, даты со смещением переводятся в loc
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t.In(loc), true
		}
	}
	return time.Time{}, false
}

// ParseClock разбирает время суток в формате HH:MM
func ParseClock(value string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// FormatDisplayDate дата для вывода пользователю, пустая строка если дату не удалось разобрать
func FormatDisplayDate(value string, loc *time.Location) string {
	t, ok := ParseDate(value, loc)
	if !ok {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
