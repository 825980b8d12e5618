package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// CalendarDateLayout - формат обмена датами (ISO-8601, без времени и зоны)
const CalendarDateLayout = "2006-01-02"

// CalendarDate - календарный день. Время суток и часовой пояс отброшены,
// поэтому сравнение идет строго по дням.
type CalendarDate struct {
	t time.Time
}

// NewCalendarDate строит дату из компонентов. Переполнение нормализуется как в time.Date.
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// CalendarDateFromTime берет из t только год, месяц и день (в зоне самого t).
func CalendarDateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return NewCalendarDate(y, m, d)
}

// ParseCalendarDate разбирает строку вида YYYY-MM-DD.
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return CalendarDate{t: t}, nil
}

// MustParseCalendarDate - для констант и тестов.
func MustParseCalendarDate(s string) CalendarDate {
	d, err := ParseCalendarDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d CalendarDate) IsZero() bool { return d.t.IsZero() }

// Time возвращает полночь этого дня в UTC.
func (d CalendarDate) Time() time.Time { return d.t }

func (d CalendarDate) String() string { return d.t.Format(CalendarDateLayout) }

func (d CalendarDate) Before(other CalendarDate) bool { return d.t.Before(other.t) }

func (d CalendarDate) After(other CalendarDate) bool { return d.t.After(other.t) }

func (d CalendarDate) Equal(other CalendarDate) bool { return d.t.Equal(other.t) }

// Compare возвращает -1, 0 или +1.
func (d CalendarDate) Compare(other CalendarDate) int { return d.t.Compare(other.t) }

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("calendar date must be a string: %w", err)
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
