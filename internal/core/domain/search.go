package domain

import (
	"fmt"
	"strings"
)

// SearchWindow - желаемый период проживания. Любая граница может отсутствовать,
// порядок From <= To не проверяется.
type SearchWindow struct {
	From *CalendarDate
	To   *CalendarDate
}

func (w SearchWindow) IsEmpty() bool { return w.From == nil && w.To == nil }

// ParseSearchWindow разбирает параметры from/to. Пустая строка означает отсутствие границы,
// нераспознанная дата - ErrMalformedWindow.
func ParseSearchWindow(from, to string) (SearchWindow, error) {
	var w SearchWindow
	if s := strings.TrimSpace(from); s != "" {
		d, err := ParseCalendarDate(s)
		if err != nil {
			return SearchWindow{}, fmt.Errorf("%w: from: %v", ErrMalformedWindow, err)
		}
		w.From = &d
	}
	if s := strings.TrimSpace(to); s != "" {
		d, err := ParseCalendarDate(s)
		if err != nil {
			return SearchWindow{}, fmt.Errorf("%w: to: %v", ErrMalformedWindow, err)
		}
		w.To = &d
	}
	return w, nil
}

// FilterMode выбирает семантику фильтра доступности.
type FilterMode string

const (
	// FilterModeSource - две независимые проверки, как в исходном приложении.
	FilterModeSource FilterMode = "source"
	// FilterModeCoverage - объявление должно покрывать весь запрошенный период.
	FilterModeCoverage FilterMode = "coverage"
)

func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterModeSource:
		return FilterModeSource, nil
	case FilterModeCoverage:
		return FilterModeCoverage, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFilterMode, s)
}

// IsAvailableFrom: from не задан, либо объявление доступно уже к этой дате.
func IsAvailableFrom(l Listing, w SearchWindow) bool {
	return w.From == nil || !l.AvailableFrom.After(*w.From)
}

// IsAvailableUntil: to не задан, либо у объявления есть дата окончания не раньше to.
// Бессрочное объявление при заданном to проверку не проходит.
func IsAvailableUntil(l Listing, w SearchWindow) bool {
	if w.To == nil {
		return true
	}
	return l.AvailableUntil != nil && !l.AvailableUntil.Before(*w.To)
}

// IsAvailable - предикат режима source. Начало объявления с to не сверяется:
// при пустом from объявление, начинающееся после to, проходит.
func IsAvailable(l Listing, w SearchWindow) bool {
	return IsAvailableFrom(l, w) && IsAvailableUntil(l, w)
}

// CoversWindow - предикат режима coverage. Объявление начинается не позже
// самой ранней границы окна и бессрочно или заканчивается не раньше самой поздней.
func CoversWindow(l Listing, w SearchWindow) bool {
	if w.From != nil && w.To != nil && w.To.Before(*w.From) {
		return false
	}
	start, end := w.Bounds()
	if start != nil && l.AvailableFrom.After(*start) {
		return false
	}
	if end != nil && l.AvailableUntil != nil && l.AvailableUntil.Before(*end) {
		return false
	}
	return true
}

// Bounds возвращает самую раннюю и самую позднюю границу окна.
// Если задана только одна граница, она же будет и второй.
func (w SearchWindow) Bounds() (start, end *CalendarDate) {
	start, end = w.From, w.To
	if start == nil {
		start = w.To
	}
	if end == nil {
		end = w.From
	}
	return start, end
}

// Matches применяет предикат выбранного режима.
func (m FilterMode) Matches(l Listing, w SearchWindow) bool {
	if m == FilterModeCoverage {
		return CoversWindow(l, w)
	}
	return IsAvailable(l, w)
}

// FilterAvailable возвращает подпоследовательность кандидатов, прошедших фильтр.
// Порядок сохраняется, входной срез не изменяется.
func FilterAvailable(candidates []Listing, w SearchWindow, mode FilterMode) []Listing {
	result := make([]Listing, 0, len(candidates))
	for _, l := range candidates {
		if mode.Matches(l, w) {
			result = append(result, l)
		}
	}
	return result
}

// SearchResult - ответ конвейера поиска для слоя отображения.
type SearchResult struct {
	Cards []CardView
	Count int
}
