package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardView - представление объявления для карточки в списке.
type CardView struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Location     string
	Price        float64
	Bedrooms     *int
	Bathrooms    *int
	PrimaryImage *string
	OtherImages  []string

	AvailableFrom  CalendarDate
	AvailableUntil *CalendarDate
	CreatedAt      time.Time
}

// NewCardView отделяет первое изображение от остальных, прочие поля копирует как есть.
func NewCardView(l Listing) CardView {
	card := CardView{
		ID:             l.ID,
		Title:          l.Title,
		Description:    l.Description,
		Location:       l.Location,
		Price:          l.Price,
		Bedrooms:       l.Bedrooms,
		Bathrooms:      l.Bathrooms,
		OtherImages:    []string{},
		AvailableFrom:  l.AvailableFrom,
		AvailableUntil: l.AvailableUntil,
		CreatedAt:      l.CreatedAt,
	}
	if len(l.ImageURLs) > 0 {
		primary := l.ImageURLs[0]
		card.PrimaryImage = &primary
		card.OtherImages = append(card.OtherImages, l.ImageURLs[1:]...)
	}
	return card
}

func NewCardViews(listings []Listing) []CardView {
	cards := make([]CardView, len(listings))
	for i, l := range listings {
		cards[i] = NewCardView(l)
	}
	return cards
}

// NewSearchResult собирает результат поиска из отфильтрованных объявлений.
func NewSearchResult(listings []Listing) *SearchResult {
	cards := NewCardViews(listings)
	return &SearchResult{Cards: cards, Count: len(cards)}
}
