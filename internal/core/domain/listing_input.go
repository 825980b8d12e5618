package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxImages - больше фотографий форма не принимала.
const DefaultMaxImages = 10

// Пределы колонок listings: price numeric(10,2), bedrooms и bathrooms int4.
const (
	MaxPrice     = 99999999.99
	MaxRoomCount = math.MaxInt32
)

// ListingInput - данные формы создания или редактирования объявления.
type ListingInput struct {
	Title          string
	Description    string
	Location       string
	Price          float64
	Bedrooms       *int
	Bathrooms      *int
	ImageURLs      []string
	AvailableFrom  CalendarDate
	AvailableUntil *CalendarDate
}

// ListingRules - настраиваемые правила проверки при записи.
type ListingRules struct {
	// RequiredLocationTokens - подстроки, которые обязан содержать адрес.
	RequiredLocationTokens []string
	MaxImages              int
}

// Validate проверяет ввод. Все ошибки оборачивают ErrInvalidListing.
func (in ListingInput) Validate(rules ListingRules) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidListing)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidListing)
	}
	if in.Price > MaxPrice {
		return fmt.Errorf("%w: price must not exceed %.2f", ErrInvalidListing, MaxPrice)
	}
	if in.AvailableFrom.IsZero() {
		return fmt.Errorf("%w: available_from is required", ErrInvalidListing)
	}
	if in.AvailableUntil != nil && in.AvailableUntil.Before(in.AvailableFrom) {
		return fmt.Errorf("%w: available_until %s precedes available_from %s",
			ErrInvalidListing, in.AvailableUntil, in.AvailableFrom)
	}
	if err := validateRoomCount("bedrooms", in.Bedrooms); err != nil {
		return err
	}
	if err := validateRoomCount("bathrooms", in.Bathrooms); err != nil {
		return err
	}

	maxImages := rules.MaxImages
	if maxImages <= 0 {
		maxImages = DefaultMaxImages
	}
	if len(in.ImageURLs) > maxImages {
		return fmt.Errorf("%w: at most %d images allowed", ErrInvalidListing, maxImages)
	}

	for _, token := range rules.RequiredLocationTokens {
		if !strings.Contains(in.Location, token) {
			return fmt.Errorf("%w: location must contain %q", ErrInvalidListing, token)
		}
	}
	return nil
}

func validateRoomCount(field string, n *int) error {
	if n == nil {
		return nil
	}
	if *n < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidListing, field)
	}
	if *n > MaxRoomCount {
		return fmt.Errorf("%w: %s must not exceed %d", ErrInvalidListing, field, MaxRoomCount)
	}
	return nil
}

// NewListing создает объявление с новым идентификатором от имени владельца.
func (in ListingInput) NewListing(owner Identity, now time.Time) Listing {
	l := Listing{
		ID:        uuid.New(),
		OwnerID:   owner.UserID,
		CreatedAt: now,
	}
	in.ApplyTo(&l, now)
	return l
}

// ApplyTo переносит редактируемые поля; идентичность и владелец не меняются.
func (in ListingInput) ApplyTo(l *Listing, now time.Time) {
	l.Title = strings.TrimSpace(in.Title)
	l.Description = in.Description
	l.Location = strings.TrimSpace(in.Location)
	l.Price = in.Price
	l.Bedrooms = in.Bedrooms
	l.Bathrooms = in.Bathrooms
	l.ImageURLs = append([]string{}, in.ImageURLs...)
	l.AvailableFrom = in.AvailableFrom
	l.AvailableUntil = in.AvailableUntil
	l.UpdatedAt = now
}
