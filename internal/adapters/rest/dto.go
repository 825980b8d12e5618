package rest

import (
	"sharespace/internal/core/domain"
	"time"

	"github.com/google/uuid"
)

// ListingRequest - тело POST/PUT. Форма проверяется JSON-схемой до декодирования.
type ListingRequest struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Location       string               `json:"location"`
	Price          float64              `json:"price"`
	Bedrooms       *int                 `json:"bedrooms"`
	Bathrooms      *int                 `json:"bathrooms"`
	ImageURLs      []string             `json:"image_urls"`
	AvailableFrom  domain.CalendarDate  `json:"available_from"`
	AvailableUntil *domain.CalendarDate `json:"available_until"`
}

func (r ListingRequest) toDomain() domain.ListingInput {
	images := r.ImageURLs
	if images == nil {
		images = []string{}
	}
	return domain.ListingInput{
		Title:          r.Title,
		Description:    r.Description,
		Location:       r.Location,
		Price:          r.Price,
		Bedrooms:       r.Bedrooms,
		Bathrooms:      r.Bathrooms,
		ImageURLs:      images,
		AvailableFrom:  r.AvailableFrom,
		AvailableUntil: r.AvailableUntil,
	}
}

// CardResponse - карточка объявления в списках.
type CardResponse struct {
	ID             uuid.UUID            `json:"id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Location       string               `json:"location"`
	Price          float64              `json:"price"`
	Bedrooms       *int                 `json:"bedrooms"`
	Bathrooms      *int                 `json:"bathrooms"`
	PrimaryImage   *string              `json:"primary_image"`
	OtherImages    []string             `json:"other_images"`
	AvailableFrom  domain.CalendarDate  `json:"available_from"`
	AvailableUntil *domain.CalendarDate `json:"available_until"`
	CreatedAt      time.Time            `json:"created_at"`
}

func toCardResponses(cards []domain.CardView) []CardResponse {
	response := make([]CardResponse, len(cards))
	for i, c := range cards {
		response[i] = CardResponse{
			ID:             c.ID,
			Title:          c.Title,
			Description:    c.Description,
			Location:       c.Location,
			Price:          c.Price,
			Bedrooms:       c.Bedrooms,
			Bathrooms:      c.Bathrooms,
			PrimaryImage:   c.PrimaryImage,
			OtherImages:    c.OtherImages,
			AvailableFrom:  c.AvailableFrom,
			AvailableUntil: c.AvailableUntil,
			CreatedAt:      c.CreatedAt,
		}
	}
	return response
}

// SearchResponse - ответ поиска.
type SearchResponse struct {
	Data  []CardResponse `json:"data"`
	Count int            `json:"count"`
}

// ListingResponse - полная карточка объявления.
type ListingResponse struct {
	ID             uuid.UUID            `json:"id"`
	OwnerID        uuid.UUID            `json:"owner_id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	Location       string               `json:"location"`
	Price          float64              `json:"price"`
	Bedrooms       *int                 `json:"bedrooms"`
	Bathrooms      *int                 `json:"bathrooms"`
	ImageURLs      []string             `json:"image_urls"`
	AvailableFrom  domain.CalendarDate  `json:"available_from"`
	AvailableUntil *domain.CalendarDate `json:"available_until"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

func toListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:             l.ID,
		OwnerID:        l.OwnerID,
		Title:          l.Title,
		Description:    l.Description,
		Location:       l.Location,
		Price:          l.Price,
		Bedrooms:       l.Bedrooms,
		Bathrooms:      l.Bathrooms,
		ImageURLs:      l.ImageURLs,
		AvailableFrom:  l.AvailableFrom,
		AvailableUntil: l.AvailableUntil,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

type DeleteOwnerListingsResponse struct {
	Deleted int `json:"deleted"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
