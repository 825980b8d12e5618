package port

import "sharespace/internal/core/domain"

// FeaturedCachePort хранит последнюю выдачу блока "новые объявления".
type FeaturedCachePort interface {
	// Get всегда возвращает текущее поколение; при промахе его нужно передать в Set.
	Get() (cards []domain.CardView, generation uint64, ok bool)
	// Set сохраняет выдачу, только если с момента Get не было Invalidate.
	Set(generation uint64, cards []domain.CardView) bool
	Invalidate()
}
