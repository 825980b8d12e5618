package usecase

import (
	"context"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
)

// DefaultFeaturedLimit - сколько новых объявлений показывает главная страница.
const DefaultFeaturedLimit = 3

type GetFeaturedListingsUseCase struct {
	storage port.ListingStoragePort
	cache   port.FeaturedCachePort
	limit   int
}

func NewGetFeaturedListingsUseCase(storage port.ListingStoragePort, cache port.FeaturedCachePort, limit int) *GetFeaturedListingsUseCase {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return &GetFeaturedListingsUseCase{storage: storage, cache: cache, limit: limit}
}

func (uc *GetFeaturedListingsUseCase) Execute(ctx context.Context) ([]domain.CardView, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFeaturedListings",
		"limit":    uc.limit,
	})

	cards, generation, ok := uc.cache.Get()
	if ok {
		ucLogger.Debug("Featured listings served from cache", port.Fields{"count": len(cards)})
		return cards, nil
	}

	listings, err := uc.storage.FindListings(ctx, domain.ListingQuery{Limit: uc.limit})
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	cards = domain.NewCardViews(listings)
	if !uc.cache.Set(generation, cards) {
		ucLogger.Debug("Listings changed during fetch, result not cached", nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(cards)})
	return cards, nil
}
