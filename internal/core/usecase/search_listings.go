package usecase

import (
	"context"
	"errors"
	"fmt"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
)

type SearchListingsUseCase struct {
	storage port.ListingStoragePort
	mode    domain.FilterMode
}

func NewSearchListingsUseCase(storage port.ListingStoragePort, mode domain.FilterMode) *SearchListingsUseCase {
	if mode == "" {
		mode = domain.FilterModeSource
	}
	return &SearchListingsUseCase{storage: storage, mode: mode}
}

// Execute: выборка кандидатов (единственная точка ожидания), затем фильтр и карточки.
func (uc *SearchListingsUseCase) Execute(ctx context.Context, window domain.SearchWindow) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchListings",
		"from":     window.From,
		"to":       window.To,
		"mode":     string(uc.mode),
	})

	ucLogger.Info("Use case started", nil)

	candidates, err := uc.storage.FindListings(ctx, domain.ListingQuery{Window: window, Mode: uc.mode})
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		if !errors.Is(err, domain.ErrFetchFailure) {
			err = fmt.Errorf("%w: %w", domain.ErrFetchFailure, err)
		}
		return nil, err
	}

	matched := domain.FilterAvailable(candidates, window, uc.mode)
	result := domain.NewSearchResult(matched)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"candidates": len(candidates),
		"matched":    result.Count,
	})

	return result, nil
}
