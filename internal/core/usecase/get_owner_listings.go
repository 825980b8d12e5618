package usecase

import (
	"context"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
)

type GetOwnerListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewGetOwnerListingsUseCase(storage port.ListingStoragePort) *GetOwnerListingsUseCase {
	return &GetOwnerListingsUseCase{storage: storage}
}

func (uc *GetOwnerListingsUseCase) Execute(ctx context.Context, owner domain.Identity) ([]domain.CardView, error) {
	if owner.IsAnonymous() {
		return nil, domain.ErrUnauthenticated
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetOwnerListings",
		"owner_id": owner.UserID,
	})
	ucLogger.Info("Use case started", nil)

	ownerID := owner.UserID
	listings, err := uc.storage.FindListings(ctx, domain.ListingQuery{OwnerID: &ownerID})
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(listings)})
	return domain.NewCardViews(listings), nil
}
