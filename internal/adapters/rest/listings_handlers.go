package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sharespace/internal/contextkeys"
	"sharespace/internal/contracts"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
	"sharespace/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SearchSessionHeader - ключ клиентской сессии поиска (вкладка браузера).
const SearchSessionHeader = "X-Search-Session"

const maxListingBodyBytes = 1 << 20

type ListingsHandler struct {
	searchUC      usecases_port.SessionSearchUseCasePort
	featuredUC    usecases_port.GetFeaturedListingsUseCasePort
	getUC         usecases_port.GetListingUseCasePort
	ownerUC       usecases_port.GetOwnerListingsUseCasePort
	createUC      usecases_port.CreateListingUseCasePort
	updateUC      usecases_port.UpdateListingUseCasePort
	deleteUC      usecases_port.DeleteListingUseCasePort
	deleteOwnerUC usecases_port.DeleteOwnerListingsUseCasePort
}

func NewListingsHandler(
	searchUC usecases_port.SessionSearchUseCasePort,
	featuredUC usecases_port.GetFeaturedListingsUseCasePort,
	getUC usecases_port.GetListingUseCasePort,
	ownerUC usecases_port.GetOwnerListingsUseCasePort,
	createUC usecases_port.CreateListingUseCasePort,
	updateUC usecases_port.UpdateListingUseCasePort,
	deleteUC usecases_port.DeleteListingUseCasePort,
	deleteOwnerUC usecases_port.DeleteOwnerListingsUseCasePort,
) *ListingsHandler {
	return &ListingsHandler{
		searchUC:      searchUC,
		featuredUC:    featuredUC,
		getUC:         getUC,
		ownerUC:       ownerUC,
		createUC:      createUC,
		updateUC:      updateUC,
		deleteUC:      deleteUC,
		deleteOwnerUC: deleteOwnerUC,
	}
}

// SearchListings обрабатывает GET /api/v1/listings?from=&to=
func (h *ListingsHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchListings"})

	query := r.URL.Query()
	window, err := domain.ParseSearchWindow(query.Get("from"), query.Get("to"))
	if err != nil {
		logger.Warn("Malformed search window", port.Fields{"from": query.Get("from"), "to": query.Get("to")})
		writeUseCaseError(w, logger, err)
		return
	}

	result, err := h.searchUC.Execute(r.Context(), r.Header.Get(SearchSessionHeader), window)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, SearchResponse{
		Data:  toCardResponses(result.Cards),
		Count: result.Count,
	})
}

// GetFeaturedListings обрабатывает GET /api/v1/listings/featured
func (h *ListingsHandler) GetFeaturedListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeaturedListings"})

	cards, err := h.featuredUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, SearchResponse{Data: toCardResponses(cards), Count: len(cards)})
}

// GetListing обрабатывает GET /api/v1/listings/{listingID}
func (h *ListingsHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListing"})

	listingID, ok := parseListingID(w, r, logger)
	if !ok {
		return
	}

	listing, err := h.getUC.Execute(r.Context(), listingID)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toListingResponse(listing))
}

// CreateListing обрабатывает POST /api/v1/listings
func (h *ListingsHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateListing"})

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	input, ok := decodeListingRequest(w, r, logger)
	if !ok {
		return
	}

	listing, err := h.createUC.Execute(r.Context(), identity, input)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	w.Header().Set("Location", "/api/v1/listings/"+listing.ID.String())
	RespondWithJSON(w, http.StatusCreated, toListingResponse(listing))
}

// UpdateListing обрабатывает PUT /api/v1/listings/{listingID}
func (h *ListingsHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListing"})

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	listingID, ok := parseListingID(w, r, logger)
	if !ok {
		return
	}
	input, ok := decodeListingRequest(w, r, logger)
	if !ok {
		return
	}

	listing, err := h.updateUC.Execute(r.Context(), identity, listingID, input)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toListingResponse(listing))
}

// DeleteListing обрабатывает DELETE /api/v1/listings/{listingID}
func (h *ListingsHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteListing"})

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	listingID, ok := parseListingID(w, r, logger)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), identity, listingID); err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMyListings обрабатывает GET /api/v1/me/listings
func (h *ListingsHandler) GetMyListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetMyListings"})

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	cards, err := h.ownerUC.Execute(r.Context(), identity)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, SearchResponse{Data: toCardResponses(cards), Count: len(cards)})
}

// DeleteMyListings обрабатывает DELETE /api/v1/me/listings
func (h *ListingsHandler) DeleteMyListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteMyListings"})

	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	deleted, err := h.deleteOwnerUC.Execute(r.Context(), identity)
	if err != nil {
		writeUseCaseError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, DeleteOwnerListingsResponse{Deleted: deleted})
}

func requireIdentity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	identity, ok := contextkeys.IdentityFromContext(r.Context())
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
	}
	return identity, ok
}

func parseListingID(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "listingID")
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid listingID in URL", port.Fields{"provided_id": raw})
		WriteJSONError(w, http.StatusBadRequest, "Invalid listingID in URL")
		return uuid.Nil, false
	}
	return id, true
}

// decodeListingRequest сначала проверяет тело схемой, затем декодирует его.
func decodeListingRequest(w http.ResponseWriter, r *http.Request, logger port.LoggerPort) (domain.ListingInput, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxListingBodyBytes))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return domain.ListingInput{}, false
	}

	if err := contracts.ValidateListingInput(body); err != nil {
		logger.Warn("Listing request rejected by schema", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("%s: %v", domain.ErrInvalidListing, err))
		return domain.ListingInput{}, false
	}

	var req ListingRequest
	if err := json.Unmarshal(body, &req); err != nil {
		logger.Warn("Failed to decode listing request", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return domain.ListingInput{}, false
	}
	return req.toDomain(), true
}
