package domain

import "errors"

var (
	// ErrFetchFailure - хранилище недоступно, запрос упал или строка не прошла проверку формы.
	ErrFetchFailure = errors.New("listing fetch failed")
	// ErrMalformedWindow - from/to не является датой YYYY-MM-DD.
	ErrMalformedWindow = errors.New("malformed search window")
	// ErrSearchSuperseded - в той же сессии уже запущен более новый поиск.
	ErrSearchSuperseded = errors.New("search superseded by a newer request")

	ErrListingNotFound   = errors.New("listing not found")
	ErrNotListingOwner   = errors.New("listing belongs to another user")
	ErrInvalidListing    = errors.New("invalid listing")
	ErrUnauthenticated   = errors.New("authentication required")
	ErrTokenInvalid      = errors.New("token is invalid or expired")
	ErrUnknownFilterMode = errors.New("unknown filter mode")
)
