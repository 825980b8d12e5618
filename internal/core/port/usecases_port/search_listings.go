package usecases_port

import (
	"context"
	"sharespace/internal/core/domain"
)

type SearchListingsUseCasePort interface {
	// Execute возвращает непустой результат даже при нуле совпадений.
	Execute(ctx context.Context, window domain.SearchWindow) (*domain.SearchResult, error)
}

// SessionSearchUseCasePort - поиск в рамках клиентской сессии, где выигрывает последний запрос.
type SessionSearchUseCasePort interface {
	Execute(ctx context.Context, sessionKey string, window domain.SearchWindow) (*domain.SearchResult, error)
}
