package usecase

import (
	"context"
	"sharespace/internal/contextkeys"
	"sharespace/internal/core/domain"
	"sharespace/internal/core/port"
	"sharespace/internal/core/port/usecases_port"
	"sync"
)

// SearchSessions оставляет в сессии только результат последнего запуска поиска.
// Новый поиск отменяет контекст предыдущего, а устаревший результат
// превращается в domain.ErrSearchSuperseded.
type SearchSessions struct {
	search usecases_port.SearchListingsUseCasePort

	mu             sync.Mutex
	lastGeneration uint64
	inFlight       map[string]*searchRun
}

type searchRun struct {
	generation uint64
	cancel     context.CancelFunc
}

func NewSearchSessions(search usecases_port.SearchListingsUseCasePort) *SearchSessions {
	return &SearchSessions{
		search:   search,
		inFlight: make(map[string]*searchRun),
	}
}

// Execute без ключа сессии выполняет поиск без координации.
func (s *SearchSessions) Execute(ctx context.Context, sessionKey string, window domain.SearchWindow) (*domain.SearchResult, error) {
	if sessionKey == "" {
		return s.search.Execute(ctx, window)
	}

	runCtx, cancel := context.WithCancel(ctx)
	generation := s.begin(sessionKey, cancel)
	defer s.finish(sessionKey, generation, cancel)

	result, err := s.search.Execute(runCtx, window)

	if !s.isCurrent(sessionKey, generation) {
		contextkeys.LoggerFromContext(ctx).Info("Search result discarded as superseded", port.Fields{
			"session":    sessionKey,
			"generation": generation,
		})
		return nil, domain.ErrSearchSuperseded
	}
	return result, err
}

func (s *SearchSessions) begin(key string, cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.inFlight[key]; ok {
		prev.cancel()
	}
	s.lastGeneration++
	s.inFlight[key] = &searchRun{generation: s.lastGeneration, cancel: cancel}
	return s.lastGeneration
}

func (s *SearchSessions) isCurrent(key string, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.inFlight[key]
	return ok && run.generation == generation
}

func (s *SearchSessions) finish(key string, generation uint64, cancel context.CancelFunc) {
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	if run, ok := s.inFlight[key]; ok && run.generation == generation {
		delete(s.inFlight, key)
	}
}
