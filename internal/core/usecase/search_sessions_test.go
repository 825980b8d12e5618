package usecase

import (
	"context"
	"errors"
	"sharespace/internal/core/domain"
	"testing"
	"time"
)

// blockingSearch отдает управление тесту и ждет release или отмены контекста.
type blockingSearch struct {
	started chan context.Context
	release chan *domain.SearchResult
}

func newBlockingSearch() *blockingSearch {
	return &blockingSearch{
		started: make(chan context.Context, 4),
		release: make(chan *domain.SearchResult, 4),
	}
}

func (b *blockingSearch) Execute(ctx context.Context, _ domain.SearchWindow) (*domain.SearchResult, error) {
	b.started <- ctx
	select {
	case res := <-b.release:
		return res, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

type outcome struct {
	res *domain.SearchResult
	err error
}

func TestSearchSessionsLastWriteWins(t *testing.T) {
	search := newBlockingSearch()
	sessions := NewSearchSessions(search)

	first := make(chan outcome, 1)
	go func() {
		res, err := sessions.Execute(context.Background(), "tab-1", domain.SearchWindow{})
		first <- outcome{res, err}
	}()
	firstCtx := <-search.started

	second := make(chan outcome, 1)
	go func() {
		res, err := sessions.Execute(context.Background(), "tab-1", domain.SearchWindow{})
		second <- outcome{res, err}
	}()
	<-search.started

	select {
	case <-firstCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("previous search was not cancelled")
	}

	got := <-first
	if !errors.Is(got.err, domain.ErrSearchSuperseded) || got.res != nil {
		t.Fatalf("expected superseded, got %+v", got)
	}

	want := &domain.SearchResult{Cards: []domain.CardView{}, Count: 0}
	search.release <- want
	got = <-second
	if got.err != nil || got.res != want {
		t.Fatalf("expected latest result, got %+v", got)
	}
}

func TestSearchSessionsIndependentKeys(t *testing.T) {
	search := newBlockingSearch()
	sessions := NewSearchSessions(search)

	done := make(chan outcome, 2)
	for _, key := range []string{"tab-1", "tab-2"} {
		go func(key string) {
			res, err := sessions.Execute(context.Background(), key, domain.SearchWindow{})
			done <- outcome{res, err}
		}(key)
		<-search.started
	}

	search.release <- &domain.SearchResult{}
	search.release <- &domain.SearchResult{}
	for i := 0; i < 2; i++ {
		if got := <-done; got.err != nil {
			t.Fatalf("unexpected error: %v", got.err)
		}
	}
}

func TestSearchSessionsWithoutKeyRunUncoordinated(t *testing.T) {
	search := newBlockingSearch()
	sessions := NewSearchSessions(search)

	search.release <- &domain.SearchResult{}
	search.release <- &domain.SearchResult{}
	for i := 0; i < 2; i++ {
		if _, err := sessions.Execute(context.Background(), "", domain.SearchWindow{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		<-search.started
	}
}

func TestSearchSessionsGenerationsNeverRepeat(t *testing.T) {
	search := newBlockingSearch()
	sessions := NewSearchSessions(search)

	search.release <- &domain.SearchResult{}
	if _, err := sessions.Execute(context.Background(), "tab-1", domain.SearchWindow{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-search.started

	if len(sessions.inFlight) != 0 {
		t.Fatalf("finished session must be released, got %d", len(sessions.inFlight))
	}
	if g := sessions.begin("tab-1", func() {}); g != 2 {
		t.Fatalf("expected generation 2, got %d", g)
	}
}
