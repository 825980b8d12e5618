package usecase

import (
	"context"
	"errors"
	"sharespace/internal/core/domain"
	"sync"

	"github.com/google/uuid"
)

type fakeStorage struct {
	mu       sync.Mutex
	listings map[uuid.UUID]domain.Listing
	found    []domain.Listing
	findErr  error
	writeErr error
	queries  []domain.ListingQuery
	updated  []domain.Listing
}

func newFakeStorage(listings ...domain.Listing) *fakeStorage {
	s := &fakeStorage{listings: make(map[uuid.UUID]domain.Listing)}
	for _, l := range listings {
		s.listings[l.ID] = l
	}
	s.found = listings
	return s
}

func (s *fakeStorage) FindListings(_ context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = append(s.queries, q)
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.found, nil
}

func (s *fakeStorage) GetListing(_ context.Context, id uuid.UUID) (*domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.listings[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &l, nil
}

func (s *fakeStorage) CreateListing(_ context.Context, l domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.listings[l.ID] = l
	return nil
}

func (s *fakeStorage) UpdateListing(_ context.Context, l domain.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	if current, ok := s.listings[l.ID]; !ok || current.OwnerID != l.OwnerID {
		return domain.ErrListingNotFound
	}
	s.listings[l.ID] = l
	s.updated = append(s.updated, l)
	return nil
}

func (s *fakeStorage) DeleteListing(_ context.Context, id, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	if current, ok := s.listings[id]; !ok || current.OwnerID != ownerID {
		return domain.ErrListingNotFound
	}
	delete(s.listings, id)
	return nil
}

func (s *fakeStorage) DeleteOwnerListings(_ context.Context, ownerID uuid.UUID) ([]domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	var deleted []domain.Listing
	for id, l := range s.listings {
		if l.OwnerID == ownerID {
			deleted = append(deleted, l)
			delete(s.listings, id)
		}
	}
	return deleted, nil
}

type fakePublisher struct {
	events []domain.ListingChangedEvent
	err    error
}

func (p *fakePublisher) PublishListingChanged(_ context.Context, e domain.ListingChangedEvent) error {
	p.events = append(p.events, e)
	return p.err
}

type fakeCache struct {
	mu          sync.Mutex
	cards       []domain.CardView
	ok          bool
	generation  uint64
	sets        int
	rejected    int
	invalidated int
}

func (c *fakeCache) Get() ([]domain.CardView, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cards, c.generation, c.ok
}

func (c *fakeCache) Set(generation uint64, cards []domain.CardView) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		c.rejected++
		return false
	}
	c.cards, c.ok = cards, true
	c.sets++
	return true
}

func (c *fakeCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cards, c.ok = nil, false
	c.generation++
	c.invalidated++
}

var errStorageDown = errors.New("connection refused")

func date(s string) domain.CalendarDate { return domain.MustParseCalendarDate(s) }

func datePtr(s string) *domain.CalendarDate {
	d := date(s)
	return &d
}
