package cache_adapter

import (
	"sharespace/internal/core/domain"
	"testing"
	"time"
)

func TestFeaturedCache(t *testing.T) {
	c := NewFeaturedCache(time.Minute)
	_, gen, ok := c.Get()
	if ok {
		t.Fatal("new cache must be empty")
	}

	if !c.Set(gen, []domain.CardView{{Title: "a"}}) {
		t.Fatal("set with the current generation must be stored")
	}
	cards, _, ok := c.Get()
	if !ok || len(cards) != 1 || cards[0].Title != "a" {
		t.Fatalf("unexpected cache content %v %v", cards, ok)
	}

	c.Invalidate()
	if _, _, ok := c.Get(); ok {
		t.Fatal("invalidated cache must be empty")
	}
}

func TestFeaturedCacheRejectsSetAfterInvalidate(t *testing.T) {
	c := NewFeaturedCache(time.Minute)
	_, before, _ := c.Get()

	// запись произошла, пока читатель ходил в хранилище
	c.Invalidate()

	if c.Set(before, []domain.CardView{{Title: "stale"}}) {
		t.Fatal("snapshot taken before invalidation must be rejected")
	}
	if _, _, ok := c.Get(); ok {
		t.Fatal("stale snapshot must not be served")
	}

	_, after, _ := c.Get()
	if after == before {
		t.Fatal("invalidation must advance the generation")
	}
	if !c.Set(after, []domain.CardView{{Title: "fresh"}}) {
		t.Fatal("set with the new generation must be stored")
	}
	if cards, _, ok := c.Get(); !ok || cards[0].Title != "fresh" {
		t.Fatalf("unexpected cache content %v %v", cards, ok)
	}
}

func TestFeaturedCacheExpires(t *testing.T) {
	c := NewFeaturedCache(20 * time.Millisecond)
	_, gen, _ := c.Get()
	c.Set(gen, []domain.CardView{})
	time.Sleep(50 * time.Millisecond)
	if _, _, ok := c.Get(); ok {
		t.Fatal("expired entry must not be returned")
	}
}
