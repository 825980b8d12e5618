package domain

import (
	"reflect"
	"testing"
	"time"
)

func TestNewCardViewSplitsImages(t *testing.T) {
	l := listing("2024-06-01", "2024-08-31")
	l.ImageURLs = []string{"a", "b", "c"}
	l.Price = 850
	l.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	card := NewCardView(l)
	if card.PrimaryImage == nil || *card.PrimaryImage != "a" {
		t.Fatalf("expected primary image a, got %v", card.PrimaryImage)
	}
	if !reflect.DeepEqual(card.OtherImages, []string{"b", "c"}) {
		t.Fatalf("expected [b c], got %v", card.OtherImages)
	}
	if card.ID != l.ID || card.Price != 850 || !card.AvailableFrom.Equal(l.AvailableFrom) || card.AvailableUntil != l.AvailableUntil {
		t.Fatalf("attributes not passed through: %+v", card)
	}

	card.OtherImages[0] = "changed"
	if l.ImageURLs[1] != "b" {
		t.Fatal("card shares image storage with listing")
	}
}

func TestNewCardViewWithoutImages(t *testing.T) {
	card := NewCardView(listing("2024-06-01", ""))
	if card.PrimaryImage != nil {
		t.Fatalf("expected no primary image, got %q", *card.PrimaryImage)
	}
	if card.OtherImages == nil || len(card.OtherImages) != 0 {
		t.Fatalf("expected empty other images, got %#v", card.OtherImages)
	}
}

func TestNewSearchResultCount(t *testing.T) {
	res := NewSearchResult(nil)
	if res == nil || res.Count != 0 || res.Cards == nil {
		t.Fatalf("zero matches must still produce a result, got %+v", res)
	}
	res = NewSearchResult([]Listing{listing("2024-01-01", ""), listing("2024-02-01", "")})
	if res.Count != 2 || len(res.Cards) != 2 {
		t.Fatalf("expected 2 cards, got %+v", res)
	}
}
