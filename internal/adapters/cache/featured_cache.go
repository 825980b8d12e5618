package cache_adapter

import (
	"sharespace/internal/core/domain"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const featuredKey = "featured"

// FeaturedCache держит блок новых объявлений до истечения TTL или до сброса.
// Каждый сброс увеличивает поколение, и выборка, начатая до сброса, уже не попадет в кеш.
type FeaturedCache struct {
	mu         sync.Mutex
	generation uint64
	cache      *ttlcache.Cache[string, []domain.CardView]
}

func NewFeaturedCache(ttl time.Duration) *FeaturedCache {
	return &FeaturedCache{
		cache: ttlcache.New(
			ttlcache.WithTTL[string, []domain.CardView](ttl),
			ttlcache.WithDisableTouchOnHit[string, []domain.CardView](),
		),
	}
}

func (c *FeaturedCache) Get() ([]domain.CardView, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.cache.Get(featuredKey)
	if item == nil {
		return nil, c.generation, false
	}
	return item.Value(), c.generation, true
}

func (c *FeaturedCache) Set(generation uint64, cards []domain.CardView) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return false
	}
	c.cache.Set(featuredKey, cards, ttlcache.DefaultTTL)
	return true
}

func (c *FeaturedCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.cache.Delete(featuredKey)
}
