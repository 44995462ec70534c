package token_bucket

import (
	"sync"
	"time"
)

// Buckets хранит отдельный TokenBucket на каждый ключ.
// Ведро создается при первом запросе с этим ключом.
type Buckets struct {
	capacity   int
	refillRate float64

	mu      sync.Mutex
	buckets map[string]*bucketEntry
}

type bucketEntry struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

func NewBuckets(capacity int, refillRate float64) *Buckets {
	return &Buckets{
		capacity:   capacity,
		refillRate: refillRate,
		buckets:    make(map[string]*bucketEntry),
	}
}

func (b *Buckets) Allow(key string) bool {
	b.mu.Lock()
	entry, ok := b.buckets[key]
	if !ok {
		entry = &bucketEntry{bucket: NewTokenBucket(b.capacity, b.refillRate)}
		b.buckets[key] = entry
	}
	entry.lastSeen = time.Now()
	b.mu.Unlock()

	return entry.bucket.Allow()
}

// Evict удаляет ведра, к которым не обращались дольше idle. Возвращает количество удаленных.
func (b *Buckets) Evict(idle time.Duration) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	threshold := time.Now().Add(-idle)
	evicted := 0
	for key, entry := range b.buckets {
		if entry.lastSeen.Before(threshold) {
			delete(b.buckets, key)
			evicted++
		}
	}
	return evicted
}

func (b *Buckets) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.buckets)
}
