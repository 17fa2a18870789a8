// Package cache keeps fetched articles per topic for a short TTL, so asking
// several questions about the same topic does not refetch (and re-spend news
// API quota) every time. Entries expire after an hour; nothing outlives that.
package cache

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Sai-Tarun4212/RAG-News-Summarizer/db"
	"github.com/Sai-Tarun4212/RAG-News-Summarizer/pkg/news"
)

const DefaultTTL = time.Hour

// Store is a topic-keyed article cache. Lookups and writes are best effort:
// a broken backend behaves like a permanent miss, never an error.
type Store interface {
	Get(topic string) ([]news.Article, bool)
	Put(topic string, articles []news.Article)
}

func cacheKey(topic string) string {
	return "newsrag:articles:" + strings.ToLower(strings.TrimSpace(topic))
}

// Memory is the in-process backend, used when no Redis is configured.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
}

type memoryEntry struct {
	articles []news.Article
	storedAt time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(topic string) ([]news.Article, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[cacheKey(topic)]
	if !ok {
		return nil, false
	}
	if time.Since(entry.storedAt) > m.ttl {
		delete(m.entries, cacheKey(topic))
		return nil, false
	}
	return entry.articles, true
}

func (m *Memory) Put(topic string, articles []news.Article) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[cacheKey(topic)] = memoryEntry{articles: articles, storedAt: time.Now()}
}

// Redis is the shared backend, wired when REDIS_URL is set. Articles are
// stored as a JSON blob under the topic key with a TTL handled by Redis.
type Redis struct {
	ttl time.Duration
}

func NewRedis(ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{ttl: ttl}
}

func (r *Redis) Get(topic string) ([]news.Article, bool) {
	raw, err := db.Get(cacheKey(topic))
	if err != nil {
		if !db.IsMiss(err) {
			slog.Warn("article cache read failed", "topic", topic, "error", err)
		}
		return nil, false
	}

	var articles []news.Article
	if err := json.Unmarshal([]byte(raw), &articles); err != nil {
		slog.Warn("article cache entry corrupt, ignoring", "topic", topic, "error", err)
		return nil, false
	}
	return articles, true
}

func (r *Redis) Put(topic string, articles []news.Article) {
	raw, err := json.Marshal(articles)
	if err != nil {
		slog.Warn("article cache encode failed", "topic", topic, "error", err)
		return
	}
	if err := db.SetWithTTL(cacheKey(topic), string(raw), r.ttl); err != nil {
		slog.Warn("article cache write failed", "topic", topic, "error", err)
	}
}
