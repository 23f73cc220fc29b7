package tokenize

import (
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	gocache "github.com/patrickmn/go-cache"

	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/token"
)

const (
	DefaultCacheTTL             = 2 * time.Minute
	DefaultCacheCleanupInterval = 5 * time.Minute
)

type cachedTree struct {
	text   string
	tokens []token.Token
}

// Cached memoizes another Tokenizer per grammar, options and text.
// Returned trees are shared between callers and must not be mutated.
type Cached struct {
	next  Tokenizer
	cache *gocache.Cache
}

// NewCached wraps next. Non-positive durations select the defaults.
func NewCached(next Tokenizer, ttl, cleanupInterval time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if cleanupInterval <= 0 {
		cleanupInterval = DefaultCacheCleanupInterval
	}
	return &Cached{next: next, cache: gocache.New(ttl, cleanupInterval)}
}

// Tokenize returns the cached tree for text or tokenizes and stores it.
func (c *Cached) Tokenize(text, grammar string, opts Options) ([]token.Token, error) {
	key := cacheKey(text, grammar, opts)
	if v, found := c.cache.Get(key); found {
		if hit, ok := v.(cachedTree); ok && hit.text == text {
			return hit.tokens, nil
		}
		log.Debug(log.CatTokenize, "tokenize cache entry mismatch", "key", key)
	}

	toks, err := c.next.Tokenize(text, grammar, opts)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, cachedTree{text: text, tokens: toks})
	return toks, nil
}

// Len returns the number of cached trees, expired ones included until the
// next cleanup.
func (c *Cached) Len() int { return c.cache.ItemCount() }

// Flush drops every cached tree.
func (c *Cached) Flush() { c.cache.Flush() }

func cacheKey(text, grammar string, opts Options) string {
	coalesce := "0"
	if opts.Coalesce {
		coalesce = "1"
	}
	return grammar + "|" + opts.DefaultGrammar + "|" + coalesce + "|" + strconv.FormatUint(xxhash.Sum64String(text), 16)
}
